package ticket

import (
	"fmt"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 8
	MaxPageSize     = 100

	sortOrderAsc = "asc"
)

// SortField is the closed set of columns a listing may be ordered by.
// Requests naming anything else fall back to SortFieldID so the result
// order stays deterministic.
type SortField int

const (
	SortFieldID SortField = iota
	SortFieldDescription
	SortFieldStatus
	SortFieldDate
)

// ParseSortField resolves a requested column name to a SortField.
// Matching is case-insensitive; unknown names report ok=false and the
// default field.
func ParseSortField(name string) (SortField, bool) {
	switch strings.ToLower(name) {
	case "", "id":
		return SortFieldID, true
	case "description":
		return SortFieldDescription, true
	case "status":
		return SortFieldStatus, true
	case "date":
		return SortFieldDate, true
	default:
		return SortFieldID, false
	}
}

// ListQuery is the normalized listing request handed to the store.
// Build it through NewListQuery so every consumer sees the same
// defaults and bounds.
type ListQuery struct {
	Page       int
	PageSize   int
	SortField  SortField
	Descending bool
	Filter     string
}

// NewListQuery normalizes raw listing parameters. Callers substitute
// DefaultPage and DefaultPageSize for absent values before calling.
//
// Page or pageSize below 1 is rejected. An unknown sortColumn falls
// back to ascending id regardless of the requested direction.
// sortOrder is ascending only for the literal "asc" (or empty);
// anything else sorts descending.
func NewListQuery(page, pageSize int, sortColumn, sortOrder, filter string) (ListQuery, error) {
	if page < 1 {
		return ListQuery{}, fmt.Errorf("page must be at least 1")
	}
	if pageSize < 1 {
		return ListQuery{}, fmt.Errorf("pageSize must be at least 1")
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	field, known := ParseSortField(sortColumn)
	descending := false
	if known {
		switch sortOrder {
		case "", sortOrderAsc:
			descending = false
		default:
			descending = true
		}
	}

	return ListQuery{
		Page:       page,
		PageSize:   pageSize,
		SortField:  field,
		Descending: descending,
		Filter:     filter,
	}, nil
}

// Offset returns the zero-based record offset for the query's page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
