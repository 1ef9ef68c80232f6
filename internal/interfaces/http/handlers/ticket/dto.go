package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Description string    `json:"description" binding:"required" validate:"required,min=1,max=5000"`
	Status      string    `json:"status" binding:"required" validate:"required,min=1,max=50"`
	Date        time.Time `json:"date" binding:"required" validate:"required"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Description: r.Description,
		Status:      r.Status,
		Date:        r.Date,
	}
}

type UpdateTicketRequest struct {
	ID          uint      `json:"id" binding:"required" validate:"required"`
	Description string    `json:"description" binding:"required" validate:"required,min=1,max=5000"`
	Status      string    `json:"status" binding:"required" validate:"required,min=1,max=50"`
	Date        time.Time `json:"date" binding:"required" validate:"required"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Description: r.Description,
		Status:      r.Status,
		Date:        r.Date,
	}
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	SortColumn string
	SortOrder  string
	Filter     string
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortColumn: r.SortColumn,
		SortOrder:  r.SortOrder,
		Filter:     r.Filter,
	}
}

// ListTicketsResponse is the listing payload: one page of tickets plus
// the metadata a pager needs.
type ListTicketsResponse struct {
	Tickets     []dto.TicketDTO `json:"tickets"`
	TotalCount  int64           `json:"total_count"`
	CurrentPage int             `json:"current_page"`
	PageSize    int             `json:"page_size"`
	TotalPages  int             `json:"total_pages"`
}

// parseListTicketsRequest reads listing parameters from the query
// string. Absent parameters take defaults; present ones are passed
// through unchanged so out-of-range values are rejected downstream
// before any store access.
func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, err := parseQueryInt(c, "page", ticket.DefaultPage)
	if err != nil {
		return nil, err
	}

	pageSize, err := parseQueryInt(c, "pageSize", ticket.DefaultPageSize)
	if err != nil {
		return nil, err
	}

	return &ListTicketsRequest{
		Page:       page,
		PageSize:   pageSize,
		SortColumn: c.Query("sortColumn"),
		SortOrder:  c.Query("sortOrder"),
		Filter:     c.Query("filter"),
	}, nil
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	val := c.Query(key)
	if val == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.NewValidationError("Invalid " + key)
	}
	return n, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}
