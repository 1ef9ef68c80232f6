package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Page       int
	PageSize   int
	SortColumn string
	SortOrder  string
	Filter     string
}

type ListTicketsResult struct {
	Tickets    []dto.TicketDTO
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute normalizes the listing request and runs it against the store.
// Invalid paging parameters fail before the store is touched. A page
// past the last one returns an empty list; its count metadata is
// unchanged and the reported page is clamped to the page count.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Debugw("executing list tickets use case",
		"page", query.Page,
		"page_size", query.PageSize,
		"sort_column", query.SortColumn,
		"filter", query.Filter)

	listQuery, err := ticket.NewListQuery(query.Page, query.PageSize, query.SortColumn, query.SortOrder, query.Filter)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	tickets, totalCount, err := uc.ticketRepo.List(ctx, listQuery)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	// The reported current page never exceeds the page count: a
	// past-the-end request still yields an empty list, but its metadata
	// points at the last page so a pager can recover.
	totalPages := utils.TotalPages(totalCount, listQuery.PageSize)
	currentPage := listQuery.Page
	if currentPage > totalPages {
		currentPage = totalPages
	}

	return &ListTicketsResult{
		Tickets:    dto.ToTicketDTOs(tickets),
		TotalCount: totalCount,
		Page:       currentPage,
		PageSize:   listQuery.PageSize,
		TotalPages: totalPages,
	}, nil
}
