package usecases

import (
	"context"
	stderrors "errors"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) error
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, ticketID uint) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", ticketID)

	if ticketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if err := uc.ticketRepo.Delete(ctx, ticketID); err != nil {
		if stderrors.Is(err, ticket.ErrNotFound) {
			return errors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to delete ticket", "ticket_id", ticketID, "error", err)
		return errors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", ticketID)

	return nil
}
