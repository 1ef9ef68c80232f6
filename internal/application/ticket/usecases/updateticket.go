package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Description string
	Status      string
	Date        time.Time
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var existing *ticket.Ticket

	// Load and write inside one transaction so a concurrent delete
	// cannot slip between the read and the update.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		loaded, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			if stderrors.Is(err, ticket.ErrNotFound) {
				return errors.NewNotFoundError("ticket not found")
			}
			uc.logger.Errorw("failed to load ticket for update", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to update ticket")
		}

		if err := loaded.Update(cmd.Description, cmd.Status, cmd.Date); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, loaded); err != nil {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to update ticket")
		}

		existing = loaded
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)

	return dto.ToTicketDTO(existing), nil
}
