package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketResult struct {
	TicketID uint
	// Deleted is false when no ticket with TicketID existed.
	Deleted bool
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	linkRepo   ticket.LinkRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	linkRepo ticket.LinkRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		linkRepo:   linkRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var deleted bool
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := uc.linkRepo.DeleteCustomerLinks(ctx, cmd.TicketID); err != nil {
			return err
		}
		if _, err := uc.linkRepo.DeleteAgentLinks(ctx, cmd.TicketID); err != nil {
			return err
		}

		var err error
		deleted, err = uc.ticketRepo.Delete(ctx, cmd.TicketID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if deleted {
		uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	}

	return &DeleteTicketResult{
		TicketID: cmd.TicketID,
		Deleted:  deleted,
	}, nil
}
