package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// UpdateTicketCommand carries a partial update. Nil, empty and zero fields
// are left unchanged.
type UpdateTicketCommand struct {
	TicketID    uint    `json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *int    `json:"priority"`
	CustomerID  *uint   `json:"customerId"`
	AgentID     *uint   `json:"agentId"`
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	linkRepo   ticket.LinkRepository
	txManager  TransactionManager
	aggregator TicketAggregator
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	linkRepo ticket.LinkRepository,
	txManager TransactionManager,
	aggregator TicketAggregator,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		linkRepo:   linkRepo,
		txManager:  txManager,
		aggregator: aggregator,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDetailDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	changes := ticket.Changes{
		Title:       cmd.Title,
		Description: cmd.Description,
		Status:      cmd.Status,
		Priority:    cmd.Priority,
	}

	var updated *ticket.Ticket
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.NewNotFoundError(fmt.Sprintf("Ticket with ID %d not found.", cmd.TicketID))
		}

		if existing.Apply(changes) {
			if err := uc.ticketRepo.Update(ctx, existing); err != nil {
				return err
			}
		}

		if customerID, ok := suppliedID(cmd.CustomerID); ok {
			if _, err := uc.linkRepo.DeleteCustomerLinks(ctx, existing.ID()); err != nil {
				return err
			}
			if err := uc.linkRepo.AddCustomerLinks(ctx, ticket.CustomerLink{TicketID: existing.ID(), CustomerID: customerID}); err != nil {
				return err
			}
		}

		if agentID, ok := suppliedID(cmd.AgentID); ok {
			if _, err := uc.linkRepo.DeleteAgentLinks(ctx, existing.ID()); err != nil {
				return err
			}
			if err := uc.linkRepo.AddAgentLinks(ctx, ticket.AgentLink{TicketID: existing.ID(), AgentID: agentID}); err != nil {
				return err
			}
		}

		updated = existing
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)

	return uc.aggregator.Aggregate(ctx, updated)
}

// suppliedID unwraps an optional link target; zero counts as not supplied.
func suppliedID(id *uint) (uint, bool) {
	if id == nil || *id == 0 {
		return 0, false
	}
	return *id, true
}
