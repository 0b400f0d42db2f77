package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// MsgAllFieldsRequired is reported when any creation field is missing.
const MsgAllFieldsRequired = "All fields are required"

type CreateTicketCommand struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"required"`
	Priority    int    `json:"priority" validate:"required"`
	CustomerID  uint   `json:"customerId" validate:"required"`
	AgentID     uint   `json:"agentId" validate:"required"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	linkRepo   ticket.LinkRepository
	txManager  TransactionManager
	aggregator TicketAggregator
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	linkRepo ticket.LinkRepository,
	txManager TransactionManager,
	aggregator TicketAggregator,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		linkRepo:   linkRepo,
		txManager:  txManager,
		aggregator: aggregator,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDetailDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	if err := utils.ValidateCommand(cmd, MsgAllFieldsRequired); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Status, cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(MsgAllFieldsRequired, err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
			return err
		}
		if err := uc.linkRepo.AddCustomerLinks(ctx, ticket.CustomerLink{TicketID: newTicket.ID(), CustomerID: cmd.CustomerID}); err != nil {
			return err
		}
		return uc.linkRepo.AddAgentLinks(ctx, ticket.AgentLink{TicketID: newTicket.ID(), AgentID: cmd.AgentID})
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return uc.aggregator.Aggregate(ctx, newTicket)
}
