package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// MsgTicketsNotFound is reported when a filtered or sorted listing is empty.
const MsgTicketsNotFound = "Tickets not found."

// ListTicketsQuery selects tickets. The unfiltered listing may be empty;
// a status filter or a priority sort with no results is a not-found error.
type ListTicketsQuery struct {
	Status *string
	SortBy string
}

func (q ListTicketsQuery) requiresResults() bool {
	return q.Status != nil || q.SortBy == ticket.SortByPriority
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	aggregator TicketAggregator
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	aggregator TicketAggregator,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		aggregator: aggregator,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDetailDTO, error) {
	filter := ticket.TicketFilter{
		Status:    query.Status,
		SortBy:    query.SortBy,
		SortOrder: "ASC",
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	if len(tickets) == 0 && query.requiresResults() {
		return nil, errors.NewNotFoundError(MsgTicketsNotFound)
	}

	return uc.aggregator.AggregateAll(ctx, tickets)
}
