package services

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/agent"
	"ticketdesk/internal/domain/customer"
	"ticketdesk/internal/domain/ticket"
)

type Resolver interface {
	ResolveCustomers(ctx context.Context, ticketID uint) (Associations[*customer.Customer], error)
	ResolveAgents(ctx context.Context, ticketID uint) (Associations[*agent.Agent], error)
}

// TicketAggregator builds the detail view of tickets. Nothing is cached.
type TicketAggregator struct {
	resolver Resolver
}

func NewTicketAggregator(resolver Resolver) *TicketAggregator {
	return &TicketAggregator{resolver: resolver}
}

func (a *TicketAggregator) Aggregate(ctx context.Context, t *ticket.Ticket) (*dto.TicketDetailDTO, error) {
	customers, err := a.resolver.ResolveCustomers(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	agents, err := a.resolver.ResolveAgents(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToTicketDetailDTO(t, customers.Items(), agents.Items()), nil
}

// AggregateAll keeps the input order.
func (a *TicketAggregator) AggregateAll(ctx context.Context, tickets []*ticket.Ticket) ([]*dto.TicketDetailDTO, error) {
	details := make([]*dto.TicketDetailDTO, 0, len(tickets))
	for _, t := range tickets {
		d, err := a.Aggregate(ctx, t)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}
