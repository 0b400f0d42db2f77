package services

import (
	"context"
	"fmt"

	"ticketdesk/internal/domain/agent"
	"ticketdesk/internal/domain/customer"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

// Associations is the ordered set of records linked to one ticket.
type Associations[T any] struct {
	items []T
}

func NewAssociations[T any](items ...T) Associations[T] {
	return Associations[T]{items: items}
}

// Items returns the linked records in link order. It never returns nil.
func (a Associations[T]) Items() []T {
	if a.items == nil {
		return []T{}
	}
	return a.items
}

func (a Associations[T]) Len() int {
	return len(a.items)
}

// Primary returns the first linked record.
func (a Associations[T]) Primary() (T, bool) {
	if len(a.items) == 0 {
		var zero T
		return zero, false
	}
	return a.items[0], true
}

// AssociationResolver follows a ticket's link rows to the customer and agent records.
// Each link costs one lookup; links whose record no longer exists are skipped.
type AssociationResolver struct {
	links     ticket.LinkRepository
	customers customer.Repository
	agents    agent.Repository
	logger    logger.Interface
}

func NewAssociationResolver(
	links ticket.LinkRepository,
	customers customer.Repository,
	agents agent.Repository,
	logger logger.Interface,
) *AssociationResolver {
	return &AssociationResolver{
		links:     links,
		customers: customers,
		agents:    agents,
		logger:    logger,
	}
}

func (r *AssociationResolver) ResolveCustomers(ctx context.Context, ticketID uint) (Associations[*customer.Customer], error) {
	links, err := r.links.ListCustomerLinks(ctx, ticketID)
	if err != nil {
		return Associations[*customer.Customer]{}, fmt.Errorf("failed to load customer links: %w", err)
	}

	found := make([]*customer.Customer, 0, len(links))
	for _, l := range links {
		c, err := r.customers.GetByID(ctx, l.CustomerID)
		if err != nil {
			return Associations[*customer.Customer]{}, fmt.Errorf("failed to load customer %d: %w", l.CustomerID, err)
		}
		if c == nil {
			r.logger.Debugw("skipping dangling customer link", "ticket_id", ticketID, "customer_id", l.CustomerID)
			continue
		}
		found = append(found, c)
	}

	return NewAssociations(found...), nil
}

func (r *AssociationResolver) ResolveAgents(ctx context.Context, ticketID uint) (Associations[*agent.Agent], error) {
	links, err := r.links.ListAgentLinks(ctx, ticketID)
	if err != nil {
		return Associations[*agent.Agent]{}, fmt.Errorf("failed to load agent links: %w", err)
	}

	found := make([]*agent.Agent, 0, len(links))
	for _, l := range links {
		a, err := r.agents.GetByID(ctx, l.AgentID)
		if err != nil {
			return Associations[*agent.Agent]{}, fmt.Errorf("failed to load agent %d: %w", l.AgentID, err)
		}
		if a == nil {
			r.logger.Debugw("skipping dangling agent link", "ticket_id", ticketID, "agent_id", l.AgentID)
			continue
		}
		found = append(found, a)
	}

	return NewAssociations(found...), nil
}
