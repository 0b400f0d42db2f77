package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDetailDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDetailDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDetailDTO, error)
}

type SeedDatabaseExecutor interface {
	Execute(ctx context.Context) (*SeedDatabaseResult, error)
}

// TransactionManager runs fn inside one transaction carried by its context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TicketAggregator interface {
	Aggregate(ctx context.Context, t *ticket.Ticket) (*dto.TicketDetailDTO, error)
	AggregateAll(ctx context.Context, tickets []*ticket.Ticket) ([]*dto.TicketDetailDTO, error)
}

// SchemaResetter drops and recreates the ticket tables.
type SchemaResetter interface {
	Reset(ctx context.Context) error
}

type FixtureSource interface {
	Load() (*dto.SeedDataset, error)
}
