package handlers

import (
	"context"

	"ticketdesk/internal/application/ticket/usecases"
)

type seedDatabaseUseCase interface {
	Execute(ctx context.Context) (*usecases.SeedDatabaseResult, error)
}

// databasePinger is satisfied by *sql.DB.
type databasePinger interface {
	PingContext(ctx context.Context) error
}
