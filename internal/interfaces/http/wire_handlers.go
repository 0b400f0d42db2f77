package http

import (
	"fmt"

	"ticketdesk/internal/interfaces/http/handlers"
	ticketHandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	ticketHandler *ticketHandlers.TicketHandler
	seedHandler   *handlers.SeedHandler
	healthHandler *handlers.HealthHandler
}

func (c *Container) initHandlers() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for health checks: %w", err)
	}

	u := c.ucs
	c.hdlrs = &allHandlers{
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicketUC,
			u.updateTicketUC,
			u.deleteTicketUC,
			u.getTicketUC,
			u.listTicketsUC,
			c.log.Named("ticket_handler"),
		),
		seedHandler:   handlers.NewSeedHandler(u.seedDatabaseUC, c.log.Named("seed_handler")),
		healthHandler: handlers.NewHealthHandler(sqlDB, c.log),
	}
	return nil
}
