package http

import (
	"ticketdesk/internal/application/ticket/services"
	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/infrastructure/migration"
	"ticketdesk/internal/infrastructure/persistence/seeds"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	createTicketUC *usecases.CreateTicketUseCase
	updateTicketUC *usecases.UpdateTicketUseCase
	deleteTicketUC *usecases.DeleteTicketUseCase
	getTicketUC    *usecases.GetTicketUseCase
	listTicketsUC  *usecases.ListTicketsUseCase
	seedDatabaseUC *usecases.SeedDatabaseUseCase
}

func (c *Container) initUseCases() {
	r := c.repos

	resolver := services.NewAssociationResolver(r.linkRepo, r.customerRepo, r.agentRepo, c.log.Named("associations"))
	aggregator := services.NewTicketAggregator(resolver)

	c.ucs = &allUseCases{
		createTicketUC: usecases.NewCreateTicketUseCase(r.ticketRepo, r.linkRepo, r.txManager, aggregator, c.log),
		updateTicketUC: usecases.NewUpdateTicketUseCase(r.ticketRepo, r.linkRepo, r.txManager, aggregator, c.log),
		deleteTicketUC: usecases.NewDeleteTicketUseCase(r.ticketRepo, r.linkRepo, r.txManager, c.log),
		getTicketUC:    usecases.NewGetTicketUseCase(r.ticketRepo, aggregator, c.log),
		listTicketsUC:  usecases.NewListTicketsUseCase(r.ticketRepo, aggregator, c.log),
		seedDatabaseUC: usecases.NewSeedDatabaseUseCase(
			migration.NewSchemaResetter(c.db, c.log.Named("migration.reset")),
			seeds.NewDefaultFixtures(),
			r.ticketRepo,
			r.linkRepo,
			r.customerRepo,
			r.agentRepo,
			r.txManager,
			c.log,
		),
	}
}
