package http

import (
	"ticketdesk/internal/infrastructure/repository"
	"ticketdesk/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	ticketRepo   *repository.TicketRepository
	linkRepo     *repository.TicketLinkRepository
	customerRepo *repository.CustomerRepository
	agentRepo    *repository.AgentRepository
	txManager    *db.TransactionManager
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		ticketRepo:   repository.NewTicketRepository(c.db),
		linkRepo:     repository.NewTicketLinkRepository(c.db),
		customerRepo: repository.NewCustomerRepository(c.db),
		agentRepo:    repository.NewAgentRepository(c.db),
		txManager:    db.NewTransactionManager(c.db),
	}
}
