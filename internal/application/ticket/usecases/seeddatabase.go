package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/agent"
	"ticketdesk/internal/domain/customer"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

// MsgDatabaseSeeded is the confirmation returned after a successful seed.
const MsgDatabaseSeeded = "Database seeded successfully"

type SeedDatabaseResult struct {
	Tickets       int
	Customers     int
	Agents        int
	CustomerLinks int
	AgentLinks    int
}

// SeedDatabaseUseCase wipes the ticket tables and loads the fixture dataset.
type SeedDatabaseUseCase struct {
	schema       SchemaResetter
	fixtures     FixtureSource
	ticketRepo   ticket.TicketRepository
	linkRepo     ticket.LinkRepository
	customerRepo customer.Repository
	agentRepo    agent.Repository
	txManager    TransactionManager
	logger       logger.Interface
}

func NewSeedDatabaseUseCase(
	schema SchemaResetter,
	fixtures FixtureSource,
	ticketRepo ticket.TicketRepository,
	linkRepo ticket.LinkRepository,
	customerRepo customer.Repository,
	agentRepo agent.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *SeedDatabaseUseCase {
	return &SeedDatabaseUseCase{
		schema:       schema,
		fixtures:     fixtures,
		ticketRepo:   ticketRepo,
		linkRepo:     linkRepo,
		customerRepo: customerRepo,
		agentRepo:    agentRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *SeedDatabaseUseCase) Execute(ctx context.Context) (*SeedDatabaseResult, error) {
	uc.logger.Infow("executing seed database use case")

	dataset, err := uc.fixtures.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed dataset: %w", err)
	}

	tickets, customers, agents, err := buildSeedEntities(dataset)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.schema.Reset(ctx); err != nil {
			return err
		}
		if err := uc.ticketRepo.CreateBatch(ctx, tickets); err != nil {
			return err
		}
		if err := uc.customerRepo.CreateBatch(ctx, customers); err != nil {
			return err
		}
		if err := uc.agentRepo.CreateBatch(ctx, agents); err != nil {
			return err
		}

		customerLinks := make([]ticket.CustomerLink, 0, len(dataset.CustomerLinks))
		for _, l := range dataset.CustomerLinks {
			customerLinks = append(customerLinks, ticket.CustomerLink{
				TicketID:   tickets[l.Ticket].ID(),
				CustomerID: customers[l.Target].ID(),
			})
		}
		if err := uc.linkRepo.AddCustomerLinks(ctx, customerLinks...); err != nil {
			return err
		}

		agentLinks := make([]ticket.AgentLink, 0, len(dataset.AgentLinks))
		for _, l := range dataset.AgentLinks {
			agentLinks = append(agentLinks, ticket.AgentLink{
				TicketID: tickets[l.Ticket].ID(),
				AgentID:  agents[l.Target].ID(),
			})
		}
		return uc.linkRepo.AddAgentLinks(ctx, agentLinks...)
	})
	if err != nil {
		uc.logger.Errorw("failed to seed database", "error", err)
		return nil, err
	}

	result := &SeedDatabaseResult{
		Tickets:       len(tickets),
		Customers:     len(customers),
		Agents:        len(agents),
		CustomerLinks: len(dataset.CustomerLinks),
		AgentLinks:    len(dataset.AgentLinks),
	}

	uc.logger.Infow("database seeded successfully",
		"tickets", result.Tickets,
		"customers", result.Customers,
		"agents", result.Agents)

	return result, nil
}

// buildSeedEntities validates the dataset, including every link index, before anything is written.
func buildSeedEntities(ds *dto.SeedDataset) ([]*ticket.Ticket, []*customer.Customer, []*agent.Agent, error) {
	tickets := make([]*ticket.Ticket, 0, len(ds.Tickets))
	for i, st := range ds.Tickets {
		t, err := ticket.NewTicket(st.Title, st.Description, st.Status, st.Priority)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("seed ticket %d: %w", i, err)
		}
		tickets = append(tickets, t)
	}

	customers := make([]*customer.Customer, 0, len(ds.Customers))
	for i, sc := range ds.Customers {
		c, err := customer.NewCustomer(sc.Name, sc.Email)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("seed customer %d: %w", i, err)
		}
		customers = append(customers, c)
	}

	agents := make([]*agent.Agent, 0, len(ds.Agents))
	for i, sa := range ds.Agents {
		a, err := agent.NewAgent(sa.Name, sa.Email)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("seed agent %d: %w", i, err)
		}
		agents = append(agents, a)
	}

	for i, l := range ds.CustomerLinks {
		if !inRange(l.Ticket, len(tickets)) || !inRange(l.Target, len(customers)) {
			return nil, nil, nil, fmt.Errorf("seed customer link %d references a missing record", i)
		}
	}
	for i, l := range ds.AgentLinks {
		if !inRange(l.Ticket, len(tickets)) || !inRange(l.Target, len(agents)) {
			return nil, nil, nil, fmt.Errorf("seed agent link %d references a missing record", i)
		}
	}

	return tickets, customers, agents, nil
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
