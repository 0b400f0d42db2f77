package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
)

func smallDataset() *dto.SeedDataset {
	return &dto.SeedDataset{
		Tickets: []dto.SeedTicket{
			{Title: "Login Issue", Description: "Cannot login to account", Status: "open", Priority: 1},
			{Title: "Payment Failure", Description: "Payment not processed", Status: "closed", Priority: 2},
		},
		Customers:     []dto.SeedContact{{Name: "Alice", Email: "alice@example.com"}},
		Agents:        []dto.SeedContact{{Name: "Charlie", Email: "charlie@example.com"}},
		CustomerLinks: []dto.SeedLink{{Ticket: 0, Target: 0}, {Ticket: 1, Target: 0}},
		AgentLinks:    []dto.SeedLink{{Ticket: 1, Target: 0}},
	}
}

func ticketRepoAssigningIDs() *mockTicketRepository {
	return &mockTicketRepository{
		CreateBatchFunc: func(ctx context.Context, tickets []*ticket.Ticket) error {
			for i, tk := range tickets {
				if err := tk.SetID(uint(i + 10)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func TestSeedDatabaseUseCase_Execute(t *testing.T) {
	schema := &mockSchemaResetter{}
	links := &mockLinkRepository{}
	customers := &mockCustomerRepository{}
	agents := &mockAgentRepository{}
	tx := &mockTxManager{}

	uc := NewSeedDatabaseUseCase(schema, &mockFixtureSource{dataset: smallDataset()},
		ticketRepoAssigningIDs(), links, customers, agents, tx, &mockLogger{})

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &SeedDatabaseResult{Tickets: 2, Customers: 1, Agents: 1, CustomerLinks: 2, AgentLinks: 1}, result)
	assert.Equal(t, 1, schema.resets)
	assert.Equal(t, 1, tx.runs)
	assert.Equal(t, []ticket.CustomerLink{
		{TicketID: 10, CustomerID: 1},
		{TicketID: 11, CustomerID: 1},
	}, links.customerLinks)
	assert.Equal(t, []ticket.AgentLink{{TicketID: 11, AgentID: 1}}, links.agentLinks)
}

func TestSeedDatabaseUseCase_Execute_Failures(t *testing.T) {
	t.Run("fixture load fails", func(t *testing.T) {
		schema := &mockSchemaResetter{}
		uc := NewSeedDatabaseUseCase(schema, &mockFixtureSource{err: errors.New("bad yaml")},
			ticketRepoAssigningIDs(), &mockLinkRepository{}, &mockCustomerRepository{}, &mockAgentRepository{}, &mockTxManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background())
		require.Error(t, err)
		assert.Zero(t, schema.resets)
	})

	t.Run("link index out of range", func(t *testing.T) {
		ds := smallDataset()
		ds.AgentLinks = append(ds.AgentLinks, dto.SeedLink{Ticket: 5, Target: 0})
		schema := &mockSchemaResetter{}
		uc := NewSeedDatabaseUseCase(schema, &mockFixtureSource{dataset: ds},
			ticketRepoAssigningIDs(), &mockLinkRepository{}, &mockCustomerRepository{}, &mockAgentRepository{}, &mockTxManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "agent link 1")
		assert.Zero(t, schema.resets)
	})

	t.Run("reset fails", func(t *testing.T) {
		boom := errors.New("cannot drop")
		links := &mockLinkRepository{}
		uc := NewSeedDatabaseUseCase(&mockSchemaResetter{err: boom}, &mockFixtureSource{dataset: smallDataset()},
			ticketRepoAssigningIDs(), links, &mockCustomerRepository{}, &mockAgentRepository{}, &mockTxManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, links.calls)
	})
}
