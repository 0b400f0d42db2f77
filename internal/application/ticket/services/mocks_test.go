package services

import (
	"context"

	"ticketdesk/internal/domain/agent"
	"ticketdesk/internal/domain/customer"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

type mockLinkRepository struct {
	ticket.LinkRepository
	ListCustomerLinksFunc func(ctx context.Context, ticketID uint) ([]ticket.CustomerLink, error)
	ListAgentLinksFunc    func(ctx context.Context, ticketID uint) ([]ticket.AgentLink, error)
}

func (m *mockLinkRepository) ListCustomerLinks(ctx context.Context, ticketID uint) ([]ticket.CustomerLink, error) {
	if m.ListCustomerLinksFunc != nil {
		return m.ListCustomerLinksFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockLinkRepository) ListAgentLinks(ctx context.Context, ticketID uint) ([]ticket.AgentLink, error) {
	if m.ListAgentLinksFunc != nil {
		return m.ListAgentLinksFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockCustomerRepository struct {
	records map[uint]*customer.Customer
	calls   int
	err     error
}

func (m *mockCustomerRepository) CreateBatch(ctx context.Context, customers []*customer.Customer) error {
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.records[id], nil
}

type mockAgentRepository struct {
	records map[uint]*agent.Agent
	calls   int
}

func (m *mockAgentRepository) CreateBatch(ctx context.Context, agents []*agent.Agent) error {
	return nil
}

func (m *mockAgentRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	m.calls++
	return m.records[id], nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
