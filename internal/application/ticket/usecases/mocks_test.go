package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/agent"
	"ticketdesk/internal/domain/customer"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc      func(ctx context.Context, t *ticket.Ticket) error
	CreateBatchFunc func(ctx context.Context, tickets []*ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc      func(ctx context.Context, ticketID uint) (bool, error)
	GetByIDFunc     func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) CreateBatch(ctx context.Context, tickets []*ticket.Ticket) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tickets)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return false, nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

// mockLinkRepository records link writes in call order.
type mockLinkRepository struct {
	customerLinks []ticket.CustomerLink
	agentLinks    []ticket.AgentLink
	calls         []string

	AddCustomerLinksFunc func(ctx context.Context, links ...ticket.CustomerLink) error
}

func (m *mockLinkRepository) AddCustomerLinks(ctx context.Context, links ...ticket.CustomerLink) error {
	m.calls = append(m.calls, "add_customer")
	if m.AddCustomerLinksFunc != nil {
		if err := m.AddCustomerLinksFunc(ctx, links...); err != nil {
			return err
		}
	}
	m.customerLinks = append(m.customerLinks, links...)
	return nil
}

func (m *mockLinkRepository) AddAgentLinks(ctx context.Context, links ...ticket.AgentLink) error {
	m.calls = append(m.calls, "add_agent")
	m.agentLinks = append(m.agentLinks, links...)
	return nil
}

func (m *mockLinkRepository) ListCustomerLinks(ctx context.Context, ticketID uint) ([]ticket.CustomerLink, error) {
	return nil, nil
}

func (m *mockLinkRepository) ListAgentLinks(ctx context.Context, ticketID uint) ([]ticket.AgentLink, error) {
	return nil, nil
}

func (m *mockLinkRepository) DeleteCustomerLinks(ctx context.Context, ticketID uint) (int64, error) {
	m.calls = append(m.calls, "delete_customer")
	n := int64(len(m.customerLinks))
	m.customerLinks = nil
	return n, nil
}

func (m *mockLinkRepository) DeleteAgentLinks(ctx context.Context, ticketID uint) (int64, error) {
	m.calls = append(m.calls, "delete_agent")
	n := int64(len(m.agentLinks))
	m.agentLinks = nil
	return n, nil
}

type mockCustomerRepository struct {
	created []*customer.Customer
}

func (m *mockCustomerRepository) CreateBatch(ctx context.Context, customers []*customer.Customer) error {
	for i, c := range customers {
		if err := c.SetID(uint(len(m.created) + i + 1)); err != nil {
			return err
		}
	}
	m.created = append(m.created, customers...)
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return nil, nil
}

type mockAgentRepository struct {
	created []*agent.Agent
}

func (m *mockAgentRepository) CreateBatch(ctx context.Context, agents []*agent.Agent) error {
	for i, a := range agents {
		if err := a.SetID(uint(len(m.created) + i + 1)); err != nil {
			return err
		}
	}
	m.created = append(m.created, agents...)
	return nil
}

func (m *mockAgentRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	return nil, nil
}

// mockTxManager runs fn directly and counts transactions.
type mockTxManager struct {
	runs int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runs++
	return fn(ctx)
}

// mockAggregator renders tickets without associations.
type mockAggregator struct{}

func (m *mockAggregator) Aggregate(ctx context.Context, t *ticket.Ticket) (*dto.TicketDetailDTO, error) {
	return dto.ToTicketDetailDTO(t, nil, nil), nil
}

func (m *mockAggregator) AggregateAll(ctx context.Context, tickets []*ticket.Ticket) ([]*dto.TicketDetailDTO, error) {
	out := make([]*dto.TicketDetailDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, dto.ToTicketDetailDTO(t, nil, nil))
	}
	return out, nil
}

type mockSchemaResetter struct {
	resets int
	err    error
}

func (m *mockSchemaResetter) Reset(ctx context.Context) error {
	m.resets++
	return m.err
}

type mockFixtureSource struct {
	dataset *dto.SeedDataset
	err     error
}

func (m *mockFixtureSource) Load() (*dto.SeedDataset, error) {
	return m.dataset, m.err
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
