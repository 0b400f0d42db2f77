package ticket

import "context"

type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	CreateBatch(ctx context.Context, tickets []*Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket row and reports whether a row existed.
	Delete(ctx context.Context, ticketID uint) (bool, error)
	// GetByID returns nil, nil when the ticket does not exist.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

// Sort fields accepted by TicketFilter.SortBy.
const (
	SortByID       = "id"
	SortByPriority = "priority"
)

type TicketFilter struct {
	Status    *string
	SortBy    string
	SortOrder string
}

// LinkRepository stores the ticket_customers and ticket_agents join rows.
type LinkRepository interface {
	AddCustomerLinks(ctx context.Context, links ...CustomerLink) error
	AddAgentLinks(ctx context.Context, links ...AgentLink) error
	// ListCustomerLinks returns the ticket's links in insertion order.
	ListCustomerLinks(ctx context.Context, ticketID uint) ([]CustomerLink, error)
	ListAgentLinks(ctx context.Context, ticketID uint) ([]AgentLink, error)
	DeleteCustomerLinks(ctx context.Context, ticketID uint) (int64, error)
	DeleteAgentLinks(ctx context.Context, ticketID uint) (int64, error)
}
