package constants

// Environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Table names
const (
	TableTickets         = "tickets"
	TableCustomers       = "customers"
	TableAgents          = "agents"
	TableTicketCustomers = "ticket_customers"
	TableTicketAgents    = "ticket_agents"
)

// Context keys
const (
	ContextKeyRequestID = "request_id"
)

// HeaderRequestID carries the request id in and out of the service.
const HeaderRequestID = "X-Request-ID"
