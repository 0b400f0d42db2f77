package dto

// SeedDataset is the fixed dataset written by the seed operation.
// Links refer to tickets, customers and agents by their index in the slices.
type SeedDataset struct {
	Tickets       []SeedTicket
	Customers     []SeedContact
	Agents        []SeedContact
	CustomerLinks []SeedLink
	AgentLinks    []SeedLink
}

type SeedTicket struct {
	Title       string
	Description string
	Status      string
	Priority    int
}

// SeedContact describes a customer or an agent.
type SeedContact struct {
	Name  string
	Email string
}

type SeedLink struct {
	Ticket int
	Target int
}
