package ticket

import "fmt"

// CustomerLink relates a ticket to one customer. A ticket may hold any number
// of links, including repeated pairs; the pair is the link's only identity.
type CustomerLink struct {
	TicketID   uint
	CustomerID uint
}

// AgentLink relates a ticket to one agent.
type AgentLink struct {
	TicketID uint
	AgentID  uint
}

func NewCustomerLink(ticketID, customerID uint) (CustomerLink, error) {
	if ticketID == 0 || customerID == 0 {
		return CustomerLink{}, fmt.Errorf("ticket ID and customer ID are required")
	}
	return CustomerLink{TicketID: ticketID, CustomerID: customerID}, nil
}

func NewAgentLink(ticketID, agentID uint) (AgentLink, error) {
	if ticketID == 0 || agentID == 0 {
		return AgentLink{}, fmt.Errorf("ticket ID and agent ID are required")
	}
	return AgentLink{TicketID: ticketID, AgentID: agentID}, nil
}
