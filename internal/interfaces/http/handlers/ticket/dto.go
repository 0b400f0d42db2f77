package ticket

import (
	"ticketdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    int    `json:"priority"`
	CustomerID  uint   `json:"customerId"`
	AgentID     uint   `json:"agentId"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		CustomerID:  r.CustomerID,
		AgentID:     r.AgentID,
	}
}

// UpdateTicketRequest is a partial update; omitted fields keep their value.
type UpdateTicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *int    `json:"priority"`
	CustomerID  *uint   `json:"customerId"`
	AgentID     *uint   `json:"agentId"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		CustomerID:  r.CustomerID,
		AgentID:     r.AgentID,
	}
}

type DeleteTicketRequest struct {
	ID *uint `json:"id"`
}
