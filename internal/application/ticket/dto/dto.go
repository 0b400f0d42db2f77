package dto

import (
	"time"

	"ticketdesk/internal/domain/agent"
	"ticketdesk/internal/domain/customer"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/mapper"
)

type CustomerDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AgentDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TicketDetailDTO is a ticket together with the customers and agents linked to it.
// Customer and Agent are always arrays, empty when nothing is linked.
type TicketDetailDTO struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	Priority    int           `json:"priority"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Customer    []CustomerDTO `json:"customer"`
	Agent       []AgentDTO    `json:"agent"`
}

func ToCustomerDTO(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToAgentDTO(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:        a.ID(),
		Name:      a.Name(),
		Email:     a.Email(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func ToTicketDetailDTO(t *ticket.Ticket, customers []*customer.Customer, agents []*agent.Agent) *TicketDetailDTO {
	if t == nil {
		return nil
	}

	customerDTOs := mapper.MapSlice(customers, ToCustomerDTO)
	if customerDTOs == nil {
		customerDTOs = []CustomerDTO{}
	}
	agentDTOs := mapper.MapSlice(agents, ToAgentDTO)
	if agentDTOs == nil {
		agentDTOs = []AgentDTO{}
	}

	return &TicketDetailDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status(),
		Priority:    t.Priority(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		Customer:    customerDTOs,
		Agent:       agentDTOs,
	}
}
