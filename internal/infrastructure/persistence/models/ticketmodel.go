package models

import "ticketdesk/internal/shared/constants"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:50;not null;index"`
	Priority    int    `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// Links live in ticket_customers and ticket_agents and are managed by the application.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

// TicketCustomerModel links a ticket to a customer. Rows are ordered by ID.
type TicketCustomerModel struct {
	ID         uint  `gorm:"primaryKey"`
	TicketID   uint  `gorm:"not null;index"`
	CustomerID uint  `gorm:"not null;index"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
}

func (TicketCustomerModel) TableName() string {
	return constants.TableTicketCustomers
}

// TicketAgentModel links a ticket to an agent. Rows are ordered by ID.
type TicketAgentModel struct {
	ID        uint  `gorm:"primaryKey"`
	TicketID  uint  `gorm:"not null;index"`
	AgentID   uint  `gorm:"not null;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (TicketAgentModel) TableName() string {
	return constants.TableTicketAgents
}
