package mappers

import (
	"time"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/mapper"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) *ticket.Ticket

	// ToDomainList converts ticket persistence models to domain entities.
	ToDomainList(models []*models.TicketModel) []*ticket.Ticket
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status(),
		Priority:    t.Priority(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) *ticket.Ticket {
	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.Status,
		model.Priority,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) ToDomainList(ticketModels []*models.TicketModel) []*ticket.Ticket {
	return mapper.MapSlicePtrSkipNil(ticketModels, m.ToDomain)
}

// CustomerLinkToDomain converts a ticket_customers row to a domain link.
func CustomerLinkToDomain(model models.TicketCustomerModel) ticket.CustomerLink {
	return ticket.CustomerLink{TicketID: model.TicketID, CustomerID: model.CustomerID}
}

// AgentLinkToDomain converts a ticket_agents row to a domain link.
func AgentLinkToDomain(model models.TicketAgentModel) ticket.AgentLink {
	return ticket.AgentLink{TicketID: model.TicketID, AgentID: model.AgentID}
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
