package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/mapper"
)

// TicketLinkRepository persists ticket-customer and ticket-agent links.
type TicketLinkRepository struct {
	db *gorm.DB
}

func NewTicketLinkRepository(db *gorm.DB) *TicketLinkRepository {
	return &TicketLinkRepository{db: db}
}

func (r *TicketLinkRepository) AddCustomerLinks(ctx context.Context, links ...ticket.CustomerLink) error {
	if len(links) == 0 {
		return nil
	}

	rows := make([]*models.TicketCustomerModel, len(links))
	for i, l := range links {
		rows[i] = &models.TicketCustomerModel{TicketID: l.TicketID, CustomerID: l.CustomerID}
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to add customer links: %w", err)
	}
	return nil
}

func (r *TicketLinkRepository) AddAgentLinks(ctx context.Context, links ...ticket.AgentLink) error {
	if len(links) == 0 {
		return nil
	}

	rows := make([]*models.TicketAgentModel, len(links))
	for i, l := range links {
		rows[i] = &models.TicketAgentModel{TicketID: l.TicketID, AgentID: l.AgentID}
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to add agent links: %w", err)
	}
	return nil
}

func (r *TicketLinkRepository) ListCustomerLinks(ctx context.Context, ticketID uint) ([]ticket.CustomerLink, error) {
	var rows []models.TicketCustomerModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customer links: %w", err)
	}
	return mapper.MapSlice(rows, mappers.CustomerLinkToDomain), nil
}

func (r *TicketLinkRepository) ListAgentLinks(ctx context.Context, ticketID uint) ([]ticket.AgentLink, error) {
	var rows []models.TicketAgentModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list agent links: %w", err)
	}
	return mapper.MapSlice(rows, mappers.AgentLinkToDomain), nil
}

func (r *TicketLinkRepository) DeleteCustomerLinks(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketCustomerModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete customer links: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketLinkRepository) DeleteAgentLinks(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketAgentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete agent links: %w", result.Error)
	}
	return result.RowsAffected, nil
}
