package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/agent"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
)

type AgentRepository struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
}

func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{
		db:     db,
		mapper: mappers.NewAgentMapper(),
	}
}

func (r *AgentRepository) CreateBatch(ctx context.Context, agents []*agent.Agent) error {
	if len(agents) == 0 {
		return nil
	}

	rows := make([]*models.AgentModel, len(agents))
	for i, a := range agents {
		rows[i] = r.mapper.ToModel(a)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to create agents: %w", err)
	}

	for i, a := range agents {
		if err := a.SetID(rows[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *AgentRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	var model models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}
