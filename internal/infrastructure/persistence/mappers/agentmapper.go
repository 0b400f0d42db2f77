package mappers

import (
	"ticketdesk/internal/domain/agent"
	"ticketdesk/internal/infrastructure/persistence/models"
)

type AgentMapper interface {
	ToModel(a *agent.Agent) *models.AgentModel
	ToDomain(model *models.AgentModel) *agent.Agent
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (m *AgentMapperImpl) ToModel(a *agent.Agent) *models.AgentModel {
	return &models.AgentModel{
		ID:        a.ID(),
		Name:      a.Name(),
		Email:     a.Email(),
		CreatedAt: a.CreatedAt().UnixMilli(),
		UpdatedAt: a.UpdatedAt().UnixMilli(),
	}
}

func (m *AgentMapperImpl) ToDomain(model *models.AgentModel) *agent.Agent {
	return agent.ReconstructAgent(
		model.ID,
		model.Name,
		model.Email,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
