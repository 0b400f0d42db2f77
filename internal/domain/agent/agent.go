package agent

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Agent is a support staff member who works tickets.
type Agent struct {
	id        uint
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

func NewAgent(name, email string) (*Agent, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("agent name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("agent email is required")
	}

	now := time.Now()
	return &Agent{
		name:      name,
		email:     strings.ToLower(strings.TrimSpace(email)),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAgent(id uint, name, email string, createdAt, updatedAt time.Time) *Agent {
	return &Agent{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Agent) ID() uint             { return a.id }
func (a *Agent) Name() string         { return a.name }
func (a *Agent) Email() string        { return a.email }
func (a *Agent) CreatedAt() time.Time { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time { return a.updatedAt }

func (a *Agent) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("agent ID already set")
	}
	a.id = id
	return nil
}

type Repository interface {
	CreateBatch(ctx context.Context, agents []*Agent) error
	// GetByID returns nil, nil when the agent does not exist.
	GetByID(ctx context.Context, id uint) (*Agent, error)
}
