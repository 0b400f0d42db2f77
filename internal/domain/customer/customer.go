package customer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Customer struct {
	id        uint
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name, email string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("customer email is required")
	}

	now := time.Now()
	return &Customer{
		name:      name,
		email:     strings.ToLower(strings.TrimSpace(email)),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(id uint, name, email string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID already set")
	}
	c.id = id
	return nil
}

type Repository interface {
	CreateBatch(ctx context.Context, customers []*Customer) error
	// GetByID returns nil, nil when the customer does not exist.
	GetByID(ctx context.Context, id uint) (*Customer, error)
}
