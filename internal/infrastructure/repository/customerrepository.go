package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/customer"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) CreateBatch(ctx context.Context, customers []*customer.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	rows := make([]*models.CustomerModel, len(customers))
	for i, c := range customers {
		rows[i] = r.mapper.ToModel(c)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to create customers: %w", err)
	}

	for i, c := range customers {
		if err := c.SetID(rows[i].ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}
