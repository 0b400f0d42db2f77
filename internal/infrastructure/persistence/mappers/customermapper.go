package mappers

import (
	"ticketdesk/internal/domain/customer"
	"ticketdesk/internal/infrastructure/persistence/models"
)

type CustomerMapper interface {
	ToModel(c *customer.Customer) *models.CustomerModel
	ToDomain(model *models.CustomerModel) *customer.Customer
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) *customer.Customer {
	return customer.ReconstructCustomer(
		model.ID,
		model.Name,
		model.Email,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
