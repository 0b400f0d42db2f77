package migration

import (
	"ticketdesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model. Link tables come last so
// dropping in reverse order removes them first.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.CustomerModel{},
		&models.AgentModel{},
		&models.TicketCustomerModel{},
		&models.TicketAgentModel{},
	}
}
