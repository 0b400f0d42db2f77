package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/logger"
)

// SchemaResetter drops and recreates every ticket table. It runs on the
// transaction carried by ctx when there is one. MySQL commits DDL implicitly,
// so there the reset is not rolled back with the surrounding transaction.
type SchemaResetter struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSchemaResetter(database *gorm.DB, logger logger.Interface) *SchemaResetter {
	return &SchemaResetter{
		db:     database,
		logger: logger,
	}
}

func (r *SchemaResetter) Reset(ctx context.Context) error {
	tx := db.GetTxFromContext(ctx, r.db)
	tables := AutoMigrateModels()

	dropOrder := make([]interface{}, len(tables))
	for i, t := range tables {
		dropOrder[len(tables)-1-i] = t
	}

	if err := tx.Migrator().DropTable(dropOrder...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := tx.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("failed to recreate tables: %w", err)
	}

	r.logger.Infow("schema reset", "tables", len(tables))
	return nil
}
