package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noteModel struct {
	ID   uint `gorm:"primaryKey"`
	Body string
}

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(&noteModel{}))
	return database
}

func countNotes(t *testing.T, database *gorm.DB) int64 {
	var n int64
	require.NoError(t, database.Model(&noteModel{}).Count(&n).Error)
	return n
}

func TestRunInTransaction_Commit(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return GetTxFromContext(ctx, database).Create(&noteModel{Body: "first"}).Error
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countNotes(t, database))
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)
	boom := errors.New("second step failed")

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, database).Create(&noteModel{Body: "first"}).Error; err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(0), countNotes(t, database))
}

func TestRunInTransaction_NestedJoinsOuter(t *testing.T) {
	database := setupTestDB(t)
	tm := NewTransactionManager(database)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		outer := GetTxFromContext(ctx, database)
		return tm.RunInTransaction(ctx, func(inner context.Context) error {
			assert.Same(t, outer, GetTxFromContext(inner, database))
			return errors.New("abort")
		})
	})

	assert.Error(t, err)
	assert.Equal(t, int64(0), countNotes(t, database))
}

func TestGetTxFromContext_NoTransaction(t *testing.T) {
	database := setupTestDB(t)

	got := GetTxFromContext(context.Background(), database)

	assert.NotNil(t, got)
	assert.NotSame(t, database, got)
}
