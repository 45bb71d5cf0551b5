package migration

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestMigrateAll_FreshDatabase(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	manager := NewMigrationManager(db, logger.NewNoopLogger())
	ctx := context.Background()

	// Act
	err := manager.MigrateAll(ctx)

	// Assert
	require.NoError(t, err)

	for _, table := range []string{"profiles", "profile_aliases", "bank_transactions", "match_events", "transaction_locks", "migration_versions"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasIndex(&model.BankTransaction{}, "idx_bank_transactions_fingerprint"))
	assert.True(t, db.Migrator().HasIndex(&model.BankTransaction{}, "idx_bank_transactions_unmatched"))
	assert.True(t, db.Migrator().HasIndex(&model.TransactionLock{}, "idx_transaction_locks_expires_at"))

	version, err := manager.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)

	var recorded model.MigrationVersion
	require.NoError(t, db.First(&recorded).Error)
	assert.Equal(t, "sqlite", recorded.Dialect)
}

func TestMigrateAll_SecondRunIsNoop(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	manager := NewMigrationManager(db, logger.NewNoopLogger())
	ctx := context.Background()
	require.NoError(t, manager.MigrateAll(ctx))

	// Act
	err := manager.MigrateAll(ctx)

	// Assert
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrateAll_BackfillsSourcesFromPreviousVersion(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	manager := NewMigrationManager(db, logger.NewNoopLogger())
	ctx := context.Background()

	require.NoError(t, db.AutoMigrate(&model.MigrationVersion{}, &model.BankTransaction{}, &model.MatchEvent{}))
	require.NoError(t, db.Create(&model.MigrationVersion{
		Version:   "1.0.0",
		AppliedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	userID := "P1"
	legacy := []model.BankTransaction{
		{
			ID: "legacy-auto", Fingerprint: "fp-1", TransactionDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Description: "JSMITH25", Amount: decimal.NewFromInt(25), MatchConfidence: "auto",
			MatchedUserID: &userID, MatchSignal: "exact-reference", Version: 1,
		},
		{
			ID: "legacy-unmatched", Fingerprint: "fp-2", TransactionDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Description: "UNKNOWN", Amount: decimal.NewFromInt(10), MatchConfidence: "unmatched", Version: 1,
		},
	}
	require.NoError(t, db.Create(&legacy).Error)

	// Act
	err := manager.MigrateAll(ctx)

	// Assert
	require.NoError(t, err)

	var auto, unmatched model.BankTransaction
	require.NoError(t, db.First(&auto, "id = ?", "legacy-auto").Error)
	require.NoError(t, db.First(&unmatched, "id = ?", "legacy-unmatched").Error)
	assert.Equal(t, "system", auto.MatchedByKind)
	assert.Empty(t, unmatched.MatchedByKind)

	version, err := manager.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)
}

func TestGetCurrentVersion_CanceledContext(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	manager := NewMigrationManager(db, logger.NewNoopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	version, err := manager.GetCurrentVersion(ctx)

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, version)
}
