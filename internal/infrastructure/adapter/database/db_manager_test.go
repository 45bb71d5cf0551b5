package database

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func inMemoryConfig() *Config {
	return &Config{
		Driver:        DriverSQLite,
		SQLitePath:    ":memory:",
		MaxOpenConns:  4,
		MaxIdleConns:  2,
		QueryTimeout:  2 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}
}

func TestManager_ConnectMigrateAndClose(t *testing.T) {
	// Arrange
	manager := NewManager(inMemoryConfig(), logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())
	ctx := context.Background()

	// Act
	db, err := manager.Connect(ctx)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.Equal(t, DriverSQLite, manager.Driver())
	assert.NoError(t, manager.Ping(ctx))

	require.NotNil(t, manager.MigrationManager())
	require.NoError(t, manager.MigrationManager().MigrateAll(ctx))
	assert.True(t, db.Migrator().HasTable("bank_transactions"))

	metrics := manager.PoolMetrics()
	assert.Equal(t, 1, metrics.MaxOpenConnections)

	require.NoError(t, manager.Close())
	assert.Error(t, manager.Ping(ctx))
}

func TestManager_ConnectRejectsInvalidConfig(t *testing.T) {
	// Arrange
	cfg := inMemoryConfig()
	cfg.SQLitePath = ""
	manager := NewManager(cfg, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())

	// Act
	db, err := manager.Connect(context.Background())

	// Assert
	assert.Nil(t, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database configuration")
}

func TestManager_PingBeforeConnect(t *testing.T) {
	manager := NewManager(inMemoryConfig(), logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())

	assert.Error(t, manager.Ping(context.Background()))
	assert.Equal(t, ConnectionPoolMetrics{}, manager.PoolMetrics())
	assert.NoError(t, manager.Close())
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, parseGormLevel("silent"))
	assert.Equal(t, gormlogger.Error, parseGormLevel("ERROR"))
	assert.Equal(t, gormlogger.Warn, parseGormLevel("warn"))
	assert.Equal(t, gormlogger.Info, parseGormLevel("debug"))
}

func TestExtractQueryMetadata(t *testing.T) {
	tests := []struct {
		sql       string
		wantType  string
		wantTable string
	}{
		{`SELECT * FROM "bank_transactions" WHERE id = 1`, "SELECT", "bank_transactions"},
		{"INSERT INTO `match_events` (`transaction_id`) VALUES (?)", "INSERT", "match_events"},
		{`UPDATE bank_transactions SET version = 2`, "UPDATE", "bank_transactions"},
		{`DELETE FROM transaction_locks WHERE transaction_id = ?`, "DELETE", "transaction_locks"},
		{`PRAGMA foreign_keys`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			assert.Equal(t, tt.wantType, extractQueryType(tt.sql))
			assert.Equal(t, tt.wantTable, extractTableName(tt.sql))
		})
	}
}
