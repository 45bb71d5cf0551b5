package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the reconciler schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Every connection to :memory: is a new database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Profile{},
		&model.ProfileAlias{},
		&model.BankTransaction{},
		&model.MatchEvent{},
		&model.TransactionLock{},
	))
	return db
}

// manualClock is a TimeProvider whose time only moves when told to
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *manualClock) Since(t time.Time) core.Duration {
	return core.Duration(c.Now().Sub(t))
}

func (c *manualClock) Sleep(ctx context.Context, d core.Duration) error {
	c.Advance(d.Std())
	return ctx.Err()
}

func (c *manualClock) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

func quietLogger() core.Logger {
	return logger.NewNoopLogger()
}
