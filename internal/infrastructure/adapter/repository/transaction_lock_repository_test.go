package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
)

func TestTransactionLockRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Held lock blocks a second holder until released", func(t *testing.T) {
		// Arrange
		repo := NewTransactionLockRepository(newTestDB(t), newManualClock(), quietLogger())
		holder, err := repo.AcquireLock(ctx, "tx-1", 5*time.Second)
		require.NoError(t, err)

		// Act
		_, second := repo.AcquireLock(ctx, "tx-1", 5*time.Second)
		_, other := repo.AcquireLock(ctx, "tx-2", 5*time.Second)
		require.NoError(t, repo.ReleaseLock(ctx, "tx-1", holder))
		_, third := repo.AcquireLock(ctx, "tx-1", 5*time.Second)

		// Assert
		assert.NotEmpty(t, holder)
		assert.ErrorIs(t, second, errs.ErrTransactionLocked)
		assert.True(t, errs.IsTransientStoreError(second))
		assert.NoError(t, other)
		assert.NoError(t, third)
	})

	t.Run("Expired lock is taken over", func(t *testing.T) {
		clock := newManualClock()
		repo := NewTransactionLockRepository(newTestDB(t), clock, quietLogger())
		first, err := repo.AcquireLock(ctx, "tx-1", time.Second)
		require.NoError(t, err)

		clock.Advance(2 * time.Second)
		second, err := repo.AcquireLock(ctx, "tx-1", time.Second)

		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("Late release by an expired holder keeps the new lock", func(t *testing.T) {
		// Arrange
		clock := newManualClock()
		repo := NewTransactionLockRepository(newTestDB(t), clock, quietLogger())
		stale, err := repo.AcquireLock(ctx, "tx-1", time.Second)
		require.NoError(t, err)
		clock.Advance(2 * time.Second)
		_, err = repo.AcquireLock(ctx, "tx-1", time.Minute)
		require.NoError(t, err)

		// Act
		releaseErr := repo.ReleaseLock(ctx, "tx-1", stale)
		_, blocked := repo.AcquireLock(ctx, "tx-1", time.Minute)

		// Assert
		assert.NoError(t, releaseErr)
		assert.ErrorIs(t, blocked, errs.ErrTransactionLocked)
	})

	t.Run("Releasing an absent lock is not an error", func(t *testing.T) {
		repo := NewTransactionLockRepository(newTestDB(t), newManualClock(), quietLogger())

		assert.NoError(t, repo.ReleaseLock(ctx, "tx-1", "nobody"))
	})

	t.Run("Cleanup removes only expired locks", func(t *testing.T) {
		clock := newManualClock()
		repo := NewTransactionLockRepository(newTestDB(t), clock, quietLogger())
		_, err := repo.AcquireLock(ctx, "tx-1", time.Second)
		require.NoError(t, err)
		_, err = repo.AcquireLock(ctx, "tx-2", time.Minute)
		require.NoError(t, err)
		clock.Advance(10 * time.Second)

		removed, err := repo.CleanupExpiredLocks(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)
		_, err = repo.AcquireLock(ctx, "tx-2", time.Minute)
		assert.ErrorIs(t, err, errs.ErrTransactionLocked)
	})
}

func TestErrorClassifier_ToStoreError(t *testing.T) {
	classifier := NewErrorClassifier()

	testCases := []struct {
		name        string
		err         error
		transient   bool
		unavailable bool
	}{
		{"Unclassified", assert.AnError, false, false},
		{"Deadlock", errString("ERROR: deadlock detected (SQLSTATE 40P01)"), true, false},
		{"Sqlite busy", errString("database is locked"), true, false},
		{"Serialization failure", errString("ERROR: could not serialize access due to concurrent update"), true, false},
		{"Connection refused", errString("dial tcp 127.0.0.1:5432: connect: connection refused"), true, true},
		{"Connection reset", errString("read tcp: connection reset by peer"), true, false},
		{"Canceled", context.Canceled, false, false},
		{"Syntax", errString("syntax error at or near"), false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifier.ToStoreError("op", tc.err)

			var storeErr *errs.StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, "op", storeErr.Op)
			assert.Equal(t, tc.transient, storeErr.Transient)
			assert.Equal(t, tc.unavailable, storeErr.Unavailable)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	assert.Nil(t, classifier.ToStoreError("op", nil))
}

type errString string

func (e errString) Error() string { return string(e) }
