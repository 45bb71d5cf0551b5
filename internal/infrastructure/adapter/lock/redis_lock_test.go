package lock

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/logger"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisTransactionLock_UnreachableServer(t *testing.T) {
	// Arrange
	log := logger.NewNoopLogger()
	locks := NewRedisTransactionLock(unreachableClient(t), log)

	// Act
	holder, err := locks.AcquireLock(context.Background(), "tx-1", time.Second)

	// Assert
	require.Error(t, err)
	assert.Empty(t, holder)
	assert.True(t, errs.IsStoreUnavailable(err))
	assert.False(t, errs.IsTransactionLockedError(err))
	assert.Equal(t, int64(1), log.Count(core.LogLevelError))
}

func TestRedisTransactionLock_CanceledContext(t *testing.T) {
	// Arrange
	locks := NewRedisTransactionLock(unreachableClient(t), logger.NewNoopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, err := locks.AcquireLock(ctx, "tx-1", time.Second)

	// Assert
	require.Error(t, err)
	assert.True(t, errs.IsStoreError(err))
	assert.False(t, errs.IsStoreUnavailable(err))
}

func TestRedisTransactionLock_ReleaseUnknownLock(t *testing.T) {
	locks := NewRedisTransactionLock(unreachableClient(t), logger.NewNoopLogger())

	assert.NoError(t, locks.ReleaseLock(context.Background(), "never-acquired", "no-such-holder"))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	client, err := NewRedisClient(ctx, "127.0.0.1:1", "", 0)

	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
