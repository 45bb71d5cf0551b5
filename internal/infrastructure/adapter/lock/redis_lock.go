package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
)

const keyPrefix = "reconcile:txlock:"

// RedisTransactionLock serialises manual actions across processes with redis locks
type RedisTransactionLock struct {
	locker *redislock.Client
	logger coreport.Logger

	mu   sync.Mutex
	held map[string]*redislock.Lock // by holder token
}

var _ persistence.TransactionLockRepository = (*RedisTransactionLock)(nil)

// NewRedisTransactionLock creates a lock backend on top of an existing redis client
func NewRedisTransactionLock(client redis.UniversalClient, logger coreport.Logger) *RedisTransactionLock {
	return &RedisTransactionLock{
		locker: redislock.New(client),
		logger: logger,
		held:   make(map[string]*redislock.Lock),
	}
}

// NewRedisClient opens a redis client and checks that it answers
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// AcquireLock obtains the lock without waiting; a held lock fails immediately
// The holder is the redislock token of this acquisition
func (l *RedisTransactionLock) AcquireLock(ctx context.Context, transactionID string, duration time.Duration) (string, error) {
	obtained, err := l.locker.Obtain(ctx, keyPrefix+transactionID, duration, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return "", errs.ErrTransactionLocked
	}
	if err != nil {
		l.logger.Error("Failed to obtain redis lock", map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
		if ctx.Err() != nil {
			return "", errs.NewStoreError("acquire_lock", false, err)
		}
		return "", errs.NewStoreUnavailableError("acquire_lock", err)
	}

	holder := obtained.Token()
	l.mu.Lock()
	l.held[holder] = obtained
	l.mu.Unlock()

	l.logger.Debug("Redis lock acquired", map[string]any{
		"transaction_id": transactionID,
		"ttl":            duration.String(),
	})
	return holder, nil
}

// ReleaseLock releases the acquisition named by holder. Redis only deletes the
// key while it still carries that token, so a lock taken over after expiry
// survives. Unknown holders are ignored
func (l *RedisTransactionLock) ReleaseLock(ctx context.Context, transactionID, holder string) error {
	l.mu.Lock()
	held, ok := l.held[holder]
	if ok && held.Key() != keyPrefix+transactionID {
		ok = false
	} else {
		delete(l.held, holder)
	}
	l.mu.Unlock()

	if !ok {
		return nil
	}

	err := held.Release(ctx)
	if err == nil || errors.Is(err, redislock.ErrLockNotHeld) {
		return nil
	}

	l.logger.Warn("Failed to release redis lock", map[string]any{
		"transaction_id": transactionID,
		"error":          err.Error(),
	})
	return errs.NewStoreError("release_lock", true, err)
}
