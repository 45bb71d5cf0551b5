package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionLockRepository implements per-transaction locking on a database table
type TransactionLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TransactionLockRepository = (*TransactionLockRepository)(nil)

// NewTransactionLockRepository creates a new TransactionLockRepository instance
func NewTransactionLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionLockRepository {
	return &TransactionLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock takes the lock unless another holder's lock is still live
func (r *TransactionLockRepository) AcquireLock(ctx context.Context, transactionID string, duration time.Duration) (string, error) {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)
	holder := uuid.NewString()

	// Insert, or take over a lock whose expiry has passed. A live lock leaves
	// the row untouched and no row is affected
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO transaction_locks (transaction_id, holder, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (transaction_id) DO UPDATE
		SET holder = EXCLUDED.holder,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE transaction_locks.expires_at <= ?`,
		transactionID, holder, now, expiresAt, now, now,
		now,
	)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return "", errs.ErrTransactionLocked
		}
		if isContextError(result.Error) {
			r.logger.Warn("Context ended while acquiring lock", map[string]any{
				"transaction_id": transactionID,
				"error":          result.Error.Error(),
			})
			return "", errs.NewStoreError("acquire_lock", false, result.Error)
		}

		r.logger.Error("Database error acquiring lock", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return "", r.errorClassifier.ToStoreError("acquire_lock", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Transaction is already locked", map[string]any{
			"transaction_id": transactionID,
		})
		return "", errs.ErrTransactionLocked
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"transaction_id": transactionID,
		"expires_at":     expiresAt,
	})
	return holder, nil
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled")
}

// ReleaseLock deletes the lock row if holder still owns it. A missing row means
// the lock expired and was taken over or cleaned up
func (r *TransactionLockRepository) ReleaseLock(ctx context.Context, transactionID, holder string) error {
	result := r.db.WithContext(ctx).
		Where("transaction_id = ? AND holder = ?", transactionID, holder).
		Delete(&model.TransactionLock{})

	// The lock will expire on its own
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context ended while releasing lock, lock will expire automatically", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release lock", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.ToStoreError("release_lock", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No lock found to release, may have already expired", map[string]any{
			"transaction_id": transactionID,
			"holder":         holder,
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired locks and reports how many were removed
func (r *TransactionLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.TransactionLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, r.errorClassifier.ToStoreError("cleanup_locks", result.Error)
	}

	r.logger.Info("Expired locks cleanup completed", map[string]any{
		"locks_removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
