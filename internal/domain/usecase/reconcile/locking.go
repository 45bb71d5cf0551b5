package reconcile

import (
	"context"
)

// withTransactionLock runs fn while holding the per-transaction lock. The lock
// is released even when ctx is canceled while fn runs
func (s *Service) withTransactionLock(ctx context.Context, transactionID string, fn func() error) error {
	var holder string
	err := s.retry(ctx, "acquire_lock", func() error {
		var acquireErr error
		holder, acquireErr = s.locks.AcquireLock(ctx, transactionID, s.config.LockTTL)
		return acquireErr
	})
	if err != nil {
		s.logger.Warn("Failed to acquire transaction lock", map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
		return err
	}

	defer func() {
		if releaseErr := s.locks.ReleaseLock(context.WithoutCancel(ctx), transactionID, holder); releaseErr != nil {
			s.logger.Error("Failed to release transaction lock", map[string]any{
				"transaction_id": transactionID,
				"error":          releaseErr.Error(),
			})
		}
	}()

	return fn()
}
