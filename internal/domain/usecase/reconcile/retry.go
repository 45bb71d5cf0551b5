package reconcile

import (
	"context"
	"time"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
)

// RetryConfig holds configuration for retrying store calls
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// DefaultRetryConfig allows a single retry of a transient failure
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   2,
		RetryInterval: DefaultStoreRetryDelay,
		MaxInterval:   time.Second,
		JitterFactor:  0.2,
	}
}

// retryOnTransient runs operation and retries it while it fails with a
// transient store error and attempts remain
func retryOnTransient(
	ctx context.Context,
	config RetryConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	op string,
	operation func() error,
) error {
	var err error

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}

		if !errs.IsTransientStoreError(err) || attempt == config.MaxAttempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config, timeProvider.Now())
		logger.Warn("Transient store error, retrying operation", map[string]any{
			"operation":    op,
			"attempt":      attempt + 1,
			"max_attempts": config.MaxAttempts,
			"error":        err.Error(),
			"retry_after":  backoff.String(),
		})

		if sleepErr := timeProvider.Sleep(ctx, coreport.Duration(backoff)); sleepErr != nil {
			logger.Warn("Retry canceled by context", map[string]any{
				"operation": op,
				"error":     sleepErr.Error(),
			})
			return err
		}
	}

	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig, now time.Time) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if config.MaxInterval > 0 && backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * (float64(now.UnixNano()%100) / 100.0))
		backoff += jitter
	}

	return backoff
}
