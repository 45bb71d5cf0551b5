package persistence

import (
	"context"
	"time"
)

// TransactionLockRepository serialises manual actions on a single transaction
type TransactionLockRepository interface {
	// AcquireLock attempts to acquire a lock on the transaction
	// The lock expires after the given duration. The returned holder token
	// identifies this acquisition and must be passed to ReleaseLock
	//
	// Possible errors:
	// - ErrTransactionLocked: If another operation holds an unexpired lock
	// - StoreError: If the lock backend fails
	AcquireLock(ctx context.Context, transactionID string, duration time.Duration) (string, error)

	// ReleaseLock releases the lock taken with holder. A lock that has expired
	// or was taken over by another holder is left alone and is not an error
	//
	// Possible errors:
	// - StoreError: If the lock backend fails
	ReleaseLock(ctx context.Context, transactionID, holder string) error
}
