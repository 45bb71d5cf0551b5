package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
)

type heldLock struct {
	holder    string
	expiresAt time.Time
}

// TransactionLockRepository is a keyed lock with expiry for single-process deployments
type TransactionLockRepository struct {
	mu           sync.Mutex
	held         map[string]heldLock
	timeProvider coreport.TimeProvider
}

var _ persistence.TransactionLockRepository = (*TransactionLockRepository)(nil)

// NewTransactionLockRepository creates an empty lock table
func NewTransactionLockRepository(timeProvider coreport.TimeProvider) *TransactionLockRepository {
	return &TransactionLockRepository{
		held:         make(map[string]heldLock),
		timeProvider: timeProvider,
	}
}

// AcquireLock takes the lock unless another holder's lock is still valid
func (r *TransactionLockRepository) AcquireLock(ctx context.Context, transactionID string, duration time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.NewStoreError("acquire_lock", false, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	if current, ok := r.held[transactionID]; ok && current.expiresAt.After(now) {
		return "", errs.ErrTransactionLocked
	}

	holder := uuid.NewString()
	r.held[transactionID] = heldLock{holder: holder, expiresAt: now.Add(duration)}
	return holder, nil
}

// ReleaseLock drops the lock if holder still owns it
func (r *TransactionLockRepository) ReleaseLock(_ context.Context, transactionID, holder string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.held[transactionID]; ok && current.holder == holder {
		delete(r.held, transactionID)
	}
	return nil
}
