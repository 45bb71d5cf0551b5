package reconcile

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/usecase/matcher"
)

// Default tuning values
const (
	DefaultConcurrency     = 8
	DefaultLockTTL         = 5 * time.Second
	DefaultStoreRetryDelay = 50 * time.Millisecond

	// maxCASAttempts bounds re-reads when a manual action loses a version race
	maxCASAttempts = 3
)

// Config holds the tunables of the reconciliation service
type Config struct {
	Concurrency int
	LockTTL     time.Duration
	Retry       RetryConfig
}

// DefaultConfig returns the default service configuration
func DefaultConfig() Config {
	return Config{
		Concurrency: DefaultConcurrency,
		LockTTL:     DefaultLockTTL,
		Retry:       DefaultRetryConfig(),
	}
}

// Service implements usecase.ReconciliationUseCase on top of the store,
// the profile directory and the matcher
type Service struct {
	store        persistence.TransactionStore
	directory    persistence.ProfileDirectory
	locks        persistence.TransactionLockRepository
	matcher      *matcher.Matcher
	validator    *RowValidator
	timeProvider coreport.TimeProvider
	idGenerator  coreport.IDGenerator
	logger       coreport.Logger
	config       Config
}

var _ usecase.ReconciliationUseCase = (*Service)(nil)

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(
	store persistence.TransactionStore,
	directory persistence.ProfileDirectory,
	locks persistence.TransactionLockRepository,
	m *matcher.Matcher,
	timeProvider coreport.TimeProvider,
	idGenerator coreport.IDGenerator,
	logger coreport.Logger,
	config Config,
) *Service {
	if config.Concurrency < 1 {
		config.Concurrency = DefaultConcurrency
	}
	if config.LockTTL <= 0 {
		config.LockTTL = DefaultLockTTL
	}
	if config.Retry.MaxAttempts < 1 {
		config.Retry = DefaultRetryConfig()
	}

	return &Service{
		store:        store,
		directory:    directory,
		locks:        locks,
		matcher:      m,
		validator:    NewRowValidator(),
		timeProvider: timeProvider,
		idGenerator:  idGenerator,
		logger:       logger,
		config:       config,
	}
}

// retry runs a store call under the service's retry policy
func (s *Service) retry(ctx context.Context, op string, fn func() error) error {
	return retryOnTransient(ctx, s.config.Retry, s.timeProvider, s.logger, op, fn)
}

// runBounded calls fn for every index in [0, n) with at most Concurrency calls
// in flight. The first non-nil error cancels the calls that have not started
func (s *Service) runBounded(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			return fn(gctx, i)
		})
	}

	return g.Wait()
}

func (s *Service) now() time.Time {
	return s.timeProvider.Now().UTC()
}

// logError logs err with its structured fields when it carries any
func (s *Service) logError(message string, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	if lf, ok := err.(interface{ LogFields() map[string]any }); ok {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	} else {
		fields["error"] = err.Error()
	}
	fields["error_code"] = errs.ErrorCode(err)
	s.logger.Error(message, fields)
}

func requireActor(actor string) error {
	if actor == "" {
		return errs.NewValidationError(0, "actor", actor, "actor is required", errs.ErrInvalidActor)
	}
	return nil
}

func requireTransactionID(id string) error {
	if id == "" {
		return errs.NewValidationError(0, "transaction_id", id, "transaction id is required", errs.ErrInvalidTransactionID)
	}
	return nil
}

func wrapConcurrent(id string) error {
	return fmt.Errorf("%w: transaction %s changed %d times while updating", errs.ErrConcurrentModification, id, maxCASAttempts)
}
