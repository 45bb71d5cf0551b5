package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
)

// TransactionStore defines the record store the reconciler works against
// Every failure other than the documented sentinels is an *errs.StoreError
type TransactionStore interface {
	// Insert persists a new transaction together with its initial match fields
	// and, when those fields carry provenance, the first match event
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If a row with the same natural key already exists
	// - StoreError: If the store fails
	Insert(ctx context.Context, transaction *entity.Transaction) error

	// UpdateMatchFields atomically replaces the match fields of the row with the
	// given ID, provided its version still equals expectedVersion, bumps the
	// version and appends a match event. It returns false when no row with that
	// ID and version exists
	//
	// Possible errors:
	// - ErrInvalidMatchState: If fields break the unmatched/no-user invariant
	// - StoreError: If the store fails
	UpdateMatchFields(ctx context.Context, id string, expectedVersion int64, fields entity.MatchFields) (bool, error)

	// FindByNaturalKey returns the row with the given natural key, or nil when none exists
	//
	// Possible errors:
	// - StoreError: If the store fails
	FindByNaturalKey(ctx context.Context, key entity.NaturalKey) (*entity.Transaction, error)

	// GetByID retrieves a transaction by ID
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no row has the given ID
	// - StoreError: If the store fails
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// List returns transactions matching the filter in the requested order
	//
	// Possible errors:
	// - StoreError: If the store fails
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// ListMatchEvents returns the match history of a transaction, oldest first
	//
	// Possible errors:
	// - StoreError: If the store fails
	ListMatchEvents(ctx context.Context, id string) ([]entity.MatchEvent, error)

	// Delete removes a transaction and its history, returning false if it did not exist
	//
	// Possible errors:
	// - StoreError: If the store fails
	Delete(ctx context.Context, id string) (bool, error)
}
