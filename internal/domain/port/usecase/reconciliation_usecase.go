package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
)

// RowError reports why a single batch row was not imported
type RowError struct {
	Row int
	Err error
}

// ImportResult contains the counters of one import batch. Counters are always
// complete for the rows that were processed, even when the batch aborted
type ImportResult struct {
	Total             int
	Inserted          int
	SkippedDuplicates int
	AutoMatched       int
	Unmatched         int
	Ambiguous         int // subset of Unmatched left for manual disambiguation
	Failed            int
	Aborted           bool // the store became unavailable and remaining rows were not processed
	RowErrors         []RowError
}

// RerunResult contains the counters of one automatic re-match pass
type RerunResult struct {
	Examined          int
	Matched           int // unmatched -> auto
	Upgraded          int // auto -> auto on a stronger signal
	Reassigned        int // auto -> auto on another profile after the old match stopped holding
	CandidatesCleared int // unmatched rows whose stale ambiguous candidates were dropped
	Unchanged         int
	Ambiguous         int
	SkippedManual     int
	Conflicts         int // rows changed concurrently; picked up by the next pass
	Failed            int
}

// TransactionView is a transaction joined with the matched profile's display name
type TransactionView struct {
	Transaction        *entity.Transaction
	MatchedDisplayName string
}

// MatchProvenance answers "who set this match and when"
type MatchProvenance struct {
	TransactionID string
	Confidence    entity.MatchConfidence
	MatchedUserID *string
	Source        entity.MatchSource
	MatchedAt     *time.Time
	History       []entity.MatchEvent
}

// ReconciliationUseCase defines the operations exposed to the API and CLI
type ReconciliationUseCase interface {
	// ImportBatch validates, deduplicates, matches and persists raw statement rows
	ImportBatch(ctx context.Context, rows []entity.RawTransaction) (*ImportResult, error)

	// RerunAutoMatch re-runs the matcher over unmatched and auto rows, optionally
	// restricted to the given IDs. Manual rows are never touched
	RerunAutoMatch(ctx context.Context, transactionIDs []string) (*RerunResult, error)

	// SetManualMatch assigns a transaction to a profile on behalf of actor
	SetManualMatch(ctx context.Context, transactionID, userID, actor string) (*entity.Transaction, error)

	// ClearMatch resets a transaction to unmatched; a no-op when it already is
	ClearMatch(ctx context.Context, transactionID, actor string) (*entity.Transaction, error)

	// ListTransactions returns transactions with their matched display names
	ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]TransactionView, error)

	// GetTransaction returns one transaction with its matched display name
	GetTransaction(ctx context.Context, transactionID string) (*TransactionView, error)

	// GetMatchProvenance returns the current provenance and the match history
	GetMatchProvenance(ctx context.Context, transactionID string) (*MatchProvenance, error)

	// DeleteTransaction removes a transaction as an explicit administrative action
	DeleteTransaction(ctx context.Context, transactionID, actor string) error
}
