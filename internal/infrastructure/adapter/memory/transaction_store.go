// Package memory provides in-process implementations of the persistence ports,
// used for local runs without a database and in scenario tests
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
)

// TransactionStore keeps transactions and their match history in maps guarded by one lock
type TransactionStore struct {
	mu     sync.RWMutex
	rows   map[string]*entity.Transaction
	byKey  map[string]string // fingerprint -> id
	events map[string][]entity.MatchEvent
}

var _ persistence.TransactionStore = (*TransactionStore)(nil)

// NewTransactionStore creates an empty store
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		rows:   make(map[string]*entity.Transaction),
		byKey:  make(map[string]string),
		events: make(map[string][]entity.MatchEvent),
	}
}

// Insert stores a new transaction at version 1
func (s *TransactionStore) Insert(ctx context.Context, transaction *entity.Transaction) error {
	if err := ctx.Err(); err != nil {
		return errs.NewStoreError("insert", false, err)
	}
	fields := transaction.CurrentMatch()
	if err := fields.Validate(); err != nil {
		return err
	}

	fingerprint := transaction.NaturalKey().Fingerprint()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byKey[fingerprint]; ok {
		return fmt.Errorf("%w: natural key %s", errs.ErrDuplicateTransaction, fingerprint)
	}
	if _, ok := s.rows[transaction.ID]; ok {
		return fmt.Errorf("%w: id %s", errs.ErrDuplicateTransaction, transaction.ID)
	}

	transaction.Version = 1
	s.rows[transaction.ID] = transaction.Clone()
	s.byKey[fingerprint] = transaction.ID
	if !fields.Source.IsZero() {
		s.events[transaction.ID] = append(s.events[transaction.ID], entity.NewMatchEvent(transaction.ID, 1, fields))
	}
	return nil
}

// UpdateMatchFields swaps the match fields when the version still matches
func (s *TransactionStore) UpdateMatchFields(
	ctx context.Context,
	id string,
	expectedVersion int64,
	fields entity.MatchFields,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errs.NewStoreError("update_match_fields", false, err)
	}
	if err := fields.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok || row.Version != expectedVersion {
		return false, nil
	}

	if err := row.ApplyMatch(fields); err != nil {
		return false, err
	}
	row.Version++
	s.events[id] = append(s.events[id], entity.NewMatchEvent(id, row.Version, fields))
	return true, nil
}

// FindByNaturalKey returns the row with the given key or nil
func (s *TransactionStore) FindByNaturalKey(ctx context.Context, key entity.NaturalKey) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreError("find_by_natural_key", false, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byKey[key.Fingerprint()]
	if !ok {
		return nil, nil
	}
	return s.rows[id].Clone(), nil
}

// GetByID returns a copy of the row
func (s *TransactionStore) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreError("get_by_id", false, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, errs.NewTransactionNotFoundError(id)
	}
	return row.Clone(), nil
}

// List filters, orders and pages the rows
func (s *TransactionStore) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreError("list", false, err)
	}

	s.mu.RLock()
	var out []*entity.Transaction
	for _, row := range s.rows {
		if matchesFilter(row, filter) {
			out = append(out, row.Clone())
		}
	}
	s.mu.RUnlock()

	sortTransactions(out, filter.OrderBy, filter.Descending)

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []*entity.Transaction{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

// ListMatchEvents returns the history of a row, oldest first
func (s *TransactionStore) ListMatchEvents(ctx context.Context, id string) ([]entity.MatchEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreError("list_match_events", false, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.MatchEvent(nil), s.events[id]...), nil
}

// Delete removes a row and its history
func (s *TransactionStore) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errs.NewStoreError("delete", false, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return false, nil
	}
	delete(s.byKey, row.NaturalKey().Fingerprint())
	delete(s.rows, id)
	delete(s.events, id)
	return true, nil
}

func matchesFilter(tx *entity.Transaction, filter entity.TransactionFilter) bool {
	if len(filter.IDs) > 0 && !containsString(filter.IDs, tx.ID) {
		return false
	}
	if len(filter.Confidences) > 0 {
		found := false
		for _, c := range filter.Confidences {
			if c == tx.MatchConfidence {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.MatchedUserID != "" && tx.MatchedUser() != filter.MatchedUserID {
		return false
	}
	if filter.DateFrom != nil && tx.TransactionDate.Before(entity.NormalizeDate(*filter.DateFrom)) {
		return false
	}
	if filter.DateTo != nil && tx.TransactionDate.After(entity.NormalizeDate(*filter.DateTo)) {
		return false
	}
	if filter.Search != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(filter.Search)) {
		return false
	}
	return true
}

func sortTransactions(rows []*entity.Transaction, order entity.TransactionOrder, descending bool) {
	less := func(a, b *entity.Transaction) int {
		switch order {
		case entity.OrderByAmount:
			return a.Amount.Cmp(b.Amount)
		case entity.OrderByCreated:
			return a.CreatedAt.Compare(b.CreatedAt)
		default:
			return a.TransactionDate.Compare(b.TransactionDate)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		c := less(rows[i], rows[j])
		if c == 0 {
			return rows[i].ID < rows[j].ID
		}
		if descending {
			return c > 0
		}
		return c < 0
	})
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
