package reconcile

import (
	"context"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
)

// ListTransactions returns the transactions selected by filter, each joined
// with the display name of its matched profile
func (s *Service) ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]usecase.TransactionView, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, errs.NewValidationError(0, "pagination", "", "limit and offset must not be negative", errs.ErrValidation)
	}
	for _, c := range filter.Confidences {
		if !c.IsValid() {
			return nil, errs.NewValidationError(0, "confidence", string(c), "unknown match confidence", errs.ErrInvalidMatchState)
		}
	}

	var transactions []*entity.Transaction
	err := s.retry(ctx, "list", func() error {
		var listErr error
		transactions, listErr = s.store.List(ctx, filter)
		return listErr
	})
	if err != nil {
		s.logError("Failed to list transactions", err, nil)
		return nil, err
	}

	names, err := s.displayNames(ctx, transactions)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, usecase.TransactionView{
			Transaction:        tx,
			MatchedDisplayName: names[tx.MatchedUser()],
		})
	}
	return views, nil
}

// GetTransaction returns a single transaction with its matched display name
func (s *Service) GetTransaction(ctx context.Context, transactionID string) (*usecase.TransactionView, error) {
	if err := requireTransactionID(transactionID); err != nil {
		return nil, err
	}

	tx, err := s.getTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	names, err := s.displayNames(ctx, []*entity.Transaction{tx})
	if err != nil {
		return nil, err
	}

	return &usecase.TransactionView{
		Transaction:        tx,
		MatchedDisplayName: names[tx.MatchedUser()],
	}, nil
}

// GetMatchProvenance reports who set the current match, when, and the full
// ordered history of match changes
func (s *Service) GetMatchProvenance(ctx context.Context, transactionID string) (*usecase.MatchProvenance, error) {
	if err := requireTransactionID(transactionID); err != nil {
		return nil, err
	}

	tx, err := s.getTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	var history []entity.MatchEvent
	err = s.retry(ctx, "list_match_events", func() error {
		var listErr error
		history, listErr = s.store.ListMatchEvents(ctx, transactionID)
		return listErr
	})
	if err != nil {
		s.logError("Failed to list match events", err, map[string]any{"transaction_id": transactionID})
		return nil, err
	}

	return &usecase.MatchProvenance{
		TransactionID: tx.ID,
		Confidence:    tx.MatchConfidence,
		MatchedUserID: tx.MatchedUserID,
		Source:        tx.MatchedBy,
		MatchedAt:     tx.MatchedAt,
		History:       history,
	}, nil
}

// displayNames resolves the matched profiles of transactions in one directory call
func (s *Service) displayNames(ctx context.Context, transactions []*entity.Transaction) (map[string]string, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, tx := range transactions {
		id := tx.MatchedUser()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var profiles []entity.Profile
	err := s.retry(ctx, "find_profiles", func() error {
		var findErr error
		profiles, findErr = s.directory.FindByIDs(ctx, ids)
		return findErr
	})
	if err != nil {
		s.logError("Failed to resolve profile names", err, nil)
		return nil, err
	}

	for _, p := range profiles {
		names[p.ID] = p.DisplayName
	}
	return names, nil
}
