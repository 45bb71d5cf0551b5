package reconcile

import (
	"context"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
)

// fieldsFunc computes the next match fields from the current row. Returning
// false leaves the row untouched
type fieldsFunc func(tx *entity.Transaction) (entity.MatchFields, bool)

// SetManualMatch assigns a transaction to a profile on behalf of actor. It
// works from any prior state and the result is never changed by later
// automatic passes
func (s *Service) SetManualMatch(ctx context.Context, transactionID, userID, actor string) (*entity.Transaction, error) {
	if err := requireTransactionID(transactionID); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, errs.NewValidationError(0, "user_id", userID, "user id is required", errs.ErrInvalidUserID)
	}
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	var profiles []entity.Profile
	err := s.retry(ctx, "find_profiles", func() error {
		var findErr error
		profiles, findErr = s.directory.FindByIDs(ctx, []string{userID})
		return findErr
	})
	if err != nil {
		s.logError("Failed to look up profile", err, map[string]any{"user_id": userID})
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, errs.NewProfileNotFoundError(userID)
	}

	tx, err := s.mutateLocked(ctx, transactionID, func(*entity.Transaction) (entity.MatchFields, bool) {
		return entity.ManualMatch(userID, actor, s.now()), true
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction matched manually", map[string]any{
		"transaction_id": transactionID,
		"user_id":        userID,
		"actor":          actor,
	})
	return tx, nil
}

// ClearMatch resets a matched transaction to unmatched and records actor as
// the source of the change. Clearing an unmatched row is a no-op
func (s *Service) ClearMatch(ctx context.Context, transactionID, actor string) (*entity.Transaction, error) {
	if err := requireTransactionID(transactionID); err != nil {
		return nil, err
	}
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	tx, err := s.mutateLocked(ctx, transactionID, func(current *entity.Transaction) (entity.MatchFields, bool) {
		if current.IsUnmatched() {
			return entity.MatchFields{}, false
		}
		return entity.ClearedMatch(actor, s.now()), true
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction match cleared", map[string]any{
		"transaction_id": transactionID,
		"actor":          actor,
	})
	return tx, nil
}

// DeleteTransaction removes a transaction and its history
func (s *Service) DeleteTransaction(ctx context.Context, transactionID, actor string) error {
	if err := requireTransactionID(transactionID); err != nil {
		return err
	}
	if err := requireActor(actor); err != nil {
		return err
	}

	return s.withTransactionLock(ctx, transactionID, func() error {
		var deleted bool
		err := s.retry(ctx, "delete", func() error {
			var deleteErr error
			deleted, deleteErr = s.store.Delete(ctx, transactionID)
			return deleteErr
		})
		if err != nil {
			s.logError("Failed to delete transaction", err, map[string]any{"transaction_id": transactionID})
			return err
		}
		if !deleted {
			return errs.NewTransactionNotFoundError(transactionID)
		}

		s.logger.Info("Transaction deleted", map[string]any{
			"transaction_id": transactionID,
			"actor":          actor,
		})
		return nil
	})
}

// mutateLocked applies next to the row under the per-transaction lock,
// re-reading and retrying when the version check fails
func (s *Service) mutateLocked(ctx context.Context, transactionID string, next fieldsFunc) (*entity.Transaction, error) {
	var updated *entity.Transaction

	err := s.withTransactionLock(ctx, transactionID, func() error {
		for attempt := 0; attempt < maxCASAttempts; attempt++ {
			tx, err := s.getTransaction(ctx, transactionID)
			if err != nil {
				return err
			}

			fields, write := next(tx)
			if !write {
				updated = tx
				return nil
			}

			var swapped bool
			err = s.retry(ctx, "update_match_fields", func() error {
				var updateErr error
				swapped, updateErr = s.store.UpdateMatchFields(ctx, tx.ID, tx.Version, fields)
				return updateErr
			})
			if err != nil {
				s.logError("Failed to update match fields", err, map[string]any{"transaction_id": transactionID})
				return err
			}

			if swapped {
				if err := tx.ApplyMatch(fields); err != nil {
					return err
				}
				tx.Version++
				updated = tx
				return nil
			}

			s.logger.Debug("Version conflict on manual action, re-reading", map[string]any{
				"transaction_id": transactionID,
				"attempt":        attempt + 1,
			})
		}
		return wrapConcurrent(transactionID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) getTransaction(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	var tx *entity.Transaction
	err := s.retry(ctx, "get_by_id", func() error {
		var getErr error
		tx, getErr = s.store.GetByID(ctx, transactionID)
		return getErr
	})
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.NewTransactionNotFoundError(transactionID)
		}
		return nil, err
	}
	return tx, nil
}
