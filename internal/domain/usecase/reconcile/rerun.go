package reconcile

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
)

type rerunOutcome int

const (
	rerunSkipped rerunOutcome = iota
	rerunMatched
	rerunUpgraded
	rerunReassigned
	rerunCandidatesCleared
	rerunUnchanged
	rerunAmbiguous
	rerunConflict
	rerunFailed
)

// RerunAutoMatch re-runs the matcher over unmatched and auto rows. Manual rows
// are never written; when named in transactionIDs they count as SkippedManual
// Automatic passes only move unmatched to auto, or auto to auto on a strictly
// stronger signal or when the current profile no longer clears any tier. A
// second pass over unchanged inputs writes nothing
func (s *Service) RerunAutoMatch(ctx context.Context, transactionIDs []string) (*usecase.RerunResult, error) {
	filter := entity.TransactionFilter{IDs: transactionIDs}
	if len(transactionIDs) == 0 {
		filter.Confidences = []entity.MatchConfidence{entity.ConfidenceUnmatched, entity.ConfidenceAuto}
	}

	var transactions []*entity.Transaction
	err := s.retry(ctx, "list", func() error {
		var listErr error
		transactions, listErr = s.store.List(ctx, filter)
		return listErr
	})
	if err != nil {
		s.logError("Failed to list transactions for rerun", err, nil)
		return nil, err
	}

	var profiles []entity.Profile
	err = s.retry(ctx, "list_profiles", func() error {
		var listErr error
		profiles, listErr = s.directory.ListActiveProfilesWithAliases(ctx)
		return listErr
	})
	if err != nil {
		s.logError("Failed to load profiles for rerun", err, nil)
		return nil, err
	}

	result := &usecase.RerunResult{}
	var mu sync.Mutex

	err = s.runBounded(ctx, len(transactions), func(ctx context.Context, i int) error {
		tx := transactions[i]
		if tx.IsManual() {
			mu.Lock()
			result.SkippedManual++
			mu.Unlock()
			return nil
		}

		outcome, rowErr := s.rematch(ctx, tx, profiles)
		if rowErr != nil && ctx.Err() != nil && !errs.IsStoreUnavailable(rowErr) {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()
		result.Examined++
		switch outcome {
		case rerunMatched:
			result.Matched++
		case rerunUpgraded:
			result.Upgraded++
		case rerunReassigned:
			result.Reassigned++
		case rerunCandidatesCleared:
			result.CandidatesCleared++
		case rerunUnchanged:
			result.Unchanged++
		case rerunAmbiguous:
			result.Ambiguous++
		case rerunConflict:
			result.Conflicts++
		case rerunFailed:
			result.Failed++
		}

		if errs.IsStoreUnavailable(rowErr) {
			return rowErr
		}
		return nil
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.logError("Rerun aborted", err, map[string]any{
			"examined": result.Examined,
		})
		return result, err
	}

	s.logger.Info("Rerun completed", map[string]any{
		"examined":       result.Examined,
		"matched":        result.Matched,
		"upgraded":       result.Upgraded,
		"reassigned":     result.Reassigned,
		"cleared":        result.CandidatesCleared,
		"unchanged":      result.Unchanged,
		"ambiguous":      result.Ambiguous,
		"skipped_manual": result.SkippedManual,
		"conflicts":      result.Conflicts,
		"failed":         result.Failed,
	})
	return result, nil
}

// rematch decides the new match fields for one row and writes them with a CAS
func (s *Service) rematch(ctx context.Context, tx *entity.Transaction, profiles []entity.Profile) (rerunOutcome, error) {
	outcome := s.matcher.Match(tx, profiles)

	var (
		fields  entity.MatchFields
		onWrite rerunOutcome
	)

	switch {
	case tx.IsUnmatched() && outcome.IsMatch():
		fields, onWrite = entity.AutoMatch(*outcome.Best, s.now()), rerunMatched

	case tx.IsUnmatched() && outcome.IsAmbiguous():
		if sameCandidates(tx.Candidates, outcome.Ambiguous) {
			return rerunAmbiguous, nil
		}
		fields, onWrite = entity.UnresolvedMatch(outcome.Ambiguous, s.now()), rerunAmbiguous

	case tx.IsUnmatched() && len(tx.Candidates) > 0:
		// Candidates that no longer clear any tier are not offered for review
		fields, onWrite = entity.UnresolvedMatch(nil, s.now()), rerunCandidatesCleared

	case tx.IsAuto() && !s.matchStillHolds(tx, profiles):
		if !outcome.IsMatch() {
			// Automatic passes never downgrade; the row waits for a manual decision
			s.logger.Warn("Auto match no longer holds and no replacement was found", map[string]any{
				"transaction_id":  tx.ID,
				"matched_user_id": tx.MatchedUser(),
			})
			return rerunUnchanged, nil
		}
		fields, onWrite = entity.AutoMatch(*outcome.Best, s.now()), rerunReassigned

	case tx.IsAuto() && outcome.IsMatch() && outcome.Best.Signal.StrongerThan(tx.MatchSignal):
		fields, onWrite = entity.AutoMatch(*outcome.Best, s.now()), rerunUpgraded

	default:
		return rerunUnchanged, nil
	}

	var swapped bool
	err := s.retry(ctx, "update_match_fields", func() error {
		var updateErr error
		swapped, updateErr = s.store.UpdateMatchFields(ctx, tx.ID, tx.Version, fields)
		return updateErr
	})
	if err != nil {
		s.logError("Failed to update match fields", err, map[string]any{"transaction_id": tx.ID})
		return rerunFailed, err
	}
	if !swapped {
		s.logger.Info("Transaction changed during rerun, leaving it for the next pass", map[string]any{
			"transaction_id":   tx.ID,
			"expected_version": tx.Version,
		})
		return rerunConflict, nil
	}

	s.logger.Debug("Rerun updated transaction", map[string]any{
		"transaction_id":   tx.ID,
		"match_confidence": string(fields.Confidence),
		"match_signal":     string(fields.Signal),
	})
	return onWrite, nil
}

// matchStillHolds reports whether the currently matched profile is active and
// still clears a tier on its own
func (s *Service) matchStillHolds(tx *entity.Transaction, profiles []entity.Profile) bool {
	matched := tx.MatchedUser()
	for _, p := range profiles {
		if p.ID != matched {
			continue
		}
		outcome := s.matcher.Match(tx, []entity.Profile{p})
		return outcome.IsMatch() && outcome.Best.ProfileID == matched
	}
	return false
}

// sameCandidates compares candidate sets by profile, signal and score
func sameCandidates(a, b []entity.MatchCandidate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ProfileID != b[i].ProfileID || a[i].Signal != b[i].Signal || a[i].Score != b[i].Score {
			return false
		}
	}
	return true
}
