package reconcile

import (
	"context"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
)

type rowOutcome int

const (
	rowSkipped rowOutcome = iota // not processed because the batch was canceled
	rowAutoMatched
	rowUnmatched
	rowAmbiguous
	rowDuplicate
	rowFailed
)

// importTally accumulates row outcomes from concurrent workers
type importTally struct {
	mu     sync.Mutex
	result usecase.ImportResult
}

func (t *importTally) record(outcome rowOutcome, row int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch outcome {
	case rowAutoMatched:
		t.result.Inserted++
		t.result.AutoMatched++
	case rowAmbiguous:
		t.result.Inserted++
		t.result.Unmatched++
		t.result.Ambiguous++
	case rowUnmatched:
		t.result.Inserted++
		t.result.Unmatched++
	case rowDuplicate:
		t.result.SkippedDuplicates++
	case rowFailed:
		t.result.Failed++
		t.result.RowErrors = append(t.result.RowErrors, usecase.RowError{Row: row, Err: err})
	}
}

// ImportBatch validates, deduplicates, matches and persists raw statement rows
// The returned result is never nil; the error is non-nil only when the batch
// could not be completed, in which case the counters cover the finished rows
func (s *Service) ImportBatch(ctx context.Context, rows []entity.RawTransaction) (*usecase.ImportResult, error) {
	tally := &importTally{result: usecase.ImportResult{Total: len(rows)}}
	if len(rows) == 0 {
		return &tally.result, nil
	}

	s.logger.Info("Starting import batch", map[string]any{
		"rows": len(rows),
	})

	var profiles []entity.Profile
	err := s.retry(ctx, "list_profiles", func() error {
		var listErr error
		profiles, listErr = s.directory.ListActiveProfilesWithAliases(ctx)
		return listErr
	})
	if err != nil {
		s.logError("Failed to load profiles for import", err, nil)
		tally.result.Aborted = true
		return &tally.result, err
	}

	err = s.runBounded(ctx, len(rows), func(ctx context.Context, i int) error {
		raw := rows[i]
		row := raw.Row
		if row <= 0 {
			row = i + 1
		}

		outcome, rowErr := s.importRow(ctx, raw, row, profiles)
		if rowErr != nil && ctx.Err() != nil && !errs.IsStoreUnavailable(rowErr) && !errs.IsValidationError(rowErr) {
			// canceled mid-flight by another row's failure
			return nil
		}
		if errs.IsStoreUnavailable(rowErr) {
			tally.record(rowFailed, row, rowErr)
			return rowErr
		}
		tally.record(outcome, row, rowErr)
		return nil
	})

	result := &tally.result
	sort.Slice(result.RowErrors, func(i, j int) bool {
		return result.RowErrors[i].Row < result.RowErrors[j].Row
	})

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		result.Aborted = true
		s.logError("Import batch aborted", err, map[string]any{
			"inserted": result.Inserted,
			"failed":   result.Failed,
		})
		return result, err
	}

	s.logger.Info("Import batch completed", map[string]any{
		"total":              result.Total,
		"inserted":           result.Inserted,
		"skipped_duplicates": result.SkippedDuplicates,
		"auto_matched":       result.AutoMatched,
		"unmatched":          result.Unmatched,
		"ambiguous":          result.Ambiguous,
		"failed":             result.Failed,
	})
	return result, nil
}

// importRow handles a single row: validate, deduplicate, match, insert once
func (s *Service) importRow(
	ctx context.Context,
	raw entity.RawTransaction,
	row int,
	profiles []entity.Profile,
) (rowOutcome, error) {
	tx, err := s.validator.Build(raw, row, s.idGenerator.NewID(), s.timeProvider)
	if err != nil {
		s.logger.Warn("Rejected statement row", map[string]any{
			"row":   row,
			"error": err.Error(),
		})
		return rowFailed, err
	}

	key := tx.NaturalKey()
	var existing *entity.Transaction
	err = s.retry(ctx, "find_by_natural_key", func() error {
		var findErr error
		existing, findErr = s.store.FindByNaturalKey(ctx, key)
		return findErr
	})
	if err != nil {
		s.logError("Failed to check for duplicate row", err, map[string]any{"row": row})
		return rowFailed, err
	}
	if existing != nil {
		s.logger.Debug("Skipping duplicate row", map[string]any{
			"row":            row,
			"transaction_id": existing.ID,
		})
		return rowDuplicate, nil
	}

	outcome := s.matcher.Match(tx, profiles)
	fields, result := s.initialMatchFields(outcome)
	if err := tx.ApplyMatch(fields); err != nil {
		return rowFailed, err
	}

	err = s.retry(ctx, "insert", func() error {
		return s.store.Insert(ctx, tx)
	})
	if errs.IsDuplicateTransactionError(err) {
		// lost the unique-key race against a concurrent import of the same line
		return rowDuplicate, nil
	}
	if err != nil {
		s.logError("Failed to insert transaction", err, map[string]any{"row": row})
		return rowFailed, err
	}

	s.logger.Debug("Imported transaction", map[string]any{
		"row":              row,
		"transaction_id":   tx.ID,
		"match_confidence": string(tx.MatchConfidence),
		"match_signal":     string(tx.MatchSignal),
	})
	return result, nil
}

func (s *Service) initialMatchFields(outcome entity.MatchOutcome) (entity.MatchFields, rowOutcome) {
	switch {
	case outcome.IsMatch():
		return entity.AutoMatch(*outcome.Best, s.now()), rowAutoMatched
	case outcome.IsAmbiguous():
		return entity.UnresolvedMatch(outcome.Ambiguous, s.now()), rowAmbiguous
	default:
		return entity.UnmatchedFields(), rowUnmatched
	}
}
