package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the TransactionStore port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TransactionStore = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Insert saves a new transaction and, when it was matched, its first match event
func (r *TransactionRepository) Insert(ctx context.Context, transaction *entity.Transaction) error {
	fields := transaction.CurrentMatch()
	if err := fields.Validate(); err != nil {
		return err
	}

	row, err := entityToModel(transaction)
	if err != nil {
		return errs.NewStoreError("insert", false, err)
	}
	row.Version = 1

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if fields.Source.IsZero() {
			return nil
		}
		event := eventToModel(entity.NewMatchEvent(row.ID, 1, fields))
		return tx.Create(&event).Error
	})

	if err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Debug("Duplicate transaction detected", map[string]any{
				"transaction_id": transaction.ID,
				"fingerprint":    row.Fingerprint,
			})
			return fmt.Errorf("%w: natural key %s", errs.ErrDuplicateTransaction, row.Fingerprint)
		}

		r.logger.Error("Failed to insert transaction", map[string]any{
			"transaction_id": transaction.ID,
			"error":          err.Error(),
		})
		return r.errorClassifier.ToStoreError("insert", err)
	}

	transaction.Version = 1
	r.logger.Debug("Transaction inserted", map[string]any{
		"transaction_id":   transaction.ID,
		"match_confidence": string(transaction.MatchConfidence),
	})
	return nil
}

// UpdateMatchFields replaces the match fields when the stored version still equals expectedVersion
func (r *TransactionRepository) UpdateMatchFields(
	ctx context.Context,
	id string,
	expectedVersion int64,
	fields entity.MatchFields,
) (bool, error) {
	if err := fields.Validate(); err != nil {
		return false, err
	}

	candidates, err := encodeCandidates(fields.Candidates)
	if err != nil {
		return false, errs.NewStoreError("update_match_fields", false, err)
	}
	actor, _ := fields.Source.ActorID()
	newVersion := expectedVersion + 1

	swapped := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.BankTransaction{}).
			Where("id = ? AND version = ?", id, expectedVersion).
			Updates(map[string]interface{}{
				"match_confidence": string(fields.Confidence),
				"matched_user_id":  fields.UserID,
				"match_signal":     string(fields.Signal),
				"matched_by_kind":  string(fields.Source.Kind()),
				"matched_by_actor": actor,
				"matched_at":       fields.At,
				"candidates":       candidates,
				"version":          newVersion,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		event := eventToModel(entity.NewMatchEvent(id, newVersion, fields))
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		swapped = true
		return nil
	})

	if err != nil {
		r.logger.Error("Failed to update match fields", map[string]any{
			"transaction_id":   id,
			"expected_version": expectedVersion,
			"error":            err.Error(),
		})
		return false, r.errorClassifier.ToStoreError("update_match_fields", err)
	}

	if !swapped {
		r.logger.Debug("Match fields not updated, version moved on", map[string]any{
			"transaction_id":   id,
			"expected_version": expectedVersion,
		})
	}
	return swapped, nil
}

// FindByNaturalKey looks a row up through its fingerprint
func (r *TransactionRepository) FindByNaturalKey(ctx context.Context, key entity.NaturalKey) (*entity.Transaction, error) {
	var row model.BankTransaction
	result := r.db.WithContext(ctx).
		Where("fingerprint = ?", key.Fingerprint()).
		Limit(1).
		Find(&row)

	if result.Error != nil {
		return nil, r.errorClassifier.ToStoreError("find_by_natural_key", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.toEntity(&row, "find_by_natural_key")
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var row model.BankTransaction
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.NewTransactionNotFoundError(id)
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return nil, r.errorClassifier.ToStoreError("get_by_id", result.Error)
	}
	return r.toEntity(&row, "get_by_id")
}

// List returns the rows selected by filter
func (r *TransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.BankTransaction{})

	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	}
	if len(filter.Confidences) > 0 {
		confidences := make([]string, 0, len(filter.Confidences))
		for _, c := range filter.Confidences {
			confidences = append(confidences, string(c))
		}
		query = query.Where("match_confidence IN ?", confidences)
	}
	if filter.MatchedUserID != "" {
		query = query.Where("matched_user_id = ?", filter.MatchedUserID)
	}
	if filter.DateFrom != nil {
		query = query.Where("transaction_date >= ?", entity.NormalizeDate(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		query = query.Where("transaction_date <= ?", entity.NormalizeDate(*filter.DateTo))
	}
	if filter.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}
	query = query.Order(orderColumn(filter.OrderBy) + " " + direction).Order("id ASC")

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []model.BankTransaction
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.ToStoreError("list", err)
	}

	out := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		tx, err := r.toEntity(&rows[i], "list")
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}

// ListMatchEvents returns the match history of a row, oldest first
func (r *TransactionRepository) ListMatchEvents(ctx context.Context, id string) ([]entity.MatchEvent, error) {
	var rows []model.MatchEvent
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", id).
		Order("version ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.ToStoreError("list_match_events", err)
	}

	events := make([]entity.MatchEvent, 0, len(rows))
	for i := range rows {
		event, err := eventToEntity(&rows[i])
		if err != nil {
			return nil, errs.NewStoreError("list_match_events", false, err)
		}
		events = append(events, event)
	}
	return events, nil
}

// Delete removes a transaction together with its history
func (r *TransactionRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&model.MatchEvent{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.BankTransaction{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})

	if err != nil {
		r.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id,
			"error":          err.Error(),
		})
		return false, r.errorClassifier.ToStoreError("delete", err)
	}

	if deleted {
		r.logger.Info("Transaction deleted", map[string]any{
			"transaction_id": id,
		})
	}
	return deleted, nil
}

func (r *TransactionRepository) toEntity(row *model.BankTransaction, op string) (*entity.Transaction, error) {
	tx, err := modelToEntity(row)
	if err != nil {
		r.logger.Error("Stored transaction is corrupt", map[string]any{
			"transaction_id": row.ID,
			"error":          err.Error(),
		})
		return nil, errs.NewStoreError(op, false, err)
	}
	return tx, nil
}

func orderColumn(order entity.TransactionOrder) string {
	switch order {
	case entity.OrderByAmount:
		return "amount"
	case entity.OrderByCreated:
		return "created_at"
	default:
		return "transaction_date"
	}
}

// entityToModel converts a transaction entity to a database model
func entityToModel(tx *entity.Transaction) (model.BankTransaction, error) {
	candidates, err := encodeCandidates(tx.Candidates)
	if err != nil {
		return model.BankTransaction{}, err
	}
	actor, _ := tx.MatchedBy.ActorID()

	return model.BankTransaction{
		ID:              tx.ID,
		Fingerprint:     tx.NaturalKey().Fingerprint(),
		TransactionDate: entity.NormalizeDate(tx.TransactionDate),
		Description:     tx.Description,
		Reference:       tx.Reference,
		Amount:          tx.Amount,
		CreatedAt:       tx.CreatedAt,
		MatchedUserID:   tx.MatchedUserID,
		MatchConfidence: string(tx.MatchConfidence),
		MatchSignal:     string(tx.MatchSignal),
		MatchedByKind:   string(tx.MatchedBy.Kind()),
		MatchedByActor:  actor,
		MatchedAt:       tx.MatchedAt,
		Candidates:      candidates,
		Version:         tx.Version,
	}, nil
}

// modelToEntity converts a database model back to a transaction entity
func modelToEntity(row *model.BankTransaction) (*entity.Transaction, error) {
	confidence, err := entity.ParseMatchConfidence(row.MatchConfidence)
	if err != nil {
		return nil, err
	}
	source, err := entity.ParseMatchSource(row.MatchedByKind, row.MatchedByActor)
	if err != nil {
		return nil, err
	}
	candidates, err := decodeCandidates(row.Candidates)
	if err != nil {
		return nil, err
	}

	tx := &entity.Transaction{
		ID:              row.ID,
		TransactionDate: entity.NormalizeDate(row.TransactionDate.UTC()),
		Description:     row.Description,
		Reference:       row.Reference,
		Amount:          row.Amount,
		CreatedAt:       row.CreatedAt,
		MatchedUserID:   row.MatchedUserID,
		MatchConfidence: confidence,
		MatchSignal:     entity.MatchSignal(row.MatchSignal),
		MatchedBy:       source,
		Candidates:      candidates,
		Version:         row.Version,
	}
	if row.MatchedAt != nil {
		at := row.MatchedAt.UTC()
		tx.MatchedAt = &at
	}
	return tx, nil
}

func eventToModel(event entity.MatchEvent) model.MatchEvent {
	actor, _ := event.Source.ActorID()
	return model.MatchEvent{
		TransactionID: event.TransactionID,
		Version:       event.Version,
		Confidence:    string(event.Confidence),
		UserID:        event.UserID,
		Signal:        string(event.Signal),
		SourceKind:    string(event.Source.Kind()),
		SourceActor:   actor,
		At:            event.At,
	}
}

func eventToEntity(row *model.MatchEvent) (entity.MatchEvent, error) {
	confidence, err := entity.ParseMatchConfidence(row.Confidence)
	if err != nil {
		return entity.MatchEvent{}, err
	}
	source, err := entity.ParseMatchSource(row.SourceKind, row.SourceActor)
	if err != nil {
		return entity.MatchEvent{}, err
	}
	return entity.MatchEvent{
		TransactionID: row.TransactionID,
		Version:       row.Version,
		Confidence:    confidence,
		UserID:        row.UserID,
		Signal:        entity.MatchSignal(row.Signal),
		Source:        source,
		At:            row.At.UTC(),
	}, nil
}

func encodeCandidates(candidates []entity.MatchCandidate) (string, error) {
	if len(candidates) == 0 {
		return "", nil
	}
	data, err := json.Marshal(candidates)
	if err != nil {
		return "", fmt.Errorf("encoding candidates: %w", err)
	}
	return string(data), nil
}

func decodeCandidates(data string) ([]entity.MatchCandidate, error) {
	if data == "" {
		return nil, nil
	}
	var candidates []entity.MatchCandidate
	if err := json.Unmarshal([]byte(data), &candidates); err != nil {
		return nil, fmt.Errorf("decoding candidates: %w", err)
	}
	return candidates, nil
}
