package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	tport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// DateLayout is the canonical rendering of a transaction date
const DateLayout = "2006-01-02"

// Transaction is one line of an imported bank statement together with its
// current match state. Only the match fields are mutable
type Transaction struct {
	ID              string          // Unique identifier, assigned at import
	TransactionDate time.Time       // Date of the bank event (UTC midnight)
	Description     string          // Statement narrative
	Reference       *string         // Optional payment reference
	Amount          decimal.Decimal // Signed exact amount
	CreatedAt       time.Time       // When the row was imported

	MatchedUserID   *string
	MatchConfidence MatchConfidence
	MatchSignal     MatchSignal
	MatchedAt       *time.Time
	MatchedBy       MatchSource
	Candidates      []MatchCandidate

	// Version is bumped by the store on every match-field write and is the
	// compare-and-swap token for UpdateMatchFields
	Version int64
}

// NewTransaction creates an unmatched transaction with basic validation
func NewTransaction(
	id string,
	date time.Time,
	description string,
	reference *string,
	amount decimal.Decimal,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidTransactionID
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errs.ErrMissingDescription
	}

	if date.IsZero() {
		return nil, errs.ErrInvalidDate
	}

	return &Transaction{
		ID:              id,
		TransactionDate: NormalizeDate(date),
		Description:     description,
		Reference:       normalizeReference(reference),
		Amount:          amount,
		CreatedAt:       timeProvider.Now(),
		MatchConfidence: ConfidenceUnmatched,
	}, nil
}

// NaturalKey returns the deduplication key of the transaction
func (t *Transaction) NaturalKey() NaturalKey {
	return NaturalKey{
		Date:        t.TransactionDate,
		Description: t.Description,
		Reference:   t.ReferenceValue(),
		Amount:      t.Amount,
	}
}

// ReferenceValue returns the reference or an empty string
func (t *Transaction) ReferenceValue() string {
	if t.Reference == nil {
		return ""
	}
	return *t.Reference
}

// MatchedUser returns the matched profile ID or an empty string
func (t *Transaction) MatchedUser() string {
	if t.MatchedUserID == nil {
		return ""
	}
	return *t.MatchedUserID
}

// IsManual reports whether a human owns the current match
func (t *Transaction) IsManual() bool { return t.MatchConfidence == ConfidenceManual }

// IsAuto reports whether the current match was set automatically
func (t *Transaction) IsAuto() bool { return t.MatchConfidence == ConfidenceAuto }

// IsUnmatched reports whether the transaction has no match
func (t *Transaction) IsUnmatched() bool { return t.MatchConfidence == ConfidenceUnmatched }

// CurrentMatch returns the match fields as one value
func (t *Transaction) CurrentMatch() MatchFields {
	return MatchFields{
		Confidence: t.MatchConfidence,
		UserID:     t.MatchedUserID,
		Signal:     t.MatchSignal,
		Source:     t.MatchedBy,
		At:         t.MatchedAt,
		Candidates: t.Candidates,
	}
}

// ApplyMatch replaces all match fields at once
func (t *Transaction) ApplyMatch(fields MatchFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	t.MatchConfidence = fields.Confidence
	t.MatchedUserID = copyString(fields.UserID)
	t.MatchSignal = fields.Signal
	t.MatchedBy = fields.Source
	t.MatchedAt = copyTime(fields.At)
	t.Candidates = append([]MatchCandidate(nil), fields.Candidates...)
	return nil
}

// Clone returns a deep copy so callers cannot mutate stored state
func (t *Transaction) Clone() *Transaction {
	clone := *t
	clone.Reference = copyString(t.Reference)
	clone.MatchedUserID = copyString(t.MatchedUserID)
	clone.MatchedAt = copyTime(t.MatchedAt)
	clone.Candidates = append([]MatchCandidate(nil), t.Candidates...)
	return &clone
}

// NaturalKey identifies a statement line across re-imports
type NaturalKey struct {
	Date        time.Time
	Description string
	Reference   string
	Amount      decimal.Decimal
}

// Canonical renders the key in a stable textual form
func (k NaturalKey) Canonical() string {
	return strings.Join([]string{
		NormalizeDate(k.Date).Format(DateLayout),
		strings.TrimSpace(k.Description),
		strings.TrimSpace(k.Reference),
		canonicalAmount(k.Amount),
	}, "|")
}

// Fingerprint is the hex SHA-256 of the canonical key, stored under a unique index
func (k NaturalKey) Fingerprint() string {
	sum := sha256.Sum256([]byte(k.Canonical()))
	return hex.EncodeToString(sum[:])
}

// NormalizeDate truncates a timestamp to its UTC calendar date
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizeReference(reference *string) *string {
	if reference == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reference)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
