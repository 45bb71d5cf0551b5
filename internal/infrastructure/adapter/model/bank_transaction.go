package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction represents the database model for imported statement lines
type BankTransaction struct {
	ID              string          `gorm:"primaryKey;size:64"`
	Fingerprint     string          `gorm:"uniqueIndex:idx_bank_transactions_fingerprint;not null;size:64"`
	TransactionDate time.Time       `gorm:"not null;index"`
	Description     string          `gorm:"not null;type:text"`
	Reference       *string         `gorm:"size:255"`
	Amount          decimal.Decimal `gorm:"not null;type:decimal(20,4)"`
	CreatedAt       time.Time       `gorm:"not null"`

	MatchedUserID   *string    `gorm:"size:64;index"`
	MatchConfidence string     `gorm:"not null;size:16"`
	MatchSignal     string     `gorm:"size:32"`
	MatchedByKind   string     `gorm:"size:16"`
	MatchedByActor  string     `gorm:"size:255"`
	MatchedAt       *time.Time
	Candidates      string `gorm:"type:text"` // JSON array, empty when none

	Version int64 `gorm:"not null;default:1"`
}

// TableName specifies the table name for BankTransaction
func (BankTransaction) TableName() string {
	return "bank_transactions"
}

// MatchEvent is one row of the append-only match history
type MatchEvent struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID string    `gorm:"not null;size:64;index:idx_match_events_transaction_version,priority:1"`
	Version       int64     `gorm:"not null;index:idx_match_events_transaction_version,priority:2"`
	Confidence    string    `gorm:"not null;size:16"`
	UserID        *string   `gorm:"size:64"`
	Signal        string    `gorm:"size:32"`
	SourceKind    string    `gorm:"not null;size:16"`
	SourceActor   string    `gorm:"size:255"`
	At            time.Time `gorm:"not null"`
}

// TableName specifies the table name for MatchEvent
func (MatchEvent) TableName() string {
	return "match_events"
}
