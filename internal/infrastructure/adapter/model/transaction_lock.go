package model

import (
	"time"
)

// TransactionLock represents a lock on a bank transaction held during a manual action
type TransactionLock struct {
	TransactionID string    `gorm:"primaryKey;size:64;not null"`
	Holder        string    `gorm:"size:36;not null;default:''"`
	LockedAt      time.Time `gorm:"not null"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for TransactionLock
func (TransactionLock) TableName() string {
	return "transaction_locks"
}
