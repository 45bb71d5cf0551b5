package model

import (
	"time"
)

// Profile represents the database model for member profiles
type Profile struct {
	ID          string         `gorm:"primaryKey;size:64"`
	DisplayName string         `gorm:"not null;size:255"`
	Active      bool           `gorm:"not null;index"`
	Aliases     []ProfileAlias `gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

// TableName specifies the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// ProfileAlias is a payment reference a member is known to use
type ProfileAlias struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ProfileID string `gorm:"not null;size:64;index"`
	Alias     string `gorm:"not null;size:255"`
}

// TableName specifies the table name for ProfileAlias
func (ProfileAlias) TableName() string {
	return "profile_aliases"
}
