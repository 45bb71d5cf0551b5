package repository

import (
	"context"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository implements the profile directory ports using GORM
type ProfileRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var (
	_ persistence.ProfileDirectory = (*ProfileRepository)(nil)
	_ persistence.ProfileWriter    = (*ProfileRepository)(nil)
)

// NewProfileRepository creates a new ProfileRepository instance
func NewProfileRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// ListActiveProfilesWithAliases returns active profiles ordered by ID
func (r *ProfileRepository) ListActiveProfilesWithAliases(ctx context.Context) ([]entity.Profile, error) {
	var rows []model.Profile
	err := r.db.WithContext(ctx).
		Preload("Aliases", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("active = ?", true).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Failed to list active profiles", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.ToStoreError("list_active_profiles", err)
	}

	return profilesToEntities(rows), nil
}

// FindByIDs returns the profiles with the given IDs regardless of their status
func (r *ProfileRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []model.Profile
	err := r.db.WithContext(ctx).
		Preload("Aliases", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.ToStoreError("find_profiles", err)
	}

	return profilesToEntities(rows), nil
}

// UpsertProfile creates or replaces a profile and its alias list
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile entity.Profile) error {
	now := r.timeProvider.Now()
	row := model.Profile{
		ID:          profile.ID,
		DisplayName: profile.DisplayName,
		Active:      profile.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Omit("Aliases").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "active", "updated_at"}),
		}).Create(&row)
		if upsert.Error != nil {
			return upsert.Error
		}

		if err := tx.Where("profile_id = ?", profile.ID).Delete(&model.ProfileAlias{}).Error; err != nil {
			return err
		}
		if len(profile.Aliases) == 0 {
			return nil
		}

		aliases := make([]model.ProfileAlias, 0, len(profile.Aliases))
		for _, alias := range profile.Aliases {
			aliases = append(aliases, model.ProfileAlias{ProfileID: profile.ID, Alias: alias})
		}
		return tx.Create(&aliases).Error
	})

	if err != nil {
		r.logger.Error("Failed to upsert profile", map[string]any{
			"profile_id": profile.ID,
			"error":      err.Error(),
		})
		return r.errorClassifier.ToStoreError("upsert_profile", err)
	}

	r.logger.Debug("Profile upserted", map[string]any{
		"profile_id": profile.ID,
		"aliases":    len(profile.Aliases),
		"active":     profile.Active,
	})
	return nil
}

func profilesToEntities(rows []model.Profile) []entity.Profile {
	profiles := make([]entity.Profile, 0, len(rows))
	for _, row := range rows {
		profile := entity.Profile{
			ID:          row.ID,
			DisplayName: row.DisplayName,
			Active:      row.Active,
		}
		for _, alias := range row.Aliases {
			profile.Aliases = append(profile.Aliases, alias.Alias)
		}
		profiles = append(profiles, profile)
	}
	return profiles
}
