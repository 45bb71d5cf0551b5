package profile

import (
	"context"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
)

// DefaultProfiles are the development fixtures loaded into an empty directory
func DefaultProfiles() []entity.Profile {
	return []entity.Profile{
		{ID: "P1", DisplayName: "John Smith", Aliases: []string{"JSMITH25"}, Active: true},
		{ID: "P2", DisplayName: "Jane Doe", Aliases: []string{"JDOE77"}, Active: true},
		{ID: "P3", DisplayName: "Priya Patel", Aliases: []string{"PPATEL", "PATEL FAMILY"}, Active: true},
		{ID: "P4", DisplayName: "Tom O'Brien", Aliases: []string{"TOMOB"}, Active: false},
	}
}

// CreateDefaultProfiles loads DefaultProfiles when the directory has no active profiles
func (u *ProfileUseCase) CreateDefaultProfiles(ctx context.Context) error {
	existing, err := u.directory.ListActiveProfilesWithAliases(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		u.logger.Info("Profiles already present, skipping defaults", map[string]any{
			"count": len(existing),
		})
		return nil
	}

	_, err = u.LoadProfiles(ctx, DefaultProfiles())
	return err
}
