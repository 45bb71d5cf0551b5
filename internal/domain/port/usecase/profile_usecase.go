package usecase

import (
	"context"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
)

// ProfileUseCase defines the profile operations used for seeding and inspection
type ProfileUseCase interface {
	// ListActiveProfiles returns the profiles the matcher currently sees
	ListActiveProfiles(ctx context.Context) ([]entity.Profile, error)

	// LoadProfiles upserts the given profiles and returns how many were written
	LoadProfiles(ctx context.Context, profiles []entity.Profile) (int, error)
}
