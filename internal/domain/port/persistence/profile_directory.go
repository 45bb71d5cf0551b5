package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
)

// ProfileDirectory is the read-only view of member profiles
type ProfileDirectory interface {
	// ListActiveProfilesWithAliases returns every active profile with its aliases, ordered by ID
	//
	// Possible errors:
	// - StoreError: If the directory cannot be read
	ListActiveProfilesWithAliases(ctx context.Context) ([]entity.Profile, error)

	// FindByIDs returns the profiles with the given IDs, active or not. Unknown
	// IDs are omitted from the result
	//
	// Possible errors:
	// - StoreError: If the directory cannot be read
	FindByIDs(ctx context.Context, ids []string) ([]entity.Profile, error)
}

// ProfileWriter seeds the directory from fixtures and the CLI. The reconciler never uses it
type ProfileWriter interface {
	// UpsertProfile creates or replaces a profile and its aliases
	UpsertProfile(ctx context.Context, profile entity.Profile) error
}
