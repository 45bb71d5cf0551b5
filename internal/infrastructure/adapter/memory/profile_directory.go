package memory

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
)

// ProfileDirectory holds profiles in memory
type ProfileDirectory struct {
	mu       sync.RWMutex
	profiles map[string]entity.Profile
}

var (
	_ persistence.ProfileDirectory = (*ProfileDirectory)(nil)
	_ persistence.ProfileWriter    = (*ProfileDirectory)(nil)
)

// NewProfileDirectory creates a directory seeded with profiles
func NewProfileDirectory(profiles ...entity.Profile) *ProfileDirectory {
	d := &ProfileDirectory{profiles: make(map[string]entity.Profile, len(profiles))}
	for _, p := range profiles {
		d.profiles[p.ID] = copyProfile(p)
	}
	return d
}

// ListActiveProfilesWithAliases returns active profiles ordered by ID
func (d *ProfileDirectory) ListActiveProfilesWithAliases(ctx context.Context) ([]entity.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreError("list_profiles", false, err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]entity.Profile, 0, len(d.profiles))
	for _, p := range d.profiles {
		if p.Active {
			out = append(out, copyProfile(p))
		}
	}
	entity.SortProfiles(out)
	return out, nil
}

// FindByIDs returns the known profiles among ids
func (d *ProfileDirectory) FindByIDs(ctx context.Context, ids []string) ([]entity.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreError("find_profiles", false, err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]entity.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := d.profiles[id]; ok {
			out = append(out, copyProfile(p))
		}
	}
	entity.SortProfiles(out)
	return out, nil
}

// UpsertProfile creates or replaces a profile
func (d *ProfileDirectory) UpsertProfile(ctx context.Context, profile entity.Profile) error {
	if err := ctx.Err(); err != nil {
		return errs.NewStoreError("upsert_profile", false, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.profiles[profile.ID] = copyProfile(profile)
	return nil
}

func copyProfile(p entity.Profile) entity.Profile {
	p.Aliases = append([]string(nil), p.Aliases...)
	return p
}
