package profile

import (
	"context"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
)

// ProfileUseCase handles loading and inspecting member profiles
type ProfileUseCase struct {
	directory persistence.ProfileDirectory
	writer    persistence.ProfileWriter
	logger    coreport.Logger
}

var _ usecase.ProfileUseCase = (*ProfileUseCase)(nil)

// NewProfileUseCase creates a new ProfileUseCase
func NewProfileUseCase(
	directory persistence.ProfileDirectory,
	writer persistence.ProfileWriter,
	logger coreport.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		directory: directory,
		writer:    writer,
		logger:    logger,
	}
}

// ListActiveProfiles returns the profiles the matcher currently sees
func (u *ProfileUseCase) ListActiveProfiles(ctx context.Context) ([]entity.Profile, error) {
	return u.directory.ListActiveProfilesWithAliases(ctx)
}

// LoadProfiles validates every profile first and then upserts them one by one
// It returns the number written before any failure
func (u *ProfileUseCase) LoadProfiles(ctx context.Context, profiles []entity.Profile) (int, error) {
	cleaned := make([]entity.Profile, 0, len(profiles))
	seen := make(map[string]int, len(profiles))

	for i, p := range profiles {
		normalized, err := normalizeProfile(i+1, p)
		if err != nil {
			return 0, err
		}
		if first, ok := seen[normalized.ID]; ok {
			return 0, errs.NewValidationError(i+1, "id", normalized.ID, "duplicate of entry "+strconv.Itoa(first), errs.ErrValidation)
		}
		seen[normalized.ID] = i + 1
		cleaned = append(cleaned, normalized)
	}

	written := 0
	for _, p := range cleaned {
		if err := u.writer.UpsertProfile(ctx, p); err != nil {
			u.logger.Error("Failed to upsert profile", map[string]any{
				"profile_id": p.ID,
				"error":      err.Error(),
			})
			return written, err
		}
		written++
	}

	u.logger.Info("Profiles loaded", map[string]any{
		"count": written,
	})
	return written, nil
}

// normalizeProfile trims fields and drops blank or repeated aliases
func normalizeProfile(entry int, p entity.Profile) (entity.Profile, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return p, errs.NewValidationError(entry, "id", p.ID, "profile id is required", errs.ErrInvalidUserID)
	}

	p.DisplayName = strings.TrimSpace(p.DisplayName)
	if p.DisplayName == "" {
		return p, errs.NewValidationError(entry, "display_name", p.DisplayName, "display name is required", errs.ErrValidation)
	}

	aliases := make([]string, 0, len(p.Aliases))
	seen := make(map[string]struct{}, len(p.Aliases))
	for _, alias := range p.Aliases {
		alias = strings.TrimSpace(alias)
		key := entity.NormalizeText(alias)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		aliases = append(aliases, alias)
	}
	p.Aliases = aliases
	return p, nil
}
