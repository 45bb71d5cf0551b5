package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
)

func TestProfileDirectory(t *testing.T) {
	ctx := context.Background()
	directory := NewProfileDirectory(
		entity.Profile{ID: "P2", DisplayName: "Jane Doe", Aliases: []string{"JDOE77"}, Active: true},
		entity.Profile{ID: "P1", DisplayName: "John Smith", Aliases: []string{"JSMITH25"}, Active: true},
		entity.Profile{ID: "P9", DisplayName: "Former Member", Active: false},
	)

	t.Run("Active profiles ordered by id", func(t *testing.T) {
		profiles, err := directory.ListActiveProfilesWithAliases(ctx)

		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "P1", profiles[0].ID)
		assert.Equal(t, "P2", profiles[1].ID)
	})

	t.Run("Find includes inactive and skips unknown", func(t *testing.T) {
		profiles, err := directory.FindByIDs(ctx, []string{"P9", "P404", "P1"})

		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "P1", profiles[0].ID)
		assert.Equal(t, "P9", profiles[1].ID)
	})

	t.Run("Returned aliases are copies", func(t *testing.T) {
		profiles, err := directory.FindByIDs(ctx, []string{"P1"})
		require.NoError(t, err)
		profiles[0].Aliases[0] = "CHANGED"

		again, err := directory.FindByIDs(ctx, []string{"P1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"JSMITH25"}, again[0].Aliases)
	})

	t.Run("Upsert replaces", func(t *testing.T) {
		err := directory.UpsertProfile(ctx, entity.Profile{ID: "P9", DisplayName: "Returning Member", Aliases: []string{"BACK"}, Active: true})
		require.NoError(t, err)

		profiles, err := directory.ListActiveProfilesWithAliases(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 3)
		assert.Equal(t, "Returning Member", profiles[2].DisplayName)
	})

	t.Run("Canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := directory.ListActiveProfilesWithAliases(canceled)

		assert.True(t, errs.IsStoreError(err))
	})
}
