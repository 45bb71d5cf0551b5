package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/bank-reconciler/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/bank-reconciler/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadProfiles(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful load normalises aliases", func(t *testing.T) {
		// Setup mocks
		mockDirectory := persistencemocks.NewMockProfileDirectory(t)
		mockWriter := persistencemocks.NewMockProfileWriter(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockWriter.EXPECT().UpsertProfile(mock.Anything, mock.MatchedBy(func(p entity.Profile) bool {
			return p.ID == "P1" && p.DisplayName == "John Smith" && len(p.Aliases) == 1 && p.Aliases[0] == "JSMITH25"
		})).Return(nil).Once()
		mockWriter.EXPECT().UpsertProfile(mock.Anything, mock.MatchedBy(func(p entity.Profile) bool {
			return p.ID == "P2"
		})).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		// Create use case instance
		profileUseCase := NewProfileUseCase(mockDirectory, mockWriter, mockLogger)

		// Execute
		count, err := profileUseCase.LoadProfiles(ctx, []entity.Profile{
			{ID: " P1 ", DisplayName: " John Smith ", Aliases: []string{"JSMITH25", " jsmith25 ", "  "}, Active: true},
			{ID: "P2", DisplayName: "Jane Doe", Active: true},
		})

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Invalid entries are rejected before any write", func(t *testing.T) {
		testCases := []struct {
			name     string
			profiles []entity.Profile
			expected error
		}{
			{"Missing id", []entity.Profile{{DisplayName: "Nobody"}}, errs.ErrInvalidUserID},
			{"Missing display name", []entity.Profile{{ID: "P1"}}, errs.ErrValidation},
			{"Duplicate id", []entity.Profile{{ID: "P1", DisplayName: "A"}, {ID: "P1", DisplayName: "B"}}, errs.ErrValidation},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// Setup mocks
				mockDirectory := persistencemocks.NewMockProfileDirectory(t)
				mockWriter := persistencemocks.NewMockProfileWriter(t)
				mockLogger := coremocks.NewMockLogger(t)

				profileUseCase := NewProfileUseCase(mockDirectory, mockWriter, mockLogger)

				// Execute
				count, err := profileUseCase.LoadProfiles(ctx, tc.profiles)

				// Assertions
				assert.Equal(t, 0, count)
				assert.ErrorIs(t, err, tc.expected)
			})
		}
	})

	t.Run("Writer failure reports partial count", func(t *testing.T) {
		// Setup mocks
		mockDirectory := persistencemocks.NewMockProfileDirectory(t)
		mockWriter := persistencemocks.NewMockProfileWriter(t)
		mockLogger := coremocks.NewMockLogger(t)
		failure := errs.NewStoreError("upsert_profile", false, errors.New("disk full"))

		// Setup expectations
		mockWriter.EXPECT().UpsertProfile(mock.Anything, mock.Anything).Return(nil).Once()
		mockWriter.EXPECT().UpsertProfile(mock.Anything, mock.Anything).Return(failure).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		profileUseCase := NewProfileUseCase(mockDirectory, mockWriter, mockLogger)

		// Execute
		count, err := profileUseCase.LoadProfiles(ctx, []entity.Profile{
			{ID: "P1", DisplayName: "A"},
			{ID: "P2", DisplayName: "B"},
			{ID: "P3", DisplayName: "C"},
		})

		// Assertions
		assert.Equal(t, 1, count)
		assert.ErrorIs(t, err, errs.ErrStore)
	})
}

func TestCreateDefaultProfiles(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty directory is seeded", func(t *testing.T) {
		mockDirectory := persistencemocks.NewMockProfileDirectory(t)
		mockWriter := persistencemocks.NewMockProfileWriter(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockDirectory.EXPECT().ListActiveProfilesWithAliases(mock.Anything).Return(nil, nil).Once()
		mockWriter.EXPECT().UpsertProfile(mock.Anything, mock.Anything).Return(nil).Times(len(DefaultProfiles()))
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		profileUseCase := NewProfileUseCase(mockDirectory, mockWriter, mockLogger)

		err := profileUseCase.CreateDefaultProfiles(ctx)

		require.NoError(t, err)
	})

	t.Run("Existing profiles are kept", func(t *testing.T) {
		mockDirectory := persistencemocks.NewMockProfileDirectory(t)
		mockWriter := persistencemocks.NewMockProfileWriter(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockDirectory.EXPECT().ListActiveProfilesWithAliases(mock.Anything).Return([]entity.Profile{{ID: "P9"}}, nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		profileUseCase := NewProfileUseCase(mockDirectory, mockWriter, mockLogger)

		err := profileUseCase.CreateDefaultProfiles(ctx)

		require.NoError(t, err)
	})
}

func TestListActiveProfiles(t *testing.T) {
	mockDirectory := persistencemocks.NewMockProfileDirectory(t)
	mockWriter := persistencemocks.NewMockProfileWriter(t)
	mockLogger := coremocks.NewMockLogger(t)
	profiles := DefaultProfiles()[:2]

	mockDirectory.EXPECT().ListActiveProfilesWithAliases(mock.Anything).Return(profiles, nil).Once()

	profileUseCase := NewProfileUseCase(mockDirectory, mockWriter, mockLogger)

	got, err := profileUseCase.ListActiveProfiles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, profiles, got)
}
