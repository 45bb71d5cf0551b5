package reconcile

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/usecase/matcher"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/memory"
	coremocks "github.com/amirhossein-jamali/bank-reconciler/mocks/port/core"
)

var fixedTime = time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)

type fixture struct {
	service   *Service
	store     *memory.TransactionStore
	directory *memory.ProfileDirectory
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func fixedClock(t *testing.T) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	clock.EXPECT().Sleep(mock.Anything, mock.Anything).Return(nil).Maybe()
	return clock
}

func sequentialIDs(t *testing.T) *coremocks.MockIDGenerator {
	var seq atomic.Int64
	ids := coremocks.NewMockIDGenerator(t)
	ids.EXPECT().NewID().RunAndReturn(func() string {
		return fmt.Sprintf("tx-%03d", seq.Add(1))
	}).Maybe()
	return ids
}

func newFixture(t *testing.T, profiles ...entity.Profile) *fixture {
	t.Helper()

	clock := fixedClock(t)
	store := memory.NewTransactionStore()
	directory := memory.NewProfileDirectory(profiles...)
	m, err := matcher.New(matcher.DefaultConfig())
	require.NoError(t, err)

	service := NewReconciliationService(
		store,
		directory,
		memory.NewTransactionLockRepository(clock),
		m,
		clock,
		sequentialIDs(t),
		quietLogger(t),
		DefaultConfig(),
	)
	return &fixture{service: service, store: store, directory: directory}
}

func clubProfiles() []entity.Profile {
	return []entity.Profile{
		{ID: "P1", DisplayName: "John Smith", Aliases: []string{"JSMITH25"}, Active: true},
		{ID: "P2", DisplayName: "Jane Doe", Aliases: []string{"JDOE77"}, Active: true},
	}
}

func row(date, description, reference, amount string) entity.RawTransaction {
	return entity.RawTransaction{Date: date, Description: description, Reference: reference, Amount: amount}
}

func (f *fixture) all(t *testing.T) []*entity.Transaction {
	t.Helper()
	rows, err := f.store.List(context.Background(), entity.TransactionFilter{})
	require.NoError(t, err)
	return rows
}

func (f *fixture) only(t *testing.T) *entity.Transaction {
	t.Helper()
	rows := f.all(t)
	require.Len(t, rows, 1)
	return rows[0]
}

func assertInvariant(t *testing.T, rows []*entity.Transaction) {
	t.Helper()
	for _, tx := range rows {
		assert.Equal(t, tx.MatchConfidence == entity.ConfidenceUnmatched, tx.MatchedUserID == nil,
			"transaction %s: confidence %s with user %v", tx.ID, tx.MatchConfidence, tx.MatchedUserID)
	}
}

func TestImportBatch_ExactReferenceScenario(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()

	// Act
	result, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "FASTER PAYMENT JSMITH25", "JSMITH25", "25.00"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.AutoMatched)
	assert.Equal(t, 0, result.Unmatched)

	tx := f.only(t)
	assert.Equal(t, entity.ConfidenceAuto, tx.MatchConfidence)
	assert.Equal(t, "P1", tx.MatchedUser())
	assert.Equal(t, entity.SignalExactReference, tx.MatchSignal)
	assert.True(t, tx.MatchedBy.IsSystem())
	require.NotNil(t, tx.MatchedAt)
	assert.Equal(t, fixedTime, *tx.MatchedAt)

	events, err := f.store.ListMatchEvents(ctx, tx.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, entity.ConfidenceAuto, events[0].Confidence)
}

func TestImportBatch_ReimportIsIdempotent(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()
	batch := []entity.RawTransaction{
		row("2024-03-05", "FASTER PAYMENT JSMITH25", "JSMITH25", "25.00"),
		row("2024-03-05", "BANK TRANSFER THX", "THX", "10.00"),
	}
	_, err := f.service.ImportBatch(ctx, batch)
	require.NoError(t, err)
	before := f.all(t)

	// Act
	again, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		batch[0],
		batch[1],
		row("05/03/2024", " BANK TRANSFER THX ", "THX", "10.0"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, again.Inserted)
	assert.Equal(t, 3, again.SkippedDuplicates)
	assert.Equal(t, before, f.all(t))
}

func TestImportBatch_NoSignalLeavesRowUnmatched(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()

	// Act
	result, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "BANK TRANSFER THX", "THX", "10.00"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Unmatched)
	assert.Equal(t, 0, result.Ambiguous)

	tx := f.only(t)
	assert.True(t, tx.IsUnmatched())
	assert.Nil(t, tx.MatchedUserID)
	assert.True(t, tx.MatchedBy.IsZero())
	assert.Nil(t, tx.MatchedAt)

	events, err := f.store.ListMatchEvents(ctx, tx.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestImportBatch_AmbiguousNamesAreNotGuessed(t *testing.T) {
	// Arrange
	f := newFixture(t,
		entity.Profile{ID: "P1", DisplayName: "John Smith", Active: true},
		entity.Profile{ID: "P2", DisplayName: "Jon Smith", Active: true},
	)

	// Act
	result, err := f.service.ImportBatch(context.Background(), []entity.RawTransaction{
		row("2024-03-05", "PAYMENT", "JOHN SMITH", "30.00"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Unmatched)
	assert.Equal(t, 1, result.Ambiguous)

	tx := f.only(t)
	assert.True(t, tx.IsUnmatched())
	assert.Nil(t, tx.MatchedUserID)
	require.Len(t, tx.Candidates, 2)
	assert.Equal(t, "P1", tx.Candidates[0].ProfileID)
	assert.Equal(t, "P2", tx.Candidates[1].ProfileID)
	assert.True(t, tx.MatchedBy.IsSystem())
}

func TestImportBatch_InvalidRowsAreReported(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)

	// Act
	result, err := f.service.ImportBatch(context.Background(), []entity.RawTransaction{
		{Row: 1, Date: "2024-03-05", Description: "FASTER PAYMENT JSMITH25", Reference: "JSMITH25", Amount: "25.00"},
		{Row: 2, Date: "yesterday", Description: "PAYMENT", Amount: "1.00"},
		{Row: 3, Date: "2024-03-05", Description: "PAYMENT", Amount: "1.005"},
		{Row: 4, Date: "2024-03-05", Description: "   ", Amount: "1.00"},
		{Row: 5, Date: "2024-03-05", Amount: "1.00"},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 4, result.Failed)
	require.Len(t, result.RowErrors, 4)

	expected := []struct {
		row      int
		sentinel error
	}{
		{2, errs.ErrInvalidDate},
		{3, errs.ErrInvalidAmount},
		{4, errs.ErrMissingDescription},
		{5, errs.ErrMissingDescription},
	}
	for i, e := range expected {
		assert.Equal(t, e.row, result.RowErrors[i].Row)
		assert.True(t, errs.IsValidationError(result.RowErrors[i].Err))
		assert.ErrorIs(t, result.RowErrors[i].Err, e.sentinel)
	}
}

func TestImportBatch_EmptyBatch(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.ImportBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.False(t, result.Aborted)
}

func TestManualMatch_SurvivesRerun(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "BANK TRANSFER THX", "THX", "10.00"),
	})
	require.NoError(t, err)
	txID := f.only(t).ID

	// Act
	matched, err := f.service.SetManualMatch(ctx, txID, "P2", "alice")
	require.NoError(t, err)
	full, err := f.service.RerunAutoMatch(ctx, nil)
	require.NoError(t, err)
	scoped, err := f.service.RerunAutoMatch(ctx, []string{txID})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, entity.ConfidenceManual, matched.MatchConfidence)
	assert.Equal(t, 0, full.Examined)
	assert.Equal(t, 1, scoped.SkippedManual)
	assert.Equal(t, 0, scoped.Examined)

	tx := f.only(t)
	assert.Equal(t, entity.ConfidenceManual, tx.MatchConfidence)
	assert.Equal(t, "P2", tx.MatchedUser())
	assert.Equal(t, entity.Human("alice"), tx.MatchedBy)
	assert.Equal(t, matched.Version, tx.Version)
}

func TestManualMatch_OverridesAutoMatch(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "FASTER PAYMENT JSMITH25", "JSMITH25", "25.00"),
	})
	require.NoError(t, err)
	txID := f.only(t).ID

	// Act
	_, err = f.service.SetManualMatch(ctx, txID, "P2", "alice")
	require.NoError(t, err)
	rerun, err := f.service.RerunAutoMatch(ctx, []string{txID})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, rerun.SkippedManual)
	tx := f.only(t)
	assert.Equal(t, "P2", tx.MatchedUser())
	assert.Equal(t, entity.ConfidenceManual, tx.MatchConfidence)
	assert.Equal(t, entity.SignalNone, tx.MatchSignal)
}

func TestManualMatch_Errors(t *testing.T) {
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "BANK TRANSFER THX", "THX", "10.00"),
	})
	require.NoError(t, err)
	txID := f.only(t).ID

	testCases := []struct {
		name     string
		txID     string
		userID   string
		actor    string
		expected error
	}{
		{"Unknown profile", txID, "P9", "alice", errs.ErrProfileNotFound},
		{"Unknown transaction", "missing", "P1", "alice", errs.ErrTransactionNotFound},
		{"Missing actor", txID, "P1", "", errs.ErrValidation},
		{"Missing user", txID, "", "alice", errs.ErrValidation},
		{"Missing transaction id", "", "P1", "alice", errs.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := f.service.SetManualMatch(ctx, tc.txID, tc.userID, tc.actor)

			assert.Nil(t, tx)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	assert.True(t, f.only(t).IsUnmatched())
}

func TestClearMatch(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "FASTER PAYMENT JSMITH25", "JSMITH25", "25.00"),
	})
	require.NoError(t, err)
	txID := f.only(t).ID

	// Act
	cleared, err := f.service.ClearMatch(ctx, txID, "bob")
	require.NoError(t, err)
	again, err := f.service.ClearMatch(ctx, txID, "carol")
	require.NoError(t, err)

	// Assert
	assert.True(t, cleared.IsUnmatched())
	assert.Nil(t, cleared.MatchedUserID)
	assert.Equal(t, entity.Human("bob"), cleared.MatchedBy)
	assert.Equal(t, cleared.Version, again.Version)
	assert.Equal(t, entity.Human("bob"), again.MatchedBy)

	events, err := f.store.ListMatchEvents(ctx, txID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.ConfidenceAuto, events[0].Confidence)
	assert.Equal(t, entity.ConfidenceUnmatched, events[1].Confidence)
	assert.Equal(t, entity.Human("bob"), events[1].Source)

	_, err = f.service.ClearMatch(ctx, "missing", "bob")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestRerunAutoMatch_PicksUpNewProfiles(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "PAYMENT FROM NEWBIE99", "", "15.00"),
	})
	require.NoError(t, err)
	require.True(t, f.only(t).IsUnmatched())
	require.NoError(t, f.directory.UpsertProfile(ctx, entity.Profile{ID: "P3", DisplayName: "New Member", Aliases: []string{"NEWBIE99"}, Active: true}))

	// Act
	first, err := f.service.RerunAutoMatch(ctx, nil)
	require.NoError(t, err)
	afterFirst := f.only(t)
	second, err := f.service.RerunAutoMatch(ctx, nil)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, first.Matched)
	assert.Equal(t, "P3", afterFirst.MatchedUser())
	assert.Equal(t, entity.SignalEmbeddedReference, afterFirst.MatchSignal)

	assert.Equal(t, 1, second.Examined)
	assert.Equal(t, 1, second.Unchanged)
	assert.Equal(t, 0, second.Matched+second.Upgraded)
	assert.Equal(t, afterFirst.Version, f.only(t).Version)
}

func TestRerunAutoMatch_UpgradesButNeverDowngrades(t *testing.T) {
	// Arrange
	f := newFixture(t, entity.Profile{ID: "P1", DisplayName: "John Smith", Active: true})
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "BGC JOHN SMYTH", "", "20.00"),
	})
	require.NoError(t, err)
	require.Equal(t, entity.SignalFuzzyName, f.only(t).MatchSignal)

	// Act
	require.NoError(t, f.directory.UpsertProfile(ctx, entity.Profile{ID: "P1", DisplayName: "John Smith", Aliases: []string{"SMYTH"}, Active: true}))
	upgrade, err := f.service.RerunAutoMatch(ctx, nil)
	require.NoError(t, err)
	upgraded := f.only(t)

	require.NoError(t, f.directory.UpsertProfile(ctx, entity.Profile{ID: "P1", DisplayName: "John Smith", Active: true}))
	weaker, err := f.service.RerunAutoMatch(ctx, nil)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, upgrade.Upgraded)
	assert.Equal(t, entity.SignalEmbeddedReference, upgraded.MatchSignal)
	assert.Equal(t, 1, weaker.Unchanged)
	assert.Equal(t, entity.SignalEmbeddedReference, f.only(t).MatchSignal)
	assert.Equal(t, upgraded.Version, f.only(t).Version)
}

func TestRerunAutoMatch_ReassignsWhenMatchStopsHolding(t *testing.T) {
	// Arrange
	f := newFixture(t,
		entity.Profile{ID: "P1", DisplayName: "John Smith", Aliases: []string{"JSMITH25"}, Active: true},
		entity.Profile{ID: "P3", DisplayName: "Jack Smithers", Active: true},
	)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "FASTER PAYMENT", "JSMITH25", "25.00"),
	})
	require.NoError(t, err)
	require.Equal(t, "P1", f.only(t).MatchedUser())

	require.NoError(t, f.directory.UpsertProfile(ctx, entity.Profile{ID: "P1", DisplayName: "John Smith", Aliases: []string{"JSMITH25"}, Active: false}))
	require.NoError(t, f.directory.UpsertProfile(ctx, entity.Profile{ID: "P3", DisplayName: "Jack Smithers", Aliases: []string{"JSMITH25"}, Active: true}))

	// Act
	first, err := f.service.RerunAutoMatch(ctx, nil)
	require.NoError(t, err)
	reassigned := f.only(t)
	second, err := f.service.RerunAutoMatch(ctx, nil)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, first.Reassigned)
	assert.Equal(t, entity.ConfidenceAuto, reassigned.MatchConfidence)
	assert.Equal(t, "P3", reassigned.MatchedUser())
	assert.True(t, reassigned.MatchedBy.IsSystem())
	assert.Equal(t, 1, second.Unchanged)
	assert.Equal(t, reassigned.Version, f.only(t).Version)
}

func TestRerunAutoMatch_StaleMatchWithoutReplacementIsKept(t *testing.T) {
	// Arrange
	f := newFixture(t, entity.Profile{ID: "P1", DisplayName: "John Smith", Aliases: []string{"JSMITH25"}, Active: true})
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "FASTER PAYMENT", "JSMITH25", "25.00"),
	})
	require.NoError(t, err)
	before := f.only(t)
	require.NoError(t, f.directory.UpsertProfile(ctx, entity.Profile{ID: "P1", DisplayName: "John Smith", Active: false}))

	// Act
	result, err := f.service.RerunAutoMatch(ctx, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Unchanged)
	after := f.only(t)
	assert.Equal(t, entity.ConfidenceAuto, after.MatchConfidence)
	assert.Equal(t, "P1", after.MatchedUser())
	assert.Equal(t, before.Version, after.Version)
}

func TestRerunAutoMatch_DropsCandidatesThatNoLongerClear(t *testing.T) {
	// Arrange
	f := newFixture(t,
		entity.Profile{ID: "P1", DisplayName: "John Smith", Active: true},
		entity.Profile{ID: "P2", DisplayName: "Jon Smith", Active: true},
	)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "PAYMENT", "JOHN SMITH", "30.00"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, f.only(t).Candidates)

	require.NoError(t, f.directory.UpsertProfile(ctx, entity.Profile{ID: "P1", DisplayName: "John Smith", Active: false}))
	require.NoError(t, f.directory.UpsertProfile(ctx, entity.Profile{ID: "P2", DisplayName: "Jon Smith", Active: false}))

	// Act
	first, err := f.service.RerunAutoMatch(ctx, nil)
	require.NoError(t, err)
	cleared := f.only(t)
	second, err := f.service.RerunAutoMatch(ctx, nil)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, first.CandidatesCleared)
	assert.Equal(t, entity.ConfidenceUnmatched, cleared.MatchConfidence)
	assert.Empty(t, cleared.Candidates)
	assert.Equal(t, 1, second.Unchanged)
	assert.Equal(t, cleared.Version, f.only(t).Version)
	assertInvariant(t, f.all(t))
}

func TestRerunAutoMatch_AmbiguousRowsAreNotRewritten(t *testing.T) {
	// Arrange
	f := newFixture(t,
		entity.Profile{ID: "P1", DisplayName: "John Smith", Active: true},
		entity.Profile{ID: "P2", DisplayName: "Jon Smith", Active: true},
	)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "PAYMENT", "JOHN SMITH", "30.00"),
	})
	require.NoError(t, err)
	before := f.only(t)

	// Act
	result, err := f.service.RerunAutoMatch(ctx, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.Ambiguous)
	assert.Equal(t, before.Version, f.only(t).Version)
}

func TestMatchProvenanceAndViews(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "FASTER PAYMENT JSMITH25", "JSMITH25", "25.00"),
		row("2024-03-06", "BANK TRANSFER THX", "THX", "10.00"),
	})
	require.NoError(t, err)
	unmatched, err := f.store.List(ctx, entity.TransactionFilter{Confidences: []entity.MatchConfidence{entity.ConfidenceUnmatched}})
	require.NoError(t, err)
	require.Len(t, unmatched, 1)
	_, err = f.service.SetManualMatch(ctx, unmatched[0].ID, "P2", "alice")
	require.NoError(t, err)

	// Act
	views, err := f.service.ListTransactions(ctx, entity.TransactionFilter{OrderBy: entity.OrderByDate})
	require.NoError(t, err)
	provenance, err := f.service.GetMatchProvenance(ctx, unmatched[0].ID)
	require.NoError(t, err)
	single, err := f.service.GetTransaction(ctx, unmatched[0].ID)
	require.NoError(t, err)

	// Assert
	require.Len(t, views, 2)
	assert.Equal(t, "John Smith", views[0].MatchedDisplayName)
	assert.Equal(t, "Jane Doe", views[1].MatchedDisplayName)
	assert.Equal(t, "Jane Doe", single.MatchedDisplayName)

	assert.Equal(t, entity.ConfidenceManual, provenance.Confidence)
	assert.Equal(t, entity.Human("alice"), provenance.Source)
	require.NotNil(t, provenance.MatchedAt)
	require.Len(t, provenance.History, 1)
	assert.Equal(t, int64(2), provenance.History[0].Version)

	assertInvariant(t, f.all(t))
}

func TestListTransactions_RejectsBadFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ListTransactions(context.Background(), entity.TransactionFilter{Limit: -1})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = f.service.ListTransactions(context.Background(), entity.TransactionFilter{Confidences: []entity.MatchConfidence{"maybe"}})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestDeleteTransaction(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "BANK TRANSFER THX", "THX", "10.00"),
	})
	require.NoError(t, err)
	txID := f.only(t).ID

	// Act
	err = f.service.DeleteTransaction(ctx, txID, "admin")

	// Assert
	require.NoError(t, err)
	_, err = f.service.GetTransaction(ctx, txID)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	assert.ErrorIs(t, f.service.DeleteTransaction(ctx, txID, "admin"), errs.ErrNotFound)
	assert.ErrorIs(t, f.service.DeleteTransaction(ctx, txID, ""), errs.ErrValidation)
}

func TestManualMatch_ConcurrentActionsSerialise(t *testing.T) {
	// Arrange
	f := newFixture(t, clubProfiles()...)
	ctx := context.Background()
	_, err := f.service.ImportBatch(ctx, []entity.RawTransaction{
		row("2024-03-05", "BANK TRANSFER THX", "THX", "10.00"),
	})
	require.NoError(t, err)
	txID := f.only(t).ID

	// Act
	users := []string{"P1", "P2", "P1", "P2"}
	succeeded := make([]bool, len(users))
	var wg sync.WaitGroup
	for i, user := range users {
		wg.Add(1)
		go func(i int, user string) {
			defer wg.Done()
			_, err := f.service.SetManualMatch(ctx, txID, user, fmt.Sprintf("actor-%d", i))
			if err != nil {
				assert.ErrorIs(t, err, errs.ErrTransactionLocked)
				return
			}
			succeeded[i] = true
		}(i, user)
	}
	wg.Wait()

	// Assert
	successes := 0
	for _, ok := range succeeded {
		if ok {
			successes++
		}
	}
	require.GreaterOrEqual(t, successes, 1)

	tx := f.only(t)
	assert.Equal(t, entity.ConfidenceManual, tx.MatchConfidence)
	assert.Equal(t, int64(1+successes), tx.Version)

	events, err := f.store.ListMatchEvents(ctx, txID)
	require.NoError(t, err)
	assert.Len(t, events, successes)
	assertInvariant(t, f.all(t))
}
