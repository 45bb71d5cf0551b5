package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/statement"
	usecasemocks "github.com/amirhossein-jamali/bank-reconciler/mocks/port/usecase"
)

type harness struct {
	reconciler *usecasemocks.MockReconciliationUseCase
	profiles   *usecasemocks.MockProfileUseCase
	closed     int
}

func newHarness(t *testing.T) *harness {
	return &harness{
		reconciler: usecasemocks.NewMockReconciliationUseCase(t),
		profiles:   usecasemocks.NewMockProfileUseCase(t),
	}
}

func (h *harness) run(args ...string) (string, error) {
	factory := func(context.Context) (*Services, error) {
		return &Services{
			Reconciler: h.reconciler,
			Profiles:   h.profiles,
			Close: func() error {
				h.closed++
				return nil
			},
		}, nil
	}

	out := &bytes.Buffer{}
	cmd := NewRootCommand(factory, statement.DefaultRegistry())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportCommand(t *testing.T) {
	csvContent := "Date,Description,Amount\n2024-03-01,JSMITH25 dues,25.00\n02/03/2024,Unknown,-1.00\n"

	t.Run("Imports a CSV statement", func(t *testing.T) {
		// Setup mocks
		h := newHarness(t)
		h.reconciler.EXPECT().ImportBatch(mock.Anything, mock.MatchedBy(func(rows []entity.RawTransaction) bool {
			return len(rows) == 2 && rows[1].Date == "02/03/2024"
		})).Return(&usecase.ImportResult{Total: 2, Inserted: 2, AutoMatched: 1, Unmatched: 1}, nil).Once()

		// Execute
		out, err := h.run("import", writeFile(t, "march.csv", csvContent))

		// Assertions
		require.NoError(t, err)
		assert.Contains(t, out, `"inserted": 2`)
		assert.Equal(t, 1, h.closed)
	})

	t.Run("Prints counters before reporting an aborted batch", func(t *testing.T) {
		h := newHarness(t)
		storeErr := errs.NewStoreUnavailableError("insert", errors.New("refused"))
		h.reconciler.EXPECT().ImportBatch(mock.Anything, mock.Anything).
			Return(&usecase.ImportResult{Total: 2, Inserted: 1, Aborted: true}, storeErr).Once()

		out, err := h.run("import", "--format", "csv", writeFile(t, "march.txt", csvContent))

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		assert.Contains(t, out, `"aborted": true`)
		assert.Equal(t, 1, h.closed)
	})

	t.Run("Unsupported format", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.run("import", writeFile(t, "march.pdf", csvContent))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported statement format")
		assert.Equal(t, 1, h.closed)
	})
}

func TestRerunCommand(t *testing.T) {
	h := newHarness(t)
	h.reconciler.EXPECT().RerunAutoMatch(mock.Anything, []string{"tx-1", "tx-2"}).
		Return(&usecase.RerunResult{Examined: 2, Matched: 1, Unchanged: 1}, nil).Once()

	out, err := h.run("rerun", "--id", "tx-1", "--id", "tx-2")

	require.NoError(t, err)
	assert.Contains(t, out, `"matched": 1`)
}

func TestManualCommands(t *testing.T) {
	userID := "P1"
	tx := &entity.Transaction{
		ID:              "tx-1",
		Description:     "JSMITH25",
		Amount:          decimal.RequireFromString("25"),
		MatchConfidence: entity.ConfidenceManual,
		MatchedUserID:   &userID,
	}

	t.Run("Match", func(t *testing.T) {
		h := newHarness(t)
		h.reconciler.EXPECT().SetManualMatch(mock.Anything, "tx-1", "P1", "clerk-9").Return(tx, nil).Once()

		out, err := h.run("match", "tx-1", "P1", "--actor", "clerk-9")

		require.NoError(t, err)
		assert.Contains(t, out, `"matchConfidence": "manual"`)
	})

	t.Run("Match requires an actor", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.run("match", "tx-1", "P1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "actor")
	})

	t.Run("Clear", func(t *testing.T) {
		h := newHarness(t)
		cleared := *tx
		cleared.MatchConfidence = entity.ConfidenceUnmatched
		cleared.MatchedUserID = nil
		h.reconciler.EXPECT().ClearMatch(mock.Anything, "tx-1", "clerk-9").Return(&cleared, nil).Once()

		out, err := h.run("clear", "tx-1", "--actor", "clerk-9")

		require.NoError(t, err)
		assert.Contains(t, out, `"matchConfidence": "unmatched"`)
	})

	t.Run("Show", func(t *testing.T) {
		h := newHarness(t)
		h.reconciler.EXPECT().GetTransaction(mock.Anything, "tx-1").
			Return(&usecase.TransactionView{Transaction: tx, MatchedDisplayName: "John Smith"}, nil).Once()
		h.reconciler.EXPECT().GetMatchProvenance(mock.Anything, "tx-1").Return(&usecase.MatchProvenance{
			TransactionID: "tx-1",
			Confidence:    entity.ConfidenceManual,
			MatchedUserID: &userID,
			Source:        entity.Human("clerk-9"),
		}, nil).Once()

		out, err := h.run("show", "tx-1")

		require.NoError(t, err)
		assert.Contains(t, out, `"matchedDisplayName": "John Smith"`)
		assert.Contains(t, out, `"actor": "clerk-9"`)
	})

	t.Run("Show unknown transaction", func(t *testing.T) {
		h := newHarness(t)
		h.reconciler.EXPECT().GetTransaction(mock.Anything, "nope").
			Return(nil, errs.NewTransactionNotFoundError("nope")).Once()

		_, err := h.run("show", "nope")

		assert.True(t, errs.IsNotFoundError(err))
		assert.Equal(t, 1, h.closed)
	})
}

func TestListCommand(t *testing.T) {
	h := newHarness(t)
	h.reconciler.EXPECT().ListTransactions(mock.Anything, mock.MatchedBy(func(f entity.TransactionFilter) bool {
		return len(f.Confidences) == 1 && f.Confidences[0] == entity.ConfidenceUnmatched && f.Limit == 5
	})).Return(nil, nil).Once()

	out, err := h.run("list", "--confidence", "unmatched", "--limit", "5")

	require.NoError(t, err)
	assert.Contains(t, out, `"count": 0`)
}

func TestProfilesCommands(t *testing.T) {
	t.Run("Load reads YAML", func(t *testing.T) {
		// Setup mocks
		h := newHarness(t)
		h.profiles.EXPECT().LoadProfiles(mock.Anything, []entity.Profile{
			{ID: "P1", DisplayName: "John Smith", Aliases: []string{"JSMITH25"}, Active: true},
			{ID: "P2", DisplayName: "Old Member", Active: false},
		}).Return(2, nil).Once()

		path := writeFile(t, "profiles.yaml", strings.Join([]string{
			"profiles:",
			"  - id: P1",
			"    displayName: John Smith",
			"    aliases: [JSMITH25]",
			"  - id: P2",
			"    displayName: Old Member",
			"    active: false",
			"",
		}, "\n"))

		// Execute
		out, err := h.run("profiles", "load", path)

		// Assertions
		require.NoError(t, err)
		assert.Contains(t, out, "loaded 2 of 2 profiles")
	})

	t.Run("Unknown YAML keys are rejected", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.run("profiles", "load", writeFile(t, "bad.yaml", "profiles:\n  - id: P1\n    nickname: x\n"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode profiles")
	})

	t.Run("List", func(t *testing.T) {
		h := newHarness(t)
		h.profiles.EXPECT().ListActiveProfiles(mock.Anything).
			Return([]entity.Profile{{ID: "P1", DisplayName: "John Smith", Active: true}}, nil).Once()

		out, err := h.run("profiles", "list")

		require.NoError(t, err)
		assert.Contains(t, out, `"displayName": "John Smith"`)
	})
}
