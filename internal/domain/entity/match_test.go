package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFields_Validate(t *testing.T) {
	at := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		fields  MatchFields
		wantErr bool
	}{
		{"Fresh unmatched", UnmatchedFields(), false},
		{"Auto match", AutoMatch(MatchCandidate{ProfileID: "P1", Signal: SignalFuzzyName}, at), false},
		{"Unresolved", UnresolvedMatch([]MatchCandidate{{ProfileID: "P1"}, {ProfileID: "P2"}}, at), false},
		{"Manual match", ManualMatch("P1", "alice", at), false},
		{"Cleared", ClearedMatch("alice", at), false},
		{"Unknown confidence", MatchFields{Confidence: "maybe"}, true},
		{"Unmatched with user", MatchFields{Confidence: ConfidenceUnmatched, UserID: strPtr("P1")}, true},
		{"Auto without user", MatchFields{Confidence: ConfidenceAuto, Signal: SignalFuzzyName, Source: System(), At: &at}, true},
		{"Manual with empty user", MatchFields{Confidence: ConfidenceManual, UserID: strPtr(""), Source: Human("alice"), At: &at}, true},
		{"Manual by system", MatchFields{Confidence: ConfidenceManual, UserID: strPtr("P1"), Source: System(), At: &at}, true},
		{"Auto by human", MatchFields{Confidence: ConfidenceAuto, UserID: strPtr("P1"), Signal: SignalFuzzyName, Source: Human("a"), At: &at}, true},
		{"Auto without signal", MatchFields{Confidence: ConfidenceAuto, UserID: strPtr("P1"), Source: System(), At: &at}, true},
		{"Source without timestamp", MatchFields{Confidence: ConfidenceUnmatched, Source: System()}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fields.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidMatchState)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchSource(t *testing.T) {
	t.Run("Variants", func(t *testing.T) {
		assert.True(t, System().IsSystem())
		assert.Equal(t, "system", System().String())

		human := Human("alice")
		actor, ok := human.ActorID()
		assert.True(t, ok)
		assert.Equal(t, "alice", actor)
		assert.Equal(t, "human:alice", human.String())

		_, ok = System().ActorID()
		assert.False(t, ok)
		assert.True(t, MatchSource{}.IsZero())
	})

	t.Run("Parse", func(t *testing.T) {
		src, err := ParseMatchSource("human", "bob")
		require.NoError(t, err)
		assert.Equal(t, Human("bob"), src)

		src, err = ParseMatchSource("", "")
		require.NoError(t, err)
		assert.True(t, src.IsZero())

		_, err = ParseMatchSource("human", "")
		assert.ErrorIs(t, err, errs.ErrInvalidMatchState)

		_, err = ParseMatchSource("robot", "")
		assert.ErrorIs(t, err, errs.ErrInvalidMatchState)
	})
}

func TestMatchSignal_Rank(t *testing.T) {
	assert.True(t, SignalExactReference.StrongerThan(SignalEmbeddedReference))
	assert.True(t, SignalEmbeddedReference.StrongerThan(SignalFuzzyName))
	assert.True(t, SignalFuzzyName.StrongerThan(SignalNone))
	assert.False(t, SignalFuzzyName.StrongerThan(SignalFuzzyName))
}

func TestParseMatchConfidence(t *testing.T) {
	c, err := ParseMatchConfidence("manual")
	require.NoError(t, err)
	assert.Equal(t, ConfidenceManual, c)

	_, err = ParseMatchConfidence("MANUAL")
	assert.ErrorIs(t, err, errs.ErrInvalidMatchState)
}

func TestMatchOutcome(t *testing.T) {
	assert.False(t, MatchOutcome{}.IsMatch())
	assert.False(t, MatchOutcome{}.IsAmbiguous())
	assert.True(t, MatchOutcome{Best: &MatchCandidate{ProfileID: "P1"}}.IsMatch())
	assert.True(t, MatchOutcome{Ambiguous: []MatchCandidate{{ProfileID: "P1"}, {ProfileID: "P2"}}}.IsAmbiguous())
}

func TestNewMatchEvent(t *testing.T) {
	at := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

	event := NewMatchEvent("tx-1", 3, ManualMatch("P1", "alice", at))

	assert.Equal(t, "tx-1", event.TransactionID)
	assert.Equal(t, int64(3), event.Version)
	assert.Equal(t, ConfidenceManual, event.Confidence)
	require.NotNil(t, event.UserID)
	assert.Equal(t, "P1", *event.UserID)
	assert.Equal(t, Human("alice"), event.Source)
	assert.Equal(t, at, event.At)
}

func TestProfile(t *testing.T) {
	p := Profile{ID: "P1", Aliases: []string{"JSMITH25", "John  Smith"}}
	assert.True(t, p.HasAlias(" jsmith25"))
	assert.True(t, p.HasAlias("john smith"))
	assert.False(t, p.HasAlias("jsmith"))

	profiles := []Profile{{ID: "P3"}, {ID: "P1"}, {ID: "P2"}}
	SortProfiles(profiles)
	assert.Equal(t, "P1", profiles[0].ID)
	assert.Equal(t, "P3", profiles[2].ID)
}
