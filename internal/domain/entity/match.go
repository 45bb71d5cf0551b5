package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
)

// MatchConfidence is the match state of a transaction
type MatchConfidence string

// Match confidence values
const (
	ConfidenceAuto      MatchConfidence = "auto"
	ConfidenceManual    MatchConfidence = "manual"
	ConfidenceUnmatched MatchConfidence = "unmatched"
)

// IsValid reports whether c is one of the known confidence values
func (c MatchConfidence) IsValid() bool {
	return c == ConfidenceAuto || c == ConfidenceManual || c == ConfidenceUnmatched
}

// ParseMatchConfidence converts a string into a MatchConfidence
func ParseMatchConfidence(value string) (MatchConfidence, error) {
	c := MatchConfidence(value)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown confidence %q", errs.ErrInvalidMatchState, value)
	}
	return c, nil
}

// MatchSignal names the matcher tier that produced a candidate
type MatchSignal string

// Match signals, strongest first
const (
	SignalNone              MatchSignal = ""
	SignalExactReference    MatchSignal = "exact-reference"
	SignalEmbeddedReference MatchSignal = "embedded-reference"
	SignalFuzzyName         MatchSignal = "fuzzy-name"
)

// Rank orders signals by strength; a higher rank is a stronger signal
func (s MatchSignal) Rank() int {
	switch s {
	case SignalExactReference:
		return 3
	case SignalEmbeddedReference:
		return 2
	case SignalFuzzyName:
		return 1
	default:
		return 0
	}
}

// StrongerThan reports whether s outranks other
func (s MatchSignal) StrongerThan(other MatchSignal) bool {
	return s.Rank() > other.Rank()
}

// MatchSourceKind discriminates the MatchSource variants
type MatchSourceKind string

// Match source kinds
const (
	SourceKindNone   MatchSourceKind = ""
	SourceKindSystem MatchSourceKind = "system"
	SourceKindHuman  MatchSourceKind = "human"
)

// MatchSource records who set the current match fields. It is either
// System or Human{actorID}; the zero value means nobody has set them yet
type MatchSource struct {
	kind    MatchSourceKind
	actorID string
}

// System is the source used by automatic passes
func System() MatchSource {
	return MatchSource{kind: SourceKindSystem}
}

// Human is the source used by manual actions
func Human(actorID string) MatchSource {
	return MatchSource{kind: SourceKindHuman, actorID: actorID}
}

// ParseMatchSource rebuilds a MatchSource from its persisted columns
func ParseMatchSource(kind, actorID string) (MatchSource, error) {
	switch MatchSourceKind(kind) {
	case SourceKindNone:
		return MatchSource{}, nil
	case SourceKindSystem:
		return System(), nil
	case SourceKindHuman:
		if actorID == "" {
			return MatchSource{}, fmt.Errorf("%w: human source without actor", errs.ErrInvalidMatchState)
		}
		return Human(actorID), nil
	default:
		return MatchSource{}, fmt.Errorf("%w: unknown source kind %q", errs.ErrInvalidMatchState, kind)
	}
}

// Kind returns the variant tag
func (s MatchSource) Kind() MatchSourceKind { return s.kind }

// ActorID returns the human actor, if any
func (s MatchSource) ActorID() (string, bool) {
	return s.actorID, s.kind == SourceKindHuman
}

// IsSystem reports whether the source is an automatic pass
func (s MatchSource) IsSystem() bool { return s.kind == SourceKindSystem }

// IsHuman reports whether the source is a manual action
func (s MatchSource) IsHuman() bool { return s.kind == SourceKindHuman }

// IsZero reports whether no source was recorded
func (s MatchSource) IsZero() bool { return s.kind == SourceKindNone }

func (s MatchSource) String() string {
	switch s.kind {
	case SourceKindSystem:
		return "system"
	case SourceKindHuman:
		return "human:" + s.actorID
	default:
		return "none"
	}
}

// MatchCandidate is a transient matcher result for one profile
type MatchCandidate struct {
	ProfileID string      `json:"profileId"`
	Score     float64     `json:"score"`
	Signal    MatchSignal `json:"signal"`
	Fragment  string      `json:"fragment"`
}

// MatchOutcome is what the matcher returns for one transaction. Best is set
// when a single candidate wins; Ambiguous is set when several profiles
// cleared the fuzzy tier and none may be chosen automatically
type MatchOutcome struct {
	Best      *MatchCandidate
	Ambiguous []MatchCandidate
}

// IsMatch reports whether the outcome names a winning candidate
func (o MatchOutcome) IsMatch() bool { return o.Best != nil }

// IsAmbiguous reports whether several candidates tied for the fuzzy tier
func (o MatchOutcome) IsAmbiguous() bool { return o.Best == nil && len(o.Ambiguous) > 1 }

// MatchFields is the unit written by every match mutation. Build values with
// the constructors below; the store persists all fields together
type MatchFields struct {
	Confidence MatchConfidence
	UserID     *string
	Signal     MatchSignal
	Source     MatchSource
	At         *time.Time
	Candidates []MatchCandidate
}

// UnmatchedFields are the fields of a freshly imported row nobody has assessed
func UnmatchedFields() MatchFields {
	return MatchFields{Confidence: ConfidenceUnmatched}
}

// AutoMatch builds the fields for a system match
func AutoMatch(candidate MatchCandidate, at time.Time) MatchFields {
	userID := candidate.ProfileID
	return MatchFields{
		Confidence: ConfidenceAuto,
		UserID:     &userID,
		Signal:     candidate.Signal,
		Source:     System(),
		At:         &at,
	}
}

// UnresolvedMatch builds the fields for an ambiguous system pass
func UnresolvedMatch(candidates []MatchCandidate, at time.Time) MatchFields {
	return MatchFields{
		Confidence: ConfidenceUnmatched,
		Source:     System(),
		At:         &at,
		Candidates: append([]MatchCandidate(nil), candidates...),
	}
}

// ManualMatch builds the fields for a human assignment
func ManualMatch(userID, actorID string, at time.Time) MatchFields {
	return MatchFields{
		Confidence: ConfidenceManual,
		UserID:     &userID,
		Source:     Human(actorID),
		At:         &at,
	}
}

// ClearedMatch builds the fields for a human unmatch
func ClearedMatch(actorID string, at time.Time) MatchFields {
	return MatchFields{
		Confidence: ConfidenceUnmatched,
		Source:     Human(actorID),
		At:         &at,
	}
}

// Validate enforces that unmatched rows carry no user and matched rows do
func (f MatchFields) Validate() error {
	if !f.Confidence.IsValid() {
		return fmt.Errorf("%w: unknown confidence %q", errs.ErrInvalidMatchState, f.Confidence)
	}

	hasUser := f.UserID != nil && *f.UserID != ""
	if f.Confidence == ConfidenceUnmatched && hasUser {
		return fmt.Errorf("%w: unmatched transaction cannot reference a user", errs.ErrInvalidMatchState)
	}
	if f.Confidence != ConfidenceUnmatched && !hasUser {
		return fmt.Errorf("%w: %s match requires a user", errs.ErrInvalidMatchState, f.Confidence)
	}

	switch f.Confidence {
	case ConfidenceManual:
		if !f.Source.IsHuman() {
			return fmt.Errorf("%w: manual match must be set by a human", errs.ErrInvalidMatchState)
		}
	case ConfidenceAuto:
		if !f.Source.IsSystem() {
			return fmt.Errorf("%w: auto match must be set by the system", errs.ErrInvalidMatchState)
		}
		if f.Signal == SignalNone {
			return fmt.Errorf("%w: auto match requires a signal", errs.ErrInvalidMatchState)
		}
	}

	if !f.Source.IsZero() && f.At == nil {
		return fmt.Errorf("%w: provenance without timestamp", errs.ErrInvalidMatchState)
	}
	return nil
}

// MatchEvent is one entry of a transaction's match history
type MatchEvent struct {
	TransactionID string
	Version       int64
	Confidence    MatchConfidence
	UserID        *string
	Signal        MatchSignal
	Source        MatchSource
	At            time.Time
}

// NewMatchEvent records fields written at the given row version
func NewMatchEvent(transactionID string, version int64, fields MatchFields) MatchEvent {
	event := MatchEvent{
		TransactionID: transactionID,
		Version:       version,
		Confidence:    fields.Confidence,
		UserID:        fields.UserID,
		Signal:        fields.Signal,
		Source:        fields.Source,
	}
	if fields.At != nil {
		event.At = *fields.At
	}
	return event
}
