// Package matcher assigns statement transactions to member profiles
//
// Matching is pure and deterministic. Tiers are tried in order and the first
// tier that produces a candidate wins:
//  1. exact-reference: the reference equals an alias
//  2. embedded-reference: an alias of at least MinAliasLength characters
//     appears inside the description
//  3. fuzzy-name: a display name is within FuzzyThreshold normalised edit
//     distance of the reference or of a description window; only a single
//     clearing profile is accepted, several make the outcome ambiguous
//
// Ties inside tiers 1 and 2 go to the longest matching fragment, then to the
// lexically smallest profile ID
package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
)

// Matcher applies a fixed Config to transactions
type Matcher struct {
	config Config
}

// New creates a matcher after validating its configuration
func New(config Config) (*Matcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{config: config}, nil
}

// Config returns the thresholds in use
func (m *Matcher) Config() Config {
	return m.config
}

// Match runs the tiers for one transaction
func (m *Matcher) Match(tx *entity.Transaction, profiles []entity.Profile) entity.MatchOutcome {
	return Match(tx, profiles, m.config)
}

// Match runs the tiers for one transaction against the given profiles
func Match(tx *entity.Transaction, profiles []entity.Profile, cfg Config) entity.MatchOutcome {
	if tx == nil || len(profiles) == 0 {
		return entity.MatchOutcome{}
	}

	if best := matchExactReference(tx, profiles); best != nil {
		return entity.MatchOutcome{Best: best}
	}

	if best := matchEmbeddedReference(tx, profiles, cfg); best != nil {
		return entity.MatchOutcome{Best: best}
	}

	return matchFuzzyName(tx, profiles, cfg)
}

func matchExactReference(tx *entity.Transaction, profiles []entity.Profile) *entity.MatchCandidate {
	reference := entity.NormalizeText(tx.ReferenceValue())
	if reference == "" {
		return nil
	}

	var found []entity.MatchCandidate
	for _, profile := range profiles {
		for _, alias := range profile.Aliases {
			if entity.NormalizeText(alias) != reference {
				continue
			}
			found = append(found, entity.MatchCandidate{
				ProfileID: profile.ID,
				Score:     1,
				Signal:    entity.SignalExactReference,
				Fragment:  reference,
			})
			break
		}
	}

	return pickLongest(found)
}

func matchEmbeddedReference(tx *entity.Transaction, profiles []entity.Profile, cfg Config) *entity.MatchCandidate {
	description := entity.NormalizeText(tx.Description)
	if description == "" {
		return nil
	}
	descriptionLen := utf8.RuneCountInString(description)

	var found []entity.MatchCandidate
	for _, profile := range profiles {
		var best *entity.MatchCandidate
		for _, raw := range profile.Aliases {
			alias := entity.NormalizeText(raw)
			aliasLen := utf8.RuneCountInString(alias)
			if aliasLen < cfg.MinAliasLength || !strings.Contains(description, alias) {
				continue
			}
			if best != nil && utf8.RuneCountInString(best.Fragment) >= aliasLen {
				continue
			}
			best = &entity.MatchCandidate{
				ProfileID: profile.ID,
				Score:     clamp(float64(aliasLen)/float64(descriptionLen), 0.5, 0.99),
				Signal:    entity.SignalEmbeddedReference,
				Fragment:  alias,
			}
		}
		if best != nil {
			found = append(found, *best)
		}
	}

	return pickLongest(found)
}

// pickLongest applies the tie-break rule: longest fragment, then smallest profile ID
func pickLongest(candidates []entity.MatchCandidate) *entity.MatchCandidate {
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		li := utf8.RuneCountInString(candidates[i].Fragment)
		lj := utf8.RuneCountInString(candidates[j].Fragment)
		if li != lj {
			return li > lj
		}
		return candidates[i].ProfileID < candidates[j].ProfileID
	})

	best := candidates[0]
	return &best
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
