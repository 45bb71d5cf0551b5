package matcher

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
)

func matchFuzzyName(tx *entity.Transaction, profiles []entity.Profile, cfg Config) entity.MatchOutcome {
	reference := fuzzyNormalize(tx.ReferenceValue())
	descriptionTokens := strings.Fields(fuzzyNormalize(tx.Description))

	var cleared []entity.MatchCandidate
	for _, profile := range profiles {
		name := fuzzyNormalize(profile.DisplayName)
		if utf8.RuneCountInString(name) < cfg.MinAliasLength {
			continue
		}

		candidate, ok := bestFuzzyFragment(name, reference, descriptionTokens, cfg)
		if !ok {
			continue
		}
		candidate.ProfileID = profile.ID
		cleared = append(cleared, candidate)
	}

	switch len(cleared) {
	case 0:
		return entity.MatchOutcome{}
	case 1:
		return entity.MatchOutcome{Best: &cleared[0]}
	}

	sort.SliceStable(cleared, func(i, j int) bool {
		if cleared[i].Score != cleared[j].Score {
			return cleared[i].Score > cleared[j].Score
		}
		return cleared[i].ProfileID < cleared[j].ProfileID
	})
	return entity.MatchOutcome{Ambiguous: cleared}
}

// bestFuzzyFragment compares name with the whole reference and with every run
// of description tokens as long as the name, returning the closest one that
// clears the threshold
func bestFuzzyFragment(name, reference string, descriptionTokens []string, cfg Config) (entity.MatchCandidate, bool) {
	fragments := make([]string, 0, len(descriptionTokens)+1)
	if utf8.RuneCountInString(reference) >= cfg.MinAliasLength {
		fragments = append(fragments, reference)
	}
	fragments = append(fragments, windows(descriptionTokens, len(strings.Fields(name)))...)

	bestDistance := 2.0
	bestFragment := ""
	for _, fragment := range fragments {
		d := normalizedDistance(name, fragment)
		if d < bestDistance {
			bestDistance = d
			bestFragment = fragment
		}
	}

	if bestFragment == "" || bestDistance > cfg.FuzzyThreshold {
		return entity.MatchCandidate{}, false
	}

	return entity.MatchCandidate{
		Score:    1 - bestDistance,
		Signal:   entity.SignalFuzzyName,
		Fragment: bestFragment,
	}, true
}

// normalizedDistance is the Levenshtein distance divided by the longer length
func normalizedDistance(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}

// windows returns every run of size consecutive tokens joined by a space
func windows(tokens []string, size int) []string {
	if size <= 0 || len(tokens) < size {
		return nil
	}

	out := make([]string, 0, len(tokens)-size+1)
	for i := 0; i+size <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+size], " "))
	}
	return out
}

// fuzzyNormalize lower-cases s, maps punctuation to spaces and collapses whitespace
func fuzzyNormalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}
