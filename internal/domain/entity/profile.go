package entity

import (
	"sort"
	"strings"
)

// Profile is a member as seen by the reconciler. Profiles are owned by the
// membership system and are only read here
type Profile struct {
	ID          string
	DisplayName string
	Aliases     []string
	Active      bool
}

// HasAlias reports whether alias is one of the profile's aliases, ignoring case and spacing
func (p Profile) HasAlias(alias string) bool {
	needle := NormalizeText(alias)
	for _, a := range p.Aliases {
		if NormalizeText(a) == needle {
			return true
		}
	}
	return false
}

// SortProfiles orders profiles by ID for deterministic iteration
func SortProfiles(profiles []Profile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].ID < profiles[j].ID
	})
}

// NormalizeText lower-cases s and collapses whitespace runs to a single space
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
