package matcher

import (
	"fmt"

	errs "github.com/amirhossein-jamali/bank-reconciler/internal/domain/error"
)

const (
	// DefaultMinAliasLength excludes aliases shorter than four characters from
	// the embedded-reference and fuzzy-name tiers
	DefaultMinAliasLength = 4

	// DefaultFuzzyThreshold is the largest normalised edit distance
	// (distance / longer length) that still counts as a name match
	DefaultFuzzyThreshold = 0.2
)

// Config holds the tunable thresholds of the matcher
type Config struct {
	MinAliasLength int     `mapstructure:"minAliasLength"`
	FuzzyThreshold float64 `mapstructure:"fuzzyThreshold"`
}

// DefaultConfig returns the default matcher configuration
func DefaultConfig() Config {
	return Config{
		MinAliasLength: DefaultMinAliasLength,
		FuzzyThreshold: DefaultFuzzyThreshold,
	}
}

// Validate checks that thresholds are usable
func (c Config) Validate() error {
	if c.MinAliasLength < 1 {
		return fmt.Errorf("%w: minimum alias length must be at least 1, got %d", errs.ErrValidation, c.MinAliasLength)
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold >= 1 {
		return fmt.Errorf("%w: fuzzy threshold must be in [0, 1), got %v", errs.ErrValidation, c.FuzzyThreshold)
	}
	return nil
}
