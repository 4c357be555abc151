package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default search budgets. The 96-byte reference key pair converges after
// roughly 740 outer iterations and 12-13k oracle queries; the defaults leave
// ample headroom for larger moduli and unlucky keys.
const (
	DefaultMaxIterations   = 20000
	DefaultMaxQueries      = 5000000
	DefaultMaxRangeRetries = 10000
)

// AttackSettings bounds the searches of the attack loop so that a buggy or
// inconsistent oracle surfaces as an explicit error instead of an infinite
// loop.
type AttackSettings struct {
	// MaxIterations caps the outer interval-narrowing loop.
	MaxIterations int `mapstructure:"max_iterations" validate:"required,min=1"`
	// MaxQueries caps the total number of oracle queries across all searches.
	MaxQueries uint64 `mapstructure:"max_queries" validate:"required,min=1"`
	// MaxRangeRetries caps how often the single-interval search may widen its
	// candidate range before giving up.
	MaxRangeRetries int `mapstructure:"max_range_retries" validate:"required,min=1"`
}

// DefaultAttackSettings returns budgets suitable for moduli up to a few
// thousand bits.
func DefaultAttackSettings() *AttackSettings {
	return &AttackSettings{
		MaxIterations:   DefaultMaxIterations,
		MaxQueries:      DefaultMaxQueries,
		MaxRangeRetries: DefaultMaxRangeRetries,
	}
}

// Validate checks that all fields in AttackSettings are valid
func (s *AttackSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AttackSettings: %w", err)
	}

	return nil
}
