// Package policy resolves required coverage ratios per unit category.
// A Policy is immutable once constructed; unknown categories degrade to
// the global ratio so renamed or newly introduced categories never halt
// a planning run.
package policy

import (
	"fmt"

	"github.com/dkoosis/covplan/pkg/coverage"
)

// Default required ratios per category.
const (
	DefaultCoreLogicRatio     = 0.95
	DefaultErrorHandlingRatio = 0.90
	DefaultEdgeCaseRatio      = 0.90
	DefaultDefensiveRatio     = 0.85
	DefaultGlobalRatio        = 0.90
)

// Config is the declarative threshold table supplied by the caller.
// Zero-valued fields are filled from the defaults, so a partial table is
// valid configuration.
type Config struct {
	Categories map[coverage.Category]float64 `yaml:"categories"`
	Global     *float64                      `yaml:"global"`
}

// InvalidThresholdError reports a configured ratio outside [0, 1].
type InvalidThresholdError struct {
	Category coverage.Category
	Ratio    float64
}

func (e *InvalidThresholdError) Error() string {
	scope := "global"
	if e.Category != "" {
		scope = fmt.Sprintf("category %q", e.Category)
	}
	return fmt.Sprintf("invalid threshold for %s: %v not in [0, 1]", scope, e.Ratio)
}

// Policy holds the resolved threshold table for one planning run.
type Policy struct {
	categories map[coverage.Category]float64
	global     float64
	valid      bool
}

// Default returns a policy with the default threshold table.
func Default() *Policy {
	p, _ := New(Config{})
	return p
}

// New validates cfg and constructs a Policy. Every configured ratio must
// lie in [0, 1]; the first offender is reported via
// *InvalidThresholdError.
func New(cfg Config) (*Policy, error) {
	p := &Policy{
		categories: map[coverage.Category]float64{
			coverage.CategoryCoreLogic:     DefaultCoreLogicRatio,
			coverage.CategoryErrorHandling: DefaultErrorHandlingRatio,
			coverage.CategoryEdgeCase:      DefaultEdgeCaseRatio,
			coverage.CategoryDefensive:     DefaultDefensiveRatio,
		},
		global: DefaultGlobalRatio,
	}

	if cfg.Global != nil {
		if *cfg.Global < 0 || *cfg.Global > 1 {
			return nil, &InvalidThresholdError{Ratio: *cfg.Global}
		}
		p.global = *cfg.Global
	}

	for cat, ratio := range cfg.Categories {
		if ratio < 0 || ratio > 1 {
			return nil, &InvalidThresholdError{Category: cat, Ratio: ratio}
		}
		p.categories[cat] = ratio
	}

	p.valid = true
	return p, nil
}

// RequiredRatio returns the configured ratio for cat, falling back to the
// global ratio for unrecognized categories. It never fails.
func (p *Policy) RequiredRatio(cat coverage.Category) float64 {
	if ratio, ok := p.categories[cat]; ok {
		return ratio
	}
	return p.global
}

// GlobalRatio returns the aggregate target across all non-excluded units.
func (p *Policy) GlobalRatio() float64 {
	return p.global
}

// Valid reports whether the policy went through construction. The zero
// Policy is not valid and planning against it fails.
func (p *Policy) Valid() bool {
	return p != nil && p.valid
}

// Rank orders categories for worklist priority: core-logic first, then
// error-handling, edge-case, defensive. Unrecognized categories rank with
// defensive.
func Rank(cat coverage.Category) int {
	switch cat {
	case coverage.CategoryCoreLogic:
		return 0
	case coverage.CategoryErrorHandling:
		return 1
	case coverage.CategoryEdgeCase:
		return 2
	default:
		return 3
	}
}
