// Package plan computes prioritized worklists of coverage gaps from a
// coverage model and a threshold policy. Planning is a pure computation:
// it mutates nothing and recomputing from identical inputs yields an
// identical worklist.
package plan

import (
	"math"

	"github.com/dkoosis/covplan/pkg/coverage"
	"github.com/dkoosis/covplan/pkg/policy"
)

// SummaryPath is the reserved unit identifier of the synthetic summary
// gap representing the whole codebase. Record paths never collide with
// it because the loader accepts it like any other path but planners only
// emit it for the aggregate entry, always first in the worklist.
const SummaryPath = "<codebase>"

// Gap is one worklist entry: a unit whose achieved coverage ratio falls
// below its category's required ratio, annotated with the work left to
// close it. The remaining-lines count drives the work estimate; the
// branch count is reported alongside but never triggers a gap on its own
// (the achieved ratio already takes the minimum of both dimensions).
type Gap struct {
	Path              string            `json:"path"`
	Category          coverage.Category `json:"category,omitempty"`
	Achieved          float64           `json:"achieved"`
	Required          float64           `json:"required"`
	Deficit           float64           `json:"deficit"`
	RemainingLines    int               `json:"remaining_lines"`
	RemainingBranches int               `json:"remaining_branches"`
}

// Summary reports whether the gap is the synthetic whole-codebase entry.
func (g Gap) Summary() bool {
	return g.Path == SummaryPath
}

// remainingToThreshold returns how many more covered items are needed to
// reach required on a dimension, clamped at zero.
func remainingToThreshold(required float64, total, covered int) int {
	if total == 0 {
		return 0
	}
	need := int(math.Ceil(required*float64(total))) - covered
	if need < 0 {
		return 0
	}
	return need
}

// rank returns the sort rank of a gap. The summary entry outranks every
// category so it always leads the worklist.
func rank(g Gap) int {
	if g.Summary() {
		return -1
	}
	return policy.Rank(g.Category)
}

// compareGaps orders by category rank, then deficit descending, then
// path ascending. Paths are unique, so the order is total.
func compareGaps(a, b Gap) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	if a.Deficit != b.Deficit {
		if a.Deficit > b.Deficit {
			return -1
		}
		return 1
	}
	switch {
	case a.Path < b.Path:
		return -1
	case a.Path > b.Path:
		return 1
	default:
		return 0
	}
}
