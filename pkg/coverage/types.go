// Package coverage holds an immutable snapshot of coverage measurements
// for a codebase. A Model is built from raw per-unit records and queried
// by the planner; it never changes after Load returns.
package coverage

// Category classifies a source unit for threshold and priority purposes.
type Category string

// CategoryCoreLogic marks primary business logic.
const CategoryCoreLogic Category = "core-logic"

// CategoryErrorHandling marks error and failure paths.
const CategoryErrorHandling Category = "error-handling"

// CategoryEdgeCase marks boundary-condition code.
const CategoryEdgeCase Category = "edge-case"

// CategoryDefensive marks defensive checks and guards.
const CategoryDefensive Category = "defensive"

// CategoryExcluded marks units that are exempt from coverage planning.
const CategoryExcluded Category = "excluded"

// Record is one raw per-unit measurement as produced by an external
// coverage tool. Records are validated by Load before they become units.
type Record struct {
	Path            string   `json:"path"`
	TotalLines      int      `json:"total_lines"`
	CoveredLines    int      `json:"covered_lines"`
	TotalBranches   int      `json:"total_branches"`
	CoveredBranches int      `json:"covered_branches"`
	Category        Category `json:"category"`
}

// SourceUnit is a validated coverable unit.
type SourceUnit struct {
	Path            string
	TotalLines      int
	CoveredLines    int
	TotalBranches   int
	CoveredBranches int
	Category        Category
}

// LineRatio returns covered/total lines. A unit with no executable lines
// is trivially fully covered.
func (u SourceUnit) LineRatio() float64 {
	if u.TotalLines == 0 {
		return 1.0
	}
	return float64(u.CoveredLines) / float64(u.TotalLines)
}

// BranchRatio returns covered/total branches, 1.0 when there are none.
func (u SourceUnit) BranchRatio() float64 {
	if u.TotalBranches == 0 {
		return 1.0
	}
	return float64(u.CoveredBranches) / float64(u.TotalBranches)
}

// AchievedRatio is the unit's effective coverage: the minimum of the line
// and branch ratios, so a shortfall in either dimension counts.
func (u SourceUnit) AchievedRatio() float64 {
	lr := u.LineRatio()
	br := u.BranchRatio()
	if br < lr {
		return br
	}
	return lr
}

// Excluded reports whether the unit is exempt from planning.
func (u SourceUnit) Excluded() bool {
	return u.Category == CategoryExcluded
}
