package plan

import (
	"fmt"
	"slices"

	"github.com/dkoosis/covplan/pkg/coverage"
	"github.com/dkoosis/covplan/pkg/policy"
)

// PolicyError reports planning attempted against a policy that never
// went through valid construction.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("policy error: %s", e.Reason)
}

// Planner computes worklists against a fixed policy. It holds no state
// between calls; concurrent Plan calls over different models need no
// coordination.
type Planner struct {
	policy *policy.Policy
}

// New creates a planner bound to pol.
func New(pol *policy.Policy) *Planner {
	return &Planner{policy: pol}
}

// Plan computes the worklist for model. It fails only with *PolicyError
// when the planner's policy was not validly constructed; planning over a
// valid model otherwise cannot fail. The returned worklist is freshly
// allocated and retains no reference into the model.
func (p *Planner) Plan(model *coverage.Model) (Worklist, error) {
	if !p.policy.Valid() {
		return Worklist{}, &PolicyError{Reason: "policy was not constructed via policy.New"}
	}

	var gaps []Gap
	var aggTotal, aggCovered int

	for unit := range model.All() {
		if unit.Excluded() {
			continue
		}
		aggTotal += unit.TotalLines
		aggCovered += unit.CoveredLines

		required := p.policy.RequiredRatio(unit.Category)
		achieved := unit.AchievedRatio()
		if achieved >= required {
			continue
		}
		gaps = append(gaps, Gap{
			Path:              unit.Path,
			Category:          unit.Category,
			Achieved:          achieved,
			Required:          required,
			Deficit:           required - achieved,
			RemainingLines:    remainingToThreshold(required, unit.TotalLines, unit.CoveredLines),
			RemainingBranches: remainingToThreshold(required, unit.TotalBranches, unit.CoveredBranches),
		})
	}

	slices.SortFunc(gaps, compareGaps)

	// The aggregate can miss the global target even when every unit meets
	// its own threshold, so the summary entry is computed independently of
	// the per-unit gaps.
	if summary, ok := p.summaryGap(aggTotal, aggCovered); ok {
		gaps = append([]Gap{summary}, gaps...)
	}

	return Worklist{Gaps: gaps}, nil
}

func (p *Planner) summaryGap(total, covered int) (Gap, bool) {
	achieved := 1.0
	if total > 0 {
		achieved = float64(covered) / float64(total)
	}
	global := p.policy.GlobalRatio()
	if achieved >= global {
		return Gap{}, false
	}
	return Gap{
		Path:           SummaryPath,
		Achieved:       achieved,
		Required:       global,
		Deficit:        global - achieved,
		RemainingLines: remainingToThreshold(global, total, covered),
	}, true
}
