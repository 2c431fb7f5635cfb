// SPDX-License-Identifier: MIT
// Package sensitivity: stability analysis over a scenario set.

package sensitivity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mcdm/core"
)

// Stability folds a baseline ranking and its scenarios into a Report:
// per-alternative min/max rank (baseline included) and the criteria whose
// perturbation changed the top-ranked alternative. Every scenario must
// rank the same number of alternatives as the baseline.
func Stability(base core.RankingResult, scenarios []Scenario) (Report, error) {
	n := len(base.Ranks)
	if n == 0 {
		return Report{}, core.ErrEmptyMatrix
	}

	ranges := make([]Range, n)
	for i, r := range base.Ranks {
		ranges[i] = Range{Min: r, Max: r}
	}

	baseBest := base.Best()
	critical := map[int]bool{}
	for s, sc := range scenarios {
		if len(sc.Result.Ranks) != n {
			return Report{}, fmt.Errorf("scenario %d ranks %d alternatives, want %d: %w",
				s, len(sc.Result.Ranks), n, core.ErrDimensionMismatch)
		}
		for i, r := range sc.Result.Ranks {
			if r < ranges[i].Min {
				ranges[i].Min = r
			}
			if r > ranges[i].Max {
				ranges[i].Max = r
			}
		}
		if sc.Perturbed >= 0 && sc.Result.Best() != baseBest {
			critical[sc.Perturbed] = true
		}
	}

	crit := make([]int, 0, len(critical))
	for j := range critical {
		crit = append(crit, j)
	}
	sort.Ints(crit)

	return Report{RankRanges: ranges, CriticalCriteria: crit}, nil
}
