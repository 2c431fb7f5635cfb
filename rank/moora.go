// SPDX-License-Identifier: MIT
// Package rank: MOORA (Multi-Objective Optimization by Ratio Analysis,
// ratio system).

package rank

import (
	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/normalize"
)

// MOORA ranks by the signed weighted sum of vector-normalized values:
// benefit criteria add, cost criteria subtract. Scores can be negative
// when costs dominate; ordering is what matters.
func MOORA(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, _, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	nm, err := normalize.Normalize(m, dirs, normalize.Vector)
	if err != nil {
		return core.RankingResult{}, err
	}

	scores := make([]float64, m.Rows())
	for i := 0; i < nm.Rows(); i++ {
		for j := 0; j < nm.Cols(); j++ {
			term := ws[j] * nm.At(i, j)
			if dirs[j] == core.Minimize {
				scores[i] -= term
			} else {
				scores[i] += term
			}
		}
	}

	return descending(scores), nil
}
