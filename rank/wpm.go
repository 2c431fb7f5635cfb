// SPDX-License-Identifier: MIT
// Package rank: WPM (Weighted Product Model).

package rank

import (
	"math"

	"github.com/katalvlaran/mcdm/core"
)

// wpmEpsilon replaces non-positive cells before exponentiation, so a zero
// cell under a minimize criterion (negative exponent) cannot yield ∞.
const wpmEpsilon = 1e-3

// WPM ranks alternatives by the weighted product
// scoreᵢ = Πⱼ xᵢⱼ^(±wⱼ), with the exponent sign flipped for minimize
// criteria. Operates on the raw matrix; the product form makes the method
// dimensionless without a normalization step.
func WPM(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, _, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	return descending(wpmScores(m, ws, dirs)), nil
}

// wpmScores computes the raw WPM scores; shared with WASPAS.
func wpmScores(m core.Matrix, ws []float64, dirs []core.Direction) []float64 {
	scores := make([]float64, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		prod := 1.0
		for j := 0; j < m.Cols(); j++ {
			v := m.At(i, j)
			if v <= 0 {
				v = wpmEpsilon
			}
			exp := ws[j]
			if dirs[j] == core.Minimize {
				exp = -exp
			}
			prod *= math.Pow(v, exp)
		}
		scores[i] = prod
	}

	return scores
}
