// SPDX-License-Identifier: MIT
// Package rank: COPRAS (Complex Proportional Assessment).

package rank

import (
	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/normalize"
)

// coprasEpsilon guards a zero cost sum S⁻ᵢ inside the harmonic term.
const coprasEpsilon = 1e-12

// COPRAS sum-normalizes the matrix, splits each alternative's weighted
// contribution into a benefit sum S⁺ and a cost sum S⁻, and computes the
// relative significance
//
//	Qᵢ = S⁺ᵢ + (Σ S⁻) / (S⁻ᵢ · Σ 1/S⁻ₖ),
//
// so low costs raise Q harmonically. With no cost criteria Q reduces to
// S⁺. The returned score is the utility degree 100·Qᵢ/Qmax (best = 100).
func COPRAS(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, _, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	nm, err := normalize.Normalize(m, dirs, normalize.Sum)
	if err != nil {
		return core.RankingResult{}, err
	}

	n := m.Rows()
	sPlus := make([]float64, n)
	sMinus := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < nm.Cols(); j++ {
			term := ws[j] * nm.At(i, j)
			if dirs[j] == core.Minimize {
				sMinus[i] += term
			} else {
				sPlus[i] += term
			}
		}
	}

	sumMinus := 0.0
	sumInv := 0.0
	hasCost := false
	for i := 0; i < n; i++ {
		if sMinus[i] > 0 {
			hasCost = true
		}
		sumMinus += sMinus[i]
		sumInv += 1 / guarded(sMinus[i])
	}

	q := make([]float64, n)
	qMax := 0.0
	for i := 0; i < n; i++ {
		q[i] = sPlus[i]
		if hasCost {
			q[i] += sumMinus / (guarded(sMinus[i]) * sumInv)
		}
		if q[i] > qMax {
			qMax = q[i]
		}
	}
	if qMax == 0 {
		qMax = 1
	}

	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		scores[i] = 100 * q[i] / qMax
	}

	return descending(scores), nil
}

// guarded substitutes coprasEpsilon for a zero cost sum.
func guarded(v float64) float64 {
	if v == 0 {
		return coprasEpsilon
	}

	return v
}
