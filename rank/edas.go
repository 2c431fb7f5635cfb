// SPDX-License-Identifier: MIT
// Package rank: EDAS (Evaluation based on Distance from Average Solution).

package rank

import (
	"math"

	"github.com/katalvlaran/mcdm/core"
)

// EDAS measures each alternative against the column average instead of an
// ideal point. Per cell, the positive distance from average (PDA) rewards
// beating the average and the negative distance (NDA) penalizes trailing
// it, with the roles swapped for minimize criteria. The weighted sums
// SPᵢ/SNᵢ are normalized against their maxima and averaged into the
// appraisal score ASᵢ = (NSPᵢ + (1 − NSNᵢ)) / 2 ∈ [0,1].
func EDAS(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, _, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	n, cols := m.Rows(), m.Cols()

	avg := make([]float64, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < n; i++ {
			avg[j] += m.At(i, j)
		}
		avg[j] /= float64(n)
	}

	sp := make([]float64, n)
	sn := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			den := math.Abs(avg[j])
			if den == 0 {
				den = 1
			}
			diff := m.At(i, j) - avg[j]
			if dirs[j] == core.Minimize {
				diff = -diff
			}
			pda := math.Max(0, diff) / den
			nda := math.Max(0, -diff) / den
			sp[i] += ws[j] * pda
			sn[i] += ws[j] * nda
		}
	}

	maxSP, maxSN := 0.0, 0.0
	for i := 0; i < n; i++ {
		maxSP = math.Max(maxSP, sp[i])
		maxSN = math.Max(maxSN, sn[i])
	}
	if maxSP == 0 {
		maxSP = 1
	}
	if maxSN == 0 {
		maxSN = 1
	}

	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		nsp := sp[i] / maxSP
		nsn := 1 - sn[i]/maxSN
		scores[i] = (nsp + nsn) / 2
	}

	return descending(scores), nil
}
