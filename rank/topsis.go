// SPDX-License-Identifier: MIT
// Package rank: TOPSIS (Technique for Order of Preference by Similarity
// to Ideal Solution).

package rank

import (
	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/normalize"
)

// closenessEpsilon substitutes a zero (d⁺ + d⁻) denominator, which only
// happens when an alternative coincides with both ideals (all-identical
// column data). The score then reads 0, still finite.
const closenessEpsilon = 1e-12

// TOPSIS ranks alternatives by relative closeness to the ideal solution:
// vector-normalize, weight, locate the per-criterion ideal and anti-ideal
// points (direction aware), then score each alternative as
// d⁻ / (d⁺ + d⁻) over Euclidean distances. Also the dispatcher's default.
func TOPSIS(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, _, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	nm, err := normalize.Normalize(m, dirs, normalize.Vector)
	if err != nil {
		return core.RankingResult{}, err
	}
	rows := nm.Slice()
	weightColumns(rows, ws)

	best, worst := idealVectors(rows, dirs)

	scores := make([]float64, len(rows))
	for i, row := range rows {
		dBest := euclidean(row, best)
		dWorst := euclidean(row, worst)
		den := dBest + dWorst
		if den == 0 {
			den = closenessEpsilon
		}
		scores[i] = dWorst / den
	}

	return descending(scores), nil
}
