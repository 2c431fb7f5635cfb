// SPDX-License-Identifier: MIT
// Package rank: ARAS (Additive Ratio Assessment).

package rank

import (
	"github.com/katalvlaran/mcdm/core"
)

// arasEpsilon guards the reciprocal transform of a zero cost cell.
const arasEpsilon = 1e-12

// ARAS scores each alternative by its degree of utility against a
// synthetic optimal alternative. Minimize columns are first inverted
// (x → 1/x, the classical cost transform), so every column reads
// higher-is-better; the optimal row is then the per-column maximum.
// The optimal-extended matrix is sum-normalized and weighted, and
// Kᵢ = Sᵢ / S₀ relates each alternative's weighted sum to the optimal's.
// K ∈ (0,1] for positive data; the optimal row itself is not returned.
func ARAS(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, _, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	// fold directions: reciprocal for cost columns
	rows := m.Slice()
	for j, d := range dirs {
		if d != core.Minimize {
			continue
		}
		for i := range rows {
			v := rows[i][j]
			if v == 0 {
				v = arasEpsilon
			}
			rows[i][j] = 1 / v
		}
	}

	// synthetic optimal: per-column maximum of the folded matrix
	cols := m.Cols()
	optimal := make([]float64, cols)
	for j := 0; j < cols; j++ {
		optimal[j] = rows[0][j]
		for i := 1; i < len(rows); i++ {
			if rows[i][j] > optimal[j] {
				optimal[j] = rows[i][j]
			}
		}
	}

	// sum-normalize the optimal-extended columns without materializing the
	// extended matrix, so a matrix at the cell ceiling still ranks
	colSum := make([]float64, cols)
	for j := 0; j < cols; j++ {
		sum := optimal[j]
		for i := range rows {
			sum += rows[i][j]
		}
		if sum == 0 {
			sum = 1
		}
		colSum[j] = sum
	}

	s0 := 0.0
	for j := 0; j < cols; j++ {
		s0 += ws[j] * optimal[j] / colSum[j]
	}
	if s0 == 0 {
		s0 = 1
	}

	scores := make([]float64, m.Rows())
	for i := range rows {
		for j := 0; j < cols; j++ {
			scores[i] += ws[j] * rows[i][j] / colSum[j]
		}
		scores[i] /= s0
	}

	return descending(scores), nil
}
