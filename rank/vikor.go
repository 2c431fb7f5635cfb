// SPDX-License-Identifier: MIT
// Package rank: VIKOR (compromise ranking).

package rank

import (
	"github.com/katalvlaran/mcdm/core"
)

// VIKOR ranks by the compromise index Q = v·S' + (1−v)·R', where S is the
// weighted sum of normalized deviations from the per-criterion best value
// (group utility) and R is the largest single deviation (individual
// regret), each rescaled to [0,1] by their observed min/max. Lower Q is
// better internally; for external consistency the returned score is 1−Q,
// and the ranks reflect ascending Q. Configure v with WithCompromise
// (default 0.5): v=1 ranks purely by S, v=0 purely by R.
func VIKOR(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, o, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	// per-criterion best and worst raw values, direction aware
	rows := m.Slice()
	fStar, fMinus := idealVectors(rows, dirs)

	n := m.Rows()
	s := make([]float64, n)
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < m.Cols(); j++ {
			den := fStar[j] - fMinus[j]
			if den == 0 {
				continue // flat column discriminates nothing
			}
			d := ws[j] * (fStar[j] - m.At(i, j)) / den
			s[i] += d
			if d > r[i] {
				r[i] = d
			}
		}
	}

	sNorm := rescale(s)
	rNorm := rescale(r)

	v := o.Compromise
	q := make([]float64, n)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		q[i] = v*sNorm[i] + (1-v)*rNorm[i]
		scores[i] = 1 - q[i]
	}

	return core.RankingResult{Scores: scores, Ranks: core.RankAscending(q)}, nil
}

// rescale maps vs linearly onto [0,1] by its min/max; a flat vector maps
// to all zeros (denominator guarded to 1).
func rescale(vs []float64) []float64 {
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = (v - min) / rng
	}

	return out
}
