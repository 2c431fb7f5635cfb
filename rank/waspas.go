// SPDX-License-Identifier: MIT
// Package rank: WASPAS (Weighted Aggregated Sum Product Assessment).

package rank

import (
	"github.com/katalvlaran/mcdm/core"
)

// WASPAS blends the two simplest methods:
// scoreᵢ = λ·SAWᵢ + (1−λ)·WPMᵢ. Configure λ with WithLambda (default 0.5);
// λ=1 reduces to SAW, λ=0 to WPM.
func WASPAS(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, o, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	saw, err := sawScores(m, ws, dirs)
	if err != nil {
		return core.RankingResult{}, err
	}
	wpm := wpmScores(m, ws, dirs)

	scores := make([]float64, len(saw))
	for i := range scores {
		scores[i] = o.Lambda*saw[i] + (1-o.Lambda)*wpm[i]
	}

	return descending(scores), nil
}
