// SPDX-License-Identifier: MIT
// Package rank: SAW (Simple Additive Weighting, a.k.a. WSM).

package rank

import (
	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/normalize"
)

// SAW ranks alternatives by the weighted sum of linear-max normalized
// values: scoreᵢ = Σⱼ wⱼ·rᵢⱼ. The simplest and most transparent method;
// takes no method-specific parameters.
func SAW(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, _, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	scores, err := sawScores(m, ws, dirs)
	if err != nil {
		return core.RankingResult{}, err
	}

	return descending(scores), nil
}

// sawScores computes the raw SAW scores; shared with WASPAS.
func sawScores(m core.Matrix, ws []float64, dirs []core.Direction) ([]float64, error) {
	nm, err := normalize.Normalize(m, dirs, normalize.LinearMax)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, m.Rows())
	for i := 0; i < nm.Rows(); i++ {
		for j := 0; j < nm.Cols(); j++ {
			scores[i] += ws[j] * nm.At(i, j)
		}
	}

	return scores, nil
}
