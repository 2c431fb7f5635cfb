// SPDX-License-Identifier: MIT
// Package rank: shared preparation and distance helpers.

package rank

import (
	"math"

	"github.com/katalvlaran/mcdm/core"
)

// prepare validates the invocation and splits criteria into the weight and
// direction vectors every method consumes.
func prepare(m core.Matrix, criteria []core.Criterion, opts []Option) ([]float64, []core.Direction, Options, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, nil, Options{}, err
	}
	if err = core.Validate(m, criteria); err != nil {
		return nil, nil, Options{}, err
	}

	return core.Weights(criteria), core.Directions(criteria), o, nil
}

// weightColumns multiplies each column of rows by its weight, in place.
// rows is always a fresh Slice() copy, never caller data.
func weightColumns(rows [][]float64, ws []float64) {
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] *= ws[j]
		}
	}
}

// idealVectors returns the per-column best and worst values of rows under
// the given directions: best is the max of a maximize column and the min
// of a minimize column; worst is the opposite.
func idealVectors(rows [][]float64, dirs []core.Direction) (best, worst []float64) {
	cols := len(dirs)
	best = make([]float64, cols)
	worst = make([]float64, cols)
	for j := 0; j < cols; j++ {
		min, max := rows[0][j], rows[0][j]
		for i := 1; i < len(rows); i++ {
			if rows[i][j] < min {
				min = rows[i][j]
			}
			if rows[i][j] > max {
				max = rows[i][j]
			}
		}
		if dirs[j] == core.Maximize {
			best[j], worst[j] = max, min
		} else {
			best[j], worst[j] = min, max
		}
	}

	return best, worst
}

// euclidean returns the Euclidean distance between a row and a reference
// vector of equal length.
func euclidean(row, ref []float64) float64 {
	sum := 0.0
	for j := range row {
		d := row[j] - ref[j]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// manhattan returns the taxicab distance between a row and a reference
// vector of equal length.
func manhattan(row, ref []float64) float64 {
	sum := 0.0
	for j := range row {
		sum += math.Abs(row[j] - ref[j])
	}

	return sum
}

// descending wraps scores into the standard result shape.
func descending(scores []float64) core.RankingResult {
	return core.RankingResult{Scores: scores, Ranks: core.RankDescending(scores)}
}
