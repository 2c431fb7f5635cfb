// SPDX-License-Identifier: MIT
// Package ftopsis: fuzzy TOPSIS over triangular matrices.

package ftopsis

import (
	"fmt"

	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/fuzzy"
)

// normEpsilon guards zero denominators in the linear column normalization.
const normEpsilon = 1e-12

// closenessEpsilon substitutes a zero (d⁺ + d⁻) denominator.
const closenessEpsilon = 1e-12

// CrispWeights coerces a crisp weight vector to degenerate fuzzy numbers,
// for callers whose weights carry no uncertainty.
func CrispWeights(ws []float64) []fuzzy.Number {
	out := make([]fuzzy.Number, len(ws))
	for j, w := range ws {
		out[j] = fuzzy.Crisp(w)
	}

	return out
}

// FTOPSIS ranks the alternatives of a triangular fuzzy decision matrix.
// fm is row-major (alternatives × criteria); weights and directions must
// match the column count. See the package doc for the pipeline.
func FTOPSIS(fm [][]fuzzy.Number, weights []fuzzy.Number, directions []core.Direction) (core.RankingResult, error) {
	if err := validate(fm, len(weights), directions); err != nil {
		return core.RankingResult{}, err
	}

	n, cols := len(fm), len(fm[0])

	// linear normalization, direction aware
	norm := make([][]fuzzy.Number, n)
	for i := range norm {
		norm[i] = make([]fuzzy.Number, cols)
	}
	for j := 0; j < cols; j++ {
		if directions[j] == core.Maximize {
			cMax := fm[0][j].U
			for i := 1; i < n; i++ {
				if fm[i][j].U > cMax {
					cMax = fm[i][j].U
				}
			}
			if cMax == 0 {
				cMax = normEpsilon
			}
			for i := 0; i < n; i++ {
				norm[i][j] = fm[i][j].Scale(1 / cMax)
			}
			continue
		}

		aMin := fm[0][j].L
		for i := 1; i < n; i++ {
			if fm[i][j].L < aMin {
				aMin = fm[i][j].L
			}
		}
		for i := 0; i < n; i++ {
			cell := fm[i][j]
			norm[i][j] = fuzzy.Number{
				L: aMin / guarded(cell.U),
				M: aMin / guarded(cell.M),
				U: aMin / guarded(cell.L),
			}
		}
	}

	// componentwise weighting
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			norm[i][j] = norm[i][j].Mul(weights[j])
		}
	}

	// fuzzy ideals: componentwise per-column extrema of the weighted matrix
	fpis := make([]fuzzy.Number, cols)
	fnis := make([]fuzzy.Number, cols)
	for j := 0; j < cols; j++ {
		col := make([]fuzzy.Number, n)
		for i := 0; i < n; i++ {
			col[i] = norm[i][j]
		}
		fpis[j] = fuzzy.ComponentMax(col...)
		fnis[j] = fuzzy.ComponentMin(col...)
	}

	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		dBest, dWorst := 0.0, 0.0
		for j := 0; j < cols; j++ {
			dBest += norm[i][j].Distance(fpis[j])
			dWorst += norm[i][j].Distance(fnis[j])
		}
		den := dBest + dWorst
		if den == 0 {
			den = closenessEpsilon
		}
		scores[i] = dWorst / den
	}

	return core.RankingResult{Scores: scores, Ranks: core.RankDescending(scores)}, nil
}

// DefuzzifyMatrix collapses a fuzzy matrix to a crisp core.Matrix with the
// chosen defuzzifier, for pipelines that rank with the crisp methods.
func DefuzzifyMatrix(fm [][]fuzzy.Number, method fuzzy.Defuzzifier) (core.Matrix, error) {
	if len(fm) == 0 || len(fm[0]) == 0 {
		return core.Matrix{}, core.ErrEmptyMatrix
	}
	rows := make([][]float64, len(fm))
	for i, frow := range fm {
		rows[i] = make([]float64, len(frow))
		for j, cell := range frow {
			v, err := fuzzy.Defuzzify(cell, method)
			if err != nil {
				return core.Matrix{}, err
			}
			rows[i][j] = v
		}
	}

	return core.NewMatrix(rows)
}

// validate checks shape preconditions: non-empty, rectangular, and
// weights/directions matching the column count.
func validate(fm [][]fuzzy.Number, weightCount int, directions []core.Direction) error {
	if len(fm) == 0 || len(fm[0]) == 0 {
		return core.ErrEmptyMatrix
	}
	cols := len(fm[0])
	for i, row := range fm {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, core.ErrRaggedMatrix)
		}
	}
	if weightCount != cols {
		return fmt.Errorf("%d weights for %d columns: %w", weightCount, cols, core.ErrDimensionMismatch)
	}

	return core.ValidateDirections(cols, directions)
}

// guarded substitutes normEpsilon for a zero divisor component.
func guarded(v float64) float64 {
	if v == 0 {
		return normEpsilon
	}

	return v
}
