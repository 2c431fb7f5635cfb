// SPDX-License-Identifier: MIT
// Package normalize: the four normalization strategies.

package normalize

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mcdm/core"
)

// Method selects a normalization strategy.
type Method int

const (
	// Vector divides each cell by the Euclidean norm of its column.
	Vector Method = iota

	// LinearMax divides by the column max (maximize) or divides the
	// positive column min by the cell (minimize).
	LinearMax

	// MinMax rescales each column to [0,1] by its observed range,
	// mirrored for minimize columns.
	MinMax

	// Sum divides each cell by its column sum.
	Sum
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Vector:
		return "vector"
	case LinearMax:
		return "linearMax"
	case MinMax:
		return "minMax"
	case Sum:
		return "sum"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ErrUnknownStrategy is returned for a Method value outside the enum.
var ErrUnknownStrategy = errors.New("normalize: unknown strategy")

// Normalize applies the chosen strategy to m and returns a fresh matrix of
// identical shape. directions must have one entry per column; Vector and
// Sum ignore them but validate the length all the same, so callers can swap
// strategies without changing call sites.
func Normalize(m core.Matrix, directions []core.Direction, method Method) (core.Matrix, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return core.Matrix{}, core.ErrEmptyMatrix
	}
	if err := core.ValidateDirections(m.Cols(), directions); err != nil {
		return core.Matrix{}, err
	}

	switch method {
	case Vector:
		return vectorNorm(m), nil
	case LinearMax:
		return linearMaxNorm(m, directions), nil
	case MinMax:
		return minMaxNorm(m, directions), nil
	case Sum:
		return sumNorm(m), nil
	default:
		return core.Matrix{}, fmt.Errorf("%d: %w", int(method), ErrUnknownStrategy)
	}
}

// vectorNorm divides every cell by sqrt(Σ cell²) over its column.
// Zero sum-of-squares → denominator 1, so a zero column stays zero.
func vectorNorm(m core.Matrix) core.Matrix {
	out := m.Slice()
	for j := 0; j < m.Cols(); j++ {
		ss := 0.0
		for i := 0; i < m.Rows(); i++ {
			v := m.At(i, j)
			ss += v * v
		}
		den := math.Sqrt(ss)
		if den == 0 {
			den = 1
		}
		for i := 0; i < m.Rows(); i++ {
			out[i][j] = m.At(i, j) / den
		}
	}

	return mustMatrix(out)
}

// linearMaxNorm: maximize column → cell/colMax; minimize column →
// colMin/cell, where colMin is taken over strictly positive cells only.
// A 0 cell under minimize maps to 0 rather than ∞; a zero colMax maps the
// whole maximize column to 0.
func linearMaxNorm(m core.Matrix, directions []core.Direction) core.Matrix {
	out := m.Slice()
	for j := 0; j < m.Cols(); j++ {
		if directions[j] == core.Maximize {
			max := 0.0
			for i := 0; i < m.Rows(); i++ {
				if v := m.At(i, j); v > max {
					max = v
				}
			}
			if max == 0 {
				max = 1
			}
			for i := 0; i < m.Rows(); i++ {
				out[i][j] = m.At(i, j) / max
			}
			continue
		}

		// minimize: smallest positive value is the reference
		min := math.Inf(1)
		for i := 0; i < m.Rows(); i++ {
			if v := m.At(i, j); v > 0 && v < min {
				min = v
			}
		}
		if math.IsInf(min, 1) {
			min = 1 // column had no positive cell
		}
		for i := 0; i < m.Rows(); i++ {
			v := m.At(i, j)
			if v == 0 {
				out[i][j] = 0
				continue
			}
			out[i][j] = min / v
		}
	}

	return mustMatrix(out)
}

// minMaxNorm rescales each column by its observed range; a flat column
// (range 0) uses denominator 1, so all its cells map to 0.
func minMaxNorm(m core.Matrix, directions []core.Direction) core.Matrix {
	out := m.Slice()
	for j := 0; j < m.Cols(); j++ {
		min, max := columnRange(m, j)
		rng := max - min
		if rng == 0 {
			rng = 1
		}
		for i := 0; i < m.Rows(); i++ {
			if directions[j] == core.Maximize {
				out[i][j] = (m.At(i, j) - min) / rng
			} else {
				out[i][j] = (max - m.At(i, j)) / rng
			}
		}
	}

	return mustMatrix(out)
}

// sumNorm divides every cell by its column sum; zero sum → denominator 1.
func sumNorm(m core.Matrix) core.Matrix {
	out := m.Slice()
	for j := 0; j < m.Cols(); j++ {
		sum := 0.0
		for i := 0; i < m.Rows(); i++ {
			sum += m.At(i, j)
		}
		if sum == 0 {
			sum = 1
		}
		for i := 0; i < m.Rows(); i++ {
			out[i][j] = m.At(i, j) / sum
		}
	}

	return mustMatrix(out)
}

// columnRange returns the min and max of column j.
func columnRange(m core.Matrix, j int) (min, max float64) {
	min, max = m.At(0, j), m.At(0, j)
	for i := 1; i < m.Rows(); i++ {
		v := m.At(i, j)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max
}

// mustMatrix rebuilds a core.Matrix from rows produced by this package.
// The rows are shape-valid and finite by construction, so an error here is
// a programmer error.
func mustMatrix(rows [][]float64) core.Matrix {
	m, err := core.NewMatrix(rows)
	if err != nil {
		panic(fmt.Sprintf("normalize: internal matrix rebuild failed: %v", err))
	}

	return m
}
