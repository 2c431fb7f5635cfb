// SPDX-License-Identifier: MIT
// Package core: value types for decision matrices, criteria and results.

package core

import (
	"fmt"
	"math"
	"strings"
)

// MaxCells bounds rows*cols for a single matrix. Inputs beyond this are
// rejected with ErrTooLarge rather than allocated.
const MaxCells = 10_000

// Direction states whether larger or smaller raw values are preferable
// for a criterion.
type Direction int

const (
	// Maximize — larger raw values are better (benefit criterion).
	Maximize Direction = iota

	// Minimize — smaller raw values are better (cost criterion).
	Minimize
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// valid reports whether d is one of the two defined directions.
func (d Direction) valid() bool {
	return d == Maximize || d == Minimize
}

// Criterion is one evaluation dimension (a matrix column).
// Name is display-only and carries no semantic weight in the math.
type Criterion struct {
	Name      string
	Weight    float64
	Direction Direction
}

// Matrix is a row-major alternatives×criteria grid of float64 values.
// It is immutable by convention: constructors deep-copy their input, and
// every transform in this library returns a fresh Matrix. The zero value
// is an empty matrix.
type Matrix struct {
	r, c int
	data []float64 // flat backing storage, length == r*c
}

// NewMatrix builds a Matrix from rows, deep-copying the input.
// Returns ErrEmptyMatrix for zero rows or zero columns, ErrRaggedMatrix
// when row lengths differ, ErrNaNInf for non-finite cells, and ErrTooLarge
// beyond MaxCells.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, ErrEmptyMatrix
	}
	r, c := len(rows), len(rows[0])
	if r*c > MaxCells {
		return Matrix{}, fmt.Errorf("%d×%d: %w", r, c, ErrTooLarge)
	}
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return Matrix{}, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), c, ErrRaggedMatrix)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Matrix{}, fmt.Errorf("cell (%d,%d): %w", i, j, ErrNaNInf)
			}
			data = append(data, v)
		}
	}

	return Matrix{r: r, c: c, data: data}, nil
}

// ZeroMatrix returns an r×c Matrix of zeros.
func ZeroMatrix(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, ErrEmptyMatrix
	}
	if rows*cols > MaxCells {
		return Matrix{}, fmt.Errorf("%d×%d: %w", rows, cols, ErrTooLarge)
	}

	return Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of alternatives.
func (m Matrix) Rows() int { return m.r }

// Cols returns the number of criteria.
func (m Matrix) Cols() int { return m.c }

// At returns the cell at (row, col). Indices are expected valid for a
// constructed Matrix; out-of-range access panics (programmer error).
func (m Matrix) At(row, col int) float64 {
	return m.data[row*m.c+col]
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) []float64 {
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Slice returns the matrix as a fresh [][]float64, safe to mutate.
func (m Matrix) Slice() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.Row(i)
	}

	return out
}

// Clone returns a deep copy of the Matrix.
func (m Matrix) Clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return Matrix{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer for debugging.
func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%8.4f ", m.At(i, j))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// RankingResult is the outcome of one ranking method: a score per
// alternative plus a rank in 1..N (1 = best). Ranks are always a gapless
// permutation; equal scores keep their input order.
type RankingResult struct {
	Scores []float64
	Ranks  []int
}

// Best returns the index of the rank-1 alternative.
func (r RankingResult) Best() int {
	for i, rk := range r.Ranks {
		if rk == 1 {
			return i
		}
	}

	return -1 // empty result
}
