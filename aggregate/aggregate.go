// SPDX-License-Identifier: MIT
// Package aggregate: expert matrix aggregation.

package aggregate

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/fuzzy"
)

// zeroGuard replaces an exact zero inside a geometric product.
const zeroGuard = 1e-9

// Method selects the combination rule.
type Method int

const (
	// Geometric — nth root of the cell product across experts.
	Geometric Method = iota

	// Arithmetic — plain cell mean across experts.
	Arithmetic
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Geometric:
		return "geometric"
	case Arithmetic:
		return "arithmetic"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Sentinel errors.
var (
	// ErrNoMatrices is returned when the expert list is empty.
	ErrNoMatrices = errors.New("aggregate: no expert matrices")

	// ErrUnknownMethod is returned for a Method outside the enum.
	ErrUnknownMethod = errors.New("aggregate: unknown method")
)

// Matrices combines crisp expert matrices into one matrix of the same
// shape. All matrices must share dimensions; the error names the first
// mismatching expert.
func Matrices(ms []core.Matrix, method Method) (core.Matrix, error) {
	if err := checkMethod(method); err != nil {
		return core.Matrix{}, err
	}
	if len(ms) == 0 {
		return core.Matrix{}, ErrNoMatrices
	}
	rows, cols := ms[0].Rows(), ms[0].Cols()
	if rows == 0 || cols == 0 {
		return core.Matrix{}, core.ErrEmptyMatrix
	}
	for e := 1; e < len(ms); e++ {
		if ms[e].Rows() != rows || ms[e].Cols() != cols {
			return core.Matrix{}, fmt.Errorf("expert %d is %d×%d, want %d×%d: %w",
				e, ms[e].Rows(), ms[e].Cols(), rows, cols, core.ErrDimensionMismatch)
		}
	}

	out := make([][]float64, rows)
	cells := make([]float64, len(ms))
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			for e := range ms {
				cells[e] = ms[e].At(i, j)
			}
			out[i][j] = combine(cells, method)
		}
	}

	return core.NewMatrix(out)
}

// FuzzyMatrices combines triangular fuzzy expert matrices componentwise,
// with the same dimension contract as Matrices.
func FuzzyMatrices(fms [][][]fuzzy.Number, method Method) ([][]fuzzy.Number, error) {
	if err := checkMethod(method); err != nil {
		return nil, err
	}
	if len(fms) == 0 {
		return nil, ErrNoMatrices
	}
	rows := len(fms[0])
	if rows == 0 || len(fms[0][0]) == 0 {
		return nil, core.ErrEmptyMatrix
	}
	cols := len(fms[0][0])
	for e, fm := range fms {
		if len(fm) != rows {
			return nil, fmt.Errorf("expert %d has %d rows, want %d: %w", e, len(fm), rows, core.ErrDimensionMismatch)
		}
		for i, row := range fm {
			if len(row) != cols {
				return nil, fmt.Errorf("expert %d row %d has %d cells, want %d: %w",
					e, i, len(row), cols, core.ErrDimensionMismatch)
			}
		}
	}

	out := make([][]fuzzy.Number, rows)
	ls := make([]float64, len(fms))
	ms := make([]float64, len(fms))
	us := make([]float64, len(fms))
	for i := 0; i < rows; i++ {
		out[i] = make([]fuzzy.Number, cols)
		for j := 0; j < cols; j++ {
			for e := range fms {
				ls[e] = fms[e][i][j].L
				ms[e] = fms[e][i][j].M
				us[e] = fms[e][i][j].U
			}
			out[i][j] = fuzzy.Number{
				L: combine(ls, method),
				M: combine(ms, method),
				U: combine(us, method),
			}
		}
	}

	return out, nil
}

// combine folds one cell position across all experts.
func combine(cells []float64, method Method) float64 {
	n := float64(len(cells))
	if method == Arithmetic {
		sum := 0.0
		for _, v := range cells {
			sum += v
		}

		return sum / n
	}

	// geometric: nth root of the product, zeros epsilon-guarded
	prod := 1.0
	for _, v := range cells {
		if v == 0 {
			v = zeroGuard
		}
		prod *= v
	}

	return math.Pow(prod, 1/n)
}

// checkMethod validates the enum value.
func checkMethod(method Method) error {
	if method != Geometric && method != Arithmetic {
		return fmt.Errorf("%d: %w", int(method), ErrUnknownMethod)
	}

	return nil
}
