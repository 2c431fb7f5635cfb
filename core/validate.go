// SPDX-License-Identifier: MIT
// Package core: shared precondition checks.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty matrix -> dimension mismatch -> bad direction -> bad weight.
// Numeric degeneracy (zero columns, flat ranges) is NOT an error here;
// method packages recover from it locally with guarded denominators.

package core

import (
	"fmt"
	"math"
)

// Validate checks a matrix against its criteria list: the matrix must be
// non-empty, the criteria count must equal the column count, every
// direction must be defined, and every weight must be finite and
// non-negative. Weights are NOT required to sum to 1 (see package doc).
func Validate(m Matrix, criteria []Criterion) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return ErrEmptyMatrix
	}
	if len(criteria) != m.Cols() {
		return fmt.Errorf("%d criteria for %d columns: %w", len(criteria), m.Cols(), ErrDimensionMismatch)
	}
	for j, cr := range criteria {
		if !cr.Direction.valid() {
			return fmt.Errorf("criterion %d: %w", j, ErrBadDirection)
		}
		if cr.Weight < 0 || math.IsNaN(cr.Weight) || math.IsInf(cr.Weight, 0) {
			return fmt.Errorf("criterion %d weight %v: %w", j, cr.Weight, ErrBadWeight)
		}
	}

	return nil
}

// ValidateDirections checks a bare direction vector against a matrix,
// for callers that carry weights separately (e.g. fuzzy TOPSIS).
func ValidateDirections(cols int, directions []Direction) error {
	if len(directions) != cols {
		return fmt.Errorf("%d directions for %d columns: %w", len(directions), cols, ErrDimensionMismatch)
	}
	for j, d := range directions {
		if !d.valid() {
			return fmt.Errorf("direction %d: %w", j, ErrBadDirection)
		}
	}

	return nil
}

// Weights extracts the weight vector from a criteria list.
func Weights(criteria []Criterion) []float64 {
	ws := make([]float64, len(criteria))
	for j, cr := range criteria {
		ws[j] = cr.Weight
	}

	return ws
}

// Directions extracts the direction vector from a criteria list.
func Directions(criteria []Criterion) []Direction {
	ds := make([]Direction, len(criteria))
	for j, cr := range criteria {
		ds[j] = cr.Direction
	}

	return ds
}

// NormalizeWeights scales ws so it sums to 1 and returns the fresh vector.
// Returns ErrBadWeight when any weight is negative or non-finite, or when
// the sum is zero (nothing to normalize against).
func NormalizeWeights(ws []float64) ([]float64, error) {
	sum := 0.0
	for j, w := range ws {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("weight %d is %v: %w", j, w, ErrBadWeight)
		}
		sum += w
	}
	if sum == 0 {
		return nil, fmt.Errorf("weights sum to zero: %w", ErrBadWeight)
	}
	out := make([]float64, len(ws))
	for j, w := range ws {
		out[j] = w / sum
	}

	return out, nil
}
