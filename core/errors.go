// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every mcdm package.
// All precondition failures MUST surface one of these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when
// context (which expert, which dimension) is essential — callers still use
// errors.Is to match.

var (
	// ErrEmptyMatrix is returned when a matrix with zero rows or zero
	// columns reaches an operation that needs at least one of each.
	ErrEmptyMatrix = errors.New("core: matrix is empty")

	// ErrRaggedMatrix is returned at construction when input rows have
	// unequal lengths. The engine never silently truncates or pads.
	ErrRaggedMatrix = errors.New("core: rows have unequal lengths")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. criteria count != matrix columns, or expert matrices
	// of different shapes.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrBadWeight signals a negative, NaN or Inf weight, or a weight
	// vector that sums to zero where a normalized vector is required.
	ErrBadWeight = errors.New("core: invalid weight")

	// ErrBadDirection signals a Direction value outside {Maximize, Minimize}.
	ErrBadDirection = errors.New("core: invalid criterion direction")

	// ErrNaNInf signals a NaN or ±Inf cell where finite values are required.
	ErrNaNInf = errors.New("core: NaN or Inf encountered")

	// ErrTooLarge is returned when rows*cols exceeds MaxCells. The engine
	// bounds matrix size defensively; realistic inputs are tens × tens.
	ErrTooLarge = errors.New("core: matrix exceeds cell budget")
)
