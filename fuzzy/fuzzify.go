// SPDX-License-Identifier: MIT
// Package fuzzy: fuzzification — building (l, m, u) from a crisp value.
//
// Five constructors, matching the ways uncertainty is usually declared:
// a relative spread, explicit bounds, a spread relative to the scale range,
// a gaussian-style sigma, and snapping to the nearest linguistic term.
// Each with spread 0 collapses to Crisp(v), so centroid-defuzzifying the
// result round-trips exactly — that property is pinned in tests.

package fuzzy

import (
	"fmt"
	"math"
)

// FromSpread builds (v·(1−p), v, v·(1+p)) from a fractional spread p
// (0.1 = ±10%). Negative v flips the bounds to stay well-formed.
func FromSpread(v, spread float64) Number {
	d := math.Abs(v * spread)

	return Number{L: v - d, M: v, U: v + d}
}

// FromBounds builds a triangle from explicit bounds around the crisp peak.
// Returns an error when the bounds do not bracket v.
func FromBounds(v, lower, upper float64) (Number, error) {
	if lower > v || upper < v {
		return Number{}, fmt.Errorf("fuzzy: bounds [%g, %g] do not bracket %g: %w", lower, upper, v, ErrMalformedNumber)
	}

	return Number{L: lower, M: v, U: upper}, nil
}

// FromScaleRelative spreads v by a fraction of the scale range
// [scaleMin, scaleMax], clamping the bounds into that range. This keeps
// judgments near the scale edges from spilling outside it.
func FromScaleRelative(v, spread, scaleMin, scaleMax float64) Number {
	d := math.Abs(spread * (scaleMax - scaleMin))

	return Number{
		L: math.Max(scaleMin, v-d),
		M: v,
		U: math.Min(scaleMax, v+d),
	}
}

// FromSigma builds (v−σ, v, v+σ), the triangular stand-in for a gaussian
// membership with standard deviation σ.
func FromSigma(v, sigma float64) Number {
	d := math.Abs(sigma)

	return Number{L: v - d, M: v, U: v + d}
}
