// SPDX-License-Identifier: MIT
// Package fuzzy: defuzzification — collapsing (l, m, u) to one real.

package fuzzy

import (
	"errors"
	"fmt"
)

// DefaultAlpha is the α used by Defuzzify for the AlphaCut method.
const DefaultAlpha = 0.5

// Defuzzifier selects a defuzzification formula for Defuzzify.
type Defuzzifier int

const (
	// Centroid — (l + m + u) / 3.
	Centroid Defuzzifier = iota

	// GradedMean — (l + 4m + u) / 6, weights the most-likely value.
	GradedMean

	// MeanOfMaximum — m, the peak of the membership function.
	MeanOfMaximum

	// AlphaCut — the average of the two α-interpolated bounds at α = DefaultAlpha.
	AlphaCut
)

// String implements fmt.Stringer.
func (d Defuzzifier) String() string {
	switch d {
	case Centroid:
		return "centroid"
	case GradedMean:
		return "gradedMean"
	case MeanOfMaximum:
		return "meanOfMaximum"
	case AlphaCut:
		return "alphaCut"
	default:
		return fmt.Sprintf("defuzzifier(%d)", int(d))
	}
}

// ErrUnknownDefuzzifier is returned by Defuzzify for values outside the enum.
var ErrUnknownDefuzzifier = errors.New("fuzzy: unknown defuzzifier")

// Centroid returns (l + m + u) / 3.
func (n Number) Centroid() float64 {
	return (n.L + n.M + n.U) / 3
}

// GradedMean returns (l + 4m + u) / 6.
func (n Number) GradedMean() float64 {
	return (n.L + 4*n.M + n.U) / 6
}

// MeanOfMaximum returns m.
func (n Number) MeanOfMaximum() float64 {
	return n.M
}

// AlphaCutAt returns the midpoint of the α-cut interval:
// the average of l + α(m−l) and u − α(u−m). At α=1 both bounds collapse
// to m; at α=0 it is the midpoint of [l, u].
func (n Number) AlphaCutAt(alpha float64) float64 {
	lower := n.L + alpha*(n.M-n.L)
	upper := n.U - alpha*(n.U-n.M)

	return (lower + upper) / 2
}

// Defuzzify applies the chosen formula to n. AlphaCut uses DefaultAlpha;
// call AlphaCutAt directly for other α values.
func Defuzzify(n Number, method Defuzzifier) (float64, error) {
	switch method {
	case Centroid:
		return n.Centroid(), nil
	case GradedMean:
		return n.GradedMean(), nil
	case MeanOfMaximum:
		return n.MeanOfMaximum(), nil
	case AlphaCut:
		return n.AlphaCutAt(DefaultAlpha), nil
	default:
		return 0, fmt.Errorf("%d: %w", int(method), ErrUnknownDefuzzifier)
	}
}
