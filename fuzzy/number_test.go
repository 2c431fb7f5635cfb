package fuzzy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mcdm/fuzzy"
)

// TestArithmetic_AddSub checks componentwise addition and the interval
// subtraction rule (l1−u2, m1−m2, u1−l2).
func TestArithmetic_AddSub(t *testing.T) {
	a := fuzzy.Number{L: 1, M: 2, U: 3}
	b := fuzzy.Number{L: 0.5, M: 1, U: 1.5}

	assert.Equal(t, fuzzy.Number{L: 1.5, M: 3, U: 4.5}, a.Add(b))
	assert.Equal(t, fuzzy.Number{L: -0.5, M: 1, U: 2.5}, a.Sub(b))
}

// TestArithmetic_SubStaysWellFormed: for well-formed operands the interval
// rule preserves l ≤ m ≤ u, even when the result is negative.
func TestArithmetic_SubStaysWellFormed(t *testing.T) {
	a := fuzzy.Number{L: 1, M: 2, U: 3}
	b := fuzzy.Number{L: 4, M: 5, U: 6}
	assert.True(t, a.Sub(b).IsWellFormed())
	assert.True(t, b.Sub(a).IsWellFormed())
}

// TestArithmetic_MulScale checks componentwise product and crisp scaling,
// including the bound flip for negative factors.
func TestArithmetic_MulScale(t *testing.T) {
	a := fuzzy.Number{L: 1, M: 2, U: 3}
	b := fuzzy.Number{L: 2, M: 2, U: 2}

	assert.Equal(t, fuzzy.Number{L: 2, M: 4, U: 6}, a.Mul(b))
	assert.Equal(t, fuzzy.Number{L: 2, M: 4, U: 6}, a.Scale(2))
	assert.Equal(t, fuzzy.Number{L: -6, M: -4, U: -2}, a.Scale(-2))
	assert.True(t, a.Scale(-2).IsWellFormed())
}

// TestArithmetic_DivGuardsZero: zero divisor components are substituted,
// so the result is always finite.
func TestArithmetic_DivGuardsZero(t *testing.T) {
	a := fuzzy.Number{L: 1, M: 2, U: 3}
	q := a.Div(fuzzy.Number{L: 0, M: 0, U: 0})
	assert.False(t, math.IsInf(q.L, 0) || math.IsInf(q.M, 0) || math.IsInf(q.U, 0))
	assert.False(t, math.IsNaN(q.L) || math.IsNaN(q.M) || math.IsNaN(q.U))
}

// TestArithmetic_DivStraddlingZeroIsUnordered documents the accepted
// limitation: dividing by a number whose bounds straddle zero produces an
// unordered triple, and Normalize is the explicit clamp.
func TestArithmetic_DivStraddlingZeroIsUnordered(t *testing.T) {
	a := fuzzy.Number{L: 1, M: 2, U: 3}
	q := a.Div(fuzzy.Number{L: -1, M: 1, U: 2})
	assert.False(t, q.IsWellFormed())
	assert.True(t, q.Normalize().IsWellFormed())
}

// TestNormalize_ReordersBounds verifies the three-way reorder.
func TestNormalize_ReordersBounds(t *testing.T) {
	n := fuzzy.Number{L: 3, M: 1, U: 2}
	assert.Equal(t, fuzzy.Number{L: 1, M: 2, U: 3}, n.Normalize())
}

// TestDistance checks the vertex-method distance and its metric basics.
func TestDistance(t *testing.T) {
	a := fuzzy.Number{L: 1, M: 2, U: 3}
	b := fuzzy.Number{L: 2, M: 3, U: 4}

	assert.Equal(t, 0.0, a.Distance(a))
	assert.InDelta(t, 1.0, a.Distance(b), 1e-12) // sqrt(3/3)
	assert.Equal(t, a.Distance(b), b.Distance(a))
}

// TestDefuzzify covers the four formulas on one asymmetric triangle.
func TestDefuzzify(t *testing.T) {
	n := fuzzy.Number{L: 0, M: 3, U: 9}

	assert.InDelta(t, 4.0, n.Centroid(), 1e-12)
	assert.InDelta(t, 3.5, n.GradedMean(), 1e-12) // (0+12+9)/6
	assert.Equal(t, 3.0, n.MeanOfMaximum())
	// α=0.5: bounds 1.5 and 6 → 3.75
	assert.InDelta(t, 3.75, n.AlphaCutAt(0.5), 1e-12)
	// α=1 collapses to m
	assert.Equal(t, 3.0, n.AlphaCutAt(1))

	got, err := fuzzy.Defuzzify(n, fuzzy.GradedMean)
	assert.NoError(t, err)
	assert.InDelta(t, 3.5, got, 1e-12)

	_, err = fuzzy.Defuzzify(n, fuzzy.Defuzzifier(9))
	assert.ErrorIs(t, err, fuzzy.ErrUnknownDefuzzifier)
}

// TestFuzzify_RoundTrip: zero spread collapses every constructor to a
// point, and centroid-defuzzification returns the crisp value exactly.
func TestFuzzify_RoundTrip(t *testing.T) {
	const v = 7.25

	assert.Equal(t, v, fuzzy.FromSpread(v, 0).Centroid())
	assert.Equal(t, v, fuzzy.FromSigma(v, 0).Centroid())
	assert.Equal(t, v, fuzzy.FromScaleRelative(v, 0, 0, 10).Centroid())
	assert.Equal(t, v, fuzzy.Crisp(v).Centroid())

	n, err := fuzzy.FromBounds(v, v, v)
	assert.NoError(t, err)
	assert.Equal(t, v, n.Centroid())
}

// TestFuzzify_Constructors checks the bound shapes of each constructor.
func TestFuzzify_Constructors(t *testing.T) {
	n := fuzzy.FromSpread(10, 0.1)
	assert.Equal(t, fuzzy.Number{L: 9, M: 10, U: 11}, n)

	n = fuzzy.FromSigma(10, 2)
	assert.Equal(t, fuzzy.Number{L: 8, M: 10, U: 12}, n)

	// scale-relative clamps into the scale range
	n = fuzzy.FromScaleRelative(9.5, 0.1, 0, 10)
	assert.Equal(t, fuzzy.Number{L: 8.5, M: 9.5, U: 10}, n)

	_, err := fuzzy.FromBounds(5, 6, 7)
	assert.ErrorIs(t, err, fuzzy.ErrMalformedNumber)
}

// TestComponentMaxMin checks the per-component extrema helpers used by
// fuzzy TOPSIS ideals.
func TestComponentMaxMin(t *testing.T) {
	a := fuzzy.Number{L: 1, M: 5, U: 6}
	b := fuzzy.Number{L: 2, M: 3, U: 9}

	assert.Equal(t, fuzzy.Number{L: 2, M: 5, U: 9}, fuzzy.ComponentMax(a, b))
	assert.Equal(t, fuzzy.Number{L: 1, M: 3, U: 6}, fuzzy.ComponentMin(a, b))
}
