// SPDX-License-Identifier: MIT
// Package fuzzy: triangular number type and arithmetic kernel.

package fuzzy

import (
	"fmt"
	"math"
)

// divEpsilon substitutes a zero divisor component so Div always returns a
// finite triple.
const divEpsilon = 1e-9

// Number is a triangular fuzzy number (L, M, U) with the convention
// L ≤ M ≤ U. The convention is not enforced by arithmetic; see the package
// doc and IsWellFormed/Normalize.
type Number struct {
	L, M, U float64
}

// Crisp returns the degenerate fuzzy number (v, v, v).
func Crisp(v float64) Number {
	return Number{L: v, M: v, U: v}
}

// String implements fmt.Stringer.
func (n Number) String() string {
	return fmt.Sprintf("(%g, %g, %g)", n.L, n.M, n.U)
}

// IsWellFormed reports whether L ≤ M ≤ U holds.
func (n Number) IsWellFormed() bool {
	return n.L <= n.M && n.M <= n.U
}

// Normalize returns n with its three components reordered so L ≤ M ≤ U.
// This is the explicit opt-in clamp for results of Sub/Div on ill-behaved
// operands; no operator applies it implicitly.
func (n Number) Normalize() Number {
	l, m, u := n.L, n.M, n.U
	if l > m {
		l, m = m, l
	}
	if m > u {
		m, u = u, m
	}
	if l > m {
		l, m = m, l
	}

	return Number{L: l, M: m, U: u}
}

// Add returns n + o, componentwise.
func (n Number) Add(o Number) Number {
	return Number{L: n.L + o.L, M: n.M + o.M, U: n.U + o.U}
}

// Sub returns n − o by the interval rule: the smallest possible difference
// pairs n's lower with o's upper bound, and vice versa.
func (n Number) Sub(o Number) Number {
	return Number{L: n.L - o.U, M: n.M - o.M, U: n.U - o.L}
}

// Mul returns n × o, componentwise. For non-negative well-formed operands
// this is the standard triangular product approximation.
func (n Number) Mul(o Number) Number {
	return Number{L: n.L * o.L, M: n.M * o.M, U: n.U * o.U}
}

// Div returns n ÷ o as n × (1/o.U, 1/o.M, 1/o.L). Zero divisor components
// are substituted with divEpsilon so the result stays finite. A divisor
// straddling zero yields an unordered triple; see package doc.
func (n Number) Div(o Number) Number {
	return Number{
		L: n.L / nonzero(o.U),
		M: n.M / nonzero(o.M),
		U: n.U / nonzero(o.L),
	}
}

// Scale returns n scaled by the crisp factor k, componentwise. A negative
// k flips the bound order to keep the result well-formed.
func (n Number) Scale(k float64) Number {
	if k < 0 {
		return Number{L: k * n.U, M: k * n.M, U: k * n.L}
	}

	return Number{L: k * n.L, M: k * n.M, U: k * n.U}
}

// Distance returns the vertex-method distance between n and o:
// sqrt(((Ln−Lo)² + (Mn−Mo)² + (Un−Uo)²) / 3).
func (n Number) Distance(o Number) float64 {
	dl := n.L - o.L
	dm := n.M - o.M
	du := n.U - o.U

	return math.Sqrt((dl*dl + dm*dm + du*du) / 3)
}

// nonzero substitutes divEpsilon for an exactly zero divisor component,
// preserving sign for negative values.
func nonzero(v float64) float64 {
	if v == 0 {
		return divEpsilon
	}

	return v
}

// componentMax returns the componentwise maximum of a and b.
func componentMax(a, b Number) Number {
	return Number{L: math.Max(a.L, b.L), M: math.Max(a.M, b.M), U: math.Max(a.U, b.U)}
}

// componentMin returns the componentwise minimum of a and b.
func componentMin(a, b Number) Number {
	return Number{L: math.Min(a.L, b.L), M: math.Min(a.M, b.M), U: math.Min(a.U, b.U)}
}

// ComponentMax returns the componentwise maximum over ns.
// Panics on an empty slice (programmer error).
func ComponentMax(ns ...Number) Number {
	out := ns[0]
	for _, n := range ns[1:] {
		out = componentMax(out, n)
	}

	return out
}

// ComponentMin returns the componentwise minimum over ns.
// Panics on an empty slice (programmer error).
func ComponentMin(ns ...Number) Number {
	out := ns[0]
	for _, n := range ns[1:] {
		out = componentMin(out, n)
	}

	return out
}
