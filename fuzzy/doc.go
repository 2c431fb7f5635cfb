// Package fuzzy implements triangular fuzzy numbers and the operations the
// MCDM pipeline needs around them: arithmetic, distance, defuzzification,
// fuzzification from crisp values, and linguistic-scale lookup.
//
// 🚀 What is a triangular fuzzy number?
//
//	A value with acknowledged uncertainty, written (l, m, u):
//	lower bound, most-likely (middle) value, upper bound. A crisp value v
//	is the degenerate triangle (v, v, v). Fuzzy numbers let a judgment like
//	"around 7, surely between 6 and 9" flow through a ranking untouched
//	until the very end.
//
// ✨ Operations:
//
//   - Arithmetic: Add, Sub, Mul, Div, Scale — componentwise over (l, m, u).
//     Sub uses the interval rule (l1−u2, m1−m2, u1−l2), which keeps l ≤ u
//     for well-formed operands. Div guards zero divisor components.
//   - Distance: vertex method, sqrt(Σ component diffs²) / sqrt(3).
//   - Defuzzification: Centroid (l+m+u)/3, GradedMean (l+4m+u)/6,
//     MeanOfMaximum m, AlphaCut(α) — average of the two α-interpolated
//     bounds.
//   - Fuzzification: spread-percentage, absolute bounds, scale-relative,
//     gaussian sigma, and nearest-linguistic-term lookup.
//   - Scales: ordered term lists ("Very Low" … "Very High") with
//     abbreviation maps, case-insensitive resolution, and a configurable
//     neutral fallback for unknown terms (strict mode errors instead).
//     Scales can be declared in YAML and loaded with ParseScale/LoadScale.
//
// ⚠️ Well-formedness:
//
//	Arithmetic does not enforce l ≤ m ≤ u on its results. Division by a
//	number whose bounds straddle zero can produce an unordered triple; this
//	mirrors how fuzzy intervals actually behave and is left to the caller.
//	IsWellFormed reports the property and Normalize reorders the bounds for
//	callers that want the clamp. Both behaviors are tested.
package fuzzy
