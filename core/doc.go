// Package core defines the fundamental value types of the mcdm library:
// the decision matrix, criteria (weight + optimization direction), the
// ranking result, and the shared validation and rank-assignment helpers
// every method package builds on.
//
// 🚀 What lives here?
//
//   - Matrix       — an immutable, row-major alternatives×criteria grid.
//     Every transform in this library returns a fresh Matrix;
//     the engine never mutates caller data in place.
//   - Criterion    — name (display only), non-negative weight, and a
//     Maximize/Minimize direction.
//   - RankingResult — per-alternative score plus a rank in 1..N; ranks are
//     always a gapless permutation, ties broken by input order.
//   - Validation   — fail-fast precondition checks (empty or ragged input,
//     dimension mismatches, NaN/Inf cells, oversized matrices).
//
// ⚙️ Conventions:
//
//   - Weights are expected to sum to 1 but are not forced to; use
//     NormalizeWeights when the caller wants that invariant. Scores scale
//     proportionally under a common weight scale, so rank order survives.
//   - Tie-breaking is a contract, not an accident: RankDescending and
//     RankAscending use a stable sort, so equal scores keep their input
//     order. Tests pin this behavior.
//   - Precondition violations return sentinel errors (matched with
//     errors.Is); numeric degeneracy never surfaces as an error — downstream
//     packages guard denominators locally and stay finite.
//
// See the package-level examples for typical construction and validation.
package core
