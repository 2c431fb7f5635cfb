// Package ftopsis implements fuzzy TOPSIS: the closeness-coefficient
// ranking of crisp TOPSIS, computed directly on triangular fuzzy matrices
// so uncertainty survives until the final score instead of being
// defuzzified away up front.
//
// 🚀 Pipeline:
//
//  1. Coerce crisp weights to degenerate fuzzy numbers if needed
//     (CrispWeights).
//  2. Normalize each column linearly: benefit columns divide by the
//     column's largest upper bound; cost columns divide the column's
//     smallest lower bound by the cell (reversed component order).
//  3. Weight componentwise.
//  4. Derive the fuzzy positive/negative ideal solutions as per-column
//     componentwise max/min of the weighted matrix.
//  5. Sum vertex-method distances to each ideal and score
//     CCᵢ = d⁻ / (d⁺ + d⁻).
//
// The result is a plain core.RankingResult: ranks 1..N, input-order ties,
// same contract as every crisp method. DefuzzifyMatrix bridges the other
// direction for callers that do want a crisp matrix early.
package ftopsis
