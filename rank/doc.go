// Package rank implements the classical crisp MCDM ranking methods over a
// decision matrix, weight vector and per-criterion directions, plus a name
// dispatcher with a documented default.
//
// 🚀 Methods (N alternatives × M criteria):
//
//   - SAW    — linear-max normalize, score = Σ wⱼ·rᵢⱼ.
//   - WPM    — score = Π rᵢⱼ^(±wⱼ), exponent sign flips for minimize;
//     zero cells clamped to a small epsilon.
//   - TOPSIS — vector normalize, weight, distance to ideal/anti-ideal,
//     closeness = d⁻ / (d⁺ + d⁻).
//   - VIKOR  — group utility S, individual regret R, Q = v·S' + (1−v)·R';
//     lower Q is better internally, scores are reported as 1−Q.
//   - MOORA  — vector normalize, signed weighted sum (add benefit,
//     subtract cost).
//   - WASPAS — λ·SAW + (1−λ)·WPM.
//   - COPRAS — sum normalize, benefit/cost sums S⁺/S⁻, relative
//     significance Q, utility scaled to 0–100.
//   - EDAS   — positive/negative distance from the column average,
//     appraisal score from the two normalized sums.
//   - CODAS  — linear-max normalize, Euclidean + τ-thresholded Manhattan
//     distance from the negative-ideal solution.
//   - ARAS   — prepend the synthetic optimal alternative, sum normalize,
//     degree of utility against the optimal.
//
// ⚙️ Usage:
//
//	criteria := []core.Criterion{
//	  {Name: "cost", Weight: 0.5, Direction: core.Minimize},
//	  {Name: "quality", Weight: 0.5, Direction: core.Maximize},
//	}
//	res, err := rank.Rank("topsis", m, criteria)
//	// res.Scores, res.Ranks, res.Method, res.Fallback
//
// Method-specific parameters travel as options: WithCompromise (VIKOR's v),
// WithLambda (WASPAS), WithTau (CODAS). Unknown method names fall back to
// TOPSIS with Result.Fallback set — callers should flag that to users —
// or return ErrUnknownMethod under WithStrict.
//
// Every method returns scores where higher is better and ranks 1..N with
// input-order tie-breaking (one shared stable sort in core). Degenerate
// numeric input (zero columns, flat ranges) yields finite scores, never
// NaN/Inf; tests pin both properties.
package rank
