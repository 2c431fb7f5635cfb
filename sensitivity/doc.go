// Package sensitivity perturbs the weight vector of a ranking problem,
// reruns the chosen ranking method per scenario, and reports how stable
// the resulting ranks are.
//
// 🚀 Scenario kinds:
//
//   - OAT        — one-at-a-time: each criterion's weight grows by 50%,
//     the increase is taken from the other weights proportionally to
//     their share, and the vector is renormalized to sum 1.
//   - Percentage — each criterion's weight moves ±P% (WithPercent,
//     default 10), same proportional redistribution, negatives clamped
//     to 0, renormalized.
//   - Extreme    — each criterion in turn is given 50% dominance with the
//     remainder split equally, plus one fully-equal-weights scenario.
//
// Every Scenario carries its perturbed weight vector and the full
// RankingResult it produced, so UIs can show per-scenario detail.
// Stability then folds scenarios into a report: the min/max rank each
// alternative ever saw (range 0 = rock solid) and the criteria whose
// perturbation dethroned the baseline winner ("critical criteria").
//
// Scenarios are independent pure computations; callers may fan them out
// across goroutines freely, but the driver itself stays sequential and
// deterministic (scenario order is criterion order).
package sensitivity
