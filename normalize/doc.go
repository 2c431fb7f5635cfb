// Package normalize converts a raw decision matrix into a comparable
// [0,1]-ish matrix, given a per-criterion direction. Four interchangeable
// strategies are provided; each ranking method picks the one its classical
// definition calls for.
//
// 🚀 Strategies:
//
//   - Vector    — cell / sqrt(Σ cell² over the column). Direction-agnostic.
//     Used by TOPSIS, MOORA and ARAS's ratio step.
//   - LinearMax — maximize: cell / colMax; minimize: colMin / cell.
//     Used by SAW, WASPAS and CODAS.
//   - MinMax    — maximize: (cell − colMin) / range; minimize mirrored.
//     Used by the reference version of EDAS.
//   - Sum       — cell / colSum. Used by COPRAS and ARAS.
//
// ⚙️ Degeneracy guards (tested for finiteness, never surfaced as errors):
//
//   - Vector:    zero sum-of-squares → denominator substituted with 1.
//   - LinearMax: non-positive values are skipped when computing the column
//     min for a minimize column; a 0 cell maps to 0, not ∞.
//   - MinMax:    zero range (flat column) → denominator substituted with 1.
//   - Sum:       zero column sum → denominator substituted with 1.
//
// All strategies are pure: same shape out, fresh matrix, no shared state.
package normalize
