// Package aggregate combines multiple expert evaluation matrices — crisp
// or triangular fuzzy — into one group matrix, cell by cell.
//
// Two combination rules:
//
//   - Geometric  — the nth root of the cell product, the conventional
//     choice for ratio-scale judgments; exact zeros are epsilon-guarded
//     so one dissenting zero cannot annihilate the group value.
//   - Arithmetic — the plain cell mean.
//
// Both rules are order-independent (aggregating [A, B] equals [B, A]) and
// idempotent over identical matrices; tests pin both properties. All
// expert matrices must share identical dimensions — a mismatch is a
// precondition violation naming the offending expert, never a silent
// truncation.
package aggregate
