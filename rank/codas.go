// SPDX-License-Identifier: MIT
// Package rank: CODAS (Combinative Distance-based Assessment).

package rank

import (
	"math"

	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/normalize"
)

// CODAS ranks by combined distance from the negative-ideal solution (NIS):
// linear-max normalize, weight, take the per-column minimum as the NIS,
// then compare alternatives pairwise:
//
//	H[i][k] = (Eᵢ − Eₖ) + ψ(Eᵢ − Eₖ) · (Tᵢ − Tₖ),
//
// where E is Euclidean and T is Manhattan distance from the NIS, and
// ψ(x) = 1 when |x| ≥ τ, else 0: Euclidean differences inside the
// indifference band τ suppress the Manhattan term. Score is the row sum
// of H. Configure τ with WithTau (default 0.02).
func CODAS(m core.Matrix, criteria []core.Criterion, opts ...Option) (core.RankingResult, error) {
	ws, dirs, o, err := prepare(m, criteria, opts)
	if err != nil {
		return core.RankingResult{}, err
	}

	nm, err := normalize.Normalize(m, dirs, normalize.LinearMax)
	if err != nil {
		return core.RankingResult{}, err
	}
	rows := nm.Slice()
	weightColumns(rows, ws)

	// NIS: per-column minimum of the weighted normalized matrix
	// (normalization already folded directions into "higher is better")
	cols := len(ws)
	nis := make([]float64, cols)
	for j := 0; j < cols; j++ {
		nis[j] = rows[0][j]
		for i := 1; i < len(rows); i++ {
			nis[j] = math.Min(nis[j], rows[i][j])
		}
	}

	n := len(rows)
	e := make([]float64, n)
	t := make([]float64, n)
	for i, row := range rows {
		e[i] = euclidean(row, nis)
		t[i] = manhattan(row, nis)
	}

	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			dE := e[i] - e[k]
			h := dE
			if math.Abs(dE) >= o.Tau {
				h += t[i] - t[k]
			}
			scores[i] += h
		}
	}

	return descending(scores), nil
}
