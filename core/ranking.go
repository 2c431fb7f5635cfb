// SPDX-License-Identifier: MIT
// Package core: rank assignment shared by every method package.
//
// Tie-breaking is contractual here: both helpers sort with sort.SliceStable
// over an index permutation, so alternatives with equal scores keep their
// input order. Method packages MUST NOT roll their own sort.

package core

import "sort"

// RankDescending assigns ranks 1..N to scores, higher score = better rank.
// Equal scores keep input order. The input slice is not modified.
func RankDescending(scores []float64) []int {
	return assignRanks(scores, func(a, b float64) bool { return a > b })
}

// RankAscending assigns ranks 1..N to scores, lower score = better rank.
// Used by methods that minimize internally (VIKOR's Q).
func RankAscending(scores []float64) []int {
	return assignRanks(scores, func(a, b float64) bool { return a < b })
}

// assignRanks sorts an index permutation by `better` and writes positional
// ranks back. Stable sort keeps equal scores in input order.
func assignRanks(scores []float64, better func(a, b float64) bool) []int {
	n := len(scores)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return better(scores[idx[a]], scores[idx[b]])
	})

	ranks := make([]int, n)
	for pos, i := range idx {
		ranks[i] = pos + 1
	}

	return ranks
}
