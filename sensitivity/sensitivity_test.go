// SPDX-License-Identifier: MIT

package sensitivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/rank"
	"github.com/katalvlaran/mcdm/sensitivity"
)

func threeCriteria(t *testing.T) (core.Matrix, []core.Criterion) {
	t.Helper()
	m, err := core.NewMatrix([][]float64{
		{10, 10, 1},
		{1, 1, 20},
	})
	require.NoError(t, err)
	criteria := []core.Criterion{
		{Name: "speed", Weight: 1, Direction: core.Maximize},
		{Name: "range", Weight: 1, Direction: core.Maximize},
		{Name: "price", Weight: 1, Direction: core.Maximize},
	}

	return m, criteria
}

// sumsToOne asserts every scenario carries a full, renormalized weight
// vector.
func sumsToOne(t *testing.T, scenarios []sensitivity.Scenario, m int) {
	t.Helper()
	for _, sc := range scenarios {
		require.Len(t, sc.Weights, m, "scenario %q", sc.Label)
		total := 0.0
		for _, w := range sc.Weights {
			assert.GreaterOrEqual(t, w, 0.0, "scenario %q", sc.Label)
			total += w
		}
		assert.InDelta(t, 1.0, total, 1e-9, "scenario %q", sc.Label)
	}
}

// TestScenarios_OAT builds one scenario per criterion, each perturbing a
// single weight, each vector summing to 1.
func TestScenarios_OAT(t *testing.T) {
	m, criteria := threeCriteria(t)

	scenarios, err := sensitivity.Scenarios(m, criteria, "saw", sensitivity.OAT)
	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	sumsToOne(t, scenarios, 3)

	for j, sc := range scenarios {
		assert.Equal(t, j, sc.Perturbed)
		assert.Contains(t, sc.Label, criteria[j].Name)
		// the perturbed weight rose above its 1/3 baseline
		assert.Greater(t, sc.Weights[j], 1.0/3)
		assert.Len(t, sc.Result.Ranks, m.Rows())
	}
}

// TestScenarios_Percentage emits a +P and a −P scenario per criterion.
func TestScenarios_Percentage(t *testing.T) {
	m, criteria := threeCriteria(t)

	scenarios, err := sensitivity.Scenarios(m, criteria, "saw", sensitivity.Percentage)
	require.NoError(t, err)
	require.Len(t, scenarios, 6)
	sumsToOne(t, scenarios, 3)

	// pairs arrive as (+P, −P) per criterion
	for j := 0; j < 3; j++ {
		up, down := scenarios[2*j], scenarios[2*j+1]
		assert.Equal(t, j, up.Perturbed)
		assert.Equal(t, j, down.Perturbed)
		assert.Greater(t, up.Weights[j], down.Weights[j])
	}
}

// TestScenarios_Extreme emits one dominance scenario per criterion plus
// the equal-weights scenario.
func TestScenarios_Extreme(t *testing.T) {
	m, criteria := threeCriteria(t)

	scenarios, err := sensitivity.Scenarios(m, criteria, "saw", sensitivity.Extreme)
	require.NoError(t, err)
	require.Len(t, scenarios, 4)
	sumsToOne(t, scenarios, 3)

	for j := 0; j < 3; j++ {
		assert.Equal(t, j, scenarios[j].Perturbed)
		assert.InDelta(t, 0.5, scenarios[j].Weights[j], 1e-12)
	}

	equal := scenarios[3]
	assert.Equal(t, -1, equal.Perturbed)
	for _, w := range equal.Weights {
		assert.InDelta(t, 1.0/3, w, 1e-12)
	}
}

// TestScenarios_LargePercentClamps verifies that a perturbation larger
// than the weight itself clamps at zero instead of going negative.
func TestScenarios_LargePercentClamps(t *testing.T) {
	m, criteria := threeCriteria(t)

	scenarios, err := sensitivity.Scenarios(m, criteria, "saw", sensitivity.Percentage,
		sensitivity.WithPercent(300))
	require.NoError(t, err)
	sumsToOne(t, scenarios, 3)

	// the −300% scenario of criterion 0 zeros that weight entirely
	down := scenarios[1]
	assert.Equal(t, 0, down.Perturbed)
	assert.Zero(t, down.Weights[0])
}

// TestScenarios_UnnormalizedWeights accepts criteria whose weights do not
// sum to 1 and renormalizes before perturbing.
func TestScenarios_UnnormalizedWeights(t *testing.T) {
	m, _ := threeCriteria(t)
	criteria := []core.Criterion{
		{Weight: 2, Direction: core.Maximize},
		{Weight: 3, Direction: core.Maximize},
		{Weight: 5, Direction: core.Maximize},
	}

	scenarios, err := sensitivity.Scenarios(m, criteria, "topsis", sensitivity.OAT)
	require.NoError(t, err)
	sumsToOne(t, scenarios, 3)
}

// TestScenarios_Preconditions covers option violations, bad kinds and
// invalid inputs.
func TestScenarios_Preconditions(t *testing.T) {
	m, criteria := threeCriteria(t)

	_, err := sensitivity.Scenarios(m, criteria, "saw", sensitivity.Percentage,
		sensitivity.WithPercent(-5))
	assert.ErrorIs(t, err, sensitivity.ErrOptionViolation)

	_, err = sensitivity.Scenarios(m, criteria, "saw", sensitivity.Kind(99))
	assert.ErrorIs(t, err, sensitivity.ErrUnknownKind)

	_, err = sensitivity.Scenarios(m, criteria[:2], "saw", sensitivity.OAT)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, err = sensitivity.Scenarios(core.Matrix{}, criteria, "saw", sensitivity.OAT)
	assert.ErrorIs(t, err, core.ErrEmptyMatrix)

	_, err = sensitivity.Scenarios(m, criteria, "no-such-method", sensitivity.OAT,
		sensitivity.WithRankOptions(rank.WithStrict()))
	assert.ErrorIs(t, err, rank.ErrUnknownMethod)
}

// TestStability_CriticalCriteria flags exactly the criterion whose
// dominance dethrones the baseline winner.
func TestStability_CriticalCriteria(t *testing.T) {
	m, criteria := threeCriteria(t)

	base, err := rank.Rank("saw", m, criteria)
	require.NoError(t, err)
	require.Equal(t, 0, base.Best())

	scenarios, err := sensitivity.Scenarios(m, criteria, "saw", sensitivity.Extreme)
	require.NoError(t, err)

	report, err := sensitivity.Stability(base.RankingResult, scenarios)
	require.NoError(t, err)

	// only the price column can carry alternative 1 past alternative 0
	assert.Equal(t, []int{2}, report.CriticalCriteria)

	require.Len(t, report.RankRanges, 2)
	for i, rr := range report.RankRanges {
		assert.LessOrEqual(t, rr.Min, base.Ranks[i])
		assert.GreaterOrEqual(t, rr.Max, base.Ranks[i])
		assert.Equal(t, rr.Max-rr.Min, rr.Width())
	}
	// the flip moved both alternatives by one rank
	assert.Equal(t, 1, report.RankRanges[0].Width())
	assert.Equal(t, 1, report.RankRanges[1].Width())
}

// TestStability_StableRanking reports zero-width ranges and no critical
// criteria when no perturbation reorders the alternatives.
func TestStability_StableRanking(t *testing.T) {
	// alternative 0 dominates every column, so no weight shift can
	// displace it
	m, err := core.NewMatrix([][]float64{
		{9, 9, 9},
		{1, 1, 1},
	})
	require.NoError(t, err)
	criteria := []core.Criterion{
		{Weight: 1, Direction: core.Maximize},
		{Weight: 1, Direction: core.Maximize},
		{Weight: 1, Direction: core.Maximize},
	}

	base, err := rank.Rank("topsis", m, criteria)
	require.NoError(t, err)

	scenarios, err := sensitivity.Scenarios(m, criteria, "topsis", sensitivity.Percentage)
	require.NoError(t, err)

	report, err := sensitivity.Stability(base.RankingResult, scenarios)
	require.NoError(t, err)
	assert.Empty(t, report.CriticalCriteria)
	for _, rr := range report.RankRanges {
		assert.Zero(t, rr.Width())
	}
}

// TestStability_Preconditions rejects empty baselines and mismatched
// scenario sizes.
func TestStability_Preconditions(t *testing.T) {
	_, err := sensitivity.Stability(core.RankingResult{}, nil)
	assert.ErrorIs(t, err, core.ErrEmptyMatrix)

	base := core.RankingResult{Scores: []float64{0.7, 0.3}, Ranks: []int{1, 2}}
	bad := []sensitivity.Scenario{{
		Perturbed: 0,
		Result:    core.RankingResult{Scores: []float64{1}, Ranks: []int{1}},
	}}
	_, err = sensitivity.Stability(base, bad)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}
