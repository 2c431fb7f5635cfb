// SPDX-License-Identifier: MIT
// Package sensitivity: the scenario driver.

package sensitivity

import (
	"fmt"

	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/rank"
)

// oatIncrease is the relative weight increase applied by OAT scenarios.
const oatIncrease = 0.5

// extremeDominance is the weight share the spotlight criterion receives
// in Extreme scenarios.
const extremeDominance = 0.5

// Scenarios builds the perturbed weight vectors for the chosen kind and
// ranks the matrix under each. The base weights are renormalized to sum 1
// before perturbation, so callers may pass unnormalized criteria. The
// method name goes through the rank dispatcher, so aliases and fallback
// semantics apply.
func Scenarios(m core.Matrix, criteria []core.Criterion, method string, kind Kind, opts ...Option) ([]Scenario, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := core.Validate(m, criteria); err != nil {
		return nil, err
	}

	base, err := core.NormalizeWeights(core.Weights(criteria))
	if err != nil {
		return nil, err
	}

	var vectors []Scenario
	switch kind {
	case OAT:
		vectors = oatVectors(base, criteria)
	case Percentage:
		vectors = percentageVectors(base, criteria, o.Percent)
	case Extreme:
		vectors = extremeVectors(base, criteria)
	default:
		return nil, fmt.Errorf("%d: %w", int(kind), ErrUnknownKind)
	}

	for s := range vectors {
		perturbed := make([]core.Criterion, len(criteria))
		for j, cr := range criteria {
			cr.Weight = vectors[s].Weights[j]
			perturbed[j] = cr
		}
		res, err := rank.Rank(method, m, perturbed, o.RankOptions...)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", vectors[s].Label, err)
		}
		vectors[s].Result = res.RankingResult
	}

	return vectors, nil
}

// oatVectors grows each weight by oatIncrease in turn, paying for the
// increase proportionally from the other weights.
func oatVectors(base []float64, criteria []core.Criterion) []Scenario {
	out := make([]Scenario, 0, len(base))
	for j := range base {
		ws := shiftWeight(base, j, oatIncrease*base[j])
		out = append(out, Scenario{
			Label:     fmt.Sprintf("oat +50%% %s", criterionLabel(criteria, j)),
			Perturbed: j,
			Weights:   ws,
		})
	}

	return out
}

// percentageVectors applies ±percent to each weight in turn.
func percentageVectors(base []float64, criteria []core.Criterion, percent float64) []Scenario {
	out := make([]Scenario, 0, 2*len(base))
	for j := range base {
		for _, sign := range []float64{1, -1} {
			ws := shiftWeight(base, j, sign*percent/100*base[j])
			out = append(out, Scenario{
				Label:     fmt.Sprintf("%+.0f%% %s", sign*percent, criterionLabel(criteria, j)),
				Perturbed: j,
				Weights:   ws,
			})
		}
	}

	return out
}

// extremeVectors gives each criterion extremeDominance in turn, splitting
// the remainder equally, and appends the equal-weights scenario.
func extremeVectors(base []float64, criteria []core.Criterion) []Scenario {
	n := len(base)
	out := make([]Scenario, 0, n+1)
	for j := 0; j < n; j++ {
		ws := make([]float64, n)
		if n == 1 {
			ws[0] = 1
		} else {
			rest := (1 - extremeDominance) / float64(n-1)
			for k := range ws {
				ws[k] = rest
			}
			ws[j] = extremeDominance
		}
		out = append(out, Scenario{
			Label:     fmt.Sprintf("extreme %s", criterionLabel(criteria, j)),
			Perturbed: j,
			Weights:   ws,
		})
	}

	equal := make([]float64, n)
	for k := range equal {
		equal[k] = 1 / float64(n)
	}
	out = append(out, Scenario{Label: "equal weights", Perturbed: -1, Weights: equal})

	return out
}

// shiftWeight moves weight j by delta, redistributes the opposite amount
// across the other weights proportionally to their share, clamps
// negatives to 0 and renormalizes to sum 1.
func shiftWeight(base []float64, j int, delta float64) []float64 {
	ws := make([]float64, len(base))
	copy(ws, base)

	rest := 0.0
	for k := range ws {
		if k != j {
			rest += ws[k]
		}
	}
	ws[j] += delta
	if rest > 0 {
		for k := range ws {
			if k != j {
				ws[k] -= delta * base[k] / rest
			}
		}
	}
	for k := range ws {
		if ws[k] < 0 {
			ws[k] = 0
		}
	}

	// renormalize; base summed to 1, so total can only vanish if every
	// weight clamped out, which a positive ws[j] prevents
	total := 0.0
	for _, w := range ws {
		total += w
	}
	for k := range ws {
		ws[k] /= total
	}

	return ws
}

// criterionLabel prefers the criterion's display name, falling back to
// its index.
func criterionLabel(criteria []core.Criterion, j int) string {
	if criteria[j].Name != "" {
		return criteria[j].Name
	}

	return fmt.Sprintf("criterion %d", j)
}
