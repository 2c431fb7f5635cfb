// SPDX-License-Identifier: MIT
// Package sensitivity: scenario kinds, options and result shapes.

package sensitivity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/rank"
)

// Kind selects the perturbation strategy.
type Kind int

const (
	// OAT grows one weight by 50% per scenario.
	OAT Kind = iota

	// Percentage moves one weight by ±P% per scenario (two scenarios per
	// criterion).
	Percentage

	// Extreme gives one criterion 50% dominance per scenario, plus an
	// equal-weights scenario.
	Extreme
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case OAT:
		return "oat"
	case Percentage:
		return "percentage"
	case Extreme:
		return "extreme"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinel errors.
var (
	// ErrUnknownKind is returned for a Kind outside the enum.
	ErrUnknownKind = errors.New("sensitivity: unknown scenario kind")

	// ErrOptionViolation is returned for invalid option values.
	ErrOptionViolation = errors.New("sensitivity: invalid option supplied")
)

// DefaultPercent is the ±P applied by Percentage scenarios.
const DefaultPercent = 10.0

// Option configures the scenario driver.
type Option func(*Options)

// Options holds driver parameters.
type Options struct {
	// Percent is the ±P for Percentage scenarios, in percent of the
	// weight's own value.
	Percent float64

	// RankOptions are forwarded to the ranking method of every scenario
	// (method parameters, strict mode).
	RankOptions []rank.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Percent: DefaultPercent}
}

// WithPercent sets the Percentage perturbation size; must be positive.
func WithPercent(p float64) Option {
	return func(o *Options) {
		if p <= 0 {
			o.err = fmt.Errorf("%w: percent=%v not positive", ErrOptionViolation, p)
			return
		}
		o.Percent = p
	}
}

// WithRankOptions forwards method options (e.g. rank.WithCompromise) to
// every scenario's ranking call.
func WithRankOptions(opts ...rank.Option) Option {
	return func(o *Options) {
		o.RankOptions = opts
	}
}

// Scenario is one perturbed run: the weight vector used and the ranking
// it produced.
type Scenario struct {
	// Label describes the scenario, e.g. "oat +50% price".
	Label string

	// Perturbed is the index of the perturbed criterion, or -1 for the
	// equal-weights scenario.
	Perturbed int

	// Weights is the full perturbed vector, renormalized to sum 1.
	Weights []float64

	// Result is the ranking computed under Weights.
	Result core.RankingResult
}

// Range is the min/max rank one alternative received across scenarios.
type Range struct {
	Min, Max int
}

// Width is Max − Min; 0 means the alternative's rank never moved.
func (r Range) Width() int { return r.Max - r.Min }

// Report is the stability summary across a scenario set.
type Report struct {
	// RankRanges has one entry per alternative.
	RankRanges []Range

	// CriticalCriteria lists the criteria whose perturbation changed the
	// top-ranked alternative, ascending, each listed once.
	CriticalCriteria []int
}
