// SPDX-License-Identifier: MIT
// Package rank: method identifiers, options and the dispatcher result.

package rank

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mcdm/core"
)

// Method is a canonical ranking method identifier, as produced by Canonical.
type Method string

// Canonical method identifiers.
const (
	MethodSAW    Method = "SAW"
	MethodWPM    Method = "WPM"
	MethodTOPSIS Method = "TOPSIS"
	MethodVIKOR  Method = "VIKOR"
	MethodMOORA  Method = "MOORA"
	MethodWASPAS Method = "WASPAS"
	MethodCOPRAS Method = "COPRAS"
	MethodEDAS   Method = "EDAS"
	MethodCODAS  Method = "CODAS"
	MethodARAS   Method = "ARAS"
)

// Sentinel errors for dispatch and option handling.
var (
	// ErrUnknownMethod is returned by Rank under WithStrict when the
	// method name resolves to nothing. Without strict mode the dispatcher
	// falls back to TOPSIS and sets Result.Fallback instead.
	ErrUnknownMethod = errors.New("rank: unknown method")

	// ErrOptionViolation is returned when an invalid option value was
	// supplied (e.g. VIKOR's v outside [0,1]).
	ErrOptionViolation = errors.New("rank: invalid option supplied")
)

// Result is the dispatcher's outcome: the ranking plus which method
// actually ran. Fallback reports a failed name lookup that defaulted to
// TOPSIS — a documented default, not a silent failure; callers should
// surface it.
type Result struct {
	core.RankingResult
	Method   Method
	Fallback bool
}

// Documented defaults for method parameters (single source of truth).
const (
	// DefaultCompromise is VIKOR's v: the weight of group utility versus
	// individual regret.
	DefaultCompromise = 0.5

	// DefaultLambda is WASPAS's blend weight between SAW and WPM.
	DefaultLambda = 0.5

	// DefaultTau is CODAS's indifference threshold: Euclidean-distance
	// differences below τ let the Manhattan distance tie-break.
	DefaultTau = 0.02
)

// Option configures a ranking invocation via functional arguments.
// An invalid value is recorded internally and surfaced as
// ErrOptionViolation when the method runs.
type Option func(*Options)

// Options holds the method-specific parameters. Methods read only the
// fields they define; the rest are inert.
type Options struct {
	// Compromise is VIKOR's v ∈ [0,1].
	Compromise float64

	// Lambda is WASPAS's λ ∈ [0,1].
	Lambda float64

	// Tau is CODAS's τ ≥ 0.
	Tau float64

	// Strict disables the TOPSIS fallback in the dispatcher and the
	// silent defaults anywhere the engine would otherwise recover.
	Strict bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Compromise: DefaultCompromise,
		Lambda:     DefaultLambda,
		Tau:        DefaultTau,
	}
}

// WithCompromise sets VIKOR's v. Values outside [0,1] are an option
// violation: v=1 ranks purely by group utility S, v=0 purely by regret R.
func WithCompromise(v float64) Option {
	return func(o *Options) {
		if v < 0 || v > 1 {
			o.err = fmt.Errorf("%w: compromise v=%v outside [0,1]", ErrOptionViolation, v)
			return
		}
		o.Compromise = v
	}
}

// WithLambda sets WASPAS's λ ∈ [0,1]; λ=1 is pure SAW, λ=0 pure WPM.
func WithLambda(l float64) Option {
	return func(o *Options) {
		if l < 0 || l > 1 {
			o.err = fmt.Errorf("%w: lambda=%v outside [0,1]", ErrOptionViolation, l)
			return
		}
		o.Lambda = l
	}
}

// WithTau sets CODAS's indifference threshold, τ ≥ 0.
func WithTau(t float64) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: tau=%v negative", ErrOptionViolation, t)
			return
		}
		o.Tau = t
	}
}

// WithStrict makes unknown method names and other silent fallbacks error
// instead of recovering.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// gatherOptions folds opts over the defaults and surfaces any recorded
// violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
