// SPDX-License-Identifier: MIT
// Package rank: method-name dispatcher.
//
// Names are canonicalized (uppercase, separators stripped) and aliased
// ("WSM" and "Weighted Sum" both mean SAW) before the table lookup.
// Unrecognized names fall back to TOPSIS with Result.Fallback set — the
// documented default — or error under WithStrict, since silent fallback
// can mask user typos coming from upstream extraction.

package rank

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mcdm/core"
)

// methodFn is the common shape of every ranking method in this package.
type methodFn func(core.Matrix, []core.Criterion, ...Option) (core.RankingResult, error)

// methodTable is the fixed canonical-name → implementation table.
var methodTable = map[Method]methodFn{
	MethodSAW:    SAW,
	MethodWPM:    WPM,
	MethodTOPSIS: TOPSIS,
	MethodVIKOR:  VIKOR,
	MethodMOORA:  MOORA,
	MethodWASPAS: WASPAS,
	MethodCOPRAS: COPRAS,
	MethodEDAS:   EDAS,
	MethodCODAS:  CODAS,
	MethodARAS:   ARAS,
}

// aliases maps canonicalized spellings onto method identifiers.
var aliases = map[string]Method{
	"SAW":                     MethodSAW,
	"WSM":                     MethodSAW,
	"WEIGHTEDSUM":             MethodSAW,
	"WEIGHTEDSUMMODEL":        MethodSAW,
	"SIMPLEADDITIVEWEIGHTING": MethodSAW,
	"WPM":                     MethodWPM,
	"WEIGHTEDPRODUCT":         MethodWPM,
	"WEIGHTEDPRODUCTMODEL":    MethodWPM,
	"WEIGHTEDPRODUCTMETHOD":   MethodWPM,
	"TOPSIS":                  MethodTOPSIS,
	"VIKOR":                   MethodVIKOR,
	"MOORA":                   MethodMOORA,
	"MULTIMOORA":              MethodMOORA,
	"WASPAS":                  MethodWASPAS,
	"COPRAS":                  MethodCOPRAS,
	"EDAS":                    MethodEDAS,
	"CODAS":                   MethodCODAS,
	"ARAS":                    MethodARAS,
	"ADDITIVERATIOASSESSMENT": MethodARAS,
}

// Canonical resolves a method name or alias to its canonical identifier.
// Matching is case-insensitive and ignores spaces, dots, dashes and
// underscores.
func Canonical(name string) (Method, bool) {
	key := strings.ToUpper(strings.TrimSpace(name))
	for _, sep := range []string{" ", "-", "_", "."} {
		key = strings.ReplaceAll(key, sep, "")
	}
	m, ok := aliases[key]

	return m, ok
}

// Rank dispatches a ranking by method name. See the package doc for the
// fallback contract. Method options apply to whichever method runs.
func Rank(name string, m core.Matrix, criteria []core.Criterion, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}

	method, ok := Canonical(name)
	fallback := false
	if !ok {
		if o.Strict {
			return Result{}, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
		}
		method = MethodTOPSIS
		fallback = true
	}

	res, err := methodTable[method](m, criteria, opts...)
	if err != nil {
		return Result{}, err
	}

	return Result{RankingResult: res, Method: method, Fallback: fallback}, nil
}
