// SPDX-License-Identifier: MIT
// Package fuzzy: YAML-declared linguistic scales.
//
// Paper-specific scales arrive from the extraction collaborator as data,
// not code. The document shape:
//
//	name: five-point
//	neutral: [0.5, 0.5, 0.5]   # optional, defaults to DefaultNeutral
//	strict: false              # optional
//	terms:
//	  - label: Very Low
//	    abbrev: VL
//	    value: [0, 0, 0.25]
//	    crisp: 0.1
//	  - label: Low
//	    abbrev: L
//	    value: [0, 0.25, 0.5]
//	    crisp: 0.3
//
// Every constraint NewScale enforces applies to loaded scales too.

package fuzzy

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// scaleSpec mirrors the YAML document shape.
type scaleSpec struct {
	Name    string     `yaml:"name"`
	Neutral []float64  `yaml:"neutral"`
	Strict  bool       `yaml:"strict"`
	Terms   []termSpec `yaml:"terms"`
}

type termSpec struct {
	Label  string    `yaml:"label"`
	Abbrev string    `yaml:"abbrev"`
	Value  []float64 `yaml:"value"`
	Crisp  float64   `yaml:"crisp"`
}

// ParseScale builds a Scale from a YAML document. Malformed YAML, missing
// terms, non-triple values and ill-ordered bounds all fail fast.
func ParseScale(data []byte) (*Scale, error) {
	var spec scaleSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("fuzzy: parse scale: %w", err)
	}

	terms := make([]Term, len(spec.Terms))
	for i, ts := range spec.Terms {
		n, err := asTriple(ts.Value)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", ts.Label, err)
		}
		terms[i] = Term{Label: ts.Label, Abbrev: ts.Abbrev, Value: n, Crisp: ts.Crisp}
	}

	s, err := NewScale(spec.Name, terms)
	if err != nil {
		return nil, err
	}
	s.Strict = spec.Strict
	if spec.Neutral != nil {
		n, err := asTriple(spec.Neutral)
		if err != nil {
			return nil, fmt.Errorf("neutral: %w", err)
		}
		s.Neutral = n
	}

	return s, nil
}

// LoadScale reads a YAML scale document from r.
func LoadScale(r io.Reader) (*Scale, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fuzzy: load scale: %w", err)
	}

	return ParseScale(data)
}

// asTriple converts a YAML [l, m, u] list to a well-formed Number.
func asTriple(vs []float64) (Number, error) {
	if len(vs) != 3 {
		return Number{}, fmt.Errorf("want [l, m, u], got %d values: %w", len(vs), ErrMalformedNumber)
	}
	n := Number{L: vs[0], M: vs[1], U: vs[2]}
	if !n.IsWellFormed() {
		return Number{}, fmt.Errorf("%v: %w", n, ErrMalformedNumber)
	}

	return n, nil
}
