// SPDX-License-Identifier: MIT
// Package fuzzy: linguistic scales — ordered term→value catalogs used to
// translate judgments like "High" or "VH" into fuzzy numbers.
//
// Resolution policy: lookups are trimmed and case-insensitive, matching
// either the full label or the abbreviation. An unresolved term returns
// the scale's Neutral value by default ("never block the pipeline"); with
// Strict enabled it returns ErrUnknownTerm instead, so callers can surface
// extraction typos rather than absorb mid-scale noise.

package fuzzy

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for scale construction and resolution.
var (
	// ErrEmptyScale is returned when a scale is built without terms.
	ErrEmptyScale = errors.New("fuzzy: scale has no terms")

	// ErrMalformedNumber signals a term value violating l ≤ m ≤ u, or
	// fuzzification bounds that do not bracket the crisp value.
	ErrMalformedNumber = errors.New("fuzzy: malformed triangular number")

	// ErrDuplicateTerm signals two terms sharing a label or abbreviation.
	ErrDuplicateTerm = errors.New("fuzzy: duplicate term")

	// ErrUnknownTerm is returned by strict-mode resolution for terms not
	// present in the scale.
	ErrUnknownTerm = errors.New("fuzzy: unknown linguistic term")
)

// DefaultNeutral is the fallback value injected for unresolved terms when
// a scale is not strict. Mid-scale on the conventional [0,1] scales.
var DefaultNeutral = Number{L: 0.5, M: 0.5, U: 0.5}

// Term is one entry of a linguistic scale.
type Term struct {
	// Label is the full term, e.g. "Very High".
	Label string

	// Abbrev is the short form, e.g. "VH". Optional.
	Abbrev string

	// Value is the term's triangular fuzzy value.
	Value Number

	// Crisp is the term's crisp equivalent, used by crisp pipelines and
	// nearest-term fuzzification.
	Crisp float64
}

// Scale is an ordered, read-only list of linguistic terms. Build one with
// NewScale (or a preset), then share it freely: resolution never mutates.
type Scale struct {
	// Name identifies the scale, e.g. "five-point".
	Name string

	// Neutral is returned for unresolved terms when Strict is false.
	Neutral Number

	// Strict makes Resolve return ErrUnknownTerm instead of Neutral.
	Strict bool

	terms []Term
	index map[string]int // normalized label/abbrev → position in terms
}

// NewScale builds a Scale from ordered terms. Every term must carry a
// non-empty label and a well-formed value; labels and abbreviations must
// be unique under case-insensitive comparison.
func NewScale(name string, terms []Term) (*Scale, error) {
	if len(terms) == 0 {
		return nil, ErrEmptyScale
	}
	s := &Scale{
		Name:    name,
		Neutral: DefaultNeutral,
		terms:   make([]Term, len(terms)),
		index:   make(map[string]int, 2*len(terms)),
	}
	copy(s.terms, terms)
	for i, term := range s.terms {
		if strings.TrimSpace(term.Label) == "" {
			return nil, fmt.Errorf("term %d has empty label: %w", i, ErrEmptyScale)
		}
		if !term.Value.IsWellFormed() {
			return nil, fmt.Errorf("term %q value %v: %w", term.Label, term.Value, ErrMalformedNumber)
		}
		for _, key := range []string{term.Label, term.Abbrev} {
			if key == "" {
				continue
			}
			norm := normalizeTerm(key)
			if _, dup := s.index[norm]; dup {
				return nil, fmt.Errorf("%q: %w", key, ErrDuplicateTerm)
			}
			s.index[norm] = i
		}
	}

	return s, nil
}

// Terms returns a copy of the ordered term list.
func (s *Scale) Terms() []Term {
	out := make([]Term, len(s.terms))
	copy(out, s.terms)

	return out
}

// Resolve maps a linguistic term (label or abbreviation, case-insensitive,
// trimmed) to its fuzzy value. Unresolved terms yield Neutral, or
// ErrUnknownTerm when Strict.
func (s *Scale) Resolve(term string) (Number, error) {
	if i, ok := s.index[normalizeTerm(term)]; ok {
		return s.terms[i].Value, nil
	}
	if s.Strict {
		return Number{}, fmt.Errorf("%q: %w", term, ErrUnknownTerm)
	}

	return s.Neutral, nil
}

// ResolveCrisp maps a term to its crisp equivalent, with the same fallback
// policy as Resolve (the neutral's centroid when not strict).
func (s *Scale) ResolveCrisp(term string) (float64, error) {
	if i, ok := s.index[normalizeTerm(term)]; ok {
		return s.terms[i].Crisp, nil
	}
	if s.Strict {
		return 0, fmt.Errorf("%q: %w", term, ErrUnknownTerm)
	}

	return s.Neutral.Centroid(), nil
}

// Nearest returns the fuzzy value of the term whose crisp equivalent is
// closest to v (ties go to the earlier term). This is the
// nearest-linguistic-term fuzzification.
func (s *Scale) Nearest(v float64) Number {
	best := 0
	bestDist := math.Abs(s.terms[0].Crisp - v)
	for i := 1; i < len(s.terms); i++ {
		if d := math.Abs(s.terms[i].Crisp - v); d < bestDist {
			best, bestDist = i, d
		}
	}

	return s.terms[best].Value
}

// normalizeTerm canonicalizes a lookup key: trims whitespace, lowercases.
func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// FivePoint returns the conventional 5-term scale on [0,1]:
// Very Low, Low, Medium, High, Very High.
func FivePoint() *Scale {
	s, err := NewScale("five-point", []Term{
		{Label: "Very Low", Abbrev: "VL", Value: Number{0, 0, 0.25}, Crisp: 0.1},
		{Label: "Low", Abbrev: "L", Value: Number{0, 0.25, 0.5}, Crisp: 0.3},
		{Label: "Medium", Abbrev: "M", Value: Number{0.25, 0.5, 0.75}, Crisp: 0.5},
		{Label: "High", Abbrev: "H", Value: Number{0.5, 0.75, 1}, Crisp: 0.7},
		{Label: "Very High", Abbrev: "VH", Value: Number{0.75, 1, 1}, Crisp: 0.9},
	})
	if err != nil {
		panic(fmt.Sprintf("fuzzy: five-point preset invalid: %v", err))
	}

	return s
}

// SevenPoint returns the conventional 7-term scale on [0,1], adding
// Medium Low / Medium High shades between the five-point anchors.
func SevenPoint() *Scale {
	s, err := NewScale("seven-point", []Term{
		{Label: "Very Low", Abbrev: "VL", Value: Number{0, 0, 1.0 / 6}, Crisp: 0.05},
		{Label: "Low", Abbrev: "L", Value: Number{0, 1.0 / 6, 2.0 / 6}, Crisp: 1.0 / 6},
		{Label: "Medium Low", Abbrev: "ML", Value: Number{1.0 / 6, 2.0 / 6, 3.0 / 6}, Crisp: 2.0 / 6},
		{Label: "Medium", Abbrev: "M", Value: Number{2.0 / 6, 3.0 / 6, 4.0 / 6}, Crisp: 0.5},
		{Label: "Medium High", Abbrev: "MH", Value: Number{3.0 / 6, 4.0 / 6, 5.0 / 6}, Crisp: 4.0 / 6},
		{Label: "High", Abbrev: "H", Value: Number{4.0 / 6, 5.0 / 6, 1}, Crisp: 5.0 / 6},
		{Label: "Very High", Abbrev: "VH", Value: Number{5.0 / 6, 1, 1}, Crisp: 0.95},
	})
	if err != nil {
		panic(fmt.Sprintf("fuzzy: seven-point preset invalid: %v", err))
	}

	return s
}
