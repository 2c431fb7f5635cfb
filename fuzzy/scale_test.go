package fuzzy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdm/fuzzy"
)

// TestScale_ResolveLabelAndAbbrev verifies case-insensitive, trimmed
// resolution through both the full label and the abbreviation.
func TestScale_ResolveLabelAndAbbrev(t *testing.T) {
	s := fuzzy.FivePoint()

	high, err := s.Resolve("High")
	require.NoError(t, err)

	byAbbrev, err := s.Resolve("  h ")
	require.NoError(t, err)
	assert.Equal(t, high, byAbbrev)

	byCase, err := s.Resolve("HIGH")
	require.NoError(t, err)
	assert.Equal(t, high, byCase)
}

// TestScale_NeutralFallback: an unresolved term yields the neutral value
// without error — the never-block-the-pipeline default.
func TestScale_NeutralFallback(t *testing.T) {
	s := fuzzy.FivePoint()

	got, err := s.Resolve("Banana")
	require.NoError(t, err)
	assert.Equal(t, fuzzy.DefaultNeutral, got)

	crisp, err := s.ResolveCrisp("Banana")
	require.NoError(t, err)
	assert.Equal(t, 0.5, crisp)
}

// TestScale_StrictMode: with Strict set, unresolved terms error instead.
func TestScale_StrictMode(t *testing.T) {
	s := fuzzy.FivePoint()
	s.Strict = true

	_, err := s.Resolve("Banana")
	assert.ErrorIs(t, err, fuzzy.ErrUnknownTerm)

	_, err = s.ResolveCrisp("Banana")
	assert.ErrorIs(t, err, fuzzy.ErrUnknownTerm)

	// known terms still resolve
	_, err = s.Resolve("VL")
	assert.NoError(t, err)
}

// TestScale_Nearest snaps a crisp value to the closest term's fuzzy value,
// ties going to the earlier term.
func TestScale_Nearest(t *testing.T) {
	s := fuzzy.FivePoint()

	medium, err := s.Resolve("M")
	require.NoError(t, err)
	assert.Equal(t, medium, s.Nearest(0.52))

	veryLow, err := s.Resolve("VL")
	require.NoError(t, err)
	assert.Equal(t, veryLow, s.Nearest(-3))

	// 0.2 is equidistant from VL (0.1) and L (0.3): earlier term wins
	assert.Equal(t, veryLow, s.Nearest(0.2))
}

// TestNewScale_Validation covers the construction sentinels.
func TestNewScale_Validation(t *testing.T) {
	_, err := fuzzy.NewScale("empty", nil)
	assert.ErrorIs(t, err, fuzzy.ErrEmptyScale)

	_, err = fuzzy.NewScale("bad", []fuzzy.Term{
		{Label: "X", Value: fuzzy.Number{L: 1, M: 0, U: 2}},
	})
	assert.ErrorIs(t, err, fuzzy.ErrMalformedNumber)

	_, err = fuzzy.NewScale("dup", []fuzzy.Term{
		{Label: "High", Abbrev: "H", Value: fuzzy.Crisp(0.7)},
		{Label: "Huge", Abbrev: "h", Value: fuzzy.Crisp(0.9)},
	})
	assert.ErrorIs(t, err, fuzzy.ErrDuplicateTerm)
}

const scaleDoc = `
name: three-point
neutral: [0.4, 0.5, 0.6]
strict: true
terms:
  - label: Low
    abbrev: L
    value: [0, 0, 0.5]
    crisp: 0.2
  - label: Medium
    abbrev: M
    value: [0.25, 0.5, 0.75]
    crisp: 0.5
  - label: High
    abbrev: H
    value: [0.5, 1, 1]
    crisp: 0.8
`

// TestParseScale_YAML loads a full document and checks name, neutral,
// strictness and term order survive.
func TestParseScale_YAML(t *testing.T) {
	s, err := fuzzy.LoadScale(strings.NewReader(scaleDoc))
	require.NoError(t, err)

	assert.Equal(t, "three-point", s.Name)
	assert.True(t, s.Strict)
	assert.Equal(t, fuzzy.Number{L: 0.4, M: 0.5, U: 0.6}, s.Neutral)

	terms := s.Terms()
	require.Len(t, terms, 3)
	assert.Equal(t, "Low", terms[0].Label)
	assert.Equal(t, fuzzy.Number{L: 0.5, M: 1, U: 1}, terms[2].Value)

	_, err = s.Resolve("nope")
	assert.ErrorIs(t, err, fuzzy.ErrUnknownTerm)
}

// TestParseScale_Malformed rejects non-triple values and unordered bounds.
func TestParseScale_Malformed(t *testing.T) {
	_, err := fuzzy.ParseScale([]byte("terms:\n  - label: X\n    value: [1, 2]\n"))
	assert.ErrorIs(t, err, fuzzy.ErrMalformedNumber)

	_, err = fuzzy.ParseScale([]byte("terms:\n  - label: X\n    value: [2, 1, 3]\n"))
	assert.ErrorIs(t, err, fuzzy.ErrMalformedNumber)

	_, err = fuzzy.ParseScale([]byte("::not yaml"))
	assert.Error(t, err)
}
