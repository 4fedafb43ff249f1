// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countIn(s, set string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}

// ── validation ───────────────────────────────────────────────────────────────

func TestGenerate_NoLetterClass(t *testing.T) {
	for _, opts := range []Options{
		{Length: 20},
		{Length: 20, WithNumber: true},
		{Length: 20, WithSpecial: true},
		{Length: 20, WithNumber: true, WithSpecial: true},
		{Length: 3, WithNumber: true, WithSpecial: true},
	} {
		_, err := Generate(opts)
		assert.ErrorIs(t, err, ErrInvalidOptions, "options %+v", opts)
	}
}

func TestGenerate_TooShort(t *testing.T) {
	for length := -1; length < MinLength; length++ {
		for _, opts := range []Options{
			{WithLowercase: true},
			{WithUppercase: true},
			{WithLowercase: true, WithUppercase: true},
			{WithLowercase: true, WithNumber: true},
			{WithLowercase: true, WithUppercase: true, WithNumber: true, WithSpecial: true},
		} {
			opts.Length = length
			_, err := Generate(opts)
			assert.ErrorIs(t, err, ErrInvalidLength, "options %+v", opts)
		}
	}
}

func TestGenerate_TooShortForChosenOptions(t *testing.T) {
	opts := Options{Length: 8, WithLowercase: true, WithUppercase: true, WithNumber: true}

	_, err := Generate(opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLength)

	var lengthErr *LengthError
	require.True(t, errors.As(err, &lengthErr))
	assert.Equal(t, 8, lengthErr.Length)
	assert.Equal(t, []string{"with_number", "with_lowercase", "with_uppercase"}, lengthErr.Options)
	assert.Contains(t, err.Error(), "too short for the chosen options")

	opts.WithSpecial = true
	_, err = Generate(opts)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestGenerate_TwoClassesAllowedBelowTen(t *testing.T) {
	got, err := Generate(Options{Length: 6, WithLowercase: true, WithNumber: true})
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

// ── composition ──────────────────────────────────────────────────────────────

func TestGenerate_ExactLength(t *testing.T) {
	tests := []Options{
		{Length: 5, WithLowercase: true},
		{Length: 5, WithUppercase: true, WithSpecial: true},
		{Length: 9, WithLowercase: true, WithUppercase: true},
		{Length: 10, WithLowercase: true, WithUppercase: true, WithNumber: true, WithSpecial: true},
		{Length: 14, WithLowercase: true, WithNumber: true, WithSpecial: true},
		{Length: 20, WithLowercase: true, WithUppercase: true, WithNumber: true, WithSpecial: true},
		{Length: 64, WithUppercase: true, WithNumber: true},
		{Length: 128, WithLowercase: true, WithUppercase: true, WithNumber: true, WithSpecial: true, ReplaceFirstCharacter: true},
	}

	for _, opts := range tests {
		for range 50 {
			got, err := Generate(opts)
			require.NoError(t, err)
			assert.Len(t, got, opts.Length)
		}
	}
}

func TestGenerate_AllClassesPresent(t *testing.T) {
	opts := Options{Length: 20, WithLowercase: true, WithUppercase: true, WithNumber: true, WithSpecial: true}

	const trials = 1000
	for range trials {
		got, err := Generate(opts)
		require.NoError(t, err)

		assert.Positive(t, countIn(got, LowercaseLetters), got)
		assert.Positive(t, countIn(got, UppercaseLetters), got)
		assert.Equal(t, replacementLength(20), countIn(got, Digits), got)
		assert.Equal(t, replacementLength(20), countIn(got, SafePunctuation), got)
	}
}

func TestGenerate_OnlyEnabledClasses(t *testing.T) {
	for range 200 {
		got, err := Generate(Options{Length: 16, WithLowercase: true, WithNumber: true})
		require.NoError(t, err)

		assert.Zero(t, countIn(got, UppercaseLetters), got)
		assert.Zero(t, countIn(got, SafePunctuation), got)
		assert.Equal(t, 16, countIn(got, LowercaseLetters)+countIn(got, Digits), got)
	}
}

func TestGenerate_LetterSplit(t *testing.T) {
	got, err := Generate(Options{Length: 11, WithLowercase: true, WithUppercase: true})
	require.NoError(t, err)

	assert.Equal(t, 5, countIn(got, LowercaseLetters))
	assert.Equal(t, 6, countIn(got, UppercaseLetters))
}

func TestGenerate_FirstCharacterProtected(t *testing.T) {
	opts := Options{Length: 10, WithLowercase: true, WithUppercase: true, WithNumber: true, WithSpecial: true}
	for range 500 {
		got, err := Generate(opts)
		require.NoError(t, err)
		assert.True(t, strings.ContainsRune(LowercaseLetters+UppercaseLetters, rune(got[0])), got)
	}
}

func TestGenerate_RandomSourceFailure(t *testing.T) {
	g := NewGenerator(iotest.ErrReader(errors.New("entropy exhausted")))

	_, err := g.Generate(DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
}

func TestReplacementLength(t *testing.T) {
	tests := map[int]int{
		5:   2,
		9:   2,
		10:  2,
		17:  2,
		18:  3,
		20:  3,
		30:  5,
		42:  7,
		100: 7,
	}

	for n, want := range tests {
		assert.Equal(t, want, replacementLength(n), "length %d", n)
	}
}

// ── quick token ──────────────────────────────────────────────────────────────

var urlSafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestQuickToken_URLSafe(t *testing.T) {
	for range 500 {
		got, err := QuickToken(QuickTokenLength)
		require.NoError(t, err)
		assert.Regexp(t, urlSafe, got)
		assert.Len(t, got, 19)
	}
}

func TestQuickToken_DefaultLength(t *testing.T) {
	got, err := QuickToken(0)
	require.NoError(t, err)
	assert.Len(t, got, 19)
}

func TestQuickToken_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		got, err := QuickToken(32)
		require.NoError(t, err)
		_, dup := seen[got]
		require.False(t, dup)
		seen[got] = struct{}{}
	}
}

func TestQuickToken_RandomSourceFailure(t *testing.T) {
	g := NewGenerator(iotest.ErrReader(errors.New("boom")))
	_, err := g.QuickToken(14)
	assert.Error(t, err)
}
