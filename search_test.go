package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFinalized(t *testing.T, keys ...string) *automaton {
	t.Helper()
	a := newAutomaton(STRING)
	for _, k := range keys {
		_, err := a.addKey(keyOf(k), k, true)
		require.NoError(t, err)
	}
	a.finalize()
	return a
}

func collectMatches(t *testing.T, it *SearchIterator) []Match {
	t.Helper()
	var out []Match
	for {
		m, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

func TestSearch_OverlappingSuffixMatches(t *testing.T) {
	// D = {"he", "here", "her"}, T = "he here her": the standard search
	// reports every occurrence, including the "he" and "her" that overlap
	// "here".
	a := buildFinalized(t, "he", "here", "her")
	it, err := newSearchIterator(a, "Search", keyOf("he here her"), 0, len("he here her"), false)
	require.NoError(t, err)

	matches := collectMatches(t, it)
	require.Len(t, matches, 6)
	assert.Equal(t, 1, matches[0].End)
	assert.Equal(t, "he", matches[0].Payload)
	assert.Equal(t, 4, matches[1].End)
	assert.Equal(t, "he", matches[1].Payload)
	assert.Equal(t, 5, matches[2].End)
	assert.Equal(t, "her", matches[2].Payload)
	assert.Equal(t, 6, matches[3].End)
	assert.Equal(t, "here", matches[3].Payload)
	assert.Equal(t, 9, matches[4].End)
	assert.Equal(t, "he", matches[4].Payload)
	assert.Equal(t, 10, matches[5].End)
	assert.Equal(t, "her", matches[5].Payload)
}

func TestSearch_MultipleEmissionsAtSamePosition(t *testing.T) {
	// "she" contains both "she" and, via the fail chain, "he".
	a := buildFinalized(t, "he", "she", "his", "hers")
	it, err := newSearchIterator(a, "Search", keyOf("she"), 0, 3, false)
	require.NoError(t, err)

	matches := collectMatches(t, it)
	require.Len(t, matches, 2)
	assert.Equal(t, 2, matches[0].End)
	assert.Equal(t, "she", matches[0].Payload)
	assert.Equal(t, 2, matches[1].End)
	assert.Equal(t, "he", matches[1].Payload)
}

func TestSearch_IgnoreWhitespace(t *testing.T) {
	a := buildFinalized(t, "ab")
	input := keyOf("a b")
	it, err := newSearchIterator(a, "Search", input, 0, len(input), true)
	require.NoError(t, err)

	matches := collectMatches(t, it)
	require.Len(t, matches, 1)
	assert.Equal(t, "ab", matches[0].Payload)
}

func TestSearch_WindowBounds(t *testing.T) {
	a := buildFinalized(t, "ab")
	input := keyOf("xxabxx")

	_, err := newSearchIterator(a, "Search", input, -1, len(input), false)
	assert.ErrorIs(t, err, ErrIndexError)

	_, err = newSearchIterator(a, "Search", input, 0, len(input)+1, false)
	assert.ErrorIs(t, err, ErrIndexError)

	it, err := newSearchIterator(a, "Search", input, 2, 4, false)
	require.NoError(t, err)
	matches := collectMatches(t, it)
	require.Len(t, matches, 1)
}

func TestSearch_WrongPhase(t *testing.T) {
	a := newAutomaton(STRING)
	_, err := a.addKey(keyOf("a"), 1, true)
	require.NoError(t, err)

	_, err = newSearchIterator(a, "Search", keyOf("a"), 0, 1, false)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestSearch_InvalidatedByMutation(t *testing.T) {
	a := buildFinalized(t, "ab")
	it, err := newSearchIterator(a, "Search", keyOf("xab"), 0, 3, false)
	require.NoError(t, err)

	_, err = a.addKey(keyOf("cd"), 2, true)
	require.NoError(t, err)

	_, _, err = it.Next()
	assert.ErrorIs(t, err, ErrInvalidated)
}

func TestSearch_Reset(t *testing.T) {
	a := buildFinalized(t, "ab")
	it, err := newSearchIterator(a, "Search", keyOf("ab"), 0, 2, false)
	require.NoError(t, err)
	collectMatches(t, it)

	require.NoError(t, it.Reset(keyOf("xxabxx"), true))
	matches := collectMatches(t, it)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].End)
}

func TestLongestMatch_DisjointShortMatches(t *testing.T) {
	// S3: D = {"b", "abc"}, T = "abb" -> (1,"b"), (2,"b")
	a := buildFinalized(t, "b", "abc")
	it, err := newLongestMatchIterator(a, "SearchLongestMatch", keyOf("abb"), 0, 3)
	require.NoError(t, err)

	var matches []Match
	for {
		m, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		matches = append(matches, m)
	}

	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].End)
	assert.Equal(t, "b", matches[0].Payload)
	assert.Equal(t, 2, matches[1].End)
	assert.Equal(t, "b", matches[1].Payload)
}

func TestLongestMatch_PrefersLongerOverShorter(t *testing.T) {
	a := buildFinalized(t, "he", "hers", "his")
	it, err := newLongestMatchIterator(a, "SearchLongestMatch", keyOf("hers"), 0, 4)
	require.NoError(t, err)

	m, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, m.End)
	assert.Equal(t, "hers", m.Payload)

	_, ok, err = it.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}
