package ahocorasick

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonEncoder(v any) ([]byte, error) { return json.Marshal(v) }

func jsonDecoder(data []byte) (any, error) {
	var v any
	err := json.Unmarshal(data, &v)
	return v, err
}

func TestSaveLoad_RoundTripsOpaque(t *testing.T) {
	a := newAutomaton(STRING)
	for _, k := range []string{"he", "she", "his", "hers"} {
		_, err := a.addKey(keyOf(k), k+"-payload", true)
		require.NoError(t, err)
	}
	a.finalize()

	var buf bytes.Buffer
	require.NoError(t, a.save(&buf, jsonEncoder))

	loaded, err := loadAutomaton(&buf, jsonDecoder)
	require.NoError(t, err)

	assert.Equal(t, a.phase, loaded.phase)
	assert.Equal(t, a.wordsCount, loaded.wordsCount)
	assert.Equal(t, a.longestWord, loaded.longestWord)

	for _, k := range []string{"he", "she", "his", "hers"} {
		val, err := loaded.getKey(keyOf(k), nil, false)
		require.NoError(t, err)
		assert.Equal(t, k+"-payload", val)
	}
}

func TestSaveLoad_IntegerStoreRoundTrips(t *testing.T) {
	a := newAutomaton(STRING, WithStore(INTEGER))
	_, err := a.addKey(keyOf("a"), nil, false)
	require.NoError(t, err)
	_, err = a.addKey(keyOf("b"), nil, false)
	require.NoError(t, err)
	a.finalize()

	var buf bytes.Buffer
	require.NoError(t, a.save(&buf, nil))

	loaded, err := loadAutomaton(&buf, nil)
	require.NoError(t, err)

	va, err := loaded.getKey(keyOf("a"), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 1, va)

	vb, err := loaded.getKey(keyOf("b"), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 2, vb)
}

func TestSaveLoad_PreservesSearchBehavior(t *testing.T) {
	a := newAutomaton(STRING)
	for _, k := range []string{"he", "here", "her"} {
		_, err := a.addKey(keyOf(k), k, true)
		require.NoError(t, err)
	}
	a.finalize()

	var buf bytes.Buffer
	require.NoError(t, a.save(&buf, jsonEncoder))
	loaded, err := loadAutomaton(&buf, jsonDecoder)
	require.NoError(t, err)
	require.Equal(t, AHOCORASICK, loaded.phase)

	it, err := newSearchIterator(loaded, "Search", keyOf("he here her"), 0, len("he here her"), false)
	require.NoError(t, err)
	matches := collectMatches(t, it)
	require.Len(t, matches, 6)
}

func TestLoad_RejectsBadMagic(t *testing.T) {
	_, err := loadAutomaton(bytes.NewReader([]byte("not an automaton file")), nil)
	assert.ErrorIs(t, err, ErrCorruptInput)
}

func TestLoad_RejectsTruncatedInput(t *testing.T) {
	a := newAutomaton(STRING)
	_, err := a.addKey(keyOf("he"), "v", true)
	require.NoError(t, err)
	a.finalize()

	var buf bytes.Buffer
	require.NoError(t, a.save(&buf, jsonEncoder))

	truncated := buf.Bytes()[:buf.Len()/2]
	_, err = loadAutomaton(bytes.NewReader(truncated), jsonDecoder)
	assert.ErrorIs(t, err, ErrCorruptInput)
}

func TestSaveLoad_EmptyAutomaton(t *testing.T) {
	a := newAutomaton(STRING)
	var buf bytes.Buffer
	require.NoError(t, a.save(&buf, nil))

	loaded, err := loadAutomaton(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, EMPTY, loaded.phase)
}
