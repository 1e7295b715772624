package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocNode_ReusesFreedSlot(t *testing.T) {
	a := newAutomaton(STRING)
	_, err := a.addKey(keyOf("ab"), 1, true)
	require.NoError(t, err)
	sizeBeforeRemoval := len(a.nodes)

	_, err = a.removeKey(keyOf("ab"))
	require.NoError(t, err)
	require.NotEmpty(t, a.freeList)

	_, err = a.addKey(keyOf("cd"), 2, true)
	require.NoError(t, err)

	assert.Equal(t, sizeBeforeRemoval, len(a.nodes), "a freed slot should be reused instead of growing the arena")
}

func TestNode_ChildAccessors(t *testing.T) {
	var n node
	_, ok := n.child('a')
	assert.False(t, ok)

	n.setChild('a', 5)
	idx, ok := n.child('a')
	assert.True(t, ok)
	assert.Equal(t, nodeIndex(5), idx)
	assert.Equal(t, 1, n.childCount())

	n.removeChild('a')
	assert.Equal(t, 0, n.childCount())
	assert.Nil(t, n.edges)
}

func TestStats_ReflectsWordsAndNodes(t *testing.T) {
	a := newAutomaton(STRING)
	_, err := a.addKey(keyOf("he"), 1, true)
	require.NoError(t, err)
	_, err = a.addKey(keyOf("her"), 2, true)
	require.NoError(t, err)

	stats := a.Stats()
	assert.Equal(t, 2, stats.WordsCount)
	assert.Equal(t, 3, stats.LongestWord)
	assert.Equal(t, 4, stats.NodesCount) // root, h, he, r
}
