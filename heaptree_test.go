package kstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstar-go/kstar/leftist"
)

func TestTreeHeapEmptyForFreshRoot(t *testing.T) {
	tree := NewTreeStore()
	tree.InsertRoot(0)
	hin := NewHinStore()
	th := NewTreeHeapStore(tree, hin)

	assert.Nil(t, th.Get(0))
}

func TestTreeHeapAccumulatesAncestors(t *testing.T) {
	tree := NewTreeStore()
	tree.InsertRoot(0)
	tree.Insert(1, 0, Action{ID: 0, Name: "a", Cost: 1}, 1, OpenStatus)
	hin := NewHinStore()
	th := NewTreeHeapStore(tree, hin)

	hin.Insert(0, 100, 7) // sidetrack entering root
	th.Invalidate(0)

	h1 := th.Get(1)
	require.NotNil(t, h1)
	id, key, ok := leftist.Peek(h1)
	require.True(t, ok)
	assert.Equal(t, int64(100), id)
	assert.Equal(t, int64(7), key)
}

func TestInvalidateClearsDescendants(t *testing.T) {
	tree := NewTreeStore()
	tree.InsertRoot(0)
	tree.Insert(1, 0, Action{ID: 0, Name: "a", Cost: 1}, 1, OpenStatus)
	tree.Insert(2, 1, Action{ID: 1, Name: "b", Cost: 1}, 2, OpenStatus)
	hin := NewHinStore()
	th := NewTreeHeapStore(tree, hin)

	_ = th.Get(2) // materialize and cache state 0, 1, 2

	hin.Insert(0, 5, 3)
	th.Invalidate(0)

	// Get(2) must now reflect the new H_in(0) entry, since state 0 is an
	// ancestor of both 1 and 2.
	h2 := th.Get(2)
	id, key, ok := leftist.Peek(h2)
	require.True(t, ok)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, int64(3), key)
	assert.Equal(t, 1, leftist.Len(h2))
}
