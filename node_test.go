package kstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeStoreInsertAndGet(t *testing.T) {
	tree := NewTreeStore()
	tree.InsertRoot(0)
	tree.Insert(1, 0, Action{ID: 0, Name: "a", Cost: 1}, 1, OpenStatus)

	n, ok := tree.Get(1)
	require.True(t, ok)
	assert.Equal(t, int64(1), n.G)
	assert.Equal(t, StateID(0), n.Parent)
	assert.Equal(t, []StateID{1}, tree.Children(0))
}

func TestTreeStoreGOfUnseenIsInfinite(t *testing.T) {
	tree := NewTreeStore()
	assert.Equal(t, CostInfinite, tree.GOf(42))
}

func TestReparentUpdatesChildrenAndStatus(t *testing.T) {
	tree := NewTreeStore()
	tree.InsertRoot(0)
	tree.Insert(1, 0, Action{ID: 0, Name: "a", Cost: 5}, 5, OpenStatus)
	tree.Insert(2, 1, Action{ID: 1, Name: "b", Cost: 1}, 6, Closed)

	oldParent, oldAction, oldG, hadParent := tree.Reparent(2, 0, Action{ID: 2, Name: "shortcut", Cost: 2}, 2, true)

	require.True(t, hadParent)
	assert.Equal(t, StateID(1), oldParent)
	assert.Equal(t, "b", oldAction.Name)
	assert.Equal(t, int64(6), oldG)

	n, _ := tree.Get(2)
	assert.Equal(t, StateID(0), n.Parent)
	assert.Equal(t, int64(2), n.G)
	assert.Equal(t, OpenStatus, n.Status) // reopened

	assert.Empty(t, tree.Children(1))
	assert.ElementsMatch(t, []StateID{1, 2}, tree.Children(0))
}

func TestReparentWithoutReopenKeepsClosedStatus(t *testing.T) {
	tree := NewTreeStore()
	tree.InsertRoot(0)
	tree.Insert(1, 0, Action{ID: 0, Name: "a", Cost: 1}, 1, Closed)

	tree.Reparent(1, 0, Action{ID: 1, Name: "b", Cost: 1}, 1, false)
	n, _ := tree.Get(1)
	assert.Equal(t, Closed, n.Status)
}

func TestTreePathWalksRootToState(t *testing.T) {
	tree := NewTreeStore()
	tree.InsertRoot(0)
	tree.Insert(1, 0, Action{ID: 0, Name: "a", Cost: 1}, 1, OpenStatus)
	tree.Insert(2, 1, Action{ID: 1, Name: "b", Cost: 1}, 2, OpenStatus)

	actions, states := tree.TreePath(2)
	require.Len(t, actions, 2)
	assert.Equal(t, "a", actions[0].Name)
	assert.Equal(t, "b", actions[1].Name)
	assert.Equal(t, []StateID{0, 1, 2}, states)
}

func TestTreePathOfRoot(t *testing.T) {
	tree := NewTreeStore()
	tree.InsertRoot(0)
	actions, states := tree.TreePath(0)
	assert.Empty(t, actions)
	assert.Equal(t, []StateID{0}, states)
}
