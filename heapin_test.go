package kstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHinHeapSnapshotHoldsAllDeltas(t *testing.T) {
	h := NewHinHeap()
	h.Insert(10, 5)
	h.Insert(11, 1)
	h.Insert(12, 3)

	assert.Equal(t, 3, h.Len())
	snap := h.Snapshot()
	assert.Len(t, snap, 3)

	var deltas []int64
	for _, e := range snap {
		deltas = append(deltas, e.Delta)
	}
	assert.ElementsMatch(t, []int64{5, 1, 3}, deltas)
}

func TestHinStoreLazyCreation(t *testing.T) {
	s := NewHinStore()
	assert.Nil(t, s.Get(StateID(1)))

	s.Insert(1, 0, 4)
	h := s.Get(1)
	require.NotNil(t, h)
	assert.Equal(t, 1, h.Len())

	s.Insert(1, 1, 2)
	assert.Equal(t, 2, s.Get(1).Len())
}
