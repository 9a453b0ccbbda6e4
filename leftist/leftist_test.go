package leftist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndPeek(t *testing.T) {
	var h *Node
	h = Insert(h, 1, 5)
	h = Insert(h, 2, 3)
	h = Insert(h, 3, 9)

	id, key, ok := Peek(h)
	require.True(t, ok)
	assert.Equal(t, int64(2), id)
	assert.Equal(t, int64(3), key)
	assert.Equal(t, 3, Len(h))
}

func TestPeekEmpty(t *testing.T) {
	_, _, ok := Peek(nil)
	assert.False(t, ok)
	assert.Equal(t, 0, Len(nil))
}

func TestMergeIsPersistent(t *testing.T) {
	var a *Node
	a = Insert(a, 1, 10)
	a = Insert(a, 2, 20)

	var b *Node
	b = Insert(b, 3, 5)

	merged := Merge(a, b)

	// a and b must be unaffected by the merge.
	idA, keyA, _ := Peek(a)
	assert.Equal(t, int64(1), idA)
	assert.Equal(t, int64(10), keyA)

	idB, keyB, _ := Peek(b)
	assert.Equal(t, int64(3), idB)
	assert.Equal(t, int64(5), keyB)

	idM, keyM, ok := Peek(merged)
	require.True(t, ok)
	assert.Equal(t, int64(3), idM)
	assert.Equal(t, int64(5), keyM)
	assert.Equal(t, 3, Len(merged))
}

func TestMergeWithNil(t *testing.T) {
	var a *Node
	a = Insert(a, 1, 1)
	assert.Same(t, a, Merge(a, nil))
	assert.Same(t, a, Merge(nil, a))
}

func TestHeapOrderInvariant(t *testing.T) {
	var h *Node
	vals := []int64{9, 3, 7, 1, 5, 2, 8, 4, 6}
	for i, v := range vals {
		h = Insert(h, int64(i), v)
	}
	assertHeapOrder(t, h)
}

func assertHeapOrder(t *testing.T, n *Node) {
	t.Helper()
	if n == nil {
		return
	}
	if n.Left != nil {
		assert.LessOrEqual(t, n.Key, n.Left.Key)
	}
	if n.Right != nil {
		assert.LessOrEqual(t, n.Key, n.Right.Key)
	}
	assertHeapOrder(t, n.Left)
	assertHeapOrder(t, n.Right)
}
