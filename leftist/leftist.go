// Package leftist implements a persistent (immutable) leftist min-heap.
//
// It backs the K* engine's H_T tree-heap (spec §4.2): a min-heap that must
// support O(log n) structure-sharing merges because H_T(s) is defined as
// H_T(parent(s)) merged with H_in(s), and many states share long common
// tree-path prefixes. Nodes are never mutated after creation — Merge always
// allocates along the merge path and reuses every other subtree — so a
// Node produced for one state's H_T can be safely embedded, unmodified, in
// many descendants' H_T at once.
//
// The package is deliberately generic over nothing domain-specific: a Node
// carries only an opaque int64 payload ID and an int64 ordering key, so the
// caller (heaptree.go in the parent module) attaches the domain meaning
// (SAP id, delta) without this package knowing about states or actions.
//
// Grounded on the randomized meldable priority tree in
// other_examples/BrannonKing-jobshop_go/priority_queue.go, adapted from a
// mutating, parent-pointer-carrying Meld into the classic immutable
// leftist-heap merge (Crane 1972) so every heap node exposes exactly the
// two children the path-graph Dijkstra search needs as its structural
// edges (spec §4.3).
package leftist

// Node is one node of a persistent leftist heap. Left and Right are the
// "heap successor" edges the path-graph Dijkstra search traverses as
// structural edges (spec §4.3).
type Node struct {
	ID    int64 // opaque payload, e.g. a SAP id
	Key   int64 // ordering key, e.g. a SAP's delta
	Left  *Node
	Right *Node
	rank  int // null path length of Right, +1; rank(nil) == 0
}

func rank(n *Node) int {
	if n == nil {
		return 0
	}
	return n.rank
}

// Merge melds two leftist heaps into one, without mutating either input.
// O(log n + log m) new nodes are allocated; every other subtree is shared
// by reference with the inputs.
func Merge(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Key < a.Key {
		a, b = b, a
	}
	merged := Merge(a.Right, b)
	left, right := a.Left, merged
	if rank(left) < rank(right) {
		left, right = right, left
	}
	return &Node{ID: a.ID, Key: a.Key, Left: left, Right: right, rank: rank(right) + 1}
}

// Insert returns a new heap with (id, key) added, sharing structure with h.
func Insert(h *Node, id, key int64) *Node {
	return Merge(h, &Node{ID: id, Key: key, rank: 1})
}

// Peek returns the minimum (id, key) in the heap, or ok=false if empty.
func Peek(h *Node) (id int64, key int64, ok bool) {
	if h == nil {
		return 0, 0, false
	}
	return h.ID, h.Key, true
}

// Len counts the nodes in the heap. O(n); intended for tests/diagnostics
// only, never on a hot path.
func Len(h *Node) int {
	if h == nil {
		return 0
	}
	return 1 + Len(h.Left) + Len(h.Right)
}
