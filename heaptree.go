package kstar

import "github.com/kstar-go/kstar/leftist"

// TreeHeapStore is H_T: a persistent min-heap per state, lazily
// materialized as the merge of the parent's H_T with the state's own H_in
// (spec §4.2). Results are cached; Invalidate clears the cache for a
// subtree when A* re-parents a state (spec §9's open question, resolved:
// invalidate dependent caches on re-parenting).
type TreeHeapStore struct {
	tree  *TreeStore
	hin   *HinStore
	cache map[StateID]*leftist.Node
	valid map[StateID]bool
}

// NewTreeHeapStore creates an H_T store backed by the given tree and
// incoming-heap stores.
func NewTreeHeapStore(tree *TreeStore, hin *HinStore) *TreeHeapStore {
	return &TreeHeapStore{
		tree:  tree,
		hin:   hin,
		cache: make(map[StateID]*leftist.Node),
		valid: make(map[StateID]bool),
	}
}

// Get materializes (or returns the cached) H_T(s).
func (s *TreeHeapStore) Get(state StateID) *leftist.Node {
	if s.valid[state] {
		return s.cache[state]
	}
	node, _ := s.tree.Get(state)
	var base *leftist.Node
	if node != nil && node.HasParent {
		base = s.Get(node.Parent)
	}
	merged := base
	if in := s.hin.Get(state); in != nil {
		for _, e := range in.Snapshot() {
			merged = leftist.Insert(merged, e.SapID, e.Delta)
		}
	}
	s.cache[state] = merged
	s.valid[state] = true
	return merged
}

// Invalidate drops the cached H_T(state) and every descendant's, since all
// of them transitively merge state's H_in into their own H_T (spec §4.2:
// "If the tree parent of s changes ... H_T(s) and all descendants' cached
// H_T are invalidated").
func (s *TreeHeapStore) Invalidate(state StateID) {
	delete(s.cache, state)
	delete(s.valid, state)
	for _, child := range s.tree.Children(state) {
		s.Invalidate(child)
	}
}
