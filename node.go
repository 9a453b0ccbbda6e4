package kstar

import "github.com/kstar-go/kstar/internal"

// Status is the lifecycle state of a SearchNode (spec §3).
type Status int

const (
	New Status = iota
	OpenStatus
	Closed
	DeadEnd
)

func (s Status) String() string {
	switch s {
	case New:
		return "new"
	case OpenStatus:
		return "open"
	case Closed:
		return "closed"
	case DeadEnd:
		return "dead-end"
	default:
		return "unknown"
	}
}

// SearchNode is the A* bookkeeping record for one state: its best known
// g-value, its tree parent (state and action), and its lifecycle status.
// f is not stored directly; it is g + h, recomputed from the heuristic when
// needed so a SearchNode never goes stale when h is re-evaluated.
type SearchNode struct {
	State         StateID
	G             int64
	Parent        StateID
	ParentAction  Action
	HasParent     bool
	Status        Status
}

// TreeStore maps StateID to its current SearchNode, i.e. the shortest-path
// tree A* has discovered so far (spec §3 component 2).
type TreeStore struct {
	nodes    map[StateID]*SearchNode
	children map[StateID][]StateID
}

// NewTreeStore creates an empty tree store.
func NewTreeStore() *TreeStore {
	return &TreeStore{
		nodes:    make(map[StateID]*SearchNode),
		children: make(map[StateID][]StateID),
	}
}

// Children returns the tree children of s, i.e. the states whose tree
// parent is s. Used to walk the subtree that needs H_T invalidation when s
// is re-parented (spec §4.2, §9 open question).
func (t *TreeStore) Children(s StateID) []StateID {
	return t.children[s]
}

func (t *TreeStore) addChild(parent, child StateID) {
	t.children[parent] = append(t.children[parent], child)
}

func (t *TreeStore) removeChild(parent, child StateID) {
	kids := t.children[parent]
	for i, c := range kids {
		if c == child {
			t.children[parent] = append(kids[:i], kids[i+1:]...)
			return
		}
	}
}

// Len returns the number of distinct states the tree has registered, used
// by AStarDriver to enforce a state-registry ceiling (spec §7
// ResourceExhausted).
func (t *TreeStore) Len() int {
	return len(t.nodes)
}

// Get returns the node for s, or (nil, false) if s has never been seen.
func (t *TreeStore) Get(s StateID) (*SearchNode, bool) {
	n, ok := t.nodes[s]
	return n, ok
}

// GOf returns g(s), or CostInfinite if s has never been seen — convenient
// for relaxation comparisons that treat unseen states as infinitely far.
func (t *TreeStore) GOf(s StateID) int64 {
	if n, ok := t.nodes[s]; ok {
		return n.G
	}
	return CostInfinite
}

// Insert records a brand-new state discovered with tree parent (parent,
// action) and given g-value. The caller must ensure s was previously
// unseen; Insert does not check.
func (t *TreeStore) Insert(s, parent StateID, action Action, g int64, status Status) *SearchNode {
	n := &SearchNode{State: s, G: g, Parent: parent, ParentAction: action, HasParent: true, Status: status}
	t.nodes[s] = n
	t.addChild(parent, s)
	return n
}

// InsertRoot records the initial state, which has no tree parent.
func (t *TreeStore) InsertRoot(s StateID) *SearchNode {
	n := &SearchNode{State: s, G: 0, HasParent: false, Status: OpenStatus}
	t.nodes[s] = n
	return n
}

// Reparent updates an existing node's tree parent and g-value, returning
// the previous (parent, action, g) triple so the caller can turn the old
// tree edge into a sidetrack candidate (spec §4.1 rule 2, supplemented by
// original_source's add_incomming_edge/remove_tree_edge). Reopen decides
// whether the node transitions back to OpenStatus if it was Closed.
func (t *TreeStore) Reparent(s, newParent StateID, newAction Action, newG int64, reopen bool) (oldParent StateID, oldAction Action, oldG int64, hadParent bool) {
	n := t.nodes[s]
	oldParent, oldAction, oldG, hadParent = n.Parent, n.ParentAction, n.G, n.HasParent
	if hadParent {
		t.removeChild(oldParent, s)
	}
	n.Parent = newParent
	n.ParentAction = newAction
	n.G = newG
	n.HasParent = true
	t.addChild(newParent, s)
	if reopen && n.Status == Closed {
		n.Status = OpenStatus
	}
	return
}

// TreePath walks from s up to the root, returning the sequence of actions
// in root-to-s order and the sequence of states visited (root first,
// s last). Used by the plan reconstructor to materialize the segments of a
// plan that stay on the shortest-path tree.
func (t *TreeStore) TreePath(s StateID) (actions []Action, states []StateID) {
	var revActions []Action
	var revStates []StateID
	cur := s
	for {
		n, ok := t.nodes[cur]
		if !ok {
			break
		}
		revStates = append(revStates, cur)
		if !n.HasParent {
			break
		}
		revActions = append(revActions, n.ParentAction)
		cur = n.Parent
	}
	return internal.Reverse(revActions), internal.Reverse(revStates)
}
