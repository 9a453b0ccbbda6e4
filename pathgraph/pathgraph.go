// Package pathgraph implements the second search of K* (spec §4.3): a
// Dijkstra search over the Eppstein-style path graph built from the
// per-state H_T tree-heaps (see the leftist package).
//
// A path-graph Node is a position inside some state's H_T, reached by a
// sequence of sidetrack choices from the shortest-path tree. Two kinds of
// edges leave a Node: up to two "heap-structural" edges to its left/right
// children within the same H_T, and at most one "cross edge" that commits
// to the sidetrack the Node represents and continues from the top of the
// sidetrack's target state's own H_T.
//
// The package knows nothing about StateID, Action, or Task — it is handed
// plain int64 state identifiers and two callbacks (SapTarget, TreeHeapOf)
// so it can stay a leaf package the parent module wires up, mirroring how
// the teacher's astar package stays generic over node type via a Graph
// interface.
package pathgraph

import (
	"container/heap"

	"github.com/kstar-go/kstar/leftist"
)

// SapTarget resolves a SAP id to the state its sidetrack edge leads to
// (sap.To in the parent module's terms).
type SapTarget func(sapID int64) int64

// TreeHeapOf resolves a state to the root of its H_T persistent heap (nil
// if empty).
type TreeHeapOf func(state int64) *leftist.Node

// Node is a vertex of the path graph (spec §4.3). Identity is defined by
// HeapPos (a *leftist.Node pointer, unique per structural position; nil
// only for the synthetic root) — ParentNode is recorded for traceback only
// and, per spec, is deliberately excluded from identity.
type Node struct {
	HeapPos    *leftist.Node
	SapID      int64 // == HeapPos.ID; -1 for the root
	GPG        int64 // accumulated detour cost g_pg
	IsRoot     bool
	ParentNode *Node
	CrossEdge  bool // true if the in-edge from ParentNode was a cross edge
}

// Dijkstra is the path-graph search driver. Pop is the only suspension
// point (spec §5): each call performs one atomic pop-and-relax and
// returns, never retaining partial state between calls beyond its own
// fields.
type Dijkstra struct {
	sapTarget  SapTarget
	treeHeapOf TreeHeapOf
	goalState  int64

	frontier pgQueue
	best     map[*leftist.Node]*Node // best known Node per identity
	closed   map[*leftist.Node]bool
}

// NewDijkstra creates a path-graph Dijkstra search rooted at goalState's
// H_T. sapTarget and treeHeapOf are the callbacks resolving SAP ids and
// states back into the parent module's stores.
func NewDijkstra(goalState int64, sapTarget SapTarget, treeHeapOf TreeHeapOf) *Dijkstra {
	d := &Dijkstra{
		sapTarget:  sapTarget,
		treeHeapOf: treeHeapOf,
		goalState:  goalState,
		best:       make(map[*leftist.Node]*Node),
		closed:     make(map[*leftist.Node]bool),
	}
	root := &Node{SapID: -1, GPG: 0, IsRoot: true}
	d.best[nil] = root
	heap.Push(&d.frontier, &pgItem{node: root})
	return d
}

// Empty reports whether the frontier has no more work.
func (d *Dijkstra) Empty() bool {
	return d.frontier.Len() == 0
}

// MinKey returns d, the minimum g_pg currently in the frontier — the
// quantity the A* driver's interrupt gate compares against C* (spec §4.1,
// §4.3). ok is false when the frontier is empty.
func (d *Dijkstra) MinKey() (int64, bool) {
	if d.frontier.Len() == 0 {
		return 0, false
	}
	return d.frontier[0].node.GPG, true
}

// Pop performs one Dijkstra expansion: it removes the frontier minimum,
// marks it closed, generates its outgoing edges, relaxes them, and
// returns the popped Node so the caller can attempt plan reconstruction
// from it. ok is false once the frontier is exhausted.
func (d *Dijkstra) Pop() (*Node, bool) {
	for d.frontier.Len() > 0 {
		item := heap.Pop(&d.frontier).(*pgItem)
		n := item.node
		if d.closed[n.HeapPos] {
			continue
		}
		d.closed[n.HeapPos] = true
		d.expand(n)
		return n, true
	}
	return nil, false
}

func (d *Dijkstra) expand(n *Node) {
	if !n.IsRoot {
		if left := n.HeapPos.Left; left != nil {
			d.relax(n, left, left.Key-n.HeapPos.Key, false)
		}
		if right := n.HeapPos.Right; right != nil {
			d.relax(n, right, right.Key-n.HeapPos.Key, false)
		}
	}

	target := d.goalState
	if !n.IsRoot {
		target = d.sapTarget(n.SapID)
	}
	if top := d.treeHeapOf(target); top != nil {
		d.relax(n, top, top.Key, true)
	}
}

func (d *Dijkstra) relax(from *Node, to *leftist.Node, weight int64, cross bool) {
	if d.closed[to] {
		return
	}
	gpg := from.GPG + weight
	if existing, ok := d.best[to]; ok && existing.GPG <= gpg {
		return
	}
	n := &Node{HeapPos: to, SapID: to.ID, GPG: gpg, ParentNode: from, CrossEdge: cross}
	d.best[to] = n
	heap.Push(&d.frontier, &pgItem{node: n})
}

// pgItem/pgQueue: a container/heap binary min-heap over Node.GPG, shaped
// after the teacher's PriorityQueue (pq.go) — reused a third time in this
// module (H_in, the A* open list, and here) because it is the idiomatic
// stdlib priority queue the teacher establishes.
type pgItem struct {
	node  *Node
	index int
}

type pgQueue []*pgItem

func (q pgQueue) Len() int           { return len(q) }
func (q pgQueue) Less(i, j int) bool { return q[i].node.GPG < q[j].node.GPG }
func (q pgQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *pgQueue) Push(x any) {
	item := x.(*pgItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *pgQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
