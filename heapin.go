package kstar

import "container/heap"

// hinItem is one element of a per-state incoming heap, keyed by delta.
// Shaped after the teacher's PriorityQueueItem (pq.go): a heap-index field
// lets container/heap.Fix be used if delta ever needs updating, though in
// practice SAPs are immutable once inserted and Fix is unused.
type hinItem struct {
	sapID int64
	delta int64
	index int
}

// hinQueue implements container/heap.Interface exactly like the teacher's
// PriorityQueue, keyed by delta instead of FCost.
type hinQueue []*hinItem

func (q hinQueue) Len() int            { return len(q) }
func (q hinQueue) Less(i, j int) bool  { return q[i].delta < q[j].delta }
func (q hinQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *hinQueue) Push(x any) {
	item := x.(*hinItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *hinQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// HinHeap is H_in(s): the mutable min-heap of every sidetrack SAP entering
// one state, ordered by delta. Insertions happen during A* expansion;
// Snapshot is read lazily, each time the persistent H_T tree-heap for that
// state is (re)materialized after an invalidation (heaptree.go).
type HinHeap struct {
	q hinQueue
}

// NewHinHeap creates an empty incoming heap.
func NewHinHeap() *HinHeap {
	h := &HinHeap{}
	heap.Init(&h.q)
	return h
}

// Insert adds a sidetrack SAP to this state's incoming heap.
func (h *HinHeap) Insert(sapID, delta int64) {
	heap.Push(&h.q, &hinItem{sapID: sapID, delta: delta})
}

// Len reports how many sidetracks currently enter this state.
func (h *HinHeap) Len() int { return h.q.Len() }

// Snapshot returns the (sapID, delta) pairs currently in the heap, in
// arbitrary order — the caller (TreeHeapStore.Get) re-heapifies them into a
// persistent structure, so container/heap's internal array order does not
// need to be meaningful here.
func (h *HinHeap) Snapshot() []struct {
	SapID int64
	Delta int64
} {
	out := make([]struct {
		SapID int64
		Delta int64
	}, len(h.q))
	for i, it := range h.q {
		out[i] = struct {
			SapID int64
			Delta int64
		}{it.sapID, it.delta}
	}
	return out
}

// HinStore holds one HinHeap per state, created lazily on first insert.
type HinStore struct {
	byState map[StateID]*HinHeap
}

// NewHinStore creates an empty per-state incoming-heap store.
func NewHinStore() *HinStore {
	return &HinStore{byState: make(map[StateID]*HinHeap)}
}

// Insert records a sidetrack SAP entering `to`, creating its incoming heap
// on first use.
func (s *HinStore) Insert(to StateID, sapID, delta int64) {
	h, ok := s.byState[to]
	if !ok {
		h = NewHinHeap()
		s.byState[to] = h
	}
	h.Insert(sapID, delta)
}

// Get returns the incoming heap for a state, or nil if it has none.
func (s *HinStore) Get(to StateID) *HinHeap {
	return s.byState[to]
}
