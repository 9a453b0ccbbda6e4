package kstar

import "container/heap"

// olItem is one entry in DefaultOpenList, shaped directly after the
// teacher's PriorityQueueItem (pq.go): a state, its key, and its own heap
// index so container/heap.Fix/Remove can locate it in O(log n).
type olItem struct {
	state StateID
	key   int64
	index int
}

type olQueue []*olItem

func (q olQueue) Len() int           { return len(q) }
func (q olQueue) Less(i, j int) bool { return q[i].key < q[j].key }
func (q olQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *olQueue) Push(x any) {
	item := x.(*olItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *olQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// DefaultOpenList is a binary-heap OpenList, the concrete implementation
// backing the abstract interface exactly as the teacher's PriorityQueue
// backs astar.Search — a caller wanting a different open-list policy
// (e.g. bucket queues for small integer costs) implements OpenList
// directly instead.
type DefaultOpenList struct {
	q     olQueue
	index map[StateID]*olItem
}

// NewDefaultOpenList creates an empty binary-heap open list.
func NewDefaultOpenList() *DefaultOpenList {
	l := &DefaultOpenList{index: make(map[StateID]*olItem)}
	heap.Init(&l.q)
	return l
}

func (l *DefaultOpenList) Insert(s StateID, key int64) {
	item := &olItem{state: s, key: key}
	heap.Push(&l.q, item)
	l.index[s] = item
}

func (l *DefaultOpenList) PopMin() (StateID, bool) {
	if l.q.Len() == 0 {
		return NoState, false
	}
	item := heap.Pop(&l.q).(*olItem)
	delete(l.index, item.state)
	return item.state, true
}

func (l *DefaultOpenList) Remove(s StateID) {
	item, ok := l.index[s]
	if !ok {
		return
	}
	heap.Remove(&l.q, item.index)
	delete(l.index, s)
}

func (l *DefaultOpenList) MinKey() (int64, bool) {
	if l.q.Len() == 0 {
		return 0, false
	}
	return l.q[0].key, true
}

func (l *DefaultOpenList) Len() int {
	return l.q.Len()
}
