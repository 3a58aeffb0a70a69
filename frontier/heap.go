package frontier

import (
	"container/heap"
	"fmt"
)

// Heap is a min-priority queue with decrease-key over lattice node indices.
type Heap struct {
	q     entries
	slots map[int]*Entry // node → queued entry
}

// New returns an empty Heap configured by opts.
func New(opts ...Option) *Heap {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	h := &Heap{
		q: entries{
			items:    make([]*Entry, 0, o.Capacity),
			tieBreak: o.TieBreak,
		},
		slots: make(map[int]*Entry, o.Capacity),
	}
	heap.Init(&h.q)
	return h
}

// Len returns the number of queued entries.
func (h *Heap) Len() int { return h.q.Len() }

// Contains reports whether node is currently queued.
func (h *Heap) Contains(node int) bool {
	_, ok := h.slots[node]
	return ok
}

// Push queues node with the given keys.
// Returns ErrDuplicate if node is already queued.
func (h *Heap) Push(node, primary, actual int) error {
	if _, ok := h.slots[node]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicate, node)
	}
	e := &Entry{Node: node, Primary: primary, Actual: actual, index: -1}
	h.slots[node] = e
	heap.Push(&h.q, e)
	return nil
}

// Pop removes and returns the minimum entry. The second result is false on
// an empty heap.
func (h *Heap) Pop() (Entry, bool) {
	if h.q.Len() == 0 {
		return Entry{}, false
	}
	e := heap.Pop(&h.q).(*Entry)
	delete(h.slots, e.Node)
	return *e, true
}

// Peek returns the minimum entry without removing it.
func (h *Heap) Peek() (Entry, bool) {
	if h.q.Len() == 0 {
		return Entry{}, false
	}
	return *h.q.items[0], true
}

// DecreaseKey lowers the keys of a queued node in place.
//
// The entry is updated when primary is strictly smaller than its current
// Primary, or, with tie-break enabled, when primary is equal and actual is
// strictly smaller than its current Actual. Reports whether an update took
// place; an absent node reports false.
func (h *Heap) DecreaseKey(node, primary, actual int) bool {
	e, ok := h.slots[node]
	if !ok {
		return false
	}

	improves := primary < e.Primary
	if !improves && h.q.tieBreak {
		improves = primary == e.Primary && actual < e.Actual
	}
	if !improves {
		return false
	}

	e.Primary = primary
	e.Actual = actual
	heap.Fix(&h.q, e.index)
	return true
}

// entries implements heap.Interface and keeps Entry.index in sync.
type entries struct {
	items    []*Entry
	tieBreak bool
}

func (q entries) Len() int { return len(q.items) }

func (q entries) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.Primary != b.Primary {
		return a.Primary < b.Primary
	}
	if q.tieBreak {
		return a.Actual < b.Actual
	}
	// Equal keys: no preference.
	return false
}

func (q entries) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *entries) Push(x any) {
	e := x.(*Entry)
	e.index = len(q.items)
	q.items = append(q.items, e)
}

func (q *entries) Pop() any {
	old := q.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	q.items = old[:n-1]
	return e
}
