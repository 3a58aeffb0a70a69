package frontier

// FIFO is a first-in-first-out queue of node indices.
type FIFO struct {
	items []int
	head  int
}

// NewFIFO returns an empty queue with room for capacity items.
func NewFIFO(capacity int) *FIFO {
	if capacity < 0 {
		capacity = 0
	}
	return &FIFO{items: make([]int, 0, capacity)}
}

// Len returns the number of queued items.
func (f *FIFO) Len() int { return len(f.items) - f.head }

// Push appends node at the tail.
func (f *FIFO) Push(node int) {
	f.items = append(f.items, node)
}

// Pop removes and returns the head. The second result is false when empty.
func (f *FIFO) Pop() (int, bool) {
	if f.head == len(f.items) {
		return 0, false
	}
	node := f.items[f.head]
	f.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 32 && f.head*2 >= len(f.items) {
		n := copy(f.items, f.items[f.head:])
		f.items = f.items[:n]
		f.head = 0
	}
	return node, true
}
