package frontier

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned by Heap.Push for a node that is already queued.
// Use DecreaseKey to change the priority of a queued node.
var ErrDuplicate = errors.New("frontier: node already queued")

// Entry is one queued item.
type Entry struct {
	Node    int // payload: arena index of the lattice node
	Primary int // ordering key (path cost, or cost + estimate)
	Actual  int // accumulated path cost; tie-break key when enabled

	index int // slot in the heap slice, -1 once popped
}

// Options configures a Heap.
type Options struct {
	// TieBreak orders equal Primary keys by Actual ascending.
	TieBreak bool
	// Capacity preallocates the heap slice and the slot index.
	Capacity int
}

// Option configures a Heap via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no tie-break and no preallocation.
func DefaultOptions() Options {
	return Options{TieBreak: false, Capacity: 0}
}

// WithActualTieBreak orders entries with equal Primary by Actual ascending.
func WithActualTieBreak() Option {
	return func(o *Options) {
		o.TieBreak = true
	}
}

// WithCapacity preallocates room for n entries. Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("frontier: WithCapacity(%d)", n))
	}
	return func(o *Options) {
		o.Capacity = n
	}
}
