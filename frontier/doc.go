// Package frontier provides the two frontier disciplines used by the lattice
// search strategies:
//
//   - FIFO: a strict first-in-first-out queue of node indices (BFS).
//   - Heap: a min-priority queue of (Primary, Actual, Node) entries with an
//     in-place DecreaseKey (UCS and A*).
//
// Ordering
//
//	Heap orders entries by Primary ascending. With WithActualTieBreak, equal
//	Primary keys are ordered by Actual ascending. Entries equal on every
//	numeric key come out in an unspecified order: neither node identity nor
//	insertion order is used, and callers must not depend on which one wins.
//
// Decrease-key
//
//	Heap keeps a node→slot index next to the container/heap slice, so
//	DecreaseKey finds the queued entry in O(1) and restores heap order with
//	heap.Fix in O(log n). The update rule is strict: the new Primary must be
//	smaller, or (tie-break enabled) equal with a smaller Actual. Otherwise
//	the entry is left untouched and DecreaseKey reports false, as it does for
//	a node that is not queued.
//
// Complexity (n = queued entries)
//
//   - Push, Pop, DecreaseKey: O(log n)
//   - Contains, Peek, Len:    O(1)
//   - FIFO Push/Pop:          amortized O(1)
//
// Neither type is safe for concurrent use; each search owns its frontier.
package frontier
