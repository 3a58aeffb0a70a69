// Package search implements single-source, single-target shortest-path search
// over a lattice.Grid with three interchangeable strategies.
//
// What
//
//   - BFS:   FIFO frontier, edge weights ignored. Stops the moment the finish
//     node is discovered as a neighbor, which guarantees the fewest hops.
//     The reported Cost is the hop count and every step costs 1.
//   - UCS:   min-heap frontier keyed by accumulated cost. Stops when the
//     finish node is popped, so the cost is optimal for non-negative weights.
//   - A*:    min-heap keyed by (cost + straight-line estimate), accumulated
//     cost as tie-break. Needs lattice.Grid.ComputeHeuristic for the finish
//     node first; Solve does that on demand.
//
// Shared skeleton
//
//	All three keep an explored set (finalized, never revisited), a revealed
//	set (discovered, parent assigned) and a parent map of (predecessor, edge
//	cost). A revealed but unexplored node reached through a cheaper route has
//	its frontier key lowered with DecreaseKey; the parent link changes only
//	when that decrease succeeds. The path is rebuilt by walking parent links
//	from finish back to start and reversing.
//
// Outcomes
//
//	Result{Cost, Length, Steps} on success, where Steps runs from start to
//	finish inclusive and Steps[0].Cost == 0. Every "no answer" outcome is an
//	error matching ErrFailed:
//
//	  - ErrUnresolved (wrapping lattice.ErrStartNotFound or ErrFinishNotFound)
//	    when an endpoint coordinate is not a node; no traversal happens.
//	  - ErrNoPath when the frontier empties without reaching finish.
//
//	Callers that only care about FAIL test errors.Is(err, ErrFailed).
//
// Degenerate case
//
//	start == finish yields (Cost 0, Length 1, one step of cost 0) without
//	running any traversal.
//
// Concurrency
//
//	A search never mutates the Grid. Each call owns its frontier and
//	bookkeeping, so concurrent searches over one Grid are safe.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - BFS:     O(V + E) time, O(V) memory
//   - UCS, A*: O((V + E) log V) time, O(V) memory
package search
