package search

import (
	"github.com/katalvlaran/latticepath/frontier"
	"github.com/katalvlaran/latticepath/lattice"
)

// UCS finds a minimum-cost path from the grid's start to its finish using a
// min-heap keyed by accumulated cost.
//
// The search stops when the finish node is removed from the frontier, which
// makes Result.Cost optimal for the non-negative 10/14 edge costs.
//
// Steps:
//  1. Resolve endpoints; answer start == finish directly.
//  2. Queue start with cost 0. Repeatedly pop the cheapest node; popping the
//     finish ends the search.
//  3. For each neighbor not yet explored:
//     - unseen: set parent, queue with cost + edge cost;
//     - queued: lower its key when the new cost is strictly smaller, and
//     re-parent only if that succeeded.
//  4. Exhausting the frontier yields ErrNoPath.
//
// Equal costs carry no ordering preference.
// Returns ErrUnresolved, ErrNoPath or the context's error.
// Complexity: O((V + E) log V) time, O(V) memory.
func UCS(g *lattice.Grid, opts ...Option) (*Result, error) {
	// 1) Endpoints
	r, done, err := newRunner(g, StrategyUCS, opts)
	if err != nil || done != nil {
		return done, err
	}

	// 2) Queue start
	pq := frontier.New(frontier.WithCapacity(g.Len()))
	_ = pq.Push(r.start, 0, 0) // empty heap, cannot be a duplicate
	r.stats.Pushes++

	for pq.Len() > 0 {
		if err = r.checkContext(); err != nil {
			return nil, err
		}
		top, _ := pq.Pop()
		cur := top.Node
		r.expand(cur)
		if cur == r.finish {
			return r.result(top.Primary), nil
		}

		// 3) Relax neighbors
		for _, e := range g.NodeAt(cur).Edges {
			r.stats.Relaxations++
			if r.explored[e.To] {
				continue
			}
			next := top.Primary + e.Cost
			if !r.revealed[e.To] {
				r.reveal(e.To, cur, e.Cost, next)
				// revealed is false, so e.To has never been pushed.
				_ = pq.Push(e.To, next, next)
				r.stats.Pushes++
				continue
			}
			if pq.DecreaseKey(e.To, next, next) {
				r.reroute(e.To, cur, e.Cost, next)
			}
		}
	}

	// 4) Frontier exhausted
	return nil, ErrNoPath
}
