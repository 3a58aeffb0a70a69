package search

import (
	"github.com/katalvlaran/latticepath/frontier"
	"github.com/katalvlaran/latticepath/lattice"
)

// BFS finds the path with the fewest hops from the grid's start to its finish.
//
// Edge weights are ignored: every step on the returned path costs 1 and
// Result.Cost equals Length-1. The search stops as soon as the finish node is
// discovered as a neighbor, before it is ever queued.
//
// Steps:
//  1. Resolve endpoints; answer start == finish directly.
//  2. Queue start. Repeatedly dequeue a node, mark it explored, and visit
//     its neighbors in adjacency order.
//  3. A neighbor neither explored nor revealed gets its parent set; if it is
//     the finish the path is returned, otherwise it is queued.
//  4. Exhausting the queue yields ErrNoPath.
//
// Returns ErrUnresolved, ErrNoPath or the context's error.
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *lattice.Grid, opts ...Option) (*Result, error) {
	// 1) Endpoints
	r, done, err := newRunner(g, StrategyBFS, opts)
	if err != nil || done != nil {
		return done, err
	}

	// 2) Queue start
	q := frontier.NewFIFO(g.Len())
	q.Push(r.start)
	r.stats.Pushes++

	for q.Len() > 0 {
		if err = r.checkContext(); err != nil {
			return nil, err
		}
		cur, _ := q.Pop()
		r.expand(cur)

		// 3) Discover neighbors
		for _, e := range g.NodeAt(cur).Edges {
			r.stats.Relaxations++
			if r.explored[e.To] || r.revealed[e.To] {
				continue
			}
			r.reveal(e.To, cur, 1, r.dist[cur]+1)
			if e.To == r.finish {
				res := r.result(r.dist[e.To])
				return res, nil
			}
			q.Push(e.To)
			r.stats.Pushes++
		}
	}

	// 4) Frontier exhausted
	return nil, ErrNoPath
}
