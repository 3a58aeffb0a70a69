package search

import (
	"fmt"

	"github.com/katalvlaran/latticepath/frontier"
	"github.com/katalvlaran/latticepath/lattice"
)

// AStar finds a path from the grid's start to its finish guided by the
// grid's straight-line heuristic table.
//
// Frontier keys are (g + h, g): entries are ordered by estimated total cost,
// and among equal totals the smaller accumulated cost g comes first. A queued
// node is updated when its new total is smaller, or equal with a smaller g.
// The start is queued with keys (0, 0).
//
// The heuristic table must already be computed for the grid's finish
// (lattice.Grid.ComputeHeuristic); Solve does this automatically.
//
// Result.Cost is the accumulated g of the finish node when it is popped.
// The estimate can overshoot by a few units on long diagonal runs, so on
// large open grids the cost may exceed the UCS optimum by that margin.
//
// Returns ErrUnresolved, ErrNoPath, lattice.ErrHeuristicNotComputed,
// ErrHeuristicMismatch or the context's error.
// Complexity: O((V + E) log V) time, O(V) memory.
func AStar(g *lattice.Grid, opts ...Option) (*Result, error) {
	// 1) Endpoints
	r, done, err := newRunner(g, StrategyAStar, opts)
	if err != nil || done != nil {
		return done, err
	}

	// 2) Heuristic table for this finish
	h, target, err := g.HeuristicTable()
	if err != nil {
		return nil, err
	}
	if target != r.finish {
		have := g.NodeAt(target).Coord
		want := g.NodeAt(r.finish).Coord
		return nil, fmt.Errorf("%w: table targets %s, finish is %s", ErrHeuristicMismatch, have, want)
	}

	// 3) Queue start
	pq := frontier.New(frontier.WithActualTieBreak(), frontier.WithCapacity(g.Len()))
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
			return r.result(top.Actual), nil
		}

		// 4) Relax neighbors
		for _, e := range g.NodeAt(cur).Edges {
			r.stats.Relaxations++
			if r.explored[e.To] {
				continue
			}
			actual := top.Actual + e.Cost
			total := actual + h[e.To]
			if !r.revealed[e.To] {
				r.reveal(e.To, cur, e.Cost, actual)
				// revealed is false, so e.To has never been pushed.
				_ = pq.Push(e.To, total, actual)
				r.stats.Pushes++
				continue
			}
			if pq.DecreaseKey(e.To, total, actual) {
				r.reroute(e.To, cur, e.Cost, actual)
			}
		}
	}

	// 5) Frontier exhausted
	return nil, ErrNoPath
}
