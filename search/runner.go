package search

import (
	"fmt"

	"github.com/katalvlaran/latticepath/lattice"
)

// link is a parent-map entry: the predecessor's arena index and the cost of
// the edge taken from it. from is -1 for the start node.
type link struct {
	from int
	cost int
}

// runner holds per-call state shared by all three strategies.
type runner struct {
	g        *lattice.Grid
	opts     Options
	strategy Strategy

	start, finish int

	explored []bool
	revealed []bool
	parent   []link
	dist     []int // accumulated cost (hop depth for BFS) as last assigned

	stats Stats
}

// endpoints resolves start and finish on g.
// Returns ErrNilGrid, or ErrUnresolved wrapping the lattice endpoint error.
func endpoints(g *lattice.Grid) (start, finish *lattice.Node, err error) {
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	from, to := g.Endpoints()
	start, ok := g.Start()
	if !ok {
		return nil, nil, fmt.Errorf("%w: %w (%s)", ErrUnresolved, lattice.ErrStartNotFound, from)
	}
	finish, ok = g.Finish()
	if !ok {
		return nil, nil, fmt.Errorf("%w: %w (%s)", ErrUnresolved, lattice.ErrFinishNotFound, to)
	}
	return start, finish, nil
}

// single is the start == finish answer.
func single(s Strategy, n *lattice.Node) *Result {
	return &Result{
		Strategy: s,
		Cost:     0,
		Length:   1,
		Steps:    []Step{{Coord: n.Coord, Cost: 0}},
	}
}

// newRunner applies opts and resolves endpoints. done is non-nil for the
// degenerate start == finish case, in which no traversal is needed.
func newRunner(g *lattice.Grid, s Strategy, opts []Option) (r *runner, done *Result, err error) {
	start, finish, err := endpoints(g)
	if err != nil {
		return nil, nil, err
	}
	if start.ID == finish.ID {
		return nil, single(s, start), nil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	r = &runner{
		g:        g,
		opts:     o,
		strategy: s,
		start:    start.ID,
		finish:   finish.ID,
		explored: make([]bool, n),
		revealed: make([]bool, n),
		parent:   make([]link, n),
		dist:     make([]int, n),
	}
	for i := range r.parent {
		r.parent[i].from = -1
	}
	return r, nil, nil
}

// checkContext returns ctx.Err() if the search was cancelled.
func (r *runner) checkContext() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// expand marks id explored and fires OnExpand.
func (r *runner) expand(id int) {
	r.explored[id] = true
	r.stats.Pops++
	r.stats.Explored++
	r.opts.OnExpand(r.g.NodeAt(id).Coord, r.dist[id])
}

// reveal records the first discovery of child via from.
func (r *runner) reveal(child, from, edgeCost, dist int) {
	r.revealed[child] = true
	r.parent[child] = link{from: from, cost: edgeCost}
	r.dist[child] = dist
	r.opts.OnReveal(r.g.NodeAt(child).Coord, r.g.NodeAt(from).Coord, dist)
}

// reroute replaces the parent of an already revealed child after a
// successful DecreaseKey.
func (r *runner) reroute(child, from, edgeCost, dist int) {
	r.parent[child] = link{from: from, cost: edgeCost}
	r.dist[child] = dist
	r.stats.DecreaseKeys++
}

// result rebuilds the start→finish path from the parent map.
//
// Steps:
//  1. Walk parent links from finish until the start (which has none).
//  2. Append the start with cost 0.
//  3. Reverse into start→finish order.
func (r *runner) result(cost int) *Result {
	var steps []Step
	for cur := r.finish; ; {
		p := r.parent[cur]
		if p.from < 0 {
			steps = append(steps, Step{Coord: r.g.NodeAt(cur).Coord, Cost: 0})
			break
		}
		steps = append(steps, Step{Coord: r.g.NodeAt(cur).Coord, Cost: p.cost})
		cur = p.from
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return &Result{
		Strategy: r.strategy,
		Cost:     cost,
		Length:   len(steps),
		Steps:    steps,
		Stats:    r.stats,
	}
}
