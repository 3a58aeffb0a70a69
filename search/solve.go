package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/movement"
)

// Solve runs strategy on g.
//
// Steps:
//  1. Resolve start and finish; an unresolved endpoint fails before any
//     traversal.
//  2. start == finish yields Cost 0, Length 1 and a single step.
//  3. For A*, compute the heuristic table for the finish unless the grid
//     already holds one for it.
//  4. Dispatch to BFS, UCS or AStar.
//
// Returns ErrUnknownStrategy for an unsupported strategy, otherwise whatever
// the selected algorithm returns.
func Solve(g *lattice.Grid, strategy Strategy, opts ...Option) (*Result, error) {
	switch strategy {
	case StrategyBFS, StrategyUCS, StrategyAStar:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}

	// 1) Endpoints
	start, finish, err := endpoints(g)
	if err != nil {
		return nil, err
	}

	// 2) Degenerate
	if start.ID == finish.ID {
		return single(strategy, start), nil
	}

	// 3) Dispatch
	switch strategy {
	case StrategyBFS:
		return BFS(g, opts...)
	case StrategyUCS:
		return UCS(g, opts...)
	default:
		if target, ok := g.HeuristicTarget(); !ok || target != finish.Coord {
			if err = g.ComputeHeuristic(finish.Coord); err != nil {
				return nil, err
			}
		}
		return AStar(g, opts...)
	}
}

// Validate checks r against g:
//   - Length equals len(Steps) and is at least 1;
//   - Steps starts at the grid's start and ends at its finish;
//   - the first step costs 0, every later step follows an existing edge;
//   - step costs are 1 for BFS and the edge cost otherwise;
//   - Cost equals the sum of step costs.
//
// Returns an error wrapping ErrInvalidResult describing the first violation.
func (r *Result) Validate(g *lattice.Grid) error {
	if r == nil || g == nil {
		return fmt.Errorf("%w: nil result or grid", ErrInvalidResult)
	}
	if r.Length < 1 || r.Length != len(r.Steps) {
		return fmt.Errorf("%w: length %d with %d steps", ErrInvalidResult, r.Length, len(r.Steps))
	}
	start, finish, err := endpoints(g)
	if err != nil {
		return errors.Join(ErrInvalidResult, err)
	}
	if r.Steps[0].Coord != start.Coord || r.Steps[len(r.Steps)-1].Coord != finish.Coord {
		return fmt.Errorf("%w: path runs %s → %s, want %s → %s", ErrInvalidResult,
			r.Steps[0].Coord, r.Steps[len(r.Steps)-1].Coord, start.Coord, finish.Coord)
	}
	if r.Steps[0].Cost != 0 {
		return fmt.Errorf("%w: first step costs %d", ErrInvalidResult, r.Steps[0].Cost)
	}

	sum := 0
	for i := 1; i < len(r.Steps); i++ {
		prev, cur := r.Steps[i-1], r.Steps[i]
		edgeCost, ok := edgeBetween(g, prev.Coord, cur.Coord)
		if !ok {
			return fmt.Errorf("%w: no edge %s → %s", ErrInvalidResult, prev.Coord, cur.Coord)
		}
		want := edgeCost
		if r.Strategy == StrategyBFS {
			want = 1
		}
		if cur.Cost != want {
			return fmt.Errorf("%w: step %d costs %d, want %d", ErrInvalidResult, i, cur.Cost, want)
		}
		sum += cur.Cost
	}
	if sum != r.Cost {
		return fmt.Errorf("%w: cost %d, steps sum to %d", ErrInvalidResult, r.Cost, sum)
	}
	return nil
}

// edgeBetween returns the cost of the adjacency entry from a to b.
func edgeBetween(g *lattice.Grid, a, b lattice.Coord) (int, bool) {
	n, ok := g.Node(a)
	if !ok {
		return 0, false
	}
	d, ok := movement.DirectionOf(b.Sub(a))
	if !ok {
		return 0, false
	}
	for _, e := range n.Edges {
		if e.Dir == d {
			return e.Cost, true
		}
	}
	return 0, false
}
