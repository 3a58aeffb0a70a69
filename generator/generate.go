// SPDX-License-Identifier: MIT
// Package: latticepath/generator
//
// generate.go — random lattice problems.
//
// Model:
//   • Every cell of [0,bx)×[0,by)×[0,bz) becomes a node independently with
//     probability density.
//   • Every pair of nodes one movement apart is wired in both directions.
//   • Cells without any neighbor are counted but get no location line.
//   • Start and finish are two distinct nodes drawn uniformly; with
//     WithConnectedEndpoints both come from one connected group.
//
// Determinism:
//   • Cells are sampled in x, y, z ascending order; a fixed seed gives a
//     fixed problem.

package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/problem"
)

// Generate samples a random problem inside bounds.
//
// The problem's Bounds equal bounds, so every generated coordinate is
// strictly below the declared size. Declared counts every sampled node,
// including isolated ones.
//
// Errors: ErrBadBounds, ErrInvalidDensity, ErrNeedRandSource, ErrTooFewNodes.
// Complexity: O(bx·by·bz) time and memory.
func Generate(bounds lattice.Coord, opts ...Option) (*problem.Problem, error) {
	cfg := newConfig(opts...)

	// 1) Validate.
	if bounds.X < 1 || bounds.Y < 1 || bounds.Z < 1 {
		return nil, fmt.Errorf("Generate: bounds %s: %w", bounds, ErrBadBounds)
	}
	if cfg.density < 0 || cfg.density > 1 {
		return nil, fmt.Errorf("Generate: density=%.6f not in [0,1]: %w", cfg.density, ErrInvalidDensity)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNeedRandSource)
	}
	rng := cfg.rng

	// 2) Sample cells.
	var cells []lattice.Coord
	for x := 0; x < bounds.X; x++ {
		for y := 0; y < bounds.Y; y++ {
			for z := 0; z < bounds.Z; z++ {
				if rng.Float64() < cfg.density {
					cells = append(cells, lattice.Coord{X: x, Y: y, Z: z})
				}
			}
		}
	}
	if len(cells) < 2 {
		return nil, fmt.Errorf("Generate: %d node(s) at density %.3f: %w", len(cells), cfg.density, ErrTooFewNodes)
	}

	// 3) Wire neighbors; keep only cells with at least one move.
	all := lattice.Connect(cells)
	records := all[:0]
	for _, r := range all {
		if len(r.Moves) > 0 {
			records = append(records, r)
		}
	}

	// 4) Distinct endpoints.
	var start, finish lattice.Coord
	if cfg.connected {
		var ok bool
		if start, finish, ok = connectedPair(rng, bounds, records); !ok {
			return nil, fmt.Errorf("Generate: no two connected nodes at density %.3f: %w", cfg.density, ErrTooFewNodes)
		}
	} else {
		start, finish = distinctPair(rng, cells)
	}

	return &problem.Problem{
		Strategy: cfg.strategy,
		Bounds:   bounds,
		Start:    start,
		Finish:   finish,
		Declared: len(cells),
		Records:  records,
	}, nil
}

// distinctPair draws two different elements of pool (len(pool) >= 2).
func distinctPair(rng *rand.Rand, pool []lattice.Coord) (lattice.Coord, lattice.Coord) {
	si := rng.Intn(len(pool))
	fi := rng.Intn(len(pool) - 1)
	if fi >= si {
		fi++
	}
	return pool[si], pool[fi]
}

// connectedPair picks a start uniformly among nodes that have a neighbor and
// a finish among the other members of its group.
func connectedPair(rng *rand.Rand, bounds lattice.Coord, records []lattice.Record) (lattice.Coord, lattice.Coord, bool) {
	g := lattice.Build(bounds, records, lattice.Coord{}, lattice.Coord{})

	var eligible []int // arena indices in groups of two or more
	group := make(map[int][]int)
	for _, comp := range g.Components() {
		if len(comp) < 2 {
			continue
		}
		for _, id := range comp {
			group[id] = comp
		}
		eligible = append(eligible, comp...)
	}
	if len(eligible) == 0 {
		return lattice.Coord{}, lattice.Coord{}, false
	}

	s := eligible[rng.Intn(len(eligible))]
	comp := group[s]
	pool := make([]lattice.Coord, 0, len(comp))
	pool = append(pool, g.NodeAt(s).Coord)
	for _, id := range comp {
		if id != s {
			pool = append(pool, g.NodeAt(id).Coord)
		}
	}
	// pool[0] is the start; draw the finish from the rest.
	return pool[0], pool[1+rng.Intn(len(pool)-1)], true
}
