package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latticepath/movement"
)

// Estimate returns the straight-line distance between a and b in cost units:
//
//	round( sqrt( Σ (Scale·(a_i - b_i))² ) )
//
// Estimate(a, a) is exactly 0. Because a diagonal costs 14 rather than
// 10·√2, rounding can overshoot the true lattice cost by a small margin on
// long diagonal runs (four diagonal moves cost 56, the estimate is 57).
func Estimate(a, b Coord) int {
	dx := float64(movement.Scale * (a.X - b.X))
	dy := float64(movement.Scale * (a.Y - b.Y))
	dz := float64(movement.Scale * (a.Z - b.Z))
	return int(math.RoundToEven(math.Sqrt(dx*dx + dy*dy + dz*dz)))
}

// ComputeHeuristic fills the straight-line-distance table for every node
// towards finish. The finish node maps to 0; every other node maps to
// Estimate(node, finish).
//
// Calling it again with the same finish yields an identical table. A new
// table is allocated on every call and swapped in under the write lock, so
// slices handed out by HeuristicTable are never mutated.
//
// Returns ErrFinishNotFound if finish is not a node.
// Complexity: O(N) time and memory.
func (g *Grid) ComputeHeuristic(finish Coord) error {
	target, ok := g.index[finish]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFinishNotFound, finish)
	}

	table := make([]int, len(g.nodes))
	for i := range g.nodes {
		if i == target {
			table[i] = 0
			continue
		}
		table[i] = Estimate(g.nodes[i].Coord, finish)
	}

	g.heurMu.Lock()
	g.heuristic = table
	g.heurTarget = target
	g.heurMu.Unlock()

	return nil
}

// Heuristic returns the estimate stored for c. The second result is false
// when the table has not been computed or c is not a node.
func (g *Grid) Heuristic(c Coord) (int, bool) {
	id, ok := g.index[c]
	if !ok {
		return 0, false
	}
	g.heurMu.RLock()
	defer g.heurMu.RUnlock()
	if g.heuristic == nil {
		return 0, false
	}
	return g.heuristic[id], true
}

// HeuristicTarget returns the coordinate the table was computed towards.
func (g *Grid) HeuristicTarget() (Coord, bool) {
	g.heurMu.RLock()
	defer g.heurMu.RUnlock()
	if g.heurTarget < 0 {
		return Coord{}, false
	}
	return g.nodes[g.heurTarget].Coord, true
}

// HeuristicTable returns the current table indexed by node arena index,
// together with the arena index of its target. The slice is read-only.
// Returns ErrHeuristicNotComputed before the first ComputeHeuristic.
func (g *Grid) HeuristicTable() ([]int, int, error) {
	g.heurMu.RLock()
	defer g.heurMu.RUnlock()
	if g.heuristic == nil {
		return nil, -1, ErrHeuristicNotComputed
	}
	return g.heuristic, g.heurTarget, nil
}
