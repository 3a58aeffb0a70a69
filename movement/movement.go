// Package movement enumerates the legal single-step moves on the 3D lattice:
// six axis-aligned steps and twelve face-diagonal steps, each identified by a
// compact Direction in 1..18.
//
// Cost model:
//
//   - one nonzero component  → AxisCost (10)
//   - two nonzero components → DiagonalCost (14, ≈ √2·10)
//
// Full 3D corner moves (three nonzero components) are not part of the model.
// The table is a package-level constant; nothing here allocates or fails.
package movement

import "fmt"

// Fixed traversal costs, expressed in tenths of a lattice unit.
const (
	// AxisCost is the cost of a move along exactly one axis.
	AxisCost = 10
	// DiagonalCost is the cost of a move within one coordinate plane.
	DiagonalCost = 14
	// Scale converts lattice units into cost units (used by the heuristic).
	Scale = 10
)

// Direction is a compact move identifier in 1..18. The zero value is invalid.
type Direction uint8

// Displacement is the (dx, dy, dz) offset applied by one move.
type Displacement struct {
	DX, DY, DZ int
}

// Count is the number of legal directions.
const Count = 18

// table is indexed by Direction; slot 0 is unused.
var table = [Count + 1]Displacement{
	{},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
	{1, 1, 0},
	{1, -1, 0},
	{-1, 1, 0},
	{-1, -1, 0},
	{1, 0, 1},
	{1, 0, -1},
	{-1, 0, 1},
	{-1, 0, -1},
	{0, 1, 1},
	{0, 1, -1},
	{0, -1, 1},
	{0, -1, -1},
}

// inverse maps a displacement back to its direction.
var inverse = func() map[Displacement]Direction {
	m := make(map[Displacement]Direction, Count)
	for d := Direction(1); d <= Count; d++ {
		m[table[d]] = d
	}
	return m
}()

// Valid reports whether d is one of the 18 defined directions.
func (d Direction) Valid() bool {
	return d >= 1 && d <= Count
}

// String renders the direction as its numeric identifier.
func (d Direction) String() string {
	return fmt.Sprintf("%d", uint8(d))
}

// Opposite returns the direction whose displacement is the negation of d's.
// For an invalid d it returns 0.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return 0
	}
	return inverse[table[d].Negate()]
}

// Negate returns the displacement pointing the other way.
func (p Displacement) Negate() Displacement {
	return Displacement{DX: -p.DX, DY: -p.DY, DZ: -p.DZ}
}

// NonZero counts the components of p that are not zero.
func (p Displacement) NonZero() int {
	n := 0
	for _, v := range [3]int{p.DX, p.DY, p.DZ} {
		if v != 0 {
			n++
		}
	}
	return n
}

// Lookup returns the displacement for d.
func Lookup(d Direction) (Displacement, bool) {
	if !d.Valid() {
		return Displacement{}, false
	}
	return table[d], true
}

// DirectionOf is the inverse of Lookup.
func DirectionOf(p Displacement) (Direction, bool) {
	d, ok := inverse[p]
	return d, ok
}

// Classify returns the traversal cost of p by its number of nonzero
// components. Zero displacements and full 3D corner moves are rejected,
// as is any component outside [-1, 1].
func Classify(p Displacement) (int, bool) {
	if _, ok := inverse[p]; !ok {
		return 0, false
	}
	switch p.NonZero() {
	case 1:
		return AxisCost, true
	case 2:
		return DiagonalCost, true
	default:
		return 0, false
	}
}

// Cost returns the traversal cost of d.
func Cost(d Direction) (int, bool) {
	p, ok := Lookup(d)
	if !ok {
		return 0, false
	}
	return Classify(p)
}

// Directions returns all legal directions in identifier order.
func Directions() []Direction {
	out := make([]Direction, 0, Count)
	for d := Direction(1); d <= Count; d++ {
		out = append(out, d)
	}
	return out
}
