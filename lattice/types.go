// Package lattice defines the coordinate, node and grid types of a sparse 3D
// lattice graph, together with sentinel errors.
//
// Nodes live in a single arena owned by the Grid ([]Node plus a Coord→index
// map); adjacency entries reference neighbors by arena index, so there are no
// ownership cycles and every neighbor link stays valid for the Grid's lifetime.
package lattice

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/latticepath/movement"
)

// Sentinel errors for lattice operations.
var (
	// ErrStartNotFound indicates the start coordinate did not resolve to a node.
	ErrStartNotFound = errors.New("lattice: start coordinate is not a node")

	// ErrFinishNotFound indicates the finish coordinate did not resolve to a node.
	ErrFinishNotFound = errors.New("lattice: finish coordinate is not a node")

	// ErrHeuristicNotComputed indicates a heuristic lookup before ComputeHeuristic.
	ErrHeuristicNotComputed = errors.New("lattice: heuristic has not been computed")
)

// Coord identifies one lattice cell. It is comparable and used as a map key.
type Coord struct {
	X, Y, Z int
}

// String renders c as "x y z", the form used by the text codec.
func (c Coord) String() string {
	return fmt.Sprintf("%d %d %d", c.X, c.Y, c.Z)
}

// Add applies a displacement to c.
func (c Coord) Add(p movement.Displacement) Coord {
	return Coord{X: c.X + p.DX, Y: c.Y + p.DY, Z: c.Z + p.DZ}
}

// Sub returns the displacement leading from o to c.
func (c Coord) Sub(o Coord) movement.Displacement {
	return movement.Displacement{DX: c.X - o.X, DY: c.Y - o.Y, DZ: c.Z - o.Z}
}

// Record is one adjacency line of a problem description: the moves that
// leave the cell At. Costs are implied by the movement model.
type Record struct {
	At    Coord
	Moves []movement.Direction
}

// Edge is an outgoing adjacency entry of a Node.
type Edge struct {
	To   int                // arena index of the neighbor
	Cost int                // traversal cost from the movement model
	Dir  movement.Direction // move that produced this edge
}

// Node is a graph vertex for one occupied coordinate. Its adjacency list is
// filled once by Build and never changes afterwards.
type Node struct {
	ID    int // arena index, stable for the Grid's lifetime
	Coord Coord
	Edges []Edge
}

// Grid owns every Node of a lattice graph, the declared bounds and the
// designated endpoints. After Build only the heuristic table may change, and
// that happens under heurMu so concurrent searches can read it safely.
type Grid struct {
	bounds Coord
	nodes  []Node
	index  map[Coord]int
	start  int // -1 when unresolved
	finish int // -1 when unresolved
	from   Coord
	to     Coord
	edges  int

	heurMu     sync.RWMutex
	heuristic  []int // by arena index; nil until computed
	heurTarget int   // arena index the table was computed for
}
