package lattice

import (
	"github.com/katalvlaran/latticepath/movement"
)

// Build constructs a Grid from adjacency records.
//
// Steps:
//  1. Every record whose coordinate is in range becomes a node (records
//     repeating a coordinate share one node).
//  2. Each move is resolved against its owning coordinate; the edge is kept
//     only when the move is a known direction and the neighbor is a node.
//     A repeated direction on one node is kept once.
//  3. start and finish are resolved; an unresolved endpoint is left unset
//     (Start/Finish report false) and is not an error.
//
// Malformed records are dropped silently: the graph is simply sparser.
// Complexity: O(R + M) time and O(N + E) memory for R records with M moves.
func Build(bounds Coord, records []Record, start, finish Coord) *Grid {
	g := &Grid{
		bounds:     bounds,
		nodes:      make([]Node, 0, len(records)),
		index:      make(map[Coord]int, len(records)),
		start:      -1,
		finish:     -1,
		from:       start,
		to:         finish,
		heurTarget: -1,
	}

	// 1) Nodes, in first-seen record order.
	for _, r := range records {
		if !g.InRange(r.At) {
			continue
		}
		if _, ok := g.index[r.At]; ok {
			continue
		}
		id := len(g.nodes)
		g.index[r.At] = id
		g.nodes = append(g.nodes, Node{ID: id, Coord: r.At})
	}

	// 2) Edges. seen[i] is a bitmask of directions already wired on node i.
	seen := make([]uint32, len(g.nodes))
	for _, r := range records {
		from, ok := g.index[r.At]
		if !ok {
			continue
		}
		for _, d := range r.Moves {
			p, ok := movement.Lookup(d)
			if !ok {
				continue
			}
			cost, ok := movement.Classify(p)
			if !ok {
				continue
			}
			to, ok := g.index[r.At.Add(p)]
			if !ok {
				continue
			}
			bit := uint32(1) << d
			if seen[from]&bit != 0 {
				continue
			}
			seen[from] |= bit
			g.nodes[from].Edges = append(g.nodes[from].Edges, Edge{To: to, Cost: cost, Dir: d})
			g.edges++
		}
	}

	// 3) Endpoints.
	if id, ok := g.index[start]; ok {
		g.start = id
	}
	if id, ok := g.index[finish]; ok {
		g.finish = id
	}

	return g
}

// ValidateCoordinate reports whether every component of c is at most the
// corresponding bound. Only the upper bound is checked here; see InRange.
func (g *Grid) ValidateCoordinate(c Coord) bool {
	return c.X <= g.bounds.X && c.Y <= g.bounds.Y && c.Z <= g.bounds.Z
}

// InRange reports whether c may hold a node: it passes ValidateCoordinate
// and has no negative component.
func (g *Grid) InRange(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0 && g.ValidateCoordinate(c)
}

// Bounds returns the declared size in each dimension.
func (g *Grid) Bounds() Coord { return g.bounds }

// Len returns the number of nodes.
func (g *Grid) Len() int { return len(g.nodes) }

// EdgeCount returns the number of directed adjacency entries.
func (g *Grid) EdgeCount() int { return g.edges }

// Index returns the arena index of the node at c.
func (g *Grid) Index(c Coord) (int, bool) {
	id, ok := g.index[c]
	return id, ok
}

// Node returns the node at c, or false if c was never instantiated.
func (g *Grid) Node(c Coord) (*Node, bool) {
	id, ok := g.index[c]
	if !ok {
		return nil, false
	}
	return &g.nodes[id], true
}

// NodeAt returns the node with arena index id. It panics on an index that
// did not come from this Grid, like any out-of-range slice access.
func (g *Grid) NodeAt(id int) *Node {
	return &g.nodes[id]
}

// Nodes returns the node arena in construction order. Callers must not
// modify it.
func (g *Grid) Nodes() []Node { return g.nodes }

// Start returns the start node, if the start coordinate resolved.
func (g *Grid) Start() (*Node, bool) {
	if g.start < 0 {
		return nil, false
	}
	return &g.nodes[g.start], true
}

// Finish returns the finish node, if the finish coordinate resolved.
func (g *Grid) Finish() (*Node, bool) {
	if g.finish < 0 {
		return nil, false
	}
	return &g.nodes[g.finish], true
}

// Endpoints returns the start and finish coordinates passed to Build,
// whether or not they resolved.
func (g *Grid) Endpoints() (start, finish Coord) { return g.from, g.to }

// Connect returns one Record per coordinate in cells listing every move that
// lands on another coordinate of cells. Records follow the order of cells;
// moves follow direction order. Duplicate cells are collapsed.
// Complexity: O(len(cells) · 18).
func Connect(cells []Coord) []Record {
	present := make(map[Coord]struct{}, len(cells))
	for _, c := range cells {
		present[c] = struct{}{}
	}

	records := make([]Record, 0, len(present))
	emitted := make(map[Coord]struct{}, len(present))
	for _, c := range cells {
		if _, dup := emitted[c]; dup {
			continue
		}
		emitted[c] = struct{}{}

		var moves []movement.Direction
		for _, d := range movement.Directions() {
			p, _ := movement.Lookup(d)
			if _, ok := present[c.Add(p)]; ok {
				moves = append(moves, d)
			}
		}
		records = append(records, Record{At: c, Moves: moves})
	}
	return records
}
