package lattice_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/movement"
)

// cube returns every coordinate of an n×n×n block starting at the origin.
func cube(n int) []lattice.Coord {
	cells := make([]lattice.Coord, 0, n*n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				cells = append(cells, lattice.Coord{X: x, Y: y, Z: z})
			}
		}
	}
	return cells
}

// TestBuild_Cube checks node and edge counts of a fully connected 2×2×2 cube.
func TestBuild_Cube(t *testing.T) {
	records := lattice.Connect(cube(2))
	g := lattice.Build(lattice.Coord{X: 2, Y: 2, Z: 2}, records, lattice.Coord{}, lattice.Coord{X: 1, Y: 1, Z: 1})

	require.Equal(t, 8, g.Len())
	// Each corner reaches 3 axis neighbors and 3 face diagonals; the opposite
	// corner is a 3D move and does not exist.
	for _, n := range g.Nodes() {
		assert.Len(t, n.Edges, 6, "node %s", n.Coord)
	}
	assert.Equal(t, 48, g.EdgeCount())

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, lattice.Coord{}, start.Coord)
	finish, ok := g.Finish()
	require.True(t, ok)
	assert.Equal(t, lattice.Coord{X: 1, Y: 1, Z: 1}, finish.Coord)
}

// TestBuild_EdgeCosts verifies costs are classified through the movement model.
func TestBuild_EdgeCosts(t *testing.T) {
	g := lattice.Build(lattice.Coord{X: 2, Y: 2, Z: 2}, lattice.Connect(cube(2)), lattice.Coord{}, lattice.Coord{})
	for _, n := range g.Nodes() {
		for _, e := range n.Edges {
			want, ok := movement.Cost(e.Dir)
			require.True(t, ok)
			assert.Equal(t, want, e.Cost)
			p, _ := movement.Lookup(e.Dir)
			assert.Equal(t, n.Coord.Add(p), g.NodeAt(e.To).Coord)
		}
	}
}

// TestBuild_DropsMalformed covers unknown directions, absent neighbors,
// out-of-range and negative coordinates.
func TestBuild_DropsMalformed(t *testing.T) {
	records := []lattice.Record{
		{At: lattice.Coord{X: 0, Y: 0, Z: 0}, Moves: []movement.Direction{1, 3, 0, 19}},
		{At: lattice.Coord{X: 1, Y: 0, Z: 0}, Moves: []movement.Direction{2, 2, 1}},
		{At: lattice.Coord{X: 9, Y: 0, Z: 0}, Moves: []movement.Direction{2}},
		{At: lattice.Coord{X: -1, Y: 0, Z: 0}, Moves: []movement.Direction{1}},
	}
	g := lattice.Build(lattice.Coord{X: 3, Y: 3, Z: 3}, records, lattice.Coord{}, lattice.Coord{X: 1})

	assert.Equal(t, 2, g.Len(), "only the two in-range cells become nodes")
	_, ok := g.Node(lattice.Coord{X: 9})
	assert.False(t, ok)
	_, ok = g.Node(lattice.Coord{X: -1})
	assert.False(t, ok)

	origin, _ := g.Node(lattice.Coord{})
	require.Len(t, origin.Edges, 1, "+y neighbor is absent, 0 and 19 are unknown")
	assert.Equal(t, movement.Direction(1), origin.Edges[0].Dir)

	east, _ := g.Node(lattice.Coord{X: 1})
	require.Len(t, east.Edges, 1, "repeated direction is wired once, +x leads nowhere")
	assert.Equal(t, movement.Direction(2), east.Edges[0].Dir)
}

// TestBuild_DuplicateRecordsMerge ensures a repeated coordinate maps to one node.
func TestBuild_DuplicateRecordsMerge(t *testing.T) {
	records := []lattice.Record{
		{At: lattice.Coord{}, Moves: []movement.Direction{1}},
		{At: lattice.Coord{X: 1}, Moves: []movement.Direction{2}},
		{At: lattice.Coord{X: 0, Y: 1}, Moves: []movement.Direction{4}},
		{At: lattice.Coord{}, Moves: []movement.Direction{3, 1}},
	}
	g := lattice.Build(lattice.Coord{X: 1, Y: 1, Z: 1}, records, lattice.Coord{}, lattice.Coord{})
	assert.Equal(t, 3, g.Len())
	origin, _ := g.Node(lattice.Coord{})
	assert.Len(t, origin.Edges, 2)
}

// TestBuild_UnresolvedEndpoints leaves start/finish unset instead of failing.
func TestBuild_UnresolvedEndpoints(t *testing.T) {
	g := lattice.Build(lattice.Coord{X: 2, Y: 2, Z: 2}, lattice.Connect(cube(2)),
		lattice.Coord{X: 5, Y: 5, Z: 5}, lattice.Coord{X: -1})
	_, ok := g.Start()
	assert.False(t, ok)
	_, ok = g.Finish()
	assert.False(t, ok)

	from, to := g.Endpoints()
	assert.Equal(t, lattice.Coord{X: 5, Y: 5, Z: 5}, from)
	assert.Equal(t, lattice.Coord{X: -1}, to)
}

// TestHeuristic_LongDiagonalOvershoot pins the rounding margin on a run of
// four planar diagonals.
func TestHeuristic_LongDiagonalOvershoot(t *testing.T) {
	a, b := lattice.Coord{}, lattice.Coord{X: 4, Y: 4}
	assert.Equal(t, 56, octileCost(a, b))
	assert.Equal(t, 57, lattice.Estimate(a, b))
}

// TestValidateCoordinate checks the upper-bound rule and InRange's lower bound.
func TestValidateCoordinate(t *testing.T) {
	g := lattice.Build(lattice.Coord{X: 10, Y: 10, Z: 10}, nil, lattice.Coord{}, lattice.Coord{})
	cases := []struct {
		c       lattice.Coord
		valid   bool
		inRange bool
	}{
		{lattice.Coord{X: 0, Y: 0, Z: 0}, true, true},
		{lattice.Coord{X: 10, Y: 10, Z: 10}, true, true},
		{lattice.Coord{X: 11, Y: 0, Z: 0}, false, false},
		{lattice.Coord{X: 0, Y: 0, Z: 11}, false, false},
		{lattice.Coord{X: -3, Y: 0, Z: 0}, true, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, g.ValidateCoordinate(tc.c), "validate %s", tc.c)
		assert.Equal(t, tc.inRange, g.InRange(tc.c), "in range %s", tc.c)
	}
}

// TestConnect_Line checks direction order and symmetric records.
func TestConnect_Line(t *testing.T) {
	records := lattice.Connect([]lattice.Coord{{}, {X: 1}, {X: 1}})
	require.Len(t, records, 2)
	assert.Equal(t, []movement.Direction{1}, records[0].Moves)
	assert.Equal(t, []movement.Direction{2}, records[1].Moves)
}

// TestHeuristic_Values checks the scaled straight-line values and the zero at finish.
func TestHeuristic_Values(t *testing.T) {
	finish := lattice.Coord{X: 1, Y: 1, Z: 1}
	g := lattice.Build(lattice.Coord{X: 2, Y: 2, Z: 2}, lattice.Connect(cube(2)), lattice.Coord{}, finish)

	_, ok := g.Heuristic(finish)
	require.False(t, ok, "no table before ComputeHeuristic")
	_, _, err := g.HeuristicTable()
	require.ErrorIs(t, err, lattice.ErrHeuristicNotComputed)

	require.NoError(t, g.ComputeHeuristic(finish))

	want := map[lattice.Coord]int{
		{X: 1, Y: 1, Z: 1}: 0,
		{X: 0, Y: 1, Z: 1}: 10,
		{X: 0, Y: 0, Z: 1}: 14, // round(sqrt(200)) = 14
		{X: 0, Y: 0, Z: 0}: 17, // round(sqrt(300)) = 17
	}
	for c, h := range want {
		got, ok := g.Heuristic(c)
		require.True(t, ok)
		assert.Equal(t, h, got, "h(%s)", c)
	}

	target, ok := g.HeuristicTarget()
	require.True(t, ok)
	assert.Equal(t, finish, target)
}

// TestHeuristic_Idempotent recomputes the table and compares snapshots.
func TestHeuristic_Idempotent(t *testing.T) {
	finish := lattice.Coord{X: 2, Y: 0, Z: 1}
	g := lattice.Build(lattice.Coord{X: 3, Y: 3, Z: 3}, lattice.Connect(cube(3)), lattice.Coord{}, finish)

	require.NoError(t, g.ComputeHeuristic(finish))
	first, _, err := g.HeuristicTable()
	require.NoError(t, err)
	require.NoError(t, g.ComputeHeuristic(finish))
	second, _, err := g.HeuristicTable()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestHeuristic_Admissible checks the estimate never exceeds the 10/14 lattice
// cost of the cheapest move sequence for per-axis deltas of at most 3.
func TestHeuristic_Admissible(t *testing.T) {
	for _, a := range cube(4) {
		for _, b := range cube(4) {
			assert.LessOrEqual(t, lattice.Estimate(a, b), octileCost(a, b), "%s → %s", a, b)
		}
	}
}

// octileCost is the exact cost of an unobstructed lattice walk with planar
// diagonals: pair off the two largest deltas with diagonals while possible.
func octileCost(a, b lattice.Coord) int {
	d := []int{abs(a.X - b.X), abs(a.Y - b.Y), abs(a.Z - b.Z)}
	cost := 0
	for {
		// sort descending
		if d[0] < d[1] {
			d[0], d[1] = d[1], d[0]
		}
		if d[1] < d[2] {
			d[1], d[2] = d[2], d[1]
		}
		if d[0] < d[1] {
			d[0], d[1] = d[1], d[0]
		}
		if d[1] == 0 {
			return cost + d[0]*movement.AxisCost
		}
		d[0]--
		d[1]--
		cost += movement.DiagonalCost
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TestComputeHeuristic_MissingFinish returns the sentinel instead of panicking.
func TestComputeHeuristic_MissingFinish(t *testing.T) {
	g := lattice.Build(lattice.Coord{X: 1, Y: 1, Z: 1}, lattice.Connect(cube(2)), lattice.Coord{}, lattice.Coord{})
	err := g.ComputeHeuristic(lattice.Coord{X: 7})
	require.Error(t, err)
	assert.True(t, errors.Is(err, lattice.ErrFinishNotFound))
}

// TestHeuristic_ConcurrentReaders exercises the RWMutex with parallel readers
// while the table is being recomputed.
func TestHeuristic_ConcurrentReaders(t *testing.T) {
	finish := lattice.Coord{X: 2, Y: 2, Z: 2}
	g := lattice.Build(lattice.Coord{X: 3, Y: 3, Z: 3}, lattice.Connect(cube(3)), lattice.Coord{}, finish)
	require.NoError(t, g.ComputeHeuristic(finish))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h, ok := g.Heuristic(lattice.Coord{})
				if !ok || h != 35 { // round(sqrt(1200)) = 35
					t.Errorf("h(origin) = %d, %v", h, ok)
					return
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, g.ComputeHeuristic(finish))
	}
	wg.Wait()
}

// TestComponents splits two separated blocks and keeps isolated cells apart.
func TestComponents(t *testing.T) {
	cells := append(cube(2), lattice.Coord{X: 5, Y: 5, Z: 5}, lattice.Coord{X: 5, Y: 5, Z: 6}, lattice.Coord{X: 8})
	g := lattice.Build(lattice.Coord{X: 9, Y: 9, Z: 9}, lattice.Connect(cells), lattice.Coord{}, lattice.Coord{})

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.Len(t, comps[0], 8)
	assert.Len(t, comps[1], 2)
	assert.Len(t, comps[2], 1)

	total := 0
	for _, c := range comps {
		total += len(c)
	}
	assert.Equal(t, g.Len(), total)
}

// TestComponents_OneWay joins nodes linked by a single directed edge.
func TestComponents_OneWay(t *testing.T) {
	records := []lattice.Record{
		{At: lattice.Coord{X: 1}, Moves: []movement.Direction{2}},
		{At: lattice.Coord{X: 0}},
	}
	g := lattice.Build(lattice.Coord{X: 3, Y: 3, Z: 3}, records, lattice.Coord{}, lattice.Coord{})
	require.Len(t, g.Components(), 1)
}
