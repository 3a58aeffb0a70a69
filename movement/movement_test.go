package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepath/movement"
)

// TestLookup_RoundTrip checks Lookup and DirectionOf agree for every direction.
func TestLookup_RoundTrip(t *testing.T) {
	for _, d := range movement.Directions() {
		p, ok := movement.Lookup(d)
		require.True(t, ok, "direction %s", d)
		back, ok := movement.DirectionOf(p)
		require.True(t, ok)
		assert.Equal(t, d, back)
	}
	assert.Len(t, movement.Directions(), movement.Count)
}

// TestCost_AxisAndDiagonal verifies the 6 axis moves cost 10 and the 12 diagonals 14.
func TestCost_AxisAndDiagonal(t *testing.T) {
	axis, diag := 0, 0
	for _, d := range movement.Directions() {
		c, ok := movement.Cost(d)
		require.True(t, ok)
		switch c {
		case movement.AxisCost:
			axis++
			assert.LessOrEqual(t, uint8(d), uint8(6), "axis moves occupy ids 1..6")
		case movement.DiagonalCost:
			diag++
			assert.Greater(t, uint8(d), uint8(6), "diagonal moves occupy ids 7..18")
		default:
			t.Fatalf("unexpected cost %d for %s", c, d)
		}
	}
	assert.Equal(t, 6, axis)
	assert.Equal(t, 12, diag)
}

// TestInvalidDirections covers the zero value and ids past the table.
func TestInvalidDirections(t *testing.T) {
	for _, d := range []movement.Direction{0, 19, 255} {
		assert.False(t, d.Valid())
		_, ok := movement.Lookup(d)
		assert.False(t, ok)
		_, ok = movement.Cost(d)
		assert.False(t, ok)
		assert.Equal(t, movement.Direction(0), d.Opposite())
	}
}

// TestClassify_Rejects ensures corner moves, zero and long moves have no cost.
func TestClassify_Rejects(t *testing.T) {
	for _, p := range []movement.Displacement{
		{0, 0, 0},
		{1, 1, 1},
		{-1, 1, -1},
		{2, 0, 0},
	} {
		_, ok := movement.Classify(p)
		assert.False(t, ok, "%+v", p)
	}
}

// TestOpposite checks that every direction has a distinct reverse move.
func TestOpposite(t *testing.T) {
	for _, d := range movement.Directions() {
		o := d.Opposite()
		require.True(t, o.Valid())
		assert.NotEqual(t, d, o)
		assert.Equal(t, d, o.Opposite())

		p, _ := movement.Lookup(d)
		q, _ := movement.Lookup(o)
		assert.Equal(t, p.Negate(), q)

		cd, _ := movement.Cost(d)
		co, _ := movement.Cost(o)
		assert.Equal(t, cd, co, "a move and its reverse cost the same")
	}
}
