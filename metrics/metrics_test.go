package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/search"
)

func corridor(finish lattice.Coord) *lattice.Grid {
	cells := []lattice.Coord{{X: 0}, {X: 1}, {X: 2}, {X: 5, Y: 5}}
	return lattice.Build(lattice.Coord{X: 9, Y: 9, Z: 9}, lattice.Connect(cells), lattice.Coord{}, finish)
}

// TestOutcome maps errors onto labels.
func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeFound, Outcome(nil))
	assert.Equal(t, OutcomeNoPath, Outcome(search.ErrNoPath))
	assert.Equal(t, OutcomeUnresolved, Outcome(search.ErrUnresolved))
	assert.Equal(t, OutcomeError, Outcome(context.Canceled))
}

// TestCollector_Solve counts outcomes and observes found paths only.
func TestCollector_Solve(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	res, err := c.Solve(corridor(lattice.Coord{X: 2}), search.StrategyUCS)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Cost)

	_, err = c.Solve(corridor(lattice.Coord{X: 5, Y: 5}), search.StrategyUCS)
	require.ErrorIs(t, err, search.ErrNoPath)

	_, err = c.Solve(corridor(lattice.Coord{X: 7}), search.StrategyBFS)
	require.ErrorIs(t, err, search.ErrUnresolved)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.searches.WithLabelValues("UCS", OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.searches.WithLabelValues("UCS", OutcomeNoPath)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.searches.WithLabelValues("BFS", OutcomeUnresolved)))

	assert.Equal(t, 2, testutil.CollectAndCount(c.duration))
	assert.Equal(t, 1, testutil.CollectAndCount(c.cost))
	assert.Equal(t, 1, testutil.CollectAndCount(c.expanded))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.ElementsMatch(t, []string{
		"latticepath_search_total",
		"latticepath_search_duration_seconds",
		"latticepath_search_expanded_nodes",
		"latticepath_search_path_cost",
	}, names)
}

// TestWriteTextfile writes the exposition format to disk.
func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	_, err := c.Solve(corridor(lattice.Coord{X: 2}), search.StrategyAStar)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "latticepath.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `latticepath_search_total{outcome="found",strategy="A*"} 1`)
}
