package problem_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/movement"
	"github.com/katalvlaran/latticepath/problem"
	"github.com/katalvlaran/latticepath/search"
)

// corridor is three cells along +x, wired both ways.
const corridor = `UCS
9 9 9
0 0 0
2 0 0
3
0 0 0 1
1 0 0 1 2
2 0 0 2`

func withStrategy(input, s string) string {
	return s + input[strings.IndexByte(input, '\n'):]
}

func solveText(t *testing.T, input string) string {
	t.Helper()
	p, err := problem.Decode(strings.NewReader(input))
	require.NoError(t, err)
	res, err := p.Solve()
	var out bytes.Buffer
	require.NoError(t, problem.WriteSolution(&out, res, err))
	return out.String()
}

// TestDecode reads every header field and record.
func TestDecode(t *testing.T) {
	p, err := problem.Decode(strings.NewReader(corridor))
	require.NoError(t, err)

	assert.Equal(t, search.StrategyUCS, p.Strategy)
	assert.Equal(t, lattice.Coord{X: 9, Y: 9, Z: 9}, p.Bounds)
	assert.Equal(t, lattice.Coord{}, p.Start)
	assert.Equal(t, lattice.Coord{X: 2}, p.Finish)
	assert.Equal(t, 3, p.Declared)
	require.Len(t, p.Records, 3)
	assert.Equal(t, lattice.Record{
		At:    lattice.Coord{X: 1},
		Moves: []movement.Direction{1, 2},
	}, p.Records[1])
}

// TestDecode_Lenient accepts blank lines, CRLF and repeated spaces.
func TestDecode_Lenient(t *testing.T) {
	in := "\r\nA*\r\n9  9 9\r\n\r\n0 0 0\r\n2 0 0\r\n3\r\n0 0 0 1\r\n1 0 0 1 2\r\n2 0 0 2\r\n\r\n"
	p, err := problem.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, search.StrategyAStar, p.Strategy)
	assert.Len(t, p.Records, 3)
}

// TestDecode_Malformed reports the offending line.
func TestDecode_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line string
	}{
		{"short bounds", "UCS\n9 9\n0 0 0\n1 0 0\n0", "line 2"},
		{"letters in start", "UCS\n9 9 9\na 0 0\n1 0 0\n0", "line 3"},
		{"bad count", "UCS\n9 9 9\n0 0 0\n1 0 0\nmany", "line 5"},
		{"short record", "UCS\n9 9 9\n0 0 0\n1 0 0\n1\n0 0", "line 6"},
		{"huge direction", "UCS\n9 9 9\n0 0 0\n1 0 0\n1\n0 0 0 999", "line 6"},
		{"truncated header", "UCS\n9 9 9\n0 0 0", "header"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problem.Decode(strings.NewReader(tc.in))
			require.ErrorIs(t, err, problem.ErrMalformed)
			assert.Contains(t, err.Error(), tc.line)
		})
	}

	_, err := problem.Decode(strings.NewReader(withStrategy(corridor, "DFS")))
	assert.ErrorIs(t, err, problem.ErrMalformed)
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

// TestDecode_UnknownDirectionDropped keeps the record; the grid ignores the move.
func TestDecode_UnknownDirectionDropped(t *testing.T) {
	in := "BFS\n9 9 9\n0 0 0\n1 0 0\n2\n0 0 0 42 1\n1 0 0 0 2"
	p, err := problem.Decode(strings.NewReader(in))
	require.NoError(t, err)
	g := p.Grid()
	assert.Equal(t, 2, g.EdgeCount())
}

// TestSolutions checks the text answers for all strategies.
func TestSolutions(t *testing.T) {
	weighted := "20\n3\n0 0 0 0\n1 0 0 10\n2 0 0 10"
	assert.Equal(t, weighted, solveText(t, corridor))
	assert.Equal(t, weighted, solveText(t, withStrategy(corridor, "A*")))
	assert.Equal(t, "2\n3\n0 0 0 0\n1 0 0 1\n2 0 0 1", solveText(t, withStrategy(corridor, "BFS")))
}

// TestSolutions_Degenerate answers start == finish with a single step.
func TestSolutions_Degenerate(t *testing.T) {
	in := "A*\n9 9 9\n1 0 0\n1 0 0\n3\n0 0 0 1\n1 0 0 1 2\n2 0 0 2"
	assert.Equal(t, "0\n1\n1 0 0 0", solveText(t, in))
}

// TestSolutions_Fail collapses every failure to FAIL.
func TestSolutions_Fail(t *testing.T) {
	noPath := "UCS\n9 9 9\n0 0 0\n2 0 0\n2\n0 0 0\n2 0 0"
	assert.Equal(t, "FAIL", solveText(t, noPath))

	missingStart := "BFS\n9 9 9\n5 5 5\n2 0 0\n3\n0 0 0 1\n1 0 0 1 2\n2 0 0 2"
	assert.Equal(t, "FAIL", solveText(t, missingStart))

	outOfBounds := "A*\n1 1 1\n0 0 0\n2 0 0\n3\n0 0 0 1\n1 0 0 1 2\n2 0 0 2"
	assert.Equal(t, "FAIL", solveText(t, outOfBounds))
}

// TestWriteSolution_PassesOtherErrors does not turn cancellation into FAIL.
func TestWriteSolution_PassesOtherErrors(t *testing.T) {
	var out bytes.Buffer
	err := problem.WriteSolution(&out, nil, context.Canceled)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, out.Len())
}

// TestEncode writes the text format that Decode reads back.
func TestEncode(t *testing.T) {
	p, err := problem.Decode(strings.NewReader(corridor))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, problem.Encode(&buf, p))
	assert.Equal(t, corridor, buf.String())
}

// TestParseFormat maps names and rejects unknown ones.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]problem.Format{
		"": problem.FormatText, "TEXT": problem.FormatText,
		"yaml": problem.FormatYAML, "yml": problem.FormatYAML,
		"json": problem.FormatJSON,
	} {
		got, err := problem.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := problem.ParseFormat("xml")
	assert.ErrorIs(t, err, problem.ErrUnknownFormat)
}
