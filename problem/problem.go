// Package problem reads and writes lattice search problems and their
// solutions.
//
// Two encodings are supported:
//
//   - the line-oriented text format (Decode / Encode / WriteSolution):
//
//     <strategy>            BFS | UCS | A*
//     <bx> <by> <bz>        bounds
//     <sx> <sy> <sz>        start
//     <fx> <fy> <fz>        finish
//     <n>                   declared location count
//     <x> <y> <z> <d>...    one line per location, d in 1..18
//
//     A solution is "FAIL", or the cost, the path length and one
//     "<x> <y> <z> <step cost>" line per path node.
//
//   - structured documents (Document / Solution) in YAML or JSON, used by the
//     HTTP server and the CLI's --format flag.
package problem

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/search"
)

// Sentinel errors for problem decoding.
var (
	// ErrMalformed indicates input that does not follow the format.
	ErrMalformed = errors.New("problem: malformed input")

	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("problem: unknown format")
)

// Problem is one decoded search problem.
type Problem struct {
	Strategy search.Strategy
	Bounds   lattice.Coord
	Start    lattice.Coord
	Finish   lattice.Coord
	Declared int // location count as stated by the input; informational
	Records  []lattice.Record
}

// Grid builds the lattice described by p.
func (p *Problem) Grid() *lattice.Grid {
	return lattice.Build(p.Bounds, p.Records, p.Start, p.Finish)
}

// Solve builds the grid and runs p.Strategy on it.
func (p *Problem) Solve(opts ...search.Option) (*search.Result, error) {
	return search.Solve(p.Grid(), p.Strategy, opts...)
}

// Format names a solution encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a name into a Format. The empty string means text.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
