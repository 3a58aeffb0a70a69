package problem

import (
	"encoding/json"
	"errors"
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/movement"
	"github.com/katalvlaran/latticepath/search"
)

// Document is the structured form of a Problem. sigs.k8s.io/yaml honours the
// json tags, so one type serves both YAML and JSON.
type Document struct {
	Strategy  string     `json:"strategy"`
	Bounds    [3]int     `json:"bounds"`
	Start     [3]int     `json:"start"`
	Finish    [3]int     `json:"finish"`
	Locations []Location `json:"locations"`
}

// Location is one adjacency record of a Document.
type Location struct {
	At    [3]int `json:"at"`
	Moves []int  `json:"moves,omitempty"`
}

// Solution is the structured form of a search outcome.
type Solution struct {
	Strategy string         `json:"strategy"`
	Found    bool           `json:"found"`
	Cost     int            `json:"cost"`
	Length   int            `json:"length"`
	Steps    []SolutionStep `json:"steps,omitempty"`
	Reason   string         `json:"reason,omitempty"`
	Stats    *search.Stats  `json:"stats,omitempty"`
}

// SolutionStep is one path node of a Solution.
type SolutionStep struct {
	At   [3]int `json:"at"`
	Cost int    `json:"cost"`
}

func toArray(c lattice.Coord) [3]int   { return [3]int{c.X, c.Y, c.Z} }
func fromArray(a [3]int) lattice.Coord { return lattice.Coord{X: a[0], Y: a[1], Z: a[2]} }

// documentFields mirrors Document with pointer coordinates so that an
// absent key is told apart from [0, 0, 0].
type documentFields struct {
	Strategy  string     `json:"strategy"`
	Bounds    *[3]int    `json:"bounds"`
	Start     *[3]int    `json:"start"`
	Finish    *[3]int    `json:"finish"`
	Locations []Location `json:"locations"`
}

// DecodeDocument parses a YAML or JSON Document into a Problem.
// bounds, start and finish are required, like the text header.
// Returns an error wrapping ErrMalformed; an unknown strategy additionally
// matches search.ErrUnknownStrategy.
func DecodeDocument(data []byte) (*Problem, error) {
	var raw documentFields
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	for _, f := range []struct {
		name string
		v    *[3]int
	}{{"bounds", raw.Bounds}, {"start", raw.Start}, {"finish", raw.Finish}} {
		if f.v == nil {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformed, f.name)
		}
	}

	doc := Document{
		Strategy:  raw.Strategy,
		Bounds:    *raw.Bounds,
		Start:     *raw.Start,
		Finish:    *raw.Finish,
		Locations: raw.Locations,
	}
	return doc.Problem()
}

// Problem converts d into a Problem.
func (d *Document) Problem() (*Problem, error) {
	strategy, err := search.ParseStrategy(d.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	p := &Problem{
		Strategy: strategy,
		Bounds:   fromArray(d.Bounds),
		Start:    fromArray(d.Start),
		Finish:   fromArray(d.Finish),
		Declared: len(d.Locations),
		Records:  make([]lattice.Record, 0, len(d.Locations)),
	}
	for i, loc := range d.Locations {
		rec := lattice.Record{At: fromArray(loc.At)}
		for _, m := range loc.Moves {
			if m < 0 || m > 255 {
				return nil, fmt.Errorf("%w: location %d: direction %d out of range", ErrMalformed, i, m)
			}
			rec.Moves = append(rec.Moves, movement.Direction(m))
		}
		p.Records = append(p.Records, rec)
	}
	return p, nil
}

// NewDocument converts p into its structured form.
func NewDocument(p *Problem) Document {
	d := Document{
		Strategy:  string(p.Strategy),
		Bounds:    toArray(p.Bounds),
		Start:     toArray(p.Start),
		Finish:    toArray(p.Finish),
		Locations: make([]Location, 0, len(p.Records)),
	}
	for _, r := range p.Records {
		loc := Location{At: toArray(r.At)}
		for _, m := range r.Moves {
			loc.Moves = append(loc.Moves, int(m))
		}
		d.Locations = append(d.Locations, loc)
	}
	return d
}

// NewSolution converts a search outcome into a Solution.
// A failure matching search.ErrFailed becomes Found == false with the error
// text as Reason; any other error is returned unchanged.
func NewSolution(strategy search.Strategy, res *search.Result, err error) (Solution, error) {
	sol := Solution{Strategy: string(strategy)}
	if err != nil {
		if !errors.Is(err, search.ErrFailed) {
			return Solution{}, err
		}
		sol.Reason = err.Error()
		return sol, nil
	}

	stats := res.Stats
	sol.Found = true
	sol.Cost = res.Cost
	sol.Length = res.Length
	sol.Stats = &stats
	sol.Steps = make([]SolutionStep, len(res.Steps))
	for i, s := range res.Steps {
		sol.Steps[i] = SolutionStep{At: toArray(s.Coord), Cost: s.Cost}
	}
	return sol, nil
}

// Marshal encodes v as YAML or indented JSON.
// Returns ErrUnknownFormat for FormatText or any other value.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q has no structured encoding", ErrUnknownFormat, string(f))
	}
}

// MarshalSolution encodes a search outcome in f.
func MarshalSolution(strategy search.Strategy, res *search.Result, err error, f Format) ([]byte, error) {
	sol, err := NewSolution(strategy, res, err)
	if err != nil {
		return nil, err
	}
	return Marshal(sol, f)
}
