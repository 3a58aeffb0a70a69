package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/latticepath/lattice"
	"github.com/katalvlaran/latticepath/movement"
	"github.com/katalvlaran/latticepath/search"
)

// failLine is the whole text output of a failed search.
const failLine = "FAIL"

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Decode parses the text problem format from r.
//
// Blank lines are skipped and fields may be separated by any run of
// whitespace. Direction values are passed through unchecked as long as they
// fit a byte; unknown directions are dropped later by lattice.Build, like
// any other malformed adjacency.
//
// Returns an error wrapping ErrMalformed with the 1-based line number.
func Decode(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	p := &Problem{}
	header := 0
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch header {
		case 0:
			p.Strategy, err = search.ParseStrategy(strings.Join(fields, " "))
		case 1:
			p.Bounds, err = parseCoord(fields)
		case 2:
			p.Start, err = parseCoord(fields)
		case 3:
			p.Finish, err = parseCoord(fields)
		case 4:
			p.Declared, err = parseCount(fields)
		default:
			var rec lattice.Record
			if rec, err = parseRecord(fields); err == nil {
				p.Records = append(p.Records, rec)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}
		header++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo+1, err)
	}
	if header < 5 {
		return nil, fmt.Errorf("%w: header has %d of 5 lines", ErrMalformed, header)
	}
	return p, nil
}

func parseCoord(fields []string) (lattice.Coord, error) {
	if len(fields) != 3 {
		return lattice.Coord{}, fmt.Errorf("want 3 integers, got %d fields", len(fields))
	}
	v, err := atoiAll(fields)
	if err != nil {
		return lattice.Coord{}, err
	}
	return lattice.Coord{X: v[0], Y: v[1], Z: v[2]}, nil
}

func parseCount(fields []string) (int, error) {
	if len(fields) != 1 {
		return 0, fmt.Errorf("want a location count, got %d fields", len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative location count")
	}
	return n, nil
}

func parseRecord(fields []string) (lattice.Record, error) {
	if len(fields) < 3 {
		return lattice.Record{}, fmt.Errorf("want x y z [directions...], got %d fields", len(fields))
	}
	v, err := atoiAll(fields)
	if err != nil {
		return lattice.Record{}, err
	}
	rec := lattice.Record{At: lattice.Coord{X: v[0], Y: v[1], Z: v[2]}}
	if len(v) > 3 {
		rec.Moves = make([]movement.Direction, 0, len(v)-3)
	}
	for _, d := range v[3:] {
		if d < 0 || d > 255 {
			return lattice.Record{}, fmt.Errorf("direction %d out of range", d)
		}
		rec.Moves = append(rec.Moves, movement.Direction(d))
	}
	return rec, nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// Encode writes p in the text format. Lines are separated by "\n" with no
// trailing newline. When p.Declared is zero the number of records is written.
func Encode(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	declared := p.Declared
	if declared == 0 {
		declared = len(p.Records)
	}

	lines := []string{
		string(p.Strategy),
		p.Bounds.String(),
		p.Start.String(),
		p.Finish.String(),
		strconv.Itoa(declared),
	}
	for i, l := range lines {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteString(l)
	}
	for _, r := range p.Records {
		bw.WriteByte('\n')
		bw.WriteString(r.At.String())
		for _, d := range r.Moves {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(int(d)))
		}
	}
	return bw.Flush()
}

// WriteSolution writes the text answer for a search outcome.
//
//   - res != nil: cost, length, then "x y z c" per step.
//   - err matches search.ErrFailed: "FAIL".
//   - any other err is returned unchanged and nothing is written.
func WriteSolution(w io.Writer, res *search.Result, err error) error {
	if err != nil {
		if errors.Is(err, search.ErrFailed) {
			_, werr := io.WriteString(w, failLine)
			return werr
		}
		return err
	}
	if res == nil {
		_, werr := io.WriteString(w, failLine)
		return werr
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(res.Cost))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(res.Length))
	for _, s := range res.Steps {
		bw.WriteByte('\n')
		bw.WriteString(s.Coord.String())
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(s.Cost))
	}
	return bw.Flush()
}
