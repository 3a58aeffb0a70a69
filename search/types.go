package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/latticepath/lattice"
)

// Sentinel errors for search execution.
var (
	// ErrFailed is matched by every "no solution" outcome.
	ErrFailed = errors.New("search: no solution")

	// ErrNoPath indicates the frontier was exhausted without reaching finish.
	ErrNoPath = fmt.Errorf("%w: finish is unreachable from start", ErrFailed)

	// ErrUnresolved indicates start or finish did not resolve to a node.
	ErrUnresolved = fmt.Errorf("%w: endpoint is not a node", ErrFailed)

	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownStrategy is returned for an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrHeuristicMismatch indicates the grid's heuristic table was computed
	// towards a different node than the grid's finish.
	ErrHeuristicMismatch = errors.New("search: heuristic computed for another finish")

	// ErrInvalidResult is returned by Result.Validate.
	ErrInvalidResult = errors.New("search: invalid result")
)

// Strategy selects a search algorithm.
type Strategy string

const (
	// StrategyBFS is breadth-first search (fewest hops).
	StrategyBFS Strategy = "BFS"
	// StrategyUCS is uniform-cost search.
	StrategyUCS Strategy = "UCS"
	// StrategyAStar is A* search with the straight-line heuristic.
	StrategyAStar Strategy = "A*"
)

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyBFS, StrategyUCS, StrategyAStar}
}

// ParseStrategy converts a name into a Strategy. Matching is
// case-insensitive and also accepts "ASTAR" for A*.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BFS":
		return StrategyBFS, nil
	case "UCS":
		return StrategyUCS, nil
	case "A*", "ASTAR":
		return StrategyAStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Step is one node on a solution path with the cost of the edge used to
// reach it from the previous step (0 for the first step).
type Step struct {
	Coord lattice.Coord
	Cost  int
}

// Stats counts the work a search performed.
type Stats struct {
	Pops         int `json:"pops"`         // nodes removed from the frontier
	Pushes       int `json:"pushes"`       // nodes inserted into the frontier
	DecreaseKeys int `json:"decreaseKeys"` // successful frontier key decreases
	Relaxations  int `json:"relaxations"`  // adjacency entries examined
	Explored     int `json:"explored"`     // nodes finalized
}

// Result is a successful search outcome.
//   - Cost:   sum of step costs (hop count for BFS).
//   - Length: number of nodes on the path, ≥ 1.
//   - Steps:  path from start to finish inclusive.
type Result struct {
	Strategy Strategy
	Cost     int
	Length   int
	Steps    []Step
	Stats    Stats
}

// Path returns the coordinates of Steps.
func (r *Result) Path() []lattice.Coord {
	out := make([]lattice.Coord, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Coord
	}
	return out
}

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per expanded node.
	Ctx context.Context

	// OnExpand is called when a node is taken off the frontier, with its
	// accumulated cost (hop depth for BFS).
	OnExpand func(at lattice.Coord, cost int)

	// OnReveal is called when a node is discovered for the first time.
	OnReveal func(at, from lattice.Coord, cost int)
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(lattice.Coord, int) {},
		OnReveal: func(lattice.Coord, lattice.Coord, int) {},
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run when a node leaves the frontier.
func WithOnExpand(fn func(at lattice.Coord, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnReveal registers a callback run when a node is first discovered.
func WithOnReveal(fn func(at, from lattice.Coord, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReveal = fn
		}
	}
}
