// Package latticepath finds shortest paths on sparse, irregular 3D lattices.
//
// A lattice is a set of occupied integer cells. From each cell a path may
// move along one axis (cost 10) or along a planar diagonal (cost 14); there
// are 18 moves in all and no space diagonals. Which moves a cell allows is
// part of the input, so walls and one-way links are expressed by omission.
//
// Three interchangeable strategies are offered:
//
//	BFS  fewest hops, every step counted as 1
//	UCS  cheapest path by movement cost
//	A*   cheapest path guided by the straight-line distance to the finish
//
// Layout:
//
//	movement/   the 18 moves, their displacements and costs
//	lattice/    Grid: node arena, adjacency, bounds, heuristic table, components
//	frontier/   FIFO queue and indexed min-heap with decrease-key
//	search/     BFS, UCS, A*, Solve and result validation
//	problem/    text and YAML/JSON codecs for problems and answers
//	generator/  seeded random problems
//	metrics/    Prometheus instrumentation of searches
//	server/     HTTP API (gorilla/mux)
//	cmd/latticepath/  CLI: solve, generate, serve
//
// Quick example (2×2×2 block, one face diagonal):
//
//	(0,0,0) ──14── (1,1,0)
//
//	g := lattice.Build(bounds, lattice.Connect(cells), lattice.Coord{}, lattice.Coord{X: 1, Y: 1})
//	res, err := search.Solve(g, search.StrategyUCS)
//	// res.Cost == 14, res.Length == 2
//
// Every "no answer" outcome matches search.ErrFailed and is written as FAIL
// by the text codec.
package latticepath
