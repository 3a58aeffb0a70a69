// Package generator samples random lattice search problems, for fixtures,
// benchmarks and the CLI's generate command.
//
// A problem is drawn by keeping each cell of the bounding box with a fixed
// probability, wiring every pair of kept cells that are one movement apart in
// both directions, and choosing two distinct kept cells as start and finish.
// Sampling needs an RNG: pass WithSeed for reproducible output or WithRand to
// share a source.
package generator
