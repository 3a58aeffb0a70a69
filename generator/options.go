// SPDX-License-Identifier: MIT
// Package: latticepath/generator
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options mutate genConfig; later options override earlier ones.
//   • WithRand panics on nil. WithDensity does not validate: density is a
//     sampling parameter and Generate reports ErrInvalidDensity.
//   • Defaults are deterministic: no RNG, density 0.3, strategy A*.

package generator

import (
	"math/rand"

	"github.com/katalvlaran/latticepath/search"
)

// Deterministic defaults.
const (
	// DefaultDensity is the probability that a cell becomes a node.
	DefaultDensity = 0.3

	// DefaultStrategy is written into generated problems.
	DefaultStrategy = search.StrategyAStar
)

// genConfig aggregates every generator knob. Passed by value.
type genConfig struct {
	rng       *rand.Rand
	density   float64
	strategy  search.Strategy
	connected bool
}

// Option customizes Generate.
type Option func(*genConfig)

func newConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:      nil,
		density:  DefaultDensity,
		strategy: DefaultStrategy,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed, so equal seeds yield
// equal problems.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithDensity sets the probability that each cell becomes a node.
func WithDensity(p float64) Option {
	return func(c *genConfig) {
		c.density = p
	}
}

// WithStrategy sets the strategy recorded in the generated problem.
// Panics on a strategy ParseStrategy does not know.
func WithStrategy(s search.Strategy) Option {
	parsed, err := search.ParseStrategy(string(s))
	if err != nil {
		panic("generator: WithStrategy(" + string(s) + ")")
	}
	return func(c *genConfig) {
		c.strategy = parsed
	}
}

// WithConnectedEndpoints draws start and finish from the same connected
// group of nodes, so the generated problem always has a path.
func WithConnectedEndpoints() Option {
	return func(c *genConfig) {
		c.connected = true
	}
}
