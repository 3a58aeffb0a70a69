// SPDX-License-Identifier: MIT
// Package: latticepath/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (bounds, density) is attached with %w at the return site.
//   • Generate never panics; option constructors may.

package generator

import "errors"

// ErrBadBounds indicates a non-positive bound in some dimension.
var ErrBadBounds = errors.New("generator: bounds must be positive")

// ErrInvalidDensity indicates a cell density outside the closed interval [0,1].
var ErrInvalidDensity = errors.New("generator: density out of range")

// ErrNeedRandSource indicates stochastic sampling without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrTooFewNodes indicates fewer than two cells were sampled, so distinct
// start and finish cells cannot be chosen.
var ErrTooFewNodes = errors.New("generator: fewer than two nodes sampled")
