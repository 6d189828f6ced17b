// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Path: n=1 < min=2: ...").

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the graph rejected a mutation or a nil
// constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
