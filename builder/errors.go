// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; call sites attach the method tag with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree) below
// the constructor's minimum, or an impossible degree sequence.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates exhausted retries or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
