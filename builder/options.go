// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// options.go - functional options. Option constructors panic on
// meaningless input; constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithRand supplies the generator for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a fresh generator from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
