// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic constructors; nil means none were requested.
	rng *rand.Rand
}

// newBuilderConfig applies options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
