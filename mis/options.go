// SPDX-License-Identifier: MIT
// Package: peelmis/mis
//
// options.go - functional options for Run. Option constructors panic on
// meaningless values; Run itself returns errors.

package mis

import (
	"fmt"

	"github.com/katalvlaran/peelmis/counter"
	"github.com/katalvlaran/peelmis/parallel"
)

// Option configures Run.
type Option func(*config)

type config struct {
	kind        counter.Kind
	workers     int
	pool        *parallel.Pool
	counterOpts []counter.Option
	grain       int
	workerSeed  uint64
}

func newConfig(opts ...Option) config {
	cfg := config{kind: counter.KindAtomic, workerSeed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCounter selects the counter strategy (default counter.KindAtomic).
func WithCounter(k counter.Kind) Option {
	if !k.Valid() {
		panic(fmt.Sprintf("mis: WithCounter(%s): unknown kind", k))
	}
	return func(c *config) { c.kind = k }
}

// WithWorkers sets the size of the pool Run creates; 0 means GOMAXPROCS.
// Ignored when WithPool is given.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("mis: WithWorkers(%d): negative", n))
	}
	return func(c *config) { c.workers = n }
}

// WithPool runs on an existing pool, which Run does not close.
func WithPool(p *parallel.Pool) Option {
	if p == nil {
		panic("mis: WithPool(nil)")
	}
	return func(c *config) { c.pool = p }
}

// WithCounterOptions forwards tuning to counter.NewEnv.
func WithCounterOptions(opts ...counter.Option) Option {
	return func(c *config) { c.counterOpts = append(c.counterOpts, opts...) }
}

// WithGrain fixes the chunk size of every parallel loop; 0 picks one
// automatically.
func WithGrain(g int) Option {
	if g < 0 {
		panic(fmt.Sprintf("mis: WithGrain(%d): negative", g))
	}
	return func(c *config) { c.grain = g }
}

// WithWorkerSeed seeds the per-worker generators of the pool Run creates.
func WithWorkerSeed(seed uint64) Option {
	return func(c *config) { c.workerSeed = seed }
}
