// SPDX-License-Identifier: MIT
// Package: peelmis/counter
//
// env.go - run-wide tuning shared by every counter of one run.

package counter

import "fmt"

const (
	// DefaultShardThreshold keeps small counters in a single shard.
	DefaultShardThreshold int64 = 10
	// DefaultApproxThreshold is the value at or below which the approximate
	// counter is exact.
	DefaultApproxThreshold int64 = 10
	// DefaultApproxSkipBits gives a 1/2 hit probability and a step of 2.
	DefaultApproxSkipBits uint = 1
	// DefaultFunnelBatch is the private slot depth before a flush.
	DefaultFunnelBatch int64 = 64

	maxApproxSkipBits = 16
)

// Env carries the knobs shared by all counters of one run. It is read-only
// once counters are initialised.
type Env struct {
	// Workers is the pool size; funnel slots are indexed by worker id.
	Workers int

	ShardThreshold   int64
	ApproxThreshold  int64
	ApproxSkipBits   uint
	FunnelBatch      int64
	DynamicInner     Kind
	DynamicHubDegree int64 // 0 disables hub routing
}

// Option configures an Env.
type Option func(*Env)

// NewEnv returns an Env for a pool of the given size with defaults applied.
func NewEnv(workers int, opts ...Option) *Env {
	e := &Env{
		Workers:         max(workers, 1),
		ShardThreshold:  DefaultShardThreshold,
		ApproxThreshold: DefaultApproxThreshold,
		ApproxSkipBits:  DefaultApproxSkipBits,
		FunnelBatch:     DefaultFunnelBatch,
		DynamicInner:    KindAtomic,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Exact reports whether counters of kind k built from e lose no decrements.
func (e *Env) Exact(k Kind) bool {
	if k == KindDynamic {
		return e.DynamicInner.Exact()
	}
	return k.Exact()
}

// WithShardThreshold sets the largest initial value kept in a single shard.
// Panics if t < 0.
func WithShardThreshold(t int64) Option {
	if t < 0 {
		panic(fmt.Sprintf("counter: WithShardThreshold(%d): negative", t))
	}
	return func(e *Env) { e.ShardThreshold = t }
}

// WithApproxThreshold sets the value at or below which the approximate
// counter is exact. Panics if t < 0.
func WithApproxThreshold(t int64) Option {
	if t < 0 {
		panic(fmt.Sprintf("counter: WithApproxThreshold(%d): negative", t))
	}
	return func(e *Env) { e.ApproxThreshold = t }
}

// WithApproxSkipBits sets the skip exponent: above the threshold a decrement
// lands with probability 2^-bits and subtracts 2^bits. 0 makes the
// approximate counter exact. Panics if bits > 16.
func WithApproxSkipBits(bits uint) Option {
	if bits > maxApproxSkipBits {
		panic(fmt.Sprintf("counter: WithApproxSkipBits(%d): above %d", bits, maxApproxSkipBits))
	}
	return func(e *Env) { e.ApproxSkipBits = bits }
}

// WithFunnelBatch sets the private slot depth. Panics if b < 1.
func WithFunnelBatch(b int64) Option {
	if b < 1 {
		panic(fmt.Sprintf("counter: WithFunnelBatch(%d): must be >= 1", b))
	}
	return func(e *Env) { e.FunnelBatch = b }
}

// WithDynamicInner selects the strategy wrapped by dynamic counters.
// Panics on KindDynamic or an unknown kind.
func WithDynamicInner(k Kind) Option {
	if !k.Valid() || k == KindDynamic {
		panic(fmt.Sprintf("counter: WithDynamicInner(%s): not a concrete strategy", k))
	}
	return func(e *Env) { e.DynamicInner = k }
}

// WithDynamicHubDegree routes dynamic counters whose initial value exceeds d
// to the funnel strategy. d == 0 disables routing. Panics if d < 0.
func WithDynamicHubDegree(d int64) Option {
	if d < 0 {
		panic(fmt.Sprintf("counter: WithDynamicHubDegree(%d): negative", d))
	}
	return func(e *Env) { e.DynamicHubDegree = d }
}
