// SPDX-License-Identifier: MIT
// Package: peelmis/counter
//
// dynamic.go - strategy chosen at construction behind the Counter interface.

package counter

import "github.com/katalvlaran/peelmis/parallel"

// Dynamic forwards every call through the Counter interface to a strategy
// picked by Init from the Env.
type Dynamic struct {
	inner Counter
}

// Init builds the inner counter: Env.DynamicInner, or the funnel when
// Env.DynamicHubDegree is set and initial exceeds it.
func (d *Dynamic) Init(initial int64, env *Env) {
	k := env.DynamicInner
	if env.DynamicHubDegree > 0 && initial > env.DynamicHubDegree {
		k = KindFunnel
	}
	d.inner = newCounter(k, initial, env)
}

// Inner exposes the wrapped counter.
func (d *Dynamic) Inner() Counter { return d.inner }

// Decrement forwards to the inner counter.
func (d *Dynamic) Decrement(w *parallel.Worker) bool { return d.inner.Decrement(w) }

// IsZero forwards to the inner counter.
func (d *Dynamic) IsZero() bool { return d.inner.IsZero() }

// NotZero forwards to the inner counter.
func (d *Dynamic) NotZero() bool { return d.inner.NotZero() }

// TryForceZero forwards to the inner counter.
func (d *Dynamic) TryForceZero() bool { return d.inner.TryForceZero() }

// Value forwards to the inner counter.
func (d *Dynamic) Value() int64 { return d.inner.Value() }
