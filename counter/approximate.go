// SPDX-License-Identifier: MIT
// Package: peelmis/counter
//
// approximate.go - threshold counter with probabilistic decrements.

package counter

import (
	"sync/atomic"

	"github.com/katalvlaran/peelmis/parallel"
)

// Approximate is exact at or below Env.ApproxThreshold. Above it, each
// decrement lands with probability 2^-bits and then subtracts 2^bits, never
// going below the threshold, so the expected rate matches an exact counter
// while far fewer calls touch the shared word.
type Approximate struct {
	v   atomic.Int64
	env *Env
}

// Init sets the starting value and remembers the tuning.
func (a *Approximate) Init(initial int64, env *Env) {
	a.v.Store(initial)
	a.env = env
}

// Decrement flips the worker's coin above the threshold. A nil worker
// always takes the exact path.
func (a *Approximate) Decrement(w *parallel.Worker) bool {
	th, bits := a.env.ApproxThreshold, a.env.ApproxSkipBits
	skipping := w != nil && bits > 0

	v := a.v.Load()
	if skipping && v > th {
		if w.Rand()&(uint32(1)<<bits-1) != 0 {
			return false
		}
	}
	for {
		if v <= 0 {
			return false
		}
		nv := v - 1
		if skipping && v > th {
			nv = max(v-int64(1)<<bits, th)
		}
		if a.v.CompareAndSwap(v, nv) {
			return nv <= 0
		}
		v = a.v.Load()
	}
}

// IsZero reports value <= 0.
func (a *Approximate) IsZero() bool { return a.v.Load() <= 0 }

// NotZero is !IsZero.
func (a *Approximate) NotZero() bool { return a.v.Load() > 0 }

// TryForceZero moves a positive value to zero.
func (a *Approximate) TryForceZero() bool { return forceZero(&a.v) }

// Value returns the current value.
func (a *Approximate) Value() int64 { return a.v.Load() }
