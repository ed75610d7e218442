// SPDX-License-Identifier: MIT
// Package: peelmis/counter
//
// atomic.go - exact single-word counters: Atomic and Shared.

package counter

import (
	"sync/atomic"

	"github.com/katalvlaran/peelmis/parallel"
)

// Atomic is a single atomic int64.
type Atomic struct {
	v atomic.Int64
}

// Init sets the starting value.
func (a *Atomic) Init(initial int64, _ *Env) { a.v.Store(initial) }

// Decrement subtracts one; true when the result is exactly zero.
func (a *Atomic) Decrement(_ *parallel.Worker) bool { return a.v.Add(-1) == 0 }

// IsZero reports value <= 0.
func (a *Atomic) IsZero() bool { return a.v.Load() <= 0 }

// NotZero is !IsZero.
func (a *Atomic) NotZero() bool { return a.v.Load() > 0 }

// TryForceZero moves a positive value to zero.
func (a *Atomic) TryForceZero() bool { return forceZero(&a.v) }

// Value returns the current value.
func (a *Atomic) Value() int64 { return a.v.Load() }

// Shared reaches its value through a handle. Copies made with Share alias
// the same cell, which lives as long as its longest holder.
type Shared struct {
	cell *atomic.Int64
}

// Init allocates a fresh cell.
func (s *Shared) Init(initial int64, _ *Env) {
	s.cell = new(atomic.Int64)
	s.cell.Store(initial)
}

// Share returns another handle on the same cell.
func (s *Shared) Share() Shared { return Shared{cell: s.cell} }

// Decrement subtracts one; true when the result is exactly zero.
func (s *Shared) Decrement(_ *parallel.Worker) bool { return s.cell.Add(-1) == 0 }

// IsZero reports value <= 0.
func (s *Shared) IsZero() bool { return s.cell.Load() <= 0 }

// NotZero is !IsZero.
func (s *Shared) NotZero() bool { return s.cell.Load() > 0 }

// TryForceZero moves a positive value to zero.
func (s *Shared) TryForceZero() bool { return forceZero(s.cell) }

// Value returns the current value.
func (s *Shared) Value() int64 { return s.cell.Load() }

// forceZero is the exactly-once positive→zero transition.
func forceZero(v *atomic.Int64) bool {
	for {
		cur := v.Load()
		if cur <= 0 {
			return false
		}
		if v.CompareAndSwap(cur, 0) {
			return true
		}
	}
}
