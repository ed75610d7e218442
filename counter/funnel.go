// SPDX-License-Identifier: MIT
// Package: peelmis/counter
//
// funnel.go - per-worker aggregating counter.

package counter

import (
	"sync/atomic"

	"github.com/katalvlaran/peelmis/parallel"
)

// Funnel gives each worker a private slot for large counters. A worker
// accumulates decrements in its slot and flushes them into the shared total
// once Env.FunnelBatch are pending. When the total drops to the low-water
// mark (workers × batch) every decrement folds all slots, so the crossing
// to zero is observed exactly once.
//
// Slots only ever hold non-positive values, hence total >= true value.
type Funnel struct {
	total atomic.Int64
	done  atomic.Bool  // crossing reported or forced
	seen  atomic.Int64 // smallest value handed out by Value
	slots []paddedInt64

	batch    int64
	lowWater int64
}

// Init sets the total; slots are allocated only when initial exceeds the
// low-water mark and the pool has more than one worker.
func (f *Funnel) Init(initial int64, env *Env) {
	f.total.Store(initial)
	f.seen.Store(initial)
	f.done.Store(initial <= 0)
	f.batch = env.FunnelBatch
	f.lowWater = int64(env.Workers) * env.FunnelBatch
	f.slots = nil
	if env.Workers > 1 && initial > f.lowWater {
		f.slots = make([]paddedInt64, env.Workers)
	}
}

// Decrement counts one unit in w's slot while the total is high, otherwise
// folds directly into the total.
//
// Steps:
//  1. High total: add to the private slot, flushing a full batch into total.
//  2. Re-check the total; while still above low water the crossing is far.
//  3. Otherwise (or without slots) take the unit from total and fold.
//
// Complexity: O(1) above low water, O(P) per call below it.
func (f *Funnel) Decrement(w *parallel.Worker) bool {
	if f.slots != nil && w != nil && w.ID < len(f.slots) && f.total.Load() > f.lowWater {
		s := &f.slots[w.ID]
		if s.Add(-1) <= -f.batch {
			f.total.Add(s.Swap(0))
		}
		// Re-read: a concurrent fold may have swept the slots before our add.
		if f.total.Load() > f.lowWater {
			return false
		}
	} else {
		f.total.Add(-1)
	}
	return f.fold()
}

// fold moves every pending slot into the total and claims the crossing if
// the total reached zero. Only the CAS on done decides the winner, so two
// folders that both see total <= 0 report one crossing.
//
// Complexity: O(P).
func (f *Funnel) fold() bool {
	for i := range f.slots {
		if f.slots[i].Load() != 0 {
			f.total.Add(f.slots[i].Swap(0))
		}
	}
	if f.total.Load() > 0 {
		return false
	}
	return f.done.CompareAndSwap(false, true)
}

// IsZero reports whether the counter was forced or its folded value is <= 0.
func (f *Funnel) IsZero() bool { return f.done.Load() || f.Value() <= 0 }

// NotZero is !IsZero.
func (f *Funnel) NotZero() bool { return !f.IsZero() }

// TryForceZero claims the single zero transition.
func (f *Funnel) TryForceZero() bool { return f.done.CompareAndSwap(false, true) }

// Value sums the total and all slots without moving them. Observations
// never increase.
func (f *Funnel) Value() int64 {
	// 1. Sample (zero once decided).
	var cur int64
	if !f.done.Load() {
		// Total first: a slot flushed between the two reads is missed, never
		// double counted, so cur is never below the true value.
		cur = f.total.Load()
		for i := range f.slots {
			cur += f.slots[i].Load()
		}
	}
	// 2. Clamp through the min register.
	for {
		prev := f.seen.Load()
		if cur >= prev {
			return prev
		}
		if f.seen.CompareAndSwap(prev, cur) {
			return cur
		}
	}
}
