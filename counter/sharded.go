// SPDX-License-Identifier: MIT
// Package: peelmis/counter
//
// sharded.go - two shards and a liveness flag.

package counter

import (
	"sync/atomic"

	"github.com/katalvlaran/peelmis/parallel"
)

// Liveness bits; a zero flag means the counter is zero.
const (
	shard0Live uint32 = 1 << iota
	shard1Live
)

// Sharded splits its value across two shards on separate cache lines.
// Decrements never drive a shard below zero; the caller that empties a shard
// clears its bit, and the one whose clear leaves the flag at zero reports
// the crossing. Shard emptying order varies from run to run but no
// decrement is lost.
type Sharded struct {
	flag   atomic.Uint32
	shards [2]paddedInt64
}

// Init splits initial evenly, or keeps it whole when it does not exceed
// Env.ShardThreshold. A shard is live only while it holds a positive
// value, so a value of 1 always stays whole.
func (s *Sharded) Init(initial int64, env *Env) {
	var flag uint32
	s.shards[0].Store(0)
	s.shards[1].Store(0)
	switch {
	case initial <= 0:
	case initial <= env.ShardThreshold, initial < 2:
		s.shards[0].Store(initial)
		flag = shard0Live
	default:
		s.shards[0].Store(initial - initial/2)
		s.shards[1].Store(initial / 2)
		flag = shard0Live | shard1Live
	}
	s.flag.Store(flag)
}

// Decrement takes one unit from a live shard, starting with a random one.
func (s *Sharded) Decrement(w *parallel.Worker) bool {
	f := s.flag.Load()
	if f == 0 {
		return false
	}

	first := 0
	switch {
	case f == shard1Live:
		first = 1
	case f == shard0Live|shard1Live && w != nil:
		first = int(w.Rand() & 1)
	}

	for _, i := range [2]int{first, 1 - first} {
		if f&(1<<i) == 0 {
			continue
		}
		left, ok := takeOne(&s.shards[i].Int64)
		if !ok {
			continue
		}
		if left > 0 {
			return false
		}
		return s.clear(uint32(1) << i)
	}
	// Both live shards are drained; their emptiers own the crossing.
	return false
}

// clear drops bit and reports whether this call left the flag at zero.
func (s *Sharded) clear(bit uint32) bool {
	for {
		f := s.flag.Load()
		if f&bit == 0 {
			return false
		}
		nf := f &^ bit
		if s.flag.CompareAndSwap(f, nf) {
			return nf == 0
		}
	}
}

// IsZero reports whether the flag reached zero.
func (s *Sharded) IsZero() bool { return s.flag.Load() == 0 }

// NotZero is !IsZero.
func (s *Sharded) NotZero() bool { return s.flag.Load() != 0 }

// TryForceZero clears the flag if any shard is still live.
func (s *Sharded) TryForceZero() bool {
	for {
		f := s.flag.Load()
		if f == 0 {
			return false
		}
		if s.flag.CompareAndSwap(f, 0) {
			return true
		}
	}
}

// Value returns the shard sum, or zero once the flag is clear.
func (s *Sharded) Value() int64 {
	if s.flag.Load() == 0 {
		return 0
	}
	return s.shards[0].Load() + s.shards[1].Load()
}

// takeOne decrements v if positive and returns the new value.
func takeOne(v *atomic.Int64) (int64, bool) {
	for {
		cur := v.Load()
		if cur <= 0 {
			return 0, false
		}
		if v.CompareAndSwap(cur, cur-1) {
			return cur - 1, true
		}
	}
}
