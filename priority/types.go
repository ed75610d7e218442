// SPDX-License-Identifier: MIT
// Package: peelmis/priority
//
// types.go - Permutation type and sentinel errors.

package priority

import "errors"

var (
	// ErrNotPermutation indicates ranks that are not a bijection on [0,n).
	ErrNotPermutation = errors.New("priority: ranks are not a permutation")

	// ErrCycle indicates an orientation whose comparisons are inconsistent.
	ErrCycle = errors.New("priority: orientation has a cycle")

	// ErrSizeMismatch indicates a permutation built for a different vertex count.
	ErrSizeMismatch = errors.New("priority: permutation size does not match graph")
)

// Orientation is a strict order on vertex ids. Every edge {u,v} is directed
// u→v when Less(u, v).
type Orientation interface {
	Less(u, v uint32) bool
}

// Permutation maps each vertex to a distinct rank in [0,n).
// It is immutable after construction and safe for concurrent reads.
type Permutation struct {
	rank []uint32
}

// Len returns n.
func (p *Permutation) Len() int { return len(p.rank) }

// Rank returns the rank of v.
func (p *Permutation) Rank(v uint32) uint32 { return p.rank[v] }

// Less reports whether u is ranked strictly below v.
func (p *Permutation) Less(u, v uint32) bool { return p.rank[u] < p.rank[v] }

// Ranks returns a copy of the rank table.
func (p *Permutation) Ranks() []uint32 {
	out := make([]uint32, len(p.rank))
	copy(out, p.rank)
	return out
}

// Order returns the vertices sorted by increasing rank.
func (p *Permutation) Order() []uint32 {
	out := make([]uint32, len(p.rank))
	for v, r := range p.rank {
		out[r] = uint32(v)
	}
	return out
}
