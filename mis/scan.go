// SPDX-License-Identifier: MIT
// Package: peelmis/mis
//
// scan.go - edge-balanced neighbour scans and the recovery sweep.

package mis

import (
	"slices"
	"sort"

	"github.com/katalvlaran/peelmis/parallel"
)

// exclude forces the counters of undecided neighbours of frontier to zero
// and returns the vertices whose force this round won.
//
// Complexity: O(sum of frontier degrees) work.
func (e *engine[T, C]) exclude(frontier []uint32) []uint32 {
	e.scan(frontier, func(w *parallel.Worker, _, v uint32) {
		if e.state[v].Load() != undecided {
			return
		}
		if e.cell(v).TryForceZero() {
			e.state[v].Store(excluded)
			e.hits.Append(w, v)
		}
	})
	return e.hits.Drain(nil)
}

// propagate decrements every undecided higher-ranked neighbour of removed
// and returns the vertices whose counter crossed to zero. Each crossing is
// reported by exactly one decrement, so the result has no duplicates.
//
// Complexity: O(sum of removed degrees) work.
func (e *engine[T, C]) propagate(removed []uint32) []uint32 {
	e.scan(removed, func(w *parallel.Worker, u, v uint32) {
		if e.state[v].Load() != undecided || !e.p.Less(u, v) {
			return
		}
		if e.cell(v).Decrement(w) {
			e.hits.Append(w, v)
		}
	})
	return e.hits.Drain(nil)
}

// scan calls visit(w, u, v) for every u in list and every neighbour v of u.
// The flattened adjacency of list is split into equal edge ranges, so a
// high-degree vertex is shared by several workers.
//
// Steps:
//  1. Write the degree of every list entry into offs.
//  2. Exclusive prefix sum: offs[i] is the first flattened edge of list[i].
//  3. Split [0, total) into chunks; each chunk binary-searches its first
//     list entry and walks forward across adjacency boundaries.
//
// Complexity: O(len(list) + total) work, O(log len(list)) extra per chunk.
func (e *engine[T, C]) scan(list []uint32, visit func(w *parallel.Worker, u, v uint32)) {
	if len(list) == 0 {
		return
	}
	g := e.g
	e.offs = slices.Grow(e.offs[:0], len(list))[:len(list)]
	offs := e.offs
	e.pool.For(len(list), e.grain, func(_ *parallel.Worker, lo, hi int) {
		for i := lo; i < hi; i++ {
			offs[i] = uint64(g.Degree(list[i]))
		}
	})
	// offs becomes exclusive prefix sums.
	total := parallel.Scan(e.pool, offs)
	if total == 0 {
		return
	}

	e.pool.For(int(total), e.grain, func(w *parallel.Worker, lo, hi int) {
		// Last list entry whose range starts at or before lo.
		i := sort.Search(len(offs), func(k int) bool { return offs[k] > uint64(lo) }) - 1
		pos, end := uint64(lo), uint64(hi)
		for pos < end {
			u := list[i]
			from := g.Offsets[u] + (pos - offs[i])
			to := min(g.Offsets[u+1], from+(end-pos))
			for _, v := range g.Edges[from:to] {
				visit(w, u, v)
			}
			pos += to - from
			i++
		}
	})
}

// sweep resolves a stall left by an inexact counter. Every undecided vertex
// adjacent to a member is excluded; every other undecided vertex without an
// undecided lower-ranked neighbour is promoted to the frontier. The
// lowest-ranked undecided vertex always falls in one of the two groups.
//
// Complexity: O(n + m) work.
func (e *engine[T, C]) sweep() (frontier, forced []uint32) {
	promote := parallel.NewBuffers[uint32](e.pool)
	e.pool.For(e.g.N, e.grain, func(w *parallel.Worker, lo, hi int) {
		for u := lo; u < hi; u++ {
			if e.state[u].Load() != undecided {
				continue
			}
			blocked, covered := false, false
			for _, v := range e.g.Neighbors(uint32(u)) {
				switch e.state[v].Load() {
				case included:
					covered = true
				case undecided:
					if e.p.Less(v, uint32(u)) {
						blocked = true
					}
				}
			}
			switch {
			case covered:
				e.hits.Append(w, uint32(u))
			case !blocked:
				promote.Append(w, uint32(u))
			}
		}
	})

	// Decisions are read in the pass above and applied only here, so the
	// classification sees one consistent snapshot.
	forced = e.hits.Drain(nil)
	// Exclusions become visible before the promoted vertices are included.
	for _, u := range forced {
		e.state[u].Store(excluded)
		e.cell(u).TryForceZero()
	}
	return promote.Drain(nil), forced
}
