// SPDX-License-Identifier: MIT
// Package: peelmis/csr
//
// validate.go - structural checks run once by loaders and constructors.

package csr

import "fmt"

// Validate checks the CSR invariants: len(Offsets) == N+1, Offsets[0] == 0,
// Offsets[N] == M == len(Edges), Offsets non-decreasing and every edge
// target < N.
//
// Complexity: O(n + m).
func Validate(g *Graph) error {
	if g.N < 0 || int64(g.N) > MaxVertices {
		return fmt.Errorf("n=%d: %w", g.N, ErrTooManyVertices)
	}
	if len(g.Offsets) != g.N+1 {
		return fmt.Errorf("len(offsets)=%d, want %d: %w", len(g.Offsets), g.N+1, ErrBadOffsets)
	}
	if g.M != len(g.Edges) {
		return fmt.Errorf("m=%d but len(edges)=%d: %w", g.M, len(g.Edges), ErrBadOffsets)
	}
	if g.Offsets[0] != 0 || g.Offsets[g.N] != uint64(g.M) {
		return fmt.Errorf("offsets span [%d,%d], want [0,%d]: %w", g.Offsets[0], g.Offsets[g.N], g.M, ErrBadOffsets)
	}
	for u := 0; u < g.N; u++ {
		if g.Offsets[u] > g.Offsets[u+1] {
			return fmt.Errorf("offsets[%d]=%d > offsets[%d]=%d: %w", u, g.Offsets[u], u+1, g.Offsets[u+1], ErrBadOffsets)
		}
	}
	n := uint32(g.N)
	for i, v := range g.Edges {
		if v >= n {
			return fmt.Errorf("edges[%d]=%d with n=%d: %w", i, v, g.N, ErrEdgeOutOfRange)
		}
	}
	return nil
}

// IsSymmetric reports whether every entry u→v has a matching v→u.
func IsSymmetric(g *Graph) bool {
	return CheckSymmetric(g) == nil
}

// CheckSymmetric is IsSymmetric with a descriptive error naming the first
// missing reverse edge (wrapping ErrNotSymmetric).
func CheckSymmetric(g *Graph) error {
	for u := 0; u < g.N; u++ {
		for _, v := range g.Neighbors(uint32(u)) {
			if !g.HasEdge(v, uint32(u)) {
				return fmt.Errorf("missing reverse edge %d→%d: %w", v, u, ErrNotSymmetric)
			}
		}
	}
	return nil
}
