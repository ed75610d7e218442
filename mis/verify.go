// SPDX-License-Identifier: MIT
// Package: peelmis/mis
//
// verify.go - independence and maximality checks.

package mis

import (
	"fmt"

	"github.com/katalvlaran/peelmis/csr"
)

// Verify checks that inSet is an independent and maximal set of g and
// reports the first violation found in vertex order.
func Verify(g *csr.Graph, inSet []bool) error {
	if len(inSet) != g.N {
		return fmt.Errorf("Verify: %d flags for %d vertices: %w", len(inSet), g.N, ErrSizeMismatch)
	}
	for u := 0; u < g.N; u++ {
		covered := inSet[u]
		for _, v := range g.Neighbors(uint32(u)) {
			if !inSet[v] {
				continue
			}
			if inSet[u] {
				return fmt.Errorf("Verify: members %d and %d are adjacent: %w", u, v, ErrNotIndependent)
			}
			covered = true
		}
		if !covered {
			return fmt.Errorf("Verify: vertex %d has no member neighbour: %w", u, ErrNotMaximal)
		}
	}
	return nil
}

// Conflicts counts edges {u,v} with both endpoints in inSet; a statistical
// quality measure for the approximate counter.
func Conflicts(g *csr.Graph, inSet []bool) int {
	c := 0
	for u := 0; u < g.N; u++ {
		if !inSet[u] {
			continue
		}
		for _, v := range g.Neighbors(uint32(u)) {
			if uint32(u) < v && inSet[v] {
				c++
			}
		}
	}
	return c
}
