// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).

package builder

import "fmt"

// Complete adds K_n (n ≥ 1). Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(s *Sink, _ builderConfig) error {
		base, err := block(s, MethodComplete, n, 1)
		if err != nil {
			return err
		}
		for i := uint32(0); i < uint32(n); i++ {
			for j := i + 1; j < uint32(n); j++ {
				s.Link(base+i, base+j)
			}
		}
		return nil
	}
}

// CompleteBipartite adds K_{n1,n2}: the first n1 vertices of the block form
// the left side (n1, n2 ≥ 1).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *Sink, _ builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				MethodCompleteBipartite, MinPartition, n1, n2, ErrTooFewVertices)
		}
		base, err := block(s, MethodCompleteBipartite, n1+n2, 2)
		if err != nil {
			return err
		}
		right := base + uint32(n1)
		for i := uint32(0); i < uint32(n1); i++ {
			for j := uint32(0); j < uint32(n2); j++ {
				s.Link(base+i, right+j)
			}
		}
		return nil
	}
}
