// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// impl_star.go - Star(n).

package builder

// Star adds a hub (the block's first vertex) with n-1 leaves (n ≥ 2).
// It is the canonical high-contention fixture: the hub's counter starts at
// the number of lower-ranked leaves.
func Star(n int) Constructor {
	return func(s *Sink, _ builderConfig) error {
		base, err := block(s, MethodStar, n, MinStarNodes)
		if err != nil {
			return err
		}
		for i := uint32(1); i < uint32(n); i++ {
			s.Link(base, base+i)
		}
		return nil
	}
}
