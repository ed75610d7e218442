// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// impl_cycle.go - Cycle(n) and Wheel(n).

package builder

// Cycle adds C_n (n ≥ 3). Edges i→i+1 in index order, closing n-1→0.
func Cycle(n int) Constructor {
	return func(s *Sink, _ builderConfig) error {
		base, err := block(s, MethodCycle, n, MinCycleNodes)
		if err != nil {
			return err
		}
		ring(s, base, uint32(n))
		return nil
	}
}

// Wheel adds W_n: hub at the block's first vertex plus a rim cycle of n-1
// vertices (n ≥ 4).
func Wheel(n int) Constructor {
	return func(s *Sink, _ builderConfig) error {
		base, err := block(s, MethodWheel, n, MinWheelNodes)
		if err != nil {
			return err
		}
		ring(s, base+1, uint32(n-1))
		for i := uint32(1); i < uint32(n); i++ {
			s.Link(base, base+i)
		}
		return nil
	}
}

func ring(s *Sink, base, k uint32) {
	for i := uint32(0); i < k; i++ {
		s.Link(base+i, base+(i+1)%k)
	}
}
