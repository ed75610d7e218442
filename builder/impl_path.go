// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// impl_path.go - Empty(n) and Path(n).

package builder

// Empty adds n isolated vertices (n ≥ 0).
func Empty(n int) Constructor {
	return func(s *Sink, _ builderConfig) error {
		_, err := block(s, MethodEmpty, n, 0)
		return err
	}
}

// Path adds P_n: base, base+1, ..., base+n-1 joined in order (n ≥ 1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(s *Sink, _ builderConfig) error {
		base, err := block(s, MethodPath, n, MinPathNodes)
		if err != nil {
			return err
		}
		for i := uint32(1); i < uint32(n); i++ {
			s.Link(base+i-1, base+i)
		}
		return nil
	}
}
