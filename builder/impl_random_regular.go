// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// impl_random_regular.go - RandomRegular(n, d) via stub matching.
//
// Stubs (each vertex repeated d times) are shuffled and paired. A pairing
// with a loop or a repeated pair is rejected before anything is emitted and
// reshuffled, up to maxStubMatchingAttempts times.

package builder

import "fmt"

// RandomRegular adds a simple d-regular graph on n vertices
// (n ≥ 1, 0 ≤ d < n, n·d even).
func RandomRegular(n, d int) Constructor {
	return func(s *Sink, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomRegular, n, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]uint32, n*d)
		for i := range stubs {
			stubs[i] = uint32(i / d)
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			base, err := block(s, MethodRandomRegular, n, 1)
			if err != nil {
				return err
			}
			for i := 0; i < len(stubs); i += 2 {
				s.Link(base+stubs[i], base+stubs[i+1])
			}
			return nil
		}
		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []uint32) bool {
	seen := make(map[[2]uint32]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]uint32{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
