// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// impl_random.go - RandomSparse(n, p) and RandomEdges(n, m).

package builder

import (
	"fmt"
	"math"
)

// RandomSparse adds G(n,p): every unordered pair {i<j} independently with
// probability p (n ≥ 1, 0 ≤ p ≤ 1). Pairs are visited in (i asc, j asc)
// order using geometric skips, so the cost is O(n + edges) rather than O(n²).
// The rng is required only for 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(s *Sink, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		base, err := block(s, MethodRandomSparse, n, 1)
		if err != nil {
			return err
		}

		switch {
		case p == 0:
			return nil
		case p == 1:
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					s.Link(base+uint32(i), base+uint32(j))
				}
			}
			return nil
		}

		// Batagelj–Brandes: walk the lower triangle (v > w) skipping
		// geometrically distributed gaps.
		logq := math.Log(1 - p)
		v, w := 1, -1
		for v < n {
			r := cfg.rng.Float64()
			w += 1 + int(math.Floor(math.Log(1-r)/logq))
			for w >= v && v < n {
				w -= v
				v++
			}
			if v < n {
				s.Link(base+uint32(w), base+uint32(v))
			}
		}
		return nil
	}
}

// RandomEdges adds n vertices and m endpoint pairs drawn uniformly with
// u ≠ v (n ≥ 2). Repeated pairs collapse, so the graph may hold fewer
// than m undirected edges.
func RandomEdges(n, m int) Constructor {
	return func(s *Sink, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", MethodRandomEdges, n, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d is negative: %w", MethodRandomEdges, m, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomEdges, ErrNeedRandSource)
		}
		base, err := block(s, MethodRandomEdges, n, 2)
		if err != nil {
			return err
		}
		for k := 0; k < m; k++ {
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n - 1)
			if v >= u {
				v++
			}
			s.Link(base+uint32(u), base+uint32(v))
		}
		return nil
	}
}
