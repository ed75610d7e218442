// SPDX-License-Identifier: MIT
// Package: peelmis/priority
//
// permutation.go - Permutation constructors.

package priority

import (
	"fmt"
	"math/rand"
)

// Random returns a uniformly random permutation of [0,n) drawn from rng.
// A nil rng uses the default deterministic stream.
func Random(n int, rng *rand.Rand) *Permutation {
	rank := identity(n)
	shuffleInPlace(rank, rng)
	return &Permutation{rank: rank}
}

// Seeded is Random driven by a fresh generator for seed (seed==0 policy applies).
func Seeded(n int, seed int64) *Permutation {
	return Random(n, rngFromSeed(seed))
}

// Identity ranks every vertex by its own id.
func Identity(n int) *Permutation {
	return &Permutation{rank: identity(n)}
}

// FromRanks adopts ranks (rank[v] for every vertex v) after checking that it
// is a bijection on [0,len(ranks)). The slice is copied.
func FromRanks(ranks []uint32) (*Permutation, error) {
	n := len(ranks)
	seen := make([]bool, n)
	for v, r := range ranks {
		if int64(r) >= int64(n) {
			return nil, fmt.Errorf("FromRanks: vertex %d has rank %d >= %d: %w", v, r, n, ErrNotPermutation)
		}
		if seen[r] {
			return nil, fmt.Errorf("FromRanks: rank %d repeated at vertex %d: %w", r, v, ErrNotPermutation)
		}
		seen[r] = true
	}
	out := make([]uint32, n)
	copy(out, ranks)
	return &Permutation{rank: out}, nil
}

func identity(n int) []uint32 {
	a := make([]uint32, n)
	for i := range a {
		a[i] = uint32(i)
	}
	return a
}
