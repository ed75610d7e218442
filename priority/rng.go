// SPDX-License-Identifier: MIT
// Package: peelmis/priority
//
// rng.go - deterministic generator plumbing for rank assignment.
//
// math/rand.Rand is not goroutine-safe: the shuffle below runs on the
// caller's goroutine only.

package priority

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleInPlace is a Fisher–Yates shuffle of a driven by rng.
// rng==nil falls back to the default stream.
func shuffleInPlace(a []uint32, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
