// SPDX-License-Identifier: MIT
// Package: peelmis/parallel
//
// worker.go - per-worker identity and thread-local generator.

package parallel

// defaultRandState seeds a worker whose derived seed is zero; xorshift32 has
// zero as a fixed point.
const defaultRandState uint32 = 0x12345678

// Worker is the private state of one pool worker. Only the goroutine that
// currently runs a chunk for this worker may use it.
type Worker struct {
	// ID is stable for the lifetime of the pool.
	ID int

	rng uint32
	_   [56]byte // keep neighbouring workers on separate cache lines
}

// Rand advances the worker's xorshift32 generator and returns the next value.
func (w *Worker) Rand() uint32 {
	x := w.rng
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	w.rng = x
	return x
}

// newWorker derives an independent non-zero generator state for id.
func newWorker(id int, seed uint64) *Worker {
	s := uint32(deriveSeed(seed, uint64(id)))
	if s == 0 {
		s = defaultRandState
	}
	return &Worker{ID: id, rng: s}
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
