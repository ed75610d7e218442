// SPDX-License-Identifier: MIT
// Package: peelmis/parallel
//
// buffers.go - per-worker append buffers merged after a barrier.

package parallel

// slot holds one worker's buffer, padded to its own cache line.
type slot[T any] struct {
	items []T
	_     [40]byte
}

// Buffers collects values produced inside a For loop without sharing a
// slice between workers. Append is safe only from the worker that owns w.
type Buffers[T any] struct {
	slots []slot[T]
}

// NewBuffers allocates one buffer per pool worker.
func NewBuffers[T any](p *Pool) *Buffers[T] {
	return &Buffers[T]{slots: make([]slot[T], p.Workers())}
}

// Append adds v to w's buffer.
func (b *Buffers[T]) Append(w *Worker, v T) {
	s := &b.slots[w.ID]
	s.items = append(s.items, v)
}

// Len is the total number of buffered values.
func (b *Buffers[T]) Len() int {
	n := 0
	for i := range b.slots {
		n += len(b.slots[i].items)
	}
	return n
}

// Drain appends every buffered value to dst in worker-id order, empties the
// buffers (capacity is retained) and returns the extended slice.
func (b *Buffers[T]) Drain(dst []T) []T {
	for i := range b.slots {
		dst = append(dst, b.slots[i].items...)
		b.slots[i].items = b.slots[i].items[:0]
	}
	return dst
}
