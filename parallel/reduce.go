// SPDX-License-Identifier: MIT
// Package: peelmis/parallel
//
// reduce.go - pack, sum and prefix-sum helpers built on For.

package parallel

// seqCutoff is the size below which the helpers run sequentially.
const seqCutoff = 1 << 12

// PackIndex returns, in increasing order, every i in [0,n) with keep(i) true.
func PackIndex(p *Pool, n int, keep func(i int) bool) []uint32 {
	if n < seqCutoff {
		var out []uint32
		for i := 0; i < n; i++ {
			if keep(i) {
				out = append(out, uint32(i))
			}
		}
		return out
	}

	block := blockSize(p, n)
	parts := make([][]uint32, (n+block-1)/block)
	p.For(n, block, func(_ *Worker, lo, hi int) {
		var local []uint32
		for i := lo; i < hi; i++ {
			if keep(i) {
				local = append(local, uint32(i))
			}
		}
		parts[lo/block] = local
	})

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	out := make([]uint32, 0, total)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}

// Sum returns the sum of f(i) over [0,n).
func Sum(p *Pool, n int, f func(i int) int64) int64 {
	if n < seqCutoff {
		var s int64
		for i := 0; i < n; i++ {
			s += f(i)
		}
		return s
	}

	block := blockSize(p, n)
	parts := make([]int64, (n+block-1)/block)
	p.For(n, block, func(_ *Worker, lo, hi int) {
		var s int64
		for i := lo; i < hi; i++ {
			s += f(i)
		}
		parts[lo/block] = s
	})

	var s int64
	for _, v := range parts {
		s += v
	}
	return s
}

// Scan replaces xs with its exclusive prefix sum and returns the total.
func Scan(p *Pool, xs []uint64) uint64 {
	n := len(xs)
	if n < seqCutoff {
		var acc uint64
		for i, v := range xs {
			xs[i] = acc
			acc += v
		}
		return acc
	}

	block := blockSize(p, n)
	sums := make([]uint64, (n+block-1)/block)
	p.For(n, block, func(_ *Worker, lo, hi int) {
		var s uint64
		for _, v := range xs[lo:hi] {
			s += v
		}
		sums[lo/block] = s
	})

	var acc uint64
	for i, v := range sums {
		sums[i] = acc
		acc += v
	}

	p.For(n, block, func(_ *Worker, lo, hi int) {
		run := sums[lo/block]
		for i := lo; i < hi; i++ {
			v := xs[i]
			xs[i] = run
			run += v
		}
	})
	return acc
}

// blockSize splits n into a few blocks per worker.
func blockSize(p *Pool, n int) int {
	b := (n + p.Workers()*4 - 1) / (p.Workers() * 4)
	return max(b, 1)
}
