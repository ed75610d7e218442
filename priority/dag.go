// SPDX-License-Identifier: MIT
// Package: peelmis/priority
//
// dag.go - properties of the rank orientation of a graph.

package priority

import (
	"fmt"

	"github.com/katalvlaran/peelmis/csr"
	"github.com/katalvlaran/peelmis/parallel"
)

// InDegrees returns, for every vertex u, the number of neighbours ranked
// strictly below u: the in-degree of u in the oriented graph.
func InDegrees(g *csr.Graph, p *Permutation, pool *parallel.Pool) ([]int64, error) {
	if p.Len() != g.N {
		return nil, fmt.Errorf("InDegrees: n=%d, permutation=%d: %w", g.N, p.Len(), ErrSizeMismatch)
	}
	deg := make([]int64, g.N)
	pool.For(g.N, 0, func(_ *parallel.Worker, lo, hi int) {
		for u := lo; u < hi; u++ {
			ru := p.rank[u]
			var d int64
			for _, v := range g.Neighbors(uint32(u)) {
				if p.rank[v] < ru {
					d++
				}
			}
			deg[u] = d
		}
	})
	return deg, nil
}

// Layers assigns every vertex the length of the longest oriented path ending
// at it and returns that layer table with the number of layers.
// Vertices of layer 0 are exactly the vertices with no lower neighbour.
// ErrCycle is returned when o does not orient g acyclically.
func Layers(g *csr.Graph, o Orientation) ([]uint32, int, error) {
	n := g.N
	indeg := make([]int64, n)
	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(uint32(u)) {
			if o.Less(uint32(u), v) {
				indeg[v]++
			}
		}
	}

	layer := make([]uint32, n)
	queue := make([]uint32, 0, n)
	for u := 0; u < n; u++ {
		if indeg[u] == 0 {
			queue = append(queue, uint32(u))
		}
	}

	depth := 0
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		depth = max(depth, int(layer[u])+1)
		for _, v := range g.Neighbors(u) {
			if !o.Less(u, v) {
				continue
			}
			layer[v] = max(layer[v], layer[u]+1)
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(queue) != n {
		return nil, 0, fmt.Errorf("Layers: %d of %d vertices unreachable from sources: %w", n-len(queue), n, ErrCycle)
	}
	return layer, depth, nil
}
