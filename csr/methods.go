// SPDX-License-Identifier: MIT
// Package: peelmis/csr
//
// methods.go - read-only accessors. None of them allocate.

package csr

// NumVertices returns n.
func (g *Graph) NumVertices() int { return g.N }

// NumEdges returns m, the number of directed edge entries.
func (g *Graph) NumEdges() int { return g.M }

// Degree returns the number of neighbour entries of u.
func (g *Graph) Degree(u uint32) int {
	return int(g.Offsets[u+1] - g.Offsets[u])
}

// Neighbors returns the adjacency of u as a sub-slice of Edges.
// The returned slice aliases the graph and must be treated as read-only.
func (g *Graph) Neighbors(u uint32) []uint32 {
	return g.Edges[g.Offsets[u]:g.Offsets[u+1]]
}

// HasEdge reports whether v appears in the adjacency of u.
// Adjacency lists built by FromEdges/Symmetrize are sorted, so this is a
// binary search; for unsorted input it degrades to a linear scan.
func (g *Graph) HasEdge(u, v uint32) bool {
	nbrs := g.Neighbors(u)
	lo, hi := 0, len(nbrs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if nbrs[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(nbrs) && nbrs[lo] == v {
		return true
	}
	// Fallback for unsorted adjacency (loaders keep the file order).
	for _, x := range nbrs {
		if x == v {
			return true
		}
	}
	return false
}

// Stats computes degree statistics in O(n).
func (g *Graph) Stats() Stats {
	s := Stats{N: g.N, M: g.M}
	for u := 0; u < g.N; u++ {
		d := g.Degree(uint32(u))
		if d > s.MaxDegree {
			s.MaxDegree = d
			s.MaxVertex = u
		}
		if d == 0 {
			s.Isolated++
		}
	}
	if g.N > 0 {
		s.AvgDegree = float64(g.M) / float64(g.N)
	}
	return s
}
