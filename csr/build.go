// SPDX-License-Identifier: MIT
// Package: peelmis/csr
//
// build.go - constructors: New (adopt arrays), FromEdges (edge list) and
// Symmetrize (undirected closure without loops or duplicates).

package csr

import (
	"fmt"
	"slices"
)

// Edge is one directed edge entry U→V used by FromEdges.
type Edge struct {
	U, V uint32
}

// New adopts offsets and edges as a Graph after validating them.
// The slices are not copied.
//
// Errors: ErrTooManyVertices, ErrBadOffsets, ErrEdgeOutOfRange.
func New(n int, offsets []uint64, edges []uint32) (*Graph, error) {
	g := &Graph{N: n, M: len(edges), Offsets: offsets, Edges: edges}
	if err := Validate(g); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return g, nil
}

// FromEdges builds a Graph over n vertices from a directed edge list.
// Adjacency lists are sorted ascending; duplicates are kept unless the
// caller symmetrizes afterwards. The input slice is not modified.
//
// Complexity: O(n + m log d_max) time, O(n + m) space.
func FromEdges(n int, list []Edge) (*Graph, error) {
	if n < 0 || int64(n) > MaxVertices {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrTooManyVertices)
	}
	for i, e := range list {
		if int(e.U) >= n || int(e.V) >= n {
			return nil, fmt.Errorf("FromEdges: edge %d (%d→%d) with n=%d: %w", i, e.U, e.V, n, ErrEdgeOutOfRange)
		}
	}

	// Counting sort by source, then sort every adjacency list.
	offsets := make([]uint64, n+1)
	for _, e := range list {
		offsets[e.U+1]++
	}
	for u := 0; u < n; u++ {
		offsets[u+1] += offsets[u]
	}
	edges := make([]uint32, len(list))
	cursor := make([]uint64, n)
	copy(cursor, offsets[:n])
	for _, e := range list {
		edges[cursor[e.U]] = e.V
		cursor[e.U]++
	}
	for u := 0; u < n; u++ {
		slices.Sort(edges[offsets[u]:offsets[u+1]])
	}

	return &Graph{N: n, M: len(edges), Offsets: offsets, Edges: edges}, nil
}

// Symmetrize returns the undirected closure of g: for every entry u→v both
// u→v and v→u are present, self loops are dropped and parallel entries are
// collapsed. g itself is left untouched.
//
// Complexity: O(n + m log d_max) time, O(n + m) space.
func Symmetrize(g *Graph) *Graph {
	list := make([]Edge, 0, 2*g.M)
	for u := 0; u < g.N; u++ {
		for _, v := range g.Neighbors(uint32(u)) {
			if uint32(u) == v {
				continue
			}
			list = append(list, Edge{U: uint32(u), V: v}, Edge{U: v, V: uint32(u)})
		}
	}
	// Inputs come from a valid graph, so FromEdges cannot fail here.
	sym, _ := FromEdges(g.N, list)
	return dedup(sym)
}

// dedup removes repeated neighbours from sorted adjacency lists in place
// and rebuilds offsets.
func dedup(g *Graph) *Graph {
	var (
		write uint64
		start uint64
	)
	for u := 0; u < g.N; u++ {
		end := g.Offsets[u+1]
		g.Offsets[u] = write
		for i := start; i < end; i++ {
			if i > start && g.Edges[i] == g.Edges[i-1] {
				continue
			}
			g.Edges[write] = g.Edges[i]
			write++
		}
		start = end
	}
	g.Offsets[g.N] = write
	g.Edges = g.Edges[:write:write]
	g.M = int(write)
	return g
}
