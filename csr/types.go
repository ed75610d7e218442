// SPDX-License-Identifier: MIT
// Package: peelmis/csr
//
// types.go - Graph type and sentinel errors.

package csr

import "errors"

// Sentinel errors for CSR construction and validation.
var (
	// ErrBadOffsets indicates an offsets array that is not of length n+1,
	// does not start at 0, does not end at m, or decreases somewhere.
	ErrBadOffsets = errors.New("csr: malformed offsets")

	// ErrEdgeOutOfRange indicates an edge target that is not a vertex id.
	ErrEdgeOutOfRange = errors.New("csr: edge target out of range")

	// ErrNotSymmetric indicates that some edge u→v has no reverse v→u.
	ErrNotSymmetric = errors.New("csr: graph is not symmetrized")

	// ErrTooManyVertices indicates a vertex count that does not fit a uint32 id.
	ErrTooManyVertices = errors.New("csr: vertex count exceeds uint32 range")
)

// MaxVertices is the largest supported vertex count; ids are uint32.
const MaxVertices int64 = 1<<32 - 1

// Graph is an immutable compressed-adjacency graph.
//
// Offsets has length N+1 with Offsets[0] == 0 and Offsets[N] == M;
// Edges has length M. Fields are exported for zero-copy loaders and
// exporters; callers must not mutate them once the Graph is shared.
type Graph struct {
	// N is the number of vertices, numbered 0..N-1.
	N int

	// M is the number of directed edge entries (2x the undirected edge count
	// for a symmetrized simple graph).
	M int

	// Offsets indexes into Edges; neighbours of u are Edges[Offsets[u]:Offsets[u+1]].
	Offsets []uint64

	// Edges holds neighbour ids, each < N.
	Edges []uint32
}

// Stats summarizes the degree distribution of a Graph.
type Stats struct {
	N         int
	M         int
	MaxDegree int
	// MaxVertex is a vertex of maximum degree (the first one in id order).
	MaxVertex int
	AvgDegree float64
	Isolated  int
}
