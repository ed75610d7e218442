// Package csr provides the compressed sparse row (CSR) graph model consumed by
// the peeling engine.
//
// What
//
//   - Graph stores n vertices and m directed edge entries as two flat arrays:
//     Offsets (length n+1) and Edges (length m). The neighbours of u are
//     Edges[Offsets[u]:Offsets[u+1]].
//   - An undirected graph is represented in symmetrized form: every edge {u,v}
//     appears once in the list of u and once in the list of v.
//   - Constructors validate their input once (offsets well formed, all edge
//     targets < n); algorithms built on top assume a valid, symmetrized graph
//     and never re-validate.
//
// Why
//
//   - CSR is the densest practical layout for read-only graphs with billions of
//     edges, and neighbour scans are a contiguous sub-slice with no copying.
//   - A Graph is immutable after construction, so it can be shared read-only by
//     any number of goroutines without locking.
//
// Determinism
//
//	FromEdges and Symmetrize sort every adjacency list in ascending vertex
//	order and drop duplicates, so equal edge multisets always produce
//	byte-identical graphs.
//
// Complexity
//
//   - Degree, Neighbors: O(1).
//   - Validate: O(n + m). IsSymmetric: O(m log d_max).
//   - FromEdges, Symmetrize: O(n + m log d_max) time, O(n + m) space.
package csr
