// SPDX-License-Identifier: MIT
// Package: peelmis
//
// Package peelmis computes maximal independent sets of large sparse graphs
// in parallel and compares concurrent counter designs on the way.
//
// The algorithm is the rootset peeling MIS: a random rank order orients
// every edge from the lower to the higher rank, each vertex counts its
// undecided lower-ranked neighbours, and a vertex whose counter reaches zero
// joins the set. Counters are hot: a hub vertex is decremented by many
// workers at once, which is what the counter strategies compete on.
//
// Layout:
//
//	csr/        immutable compressed adjacency graph, symmetrization, checks
//	builder/    synthetic graphs (path, star, grid, random, regular, ...)
//	priority/   rank permutations, DAG in-degrees and layering
//	parallel/   fixed worker pool with stable worker ids and loop helpers
//	counter/    atomic, shared, dynamic, sharded, approximate and funnel counters
//	mis/        the peeling engine, verification and results
//	graphio/    AdjacencyGraph / binary CSR files, membership exporters
//	logging/    zap logger carried in a context
//	cmd/misbench benchmark CLI (run, experiment, gen)
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Grid(100, 100))
//	res, err := mis.Run(ctx, g, priority.Seeded(g.N, 1), mis.WithCounter(counter.KindFunnel))
package peelmis
