// Package builder assembles synthetic symmetrized CSR graphs from
// deterministic topology constructors.
//
// What:
//
//   - BuildGraph(opts, cons...) applies constructors in order. Each
//     constructor appends its own block of fresh vertices, so the result is
//     the disjoint union of the blocks, numbered in call order.
//   - Deterministic topologies: Empty, Path, Cycle, Star, Wheel, Complete,
//     CompleteBipartite, Grid.
//   - Stochastic topologies (need WithSeed or WithRand): RandomSparse
//     (Erdős–Rényi G(n,p)), RandomEdges (m uniform endpoint pairs) and
//     RandomRegular (stub matching).
//
// Why:
//
//   - Fixtures with known independent sets (stars, paths, complete graphs)
//     for tests; skewed and uniform random graphs for contention benchmarks.
//
// Determinism:
//
//   - Same constructors, same order and same seed ⇒ identical graphs.
//
// Errors:
//
//   - Constructors return sentinels (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped as "<Method>: ...: %w";
//     BuildGraph adds a "BuildGraph: " prefix. Option constructors panic on
//     meaningless values; constructors never panic.
package builder
