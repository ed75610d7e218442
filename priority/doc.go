// Package priority assigns the random vertex ranks that orient a graph.
//
// What:
//
//   - Permutation: a bijection vertex → rank over [0,n), read-only once built
//     and shared by every worker of a run.
//   - Random / Seeded / FromRanks / Identity constructors.
//   - InDegrees: per-vertex count of strictly lower-ranked neighbours, the
//     initial counter value of the peeling engine.
//   - Layers: longest-path layering of the orientation (Kahn's algorithm).
//
// Why:
//
//   - Comparing ranks orients every undirected edge from the lower-ranked to
//     the higher-ranked endpoint. A strict total order makes the orientation
//     acyclic, which is what guarantees the peeling engine makes progress.
//   - The number of layers bounds the number of peeling rounds from above.
//
// Determinism:
//
//   - Seeded(n, s) yields the same permutation for the same (n, s) on every
//     platform. seed==0 maps to a fixed default seed.
//
// Complexity:
//
//   - Random/Seeded/FromRanks: O(n) time and space.
//   - InDegrees: O(n+m) work, parallel over vertices.
//   - Layers: O(n+m) time, O(n) extra space.
//
// Errors:
//
//   - ErrNotPermutation: ranks are out of range or repeated.
//   - ErrCycle:          the supplied orientation is not acyclic.
//   - ErrSizeMismatch:   permutation and graph disagree on n.
package priority
