// Package mis computes a maximal independent set with the parallel
// rootset peeling algorithm.
//
// What:
//
//   - Run orients every edge from the lower-ranked to the higher-ranked
//     endpoint of a priority permutation and gives each vertex a counter
//     initialised to its number of lower-ranked neighbours.
//   - Round loop, separated by pool barriers:
//     1. include every frontier vertex (counter at zero);
//     2. for each undecided neighbour v of the frontier, TryForceZero on v's
//     counter; the single winner marks v excluded;
//     3. for each excluded vertex w and each undecided higher-ranked
//     neighbour x, Decrement x's counter; a reported crossing puts x in
//     the next frontier.
//   - The engine is generic over the counter strategy (counter.Cell) and
//     dispatches once per run on counter.Kind.
//
// Guarantees:
//
//   - With an exact strategy the result is independent and maximal and
//     equals the lexicographically first MIS in rank order, whatever the
//     strategy, worker count or scheduling.
//   - An empty frontier with undecided vertices left means a strategy
//     violated its contract or the input was not symmetric: Run returns
//     ErrStalled and no result.
//   - The approximate strategy may include adjacent vertices or stall;
//     stalls are resolved by a recovery sweep counted in Result.Recoveries.
//
// Complexity:
//
//   - O(n+m) work per run; neighbour scans are balanced by edge count so a
//     single hub's adjacency list is shared across workers.
//
// Errors:
//
//   - ErrSizeMismatch, ErrStalled from Run.
//   - ErrNotIndependent, ErrNotMaximal, ErrSizeMismatch from Verify.
package mis
