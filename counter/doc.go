// Package counter provides the decrement-to-zero concurrent counters driven
// by the peeling engine, one counter per vertex.
//
// Every strategy satisfies the same contract (Counter):
//
//   - Decrement(w) lowers the value by one and reports true exactly when this
//     call drove the value to zero. A counter reports at most one crossing.
//   - IsZero / NotZero observe whether the value is (or was forced to) zero.
//   - TryForceZero moves a positive value to zero and returns true for exactly
//     one caller; crossings and forcing share that single "true".
//   - Value returns an observation of the represented value.
//
// Strategies (Kind):
//
//   - atomic:      one shared int64.
//   - shared:      same state reached through a handle copied by value.
//   - dynamic:     any other strategy behind the Counter interface, chosen at
//     construction; hub vertices can be routed to the funnel.
//   - sharded:     two cache-line separated shards picked by the worker's
//     generator plus a liveness flag; the last shard to empty reports.
//   - approximate: exact at or below a threshold; above it a decrement lands
//     with probability 2^-bits and subtracts 2^bits.
//   - funnel:      per-worker private slots folded into a shared total once a
//     batch fills or the total nears zero.
//
// All strategies except approximate lose no updates. The approximate counter
// may report a crossing early (two adjacent vertices both included) or late
// (the engine stalls and runs a recovery sweep); both effects grow with
// the skip bits and shrink as the threshold rises.
//
// Worker argument: strategies that keep per-worker state read w.ID and
// w.Rand(). A nil worker selects the exact, worker-independent path.
package counter
