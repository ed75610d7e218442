// Package parallel is the small fork-join runtime used by the peeling engine.
//
// A Pool owns a fixed set of persistent worker goroutines. Every worker has a
// stable small integer id (0..Workers()-1) for the pool's whole lifetime and a
// private Worker value carrying per-worker state such as a fast xorshift
// generator. Counters use that id to select private slots (funnel buffers) and
// the generator to pick shards or skip decrements without locks or syscalls.
//
// For is a blocking data-parallel loop: it hands out [lo,hi) chunks of the
// index space from an atomic cursor and returns only once every chunk has run,
// so consecutive For calls form the round barriers of the engine.
//
// Loop bodies must not call For on the same pool (the workers are already
// busy running the outer loop).
package parallel
