// SPDX-License-Identifier: MIT
// Package: peelmis/mis
//
// engine.go - the generic peeling loop.

package mis

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/peelmis/counter"
	"github.com/katalvlaran/peelmis/csr"
	"github.com/katalvlaran/peelmis/parallel"
	"github.com/katalvlaran/peelmis/priority"
)

// engine holds the shared per-run state. counters and state are written
// concurrently by workers; everything else is read-only during rounds.
type engine[T any, C counter.Cell[T]] struct {
	g     *csr.Graph
	p     *priority.Permutation
	pool  *parallel.Pool
	env   *counter.Env
	grain int
	exact bool
	log   *zap.Logger

	counters []T
	state    []atomic.Uint32

	hits *parallel.Buffers[uint32] // exclusions (step 2) or crossings (step 3)
	offs []uint64                  // degree prefix sums of the list being scanned
}

func newEngine[T any, C counter.Cell[T]](g *csr.Graph, p *priority.Permutation, pool *parallel.Pool,
	env *counter.Env, cfg config, log *zap.Logger) *engine[T, C] {
	return &engine[T, C]{
		g:        g,
		p:        p,
		pool:     pool,
		env:      env,
		grain:    cfg.grain,
		exact:    env.Exact(cfg.kind),
		log:      log,
		counters: make([]T, g.N),
		state:    make([]atomic.Uint32, g.N),
		hits:     parallel.NewBuffers[uint32](pool),
	}
}

func (e *engine[T, C]) cell(v uint32) C { return C(&e.counters[v]) }

// init sets every counter to its in-degree and returns the initial frontier.
//
// Steps:
//  1. Count lower-ranked neighbours per vertex (priority.InDegrees).
//  2. Initialise every cell with its count in one parallel pass.
//  3. Pack the vertices with no lower-ranked neighbour: the rootset.
//
// Complexity: O(n + m) work, O((n + m)/P) span for P workers.
func (e *engine[T, C]) init() ([]uint32, error) {
	deg, err := priority.InDegrees(e.g, e.p, e.pool)
	if err != nil {
		return nil, err
	}
	e.pool.For(e.g.N, e.grain, func(_ *parallel.Worker, lo, hi int) {
		for v := lo; v < hi; v++ {
			e.cell(uint32(v)).Init(deg[v], e.env)
		}
	})
	return parallel.PackIndex(e.pool, e.g.N, func(v int) bool { return deg[v] == 0 }), nil
}

// run drives rounds until every vertex is decided.
//
// Each round includes the frontier, excludes its undecided neighbours and
// decrements the counters of higher-ranked neighbours of the excluded
// vertices; counters that cross zero form the next frontier. An empty
// frontier with undecided vertices left is fatal for exact counters and
// triggers a recovery sweep otherwise.
//
// Complexity: O(n + m) work overall for exact counters, since every vertex
// enters the frontier or the removed set once and every edge is scanned a
// constant number of times; rounds are bounded by the depth of the
// orientation. Each recovery sweep adds O(n + m).
func (e *engine[T, C]) run(res *Result) error {
	n := e.g.N
	start := time.Now()
	frontier, err := e.init()
	if err != nil {
		return err
	}
	res.InitElapsed = time.Since(start)
	e.log.Debug("counters initialised",
		zap.Int("frontier", len(frontier)),
		zap.Duration("elapsed", res.InitElapsed),
	)

	// finished counts included plus excluded vertices.
	var (
		finished int
		carry    []uint32 // excluded by a recovery sweep, still to propagate
	)
	for finished < n {
		if len(frontier) == 0 && len(carry) == 0 {
			if e.exact {
				return fmt.Errorf("Run: round %d: %d of %d vertices decided: %w",
					res.Rounds, finished, n, ErrStalled)
			}
			frontier, carry = e.sweep()
			res.Recoveries++
			finished += len(carry)
			e.log.Debug("recovery sweep",
				zap.Int("round", res.Rounds),
				zap.Int("promoted", len(frontier)),
				zap.Int("excluded", len(carry)),
			)
		}

		roundStart := time.Now()
		res.Rounds++

		// 1. Include.
		e.pool.For(len(frontier), e.grain, func(_ *parallel.Worker, lo, hi int) {
			for _, u := range frontier[lo:hi] {
				e.state[u].Store(included)
			}
		})

		// 2. Exclude undecided neighbours; exactly one forcer wins each.
		removed := e.exclude(frontier)
		finished += len(frontier) + len(removed)
		removed = append(removed, carry...)
		carry = nil

		// 3-4. Propagate along oriented edges; crossings form the next frontier.
		next := e.propagate(removed)

		stat := RoundStat{
			Round:    res.Rounds,
			Frontier: len(frontier),
			Removed:  len(removed),
			Elapsed:  time.Since(roundStart),
		}
		res.Stats = append(res.Stats, stat)
		e.log.Debug("round",
			zap.Int("round", stat.Round),
			zap.Int("frontier", stat.Frontier),
			zap.Int("removed", stat.Removed),
			zap.Duration("elapsed", stat.Elapsed),
		)
		frontier = next
	}

	// Materialise membership and count it.
	res.InSet = make([]bool, n)
	e.pool.For(n, e.grain, func(_ *parallel.Worker, lo, hi int) {
		for v := lo; v < hi; v++ {
			res.InSet[v] = e.state[v].Load() == included
		}
	})
	res.Size = int(parallel.Sum(e.pool, n, func(v int) int64 {
		if res.InSet[v] {
			return 1
		}
		return 0
	}))
	return nil
}
