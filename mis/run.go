// SPDX-License-Identifier: MIT
// Package: peelmis/mis
//
// run.go - public entry point and strategy dispatch.

package mis

import (
	"context"
	"fmt"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/katalvlaran/peelmis/counter"
	"github.com/katalvlaran/peelmis/csr"
	"github.com/katalvlaran/peelmis/parallel"
	"github.com/katalvlaran/peelmis/priority"
)

// Run computes a maximal independent set of the symmetrized graph g under
// the rank order p. The logger is taken from ctx (ctxzap); Run is not
// cancellable and always runs to completion or fails with ErrStalled.
func Run(ctx context.Context, g *csr.Graph, p *priority.Permutation, opts ...Option) (*Result, error) {
	if p.Len() != g.N {
		return nil, fmt.Errorf("Run: graph has %d vertices, permutation %d: %w", g.N, p.Len(), ErrSizeMismatch)
	}
	cfg := newConfig(opts...)

	pool := cfg.pool
	if pool == nil {
		pool = parallel.NewPool(cfg.workers, parallel.WithSeed(cfg.workerSeed))
		defer pool.Close()
	}
	env := counter.NewEnv(pool.Workers(), cfg.counterOpts...)

	log := ctxzap.Extract(ctx).With(
		zap.Stringer("counter", cfg.kind),
		zap.Int("workers", pool.Workers()),
		zap.Int("n", g.N),
		zap.Int("m", g.M),
	)

	res := &Result{Counter: cfg.kind, Workers: pool.Workers()}
	start := time.Now()

	var err error
	switch cfg.kind {
	case counter.KindAtomic:
		err = newEngine[counter.Atomic](g, p, pool, env, cfg, log).run(res)
	case counter.KindShared:
		err = newEngine[counter.Shared](g, p, pool, env, cfg, log).run(res)
	case counter.KindDynamic:
		err = newEngine[counter.Dynamic](g, p, pool, env, cfg, log).run(res)
	case counter.KindSharded:
		err = newEngine[counter.Sharded](g, p, pool, env, cfg, log).run(res)
	case counter.KindApproximate:
		err = newEngine[counter.Approximate](g, p, pool, env, cfg, log).run(res)
	case counter.KindFunnel:
		err = newEngine[counter.Funnel](g, p, pool, env, cfg, log).run(res)
	default:
		err = fmt.Errorf("Run: %w", counter.ErrUnknownKind)
	}
	if err != nil {
		log.Error("mis run failed", zap.Error(err))
		return nil, err
	}

	res.Elapsed = time.Since(start)
	log.Debug("mis run done",
		zap.Int("size", res.Size),
		zap.Int("rounds", res.Rounds),
		zap.Int("recoveries", res.Recoveries),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}
