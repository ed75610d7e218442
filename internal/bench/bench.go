// SPDX-License-Identifier: MIT
// Package: peelmis/internal/bench
//
// Package bench times repeated MIS runs over one graph and renders the
// "### key: value" report consumed by the benchmark scripts.

package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/segmentio/ksuid"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"

	"github.com/katalvlaran/peelmis/counter"
	"github.com/katalvlaran/peelmis/csr"
	"github.com/katalvlaran/peelmis/mis"
	"github.com/katalvlaran/peelmis/parallel"
	"github.com/katalvlaran/peelmis/priority"
)

// ErrBadSpec reports a Spec that cannot be run.
var ErrBadSpec = errors.New("bench: invalid spec")

// Spec describes one benchmark: a counter configuration timed Repeats times.
type Spec struct {
	Label   string
	Graph   string // display name for the report
	Counter counter.Kind
	// CounterOptions tune the counter environment.
	CounterOptions []counter.Option
	Workers        int // 0 means GOMAXPROCS
	Seed           int64
	Repeats        int
	Warmup         bool
	Verify         bool
}

// Host describes the machine a report was produced on. Fields are zero when
// the platform does not expose them.
type Host struct {
	CPUModel    string
	LogicalCPUs int
	MemoryBytes uint64
	GOMAXPROCS  int
}

// Report is the outcome of Run.
type Report struct {
	RunID   string
	Label   string
	Graph   string
	Counter counter.Kind
	Workers int
	N, M    int
	Host    Host

	// Times holds the wall time of every timed repeat.
	Times []time.Duration
	Mean  time.Duration

	// The remaining fields describe the last repeat.
	InitElapsed time.Duration
	RoundTimes  []time.Duration
	Size        int
	Rounds      int
	Recoveries  int

	Verified bool
	// VerifyErr is set when verification was requested and failed.
	VerifyErr error
	// Conflicts counts adjacent member pairs (non-zero only for inexact counters).
	Conflicts int

	Result *mis.Result
}

// Run times spec on g. One pool serves the warm-up and every repeat so
// worker identities stay fixed, and every repeat uses the same rank order.
func Run(ctx context.Context, g *csr.Graph, spec Spec) (*Report, error) {
	if spec.Repeats < 1 {
		return nil, fmt.Errorf("Run: repeats=%d: %w", spec.Repeats, ErrBadSpec)
	}
	if spec.Workers < 0 {
		return nil, fmt.Errorf("Run: workers=%d: %w", spec.Workers, ErrBadSpec)
	}
	if !spec.Counter.Valid() {
		return nil, fmt.Errorf("Run: %w", counter.ErrUnknownKind)
	}

	rep := &Report{
		RunID:   ksuid.New().String(),
		Label:   spec.Label,
		Graph:   spec.Graph,
		Counter: spec.Counter,
		N:       g.N,
		M:       g.M,
		Host:    probeHost(ctx),
	}
	log := ctxzap.Extract(ctx).With(
		zap.String("run_id", rep.RunID),
		zap.String("label", spec.Label),
		zap.Stringer("counter", spec.Counter),
	)
	ctx = ctxzap.ToContext(ctx, log)

	pool := parallel.NewPool(spec.Workers, parallel.WithSeed(uint64(spec.Seed)))
	defer pool.Close()
	rep.Workers = pool.Workers()

	perm := priority.Seeded(g.N, spec.Seed)
	opts := []mis.Option{
		mis.WithPool(pool),
		mis.WithCounter(spec.Counter),
		mis.WithCounterOptions(spec.CounterOptions...),
	}

	if spec.Warmup {
		if _, err := mis.Run(ctx, g, perm, opts...); err != nil {
			return nil, fmt.Errorf("Run: warm-up: %w", err)
		}
	}

	var last *mis.Result
	var total time.Duration
	for i := 0; i < spec.Repeats; i++ {
		res, err := mis.Run(ctx, g, perm, opts...)
		if err != nil {
			return nil, fmt.Errorf("Run: repeat %d: %w", i, err)
		}
		rep.Times = append(rep.Times, res.Elapsed)
		total += res.Elapsed
		last = res
	}
	rep.Mean = total / time.Duration(spec.Repeats)

	rep.Result = last
	rep.InitElapsed = last.InitElapsed
	rep.Size = last.Size
	rep.Rounds = last.Rounds
	rep.Recoveries = last.Recoveries
	rep.RoundTimes = make([]time.Duration, len(last.Stats))
	for i, st := range last.Stats {
		rep.RoundTimes[i] = st.Elapsed
	}

	if spec.Verify {
		rep.Verified = true
		rep.Conflicts = mis.Conflicts(g, last.InSet)
		rep.VerifyErr = mis.Verify(g, last.InSet)
		if rep.VerifyErr != nil {
			log.Warn("verification failed", zap.Error(rep.VerifyErr), zap.Int("conflicts", rep.Conflicts))
		}
	}

	log.Info("benchmark done",
		zap.Int("repeats", spec.Repeats),
		zap.Duration("mean", rep.Mean),
		zap.Int("size", rep.Size),
		zap.Int("rounds", rep.Rounds),
	)
	return rep, nil
}

// probeHost collects host facts; probe failures are logged and leave the
// field zero.
func probeHost(ctx context.Context) Host {
	h := Host{GOMAXPROCS: runtime.GOMAXPROCS(0)}
	log := ctxzap.Extract(ctx)

	if infos, err := cpu.InfoWithContext(ctx); err != nil {
		log.Debug("cpu info unavailable", zap.Error(err))
	} else if len(infos) > 0 {
		h.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.CountsWithContext(ctx, true); err != nil {
		log.Debug("cpu count unavailable", zap.Error(err))
	} else {
		h.LogicalCPUs = n
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		log.Debug("memory info unavailable", zap.Error(err))
	} else {
		h.MemoryBytes = vm.Total
	}
	return h
}
