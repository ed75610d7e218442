// SPDX-License-Identifier: MIT
// Package: peelmis/parallel
//
// pool.go - persistent workers and the blocking For loop.

package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by Close when the pool was already closed.
var ErrClosed = errors.New("parallel: pool closed")

// minAutoGrain bounds the automatic chunk size from below so tiny chunks do
// not drown the loop in cursor traffic.
const minAutoGrain = 64

// chunksPerWorker is the target number of chunks per worker for automatic
// grain selection (load balancing vs. cursor contention).
const chunksPerWorker = 8

// Option configures a Pool.
type Option func(*poolConfig)

type poolConfig struct {
	seed uint64
}

// WithSeed fixes the seed from which every worker generator is derived.
func WithSeed(seed uint64) Option {
	return func(c *poolConfig) { c.seed = seed }
}

// Pool is a fixed-size set of persistent workers.
type Pool struct {
	workers []*Worker
	inbox   []chan *job
	group   errgroup.Group

	mu     sync.Mutex // serializes For calls
	closed bool
}

// job is one For invocation shared by all workers.
type job struct {
	n     int
	grain int
	body  func(w *Worker, lo, hi int)
	next  atomic.Int64
	wg    sync.WaitGroup

	panicOnce sync.Once
	panicVal  any
}

// NewPool starts workers goroutines, each bound to one Worker for the pool's
// lifetime; the errgroup waits for them on Close. workers == 0 means
// runtime.GOMAXPROCS(0). A negative count is a programmer error and panics.
func NewPool(workers int, opts ...Option) *Pool {
	if workers < 0 {
		panic("parallel: negative worker count")
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	cfg := poolConfig{seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pool{
		workers: make([]*Worker, workers),
		inbox:   make([]chan *job, workers),
	}
	for i := 0; i < workers; i++ {
		w := newWorker(i, cfg.seed)
		ch := make(chan *job, 1)
		p.workers[i] = w
		p.inbox[i] = ch
		p.group.Go(func() error {
			for j := range ch {
				j.drain(w)
			}
			return nil
		})
	}
	return p
}

// Workers returns the number of workers.
func (p *Pool) Workers() int { return len(p.workers) }

// Worker returns the state of worker id. It is meant for code running
// outside For (setup, tests); inside a loop use the *Worker passed to the body.
func (p *Pool) Worker(id int) *Worker { return p.workers[id] }

// For runs body over [0,n) split into chunks of at most grain indices and
// blocks until all chunks are done. grain <= 0 selects a grain automatically.
// If a body panics, the remaining chunks still run and the first panic value
// is re-raised on the caller's goroutine after the barrier.
//
// Steps:
//  1. Pick the grain and take the pool lock (one loop at a time).
//  2. Run inline when one chunk suffices or the pool has one worker.
//  3. Otherwise hand one shared job to as many workers as there are chunks;
//     each claims chunks from an atomic cursor until it passes n.
//  4. Wait on the barrier and re-raise a recorded panic.
//
// Complexity: O(n/grain) cursor operations plus the body's own work.
func (p *Pool) For(n, grain int, body func(w *Worker, lo, hi int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 {
		grain = p.autoGrain(n)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		panic("parallel: For on closed pool")
	}

	// Small loops run inline on worker 0, whose goroutine is parked.
	if n <= grain || len(p.workers) == 1 {
		w := p.workers[0]
		for lo := 0; lo < n; lo += grain {
			body(w, lo, min(lo+grain, n))
		}
		return
	}

	// Fan out; workers beyond the chunk count would only find an exhausted cursor.
	j := &job{n: n, grain: grain, body: body}
	active := min(len(p.workers), (n+grain-1)/grain)
	j.wg.Add(active)
	for i := 0; i < active; i++ {
		p.inbox[i] <- j
	}
	j.wg.Wait()
	if j.panicVal != nil {
		panic(j.panicVal)
	}
}

// autoGrain aims for chunksPerWorker chunks per worker.
func (p *Pool) autoGrain(n int) int {
	g := n / (len(p.workers) * chunksPerWorker)
	return max(g, minAutoGrain)
}

// Close stops all workers and waits for them to exit.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.closed = true
	for _, ch := range p.inbox {
		close(ch)
	}
	return p.group.Wait()
}

// drain claims chunks until the cursor passes n.
func (j *job) drain(w *Worker) {
	defer j.wg.Done()
	g := int64(j.grain)
	for {
		lo := j.next.Add(g) - g
		if lo >= int64(j.n) {
			return
		}
		j.run(w, int(lo), int(min(lo+g, int64(j.n))))
	}
}

// run executes one chunk; a panic is recorded and the worker keeps claiming.
func (j *job) run(w *Worker, lo, hi int) {
	defer func() {
		if r := recover(); r != nil {
			j.panicOnce.Do(func() { j.panicVal = r })
		}
	}()
	j.body(w, lo, hi)
}
