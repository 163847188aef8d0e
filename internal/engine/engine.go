package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gyaneshwarpardhi/evochain/internal/condition"
	"github.com/gyaneshwarpardhi/evochain/internal/config"
	"github.com/gyaneshwarpardhi/evochain/internal/dag"
	"github.com/gyaneshwarpardhi/evochain/internal/metrics"
	"github.com/gyaneshwarpardhi/evochain/internal/species"
	"github.com/gyaneshwarpardhi/evochain/internal/store"
)

var (
	// ErrQueueFull is returned when the work queue has no free slot.
	ErrQueueFull = errors.New("work queue full")
	// ErrTimeout is returned when a resolution does not finish in time.
	ErrTimeout = errors.New("resolve timeout")
)

// Engine resolves evolution chains on a bounded worker pool and imports
// species details into the store.
type Engine struct {
	describer atomic.Pointer[condition.Describer]
	store     store.Store
	pool      *workerPool[*work]
	conf      config.EngineConf
}

// work is either a resolution (result != nil) or an import.
type work struct {
	detail *species.Detail
	result chan *dag.Chain
}

// New creates an Engine using conf and starts the worker pool.
func New(ctx context.Context, desc *condition.Describer, st store.Store, conf config.EngineConf) *Engine {
	e := &Engine{store: st, conf: conf}
	e.describer.Store(desc)
	e.pool = newWorkerPool(ctx, conf.Workers, conf.QueueDepth, e.process)
	return e
}

// SwapDescriber atomically replaces the describer (used on hot-reload).
func (e *Engine) SwapDescriber(d *condition.Describer) {
	e.describer.Store(d)
}

// Describer returns the active describer.
func (e *Engine) Describer() *condition.Describer {
	return e.describer.Load()
}

// Store returns the backing species store.
func (e *Engine) Store() store.Store {
	return e.store
}

// Resolve resolves d on the pool and waits for the result.
func (e *Engine) Resolve(ctx context.Context, d *species.Detail) (*dag.Chain, error) {
	start := time.Now()
	w := &work{detail: d, result: make(chan *dag.Chain, 1)}
	if !e.pool.Submit(w) {
		return nil, fmt.Errorf("%w (capacity %d)", ErrQueueFull, e.conf.QueueDepth)
	}

	timeout := e.conf.ResolveTimeout()
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case c := <-w.result:
		metrics.ResolveDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)
		return c, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w after %v", ErrTimeout, timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ResolveStored loads the detail for id from the store and resolves it.
func (e *Engine) ResolveStored(ctx context.Context, id int) (*dag.Chain, error) {
	d, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.Resolve(ctx, d)
}

// Import enqueues d to be written to the store. Returns false if the queue is full.
func (e *Engine) Import(d *species.Detail) bool {
	if !e.pool.Submit(&work{detail: d}) {
		metrics.ImportsDropped.Inc()
		return false
	}
	metrics.ImportsEnqueued.Inc()
	return true
}

// QueueUtilization returns queue used / capacity (0–1).
func (e *Engine) QueueUtilization() float64 {
	if e.pool.QueueCap() == 0 {
		return 0
	}
	return float64(e.pool.QueueLen()) / float64(e.pool.QueueCap())
}

func (e *Engine) process(ctx context.Context, w *work) {
	if w.result != nil {
		w.result <- e.resolve(w.detail)
		return
	}
	if err := e.store.Put(ctx, w.detail); err != nil {
		metrics.ImportsFailed.Inc()
		slog.Warn("species import failed", "species_id", w.detail.ID, "err", err)
	}
}

func (e *Engine) resolve(d *species.Detail) *dag.Chain {
	c := dag.Resolve(d, countingDescriber{e.describer.Load()})
	metrics.Resolutions.WithLabelValues(string(c.Shape)).Inc()
	if c.Truncated {
		metrics.WalksTruncated.Inc()
		slog.Warn("evolution walk truncated", "species_id", d.ID, "cap", dag.MaxWalkSteps)
	}
	return c
}

// countingDescriber counts conditions that fall back to their raw token.
type countingDescriber struct {
	*condition.Describer
}

func (c countingDescriber) Describe(cond condition.Condition) string {
	if condition.IsFallback(cond) {
		metrics.ConditionFallbacks.Inc()
	}
	return c.Describer.Describe(cond)
}

// Shutdown drains the pool and closes the store.
func (e *Engine) Shutdown() {
	e.pool.Drain()
	if err := e.store.Close(); err != nil {
		slog.Warn("store close failed", "err", err)
	}
}
