package cpe

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Group is a persistent pool of worker goroutines admitting at most one
// in-flight [Job] at a time. The zero value is not usable; build one with
// [Create].
type Group struct {
	cfg     Config
	logger  Logger
	metrics *Metrics

	cancel context.CancelFunc
	eg     *errgroup.Group

	mu     sync.Mutex
	pingCh chan struct{} // closed and replaced on every ping

	version  atomic.Uint64
	job      atomic.Pointer[jobState]
	inFlight atomic.Bool
}

type jobState struct {
	job       Job
	nextIndex atomic.Int64
	active    atomic.Int64
	done      chan struct{}
	started   time.Time
}

// Create spawns cfg.NumThreads worker goroutines, parked until the first
// [Group.Execute] call. It returns [ErrMisuse] if cfg.NumThreads < 1;
// [ErrResource] is reserved for symmetry with designs where worker
// creation can fail, but goroutine creation cannot fail in practice.
func Create(cfg Config, opts ...Option) (*Group, error) {
	if cfg.NumThreads < 1 {
		return nil, NewStatusError(ErrMisuse)
	}

	ctx, cancel := context.WithCancel(context.Background())
	eg, egCtx := errgroup.WithContext(ctx)

	g := &Group{
		cfg:    cfg,
		cancel: cancel,
		eg:     eg,
		pingCh: make(chan struct{}),
	}
	for _, o := range opts {
		if o != nil {
			o.apply(g)
		}
	}

	for i := 0; i < cfg.NumThreads; i++ {
		eg.Go(func() error { return g.workerLoop(egCtx) })
	}

	return g, nil
}

func (g *Group) log() Logger {
	if g.logger == nil {
		return noopLogger{}
	}
	return g.logger
}

// Execute dispatches job to the group, blocks until it has run to
// completion (pong observed), and returns its status. A Job with
// WorkSize == 0 is a no-op: Callback fires exactly once from the calling
// goroutine and Execute returns immediately.
//
// Execute returns [ErrMisuse] if job.PFunc is nil, job.BatchSize < 1, or
// another Execute call is already in flight on this Group.
func (g *Group) Execute(job Job) Status {
	if job.PFunc == nil || job.BatchSize < 1 {
		return ErrMisuse
	}
	if !g.inFlight.CompareAndSwap(false, true) {
		g.log().Error("cpe.Group.Execute", "rejected: a job is already in flight")
		return ErrMisuse
	}
	defer g.inFlight.Store(false)

	start := time.Now()
	if job.WorkSize <= 0 {
		if job.Callback != nil {
			job.Callback(job.Data, 0)
		}
		g.observe(start)
		return 0
	}

	js := &jobState{job: job, started: start, done: make(chan struct{})}
	js.active.Store(int64(g.cfg.NumThreads))
	if g.metrics != nil {
		g.metrics.activeWorkers.Set(float64(g.cfg.NumThreads))
	}
	g.job.Store(js)

	g.mu.Lock()
	g.version.Add(1)
	old := g.pingCh
	g.pingCh = make(chan struct{})
	g.mu.Unlock()
	close(old)

	if g.cfg.BusyWait {
		for {
			select {
			case <-js.done:
				return 0
			default:
				runtime.Gosched()
			}
		}
	}
	<-js.done
	return 0
}

// Destroy stops the worker pool and waits for every worker to exit. Safe
// to call only when no job is in flight.
func (g *Group) Destroy() {
	g.cancel()
	g.mu.Lock()
	old := g.pingCh
	g.mu.Unlock()
	close(old)
	_ = g.eg.Wait()
}

func (g *Group) observe(start time.Time) {
	if g.metrics == nil {
		return
	}
	g.metrics.jobsTotal.Inc()
	g.metrics.jobDuration.Observe(time.Since(start).Seconds())
}

func (g *Group) workerLoop(ctx context.Context) error {
	var seen uint64
	for {
		var err error
		seen, err = g.awaitPing(ctx, seen)
		if err != nil {
			return err
		}

		if js := g.job.Load(); js != nil {
			g.claimBatches(js)
		}
	}
}

// awaitPing blocks until the version counter advances past seen, or ctx is
// cancelled, returning the new version.
func (g *Group) awaitPing(ctx context.Context, seen uint64) (uint64, error) {
	if g.cfg.BusyWait {
		for {
			if v := g.version.Load(); v != seen {
				return v, nil
			}
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			runtime.Gosched()
		}
	}

	for {
		// The version check and the pingCh read must happen as one step
		// under g.mu, the same mutex Execute holds while bumping the
		// version and swapping pingCh — otherwise a worker that re-enters
		// awaitPing after both the bump and the swap already happened
		// would read the new (still-open) channel and block on it,
		// permanently missing the ping it was waiting for.
		g.mu.Lock()
		if v := g.version.Load(); v != seen {
			g.mu.Unlock()
			return v, nil
		}
		ch := g.pingCh
		g.mu.Unlock()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-ch:
			// closed either by Execute (after a version bump) or by
			// Destroy (with ctx cancelled) — loop and re-check.
		}
	}
}

// claimBatches repeatedly fetches-and-adds BatchSize to js.nextIndex,
// running PFunc over each claimed, bounded batch, until the job's index
// range is exhausted. The worker that drains active to zero fires the
// job's callback and signals completion exactly once.
func (g *Group) claimBatches(js *jobState) {
	workSize := int64(js.job.WorkSize)
	batch := int64(js.job.BatchSize)

	for {
		claimed := js.nextIndex.Add(batch) - batch
		if claimed >= workSize {
			break
		}
		end := claimed + batch
		if end > workSize {
			end = workSize
		}
		for i := claimed; i < end; i++ {
			js.job.PFunc(js.job.Data, js.job.WorkSize, int(i))
		}
	}

	if js.active.Add(-1) == 0 {
		if g.metrics != nil {
			g.metrics.activeWorkers.Set(0)
		}
		if js.job.Callback != nil {
			js.job.Callback(js.job.Data, js.job.WorkSize)
		}
		g.observe(js.started)
		close(js.done)
	}
}
