package barrier

import (
	"sync"
	"sync/atomic"
)

// Barrier is a one-shot, latching rendezvous event: once Release is called,
// every Wait — past, present, or future — returns immediately, until Reset
// clears it. The zero value is not usable; build one with [New].
type Barrier struct {
	mu   sync.Mutex
	cond *sync.Cond
	flag atomic.Bool
}

// New builds a Barrier ready for use.
func New() *Barrier {
	b := &Barrier{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until Release is observed. If the flag is already set —
// including by a Release that happened before Wait was called — Wait
// returns immediately without blocking.
func (b *Barrier) Wait() {
	if b.flag.Load() {
		return
	}
	b.mu.Lock()
	for !b.flag.Load() {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// Release latches the barrier and wakes every waiter. Idempotent: calling
// Release on an already-released Barrier has no further effect beyond a
// redundant broadcast.
func (b *Barrier) Release() {
	b.mu.Lock()
	b.flag.Store(true)
	b.cond.Broadcast()
	b.mu.Unlock()
}

// Reset clears the flag. Only legal when no goroutine is currently blocked
// in Wait — calling it concurrently with an in-progress Wait is undefined.
func (b *Barrier) Reset() {
	b.mu.Lock()
	b.flag.Store(false)
	b.mu.Unlock()
}

// AsCallback adapts Release to the (data any, workSize int) shape a
// cpe.Group job callback expects, so a Barrier can be wired in directly as
// a thread-group job's Callback field without this package importing cpe.
func (b *Barrier) AsCallback() func(data any, workSize int) {
	return func(any, int) { b.Release() }
}
