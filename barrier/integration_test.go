package barrier_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/archipelago/barrier"
	"github.com/joeycumines/archipelago/cpe"
)

// TestBarrier_rendezvousWithGroup drives the rendezvous pattern end to
// end: dispatch a job whose callback releases a Barrier, then Wait on it
// from the dispatching goroutine.
func TestBarrier_rendezvousWithGroup(t *testing.T) {
	g, err := cpe.Create(cpe.Config{NumThreads: 4})
	require.NoError(t, err)
	defer g.Destroy()

	b := barrier.New()

	start := time.Now()
	status := g.Execute(cpe.Job{
		PFunc:     func(any, int, int) { time.Sleep(time.Millisecond) },
		Callback:  b.AsCallback(),
		WorkSize:  16,
		BatchSize: 4,
	})
	require.Equal(t, cpe.Status(0), status)

	b.Wait()
	assert.Less(t, time.Since(start), 5*time.Second)

	// Repeating Wait without Reset returns immediately.
	waitDone := make(chan struct{})
	go func() {
		b.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(time.Second):
		t.Fatal("second Wait blocked despite no Reset")
	}
}
