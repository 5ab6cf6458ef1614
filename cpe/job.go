package cpe

// ProcessFunc is the parallelisable processing-function capability: given
// the job's opaque data, its total work size, and one claimed index, it
// performs whatever work corresponds to that index. The engine guarantees
// every index in [0, WorkSize) is passed to exactly one ProcessFunc call
// across the whole job, with no two calls sharing an index — but gives no
// ordering guarantee between calls, so ProcessFunc must be safe to run
// concurrently on distinct indices.
type ProcessFunc func(data any, workSize, index int)

// CallbackFunc is the thread-group callback capability, invoked exactly
// once per [Group.Execute] call — from whichever worker goroutine happens
// to drain the job's remaining indices to zero, or from the calling
// goroutine itself when WorkSize is 0.
type CallbackFunc func(data any, workSize int)

// Job describes one unit of dispatch to a [Group]. BatchSize controls how
// many indices a worker claims per atomic fetch-and-add; larger batches
// reduce contention on the claim cursor at the cost of coarser load
// balancing across workers.
type Job struct {
	Data      any
	WorkSize  int
	BatchSize int
	PFunc     ProcessFunc
	Callback  CallbackFunc
}
