// Package cpe implements the Concurrent Processing Engine: a persistent
// pool of worker goroutines that cooperatively chew through a processing
// function over an index range, admitted and drained through a two-phase
// ping/pong handshake.
//
// # Architecture
//
// [Group] owns a fixed number of worker goroutines, started at [Create] and
// parked until a [Job] is published. [Group.Execute] publishes the job,
// wakes the workers (ping), and blocks until the worker that drains the
// job's index range to zero has fired the job's callback and signalled
// completion (pong) — a full fence: every side effect a worker performed is
// visible to the caller once Execute returns.
//
// Workers claim contiguous batches of indices via an atomic fetch-and-add
// cursor, so no two workers ever process the same index, and a job with
// zero work is a no-op that still fires its callback exactly once, from the
// calling goroutine.
//
// # Thread safety
//
// Exactly one [Group.Execute] call may be in flight on a given [Group] at a
// time; a second call observed concurrently returns [ErrMisuse]. This
// includes a processing function calling Execute on the same Group it is
// running under: that call is rejected with ErrMisuse rather than run.
package cpe
