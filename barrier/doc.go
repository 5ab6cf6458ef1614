// Package barrier implements the flag barrier: a one-shot, latching event
// used to rendezvous an HSP state with asynchronous work dispatched through
// a cpe.Group.
//
// The integration pattern: an HSP state that wants to suspend on async work
// creates a [Barrier], packages its [Barrier.AsCallback] as the thread-group
// job's callback, dispatches the job, calls [Barrier.Wait], then proceeds.
// If the job completes before Wait is entered, Wait still returns
// immediately — the flag is latched, not edge-triggered.
package barrier
