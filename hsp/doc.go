// Package hsp implements the Hierarchical State Processor: a stack-based,
// continuation-style state machine whose current state may push further
// states to be executed before itself, chosen by a user-supplied transition
// function.
//
// # Architecture
//
// A [Processor] pairs an entry [State] with a [Transition]. [Processor.Run]
// drives execution: the top of an internal frame stack is invoked, the
// [Action] it returns (a discriminated union of "pop N frames" or "replace
// and push further frames") is applied to the stack, and the transition is
// consulted exactly once per state return — including the final return into
// the null state, once the stack empties.
//
// # Composition
//
// States are value types; cyclic or self-referential graphs are expressed
// naturally by pointing a state's data back at itself. [ChainExecute] is a
// built-in state function demonstrating the intended composition pattern: a
// [ChainNode] carries the state to run next and the other node to resume
// through once it returns, building a two-state ping-pong without either
// side knowing about the driver's stack.
//
// # Thread safety
//
// Exactly one [Processor.Run] call may execute on a given [Processor] at a
// time. The driver itself never blocks or spawns goroutines; any
// suspension happens inside user state code (for example, dispatching work
// to a [github.com/joeycumines/archipelago/cpe.Group] and waiting on a
// [github.com/joeycumines/archipelago/barrier.Barrier]).
package hsp
