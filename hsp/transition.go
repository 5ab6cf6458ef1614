package hsp

// TransitionFunc is the transition-procedure capability invoked after every
// state return, including the final return into the null state once the
// stack empties. It may rewrite TransitionContext.Next and
// TransitionContext.Code; if it does not touch either field, the driver's
// own computed values apply unchanged.
type TransitionFunc func(tc *TransitionContext)

// Transition pairs a [TransitionFunc] with its opaque data. A Transition
// whose Func is nil is the null transition (identity) and is never
// invoked.
type Transition struct {
	Func TransitionFunc
	Data any
}

// NullTransition is the canonical null transition.
var NullTransition = Transition{}

// NewTransition builds a transition record.
func NewTransition(fn TransitionFunc, data any) Transition {
	return Transition{Func: fn, Data: data}
}

// TransitionContext is passed by pointer to a [TransitionFunc]. Prev,
// StackSize, and Data are informational; Next and Code are mutable and
// feed back into the driver.
type TransitionContext struct {
	// Prev is the state that just returned.
	Prev State
	// Next is the state the driver computed as the new stack top (or
	// NullState if the stack is now empty). A transition may overwrite
	// this to redirect execution.
	Next State
	// Code is the status code as of this activation. A transition may
	// overwrite this.
	Code Status
	// StackSize is the frame count after the action but before this
	// transition runs.
	StackSize int
	// Data is the Transition's opaque data.
	Data any
}
