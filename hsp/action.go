package hsp

// actionKind discriminates the Action union. Keeping it unexported forces
// callers through the Done/Proceed constructors, trading an ambient
// action-slot for a return-value discriminated union with compiler-checked
// construction.
type actionKind int

const (
	actionNone actionKind = iota
	actionDone
	actionProceed
)

// Action is the state-side action channel: what a [StateFunc] tells the
// driver to do with the stack after it returns. The zero value is a no-op,
// equivalent to Done(1).
type Action struct {
	kind actionKind
	pop  int
	code Status
	push []State
}

// Done pops n frames (including the frame that just returned) from the
// stack. n is saturated to the current stack size by the driver.
func Done(n int) Action {
	return Action{kind: actionDone, pop: n}
}

// Proceed replaces the current frame and pushes further frames, setting the
// propagated status code to code.
//
// states[0] replaces the frame that returned; each subsequent element is
// pushed above it, with the last element becoming the new stack top. A
// single-element states therefore means "replace in place, no extra push"
// — e.g. a state that loops by proceeding with itself. An empty states is
// equivalent to Done(1) with code applied.
func Proceed(code Status, states ...State) Action {
	return Action{kind: actionProceed, code: code, push: states}
}
