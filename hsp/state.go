package hsp

import (
	"context"
	"reflect"
)

// StateFunc is the state-procedure capability: given the processor's
// [Handle] and its own frame's data/metadata, it returns the [Action] to
// apply to the stack. A nil Action (the zero value) is equivalent to
// Done(1) — pop the frame that just returned.
//
// The driver never dereferences Data or Meta; they are caller-opaque.
type StateFunc func(h *Handle, data, meta any) Action

// State is an immutable record of a state-procedure capability plus the two
// opaque pointers available to it. Two states are equal iff all three
// fields compare equal (see [State.Equal]).
type State struct {
	Func StateFunc
	Data any
	Meta any
}

// NullState is the canonical null state: a null Func means "pop; we are
// done at this depth".
var NullState = State{}

// NewState builds a state record with the given data and a nil metadata.
func NewState(fn StateFunc, data any) State {
	return State{Func: fn, Data: data}
}

// NewStateWithMeta builds a state record with both data and metadata set.
func NewStateWithMeta(fn StateFunc, meta, data any) State {
	return State{Func: fn, Data: data, Meta: meta}
}

// IsNull reports whether s is the null state (Func == nil).
func (s State) IsNull() bool { return s.Func == nil }

// WithFunc returns a new state with the same Data/Meta but a different
// Func, typically used by a transition to redirect a state graph onto a
// new procedure without disturbing its payload.
func (s State) WithFunc(fn StateFunc) State {
	s.Func = fn
	return s
}

// Equal reports whether s and o have the same Func, Data, and Meta. Func
// values are compared by underlying code pointer (func values are not
// otherwise comparable in Go); Data and Meta are compared with
// reflect.DeepEqual, which is safe for both comparable and non-comparable
// underlying types.
func (s State) Equal(o State) bool {
	return funcPointer(s.Func) == funcPointer(o.Func) &&
		reflect.DeepEqual(s.Data, o.Data) &&
		reflect.DeepEqual(s.Meta, o.Meta)
}

func funcPointer(fn StateFunc) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}

// Handle is passed to every [StateFunc] activation. It carries the
// context.Context supplied to [Processor.Run] (for state functions that
// implement their own cancellation/timeouts — the driver itself never
// blocks or observes this context) and the processor's optional logger.
type Handle struct {
	ctx       context.Context
	logger    Logger
	code      Status
	stackSize int
}

// Context returns the context.Context the owning Run call was invoked
// with.
func (h *Handle) Context() context.Context { return h.ctx }

// Code returns the status code as of this activation — the value last
// settled by a Proceed or by the transition. A state function reads this
// to compute the code it passes to [Proceed]; it has no way to write it
// directly, by design: the only channel back to the driver is the
// returned [Action].
func (h *Handle) Code() Status { return h.code }

// StackSize returns the frame count at the start of this activation,
// current frame included, as seen from inside a state function (as
// opposed to [TransitionContext.StackSize], which reports it after the
// action has been applied).
func (h *Handle) StackSize() int { return h.stackSize }

// Logger returns the processor's configured logger, or a no-op logger if
// none was set via [WithLogger].
func (h *Handle) Logger() Logger {
	if h.logger == nil {
		return noopLogger{}
	}
	return h.logger
}

// Logger is the collaborator interface the core consumes for error
// reporting: Error(origin, fmt, args...). It is satisfied structurally by
// *internal/xlog.Logger; hsp does not import that package, to keep the
// driver free of a concrete logging dependency.
type Logger interface {
	Error(origin, format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Error(string, string, ...any) {}
