package hsp

import (
	"context"

	"github.com/joeycumines/archipelago/hsp/internal/xmath"
)

// Processor pairs an entry state with a transition. Exactly one [Run] call
// may execute on a given Processor at a time; the stack and status code
// that Run maintains are not part of this caller-visible type — they exist
// only inside one Run invocation.
type Processor struct {
	Entry      State
	Transition Transition

	maxStack int
	maxPush  int
	logger   Logger
}

// New builds a Processor from an entry state, a transition, and options.
func New(entry State, transition Transition, opts ...Option) *Processor {
	p := &Processor{Entry: entry, Transition: transition}
	for _, o := range opts {
		if o != nil {
			o.apply(p)
		}
	}
	return p
}

func (p *Processor) bounds() (maxStack, maxPush int) {
	maxStack = p.maxStack
	if maxStack <= 0 {
		maxStack = DefaultMaxStack
	}
	maxPush = p.maxPush
	if maxPush <= 0 {
		maxPush = DefaultMaxPush
	}
	return
}

// Run drives the processor to completion and returns the final status
// code.
//
// If Entry is the null state, Run returns 0 immediately without invoking
// the transition: there is no main loop to enter on a null entry state.
//
// Run never panics on a well-formed Processor; a state-stack overflow (the
// frame stack exceeding the configured maximum depth, or a single Proceed
// attempting to push more than the configured maximum) is reported as
// [ErrStackOverflow], with the stack discarded before return.
func (p *Processor) Run(ctx context.Context) Status {
	if p.Entry.IsNull() {
		return 0
	}
	if ctx == nil {
		ctx = context.Background()
	}

	maxStack, maxPush := p.bounds()
	h := &Handle{ctx: ctx, logger: p.logger}

	stack := make([]State, 0, xmath.Clamp(maxStack, 1, 1<<16))
	stack = append(stack, p.Entry)
	code := Status(0)

	// nullPassDone tracks whether the driver has already delivered the one
	// transition invocation with cur == NullState for the current emptying
	// of the stack: once the stack first goes empty, the transition still
	// fires exactly once more with Prev and Next both null before Run
	// returns. Without a transition there is nothing for that pass to
	// drive, so it is never owed.
	nullPassDone := p.Transition.Func == nil

	for len(stack) > 0 || !nullPassDone {
		var cur State
		if len(stack) > 0 {
			cur = stack[len(stack)-1]
		}

		h.code = code
		h.stackSize = len(stack)

		var act Action
		if cur.Func != nil {
			act = cur.Func(h, cur.Data, cur.Meta)

			switch act.kind {
			case actionProceed:
				k := 0
				if len(act.push) > 0 {
					k = len(act.push) - 1
				}
				if k > maxPush {
					return ErrStackOverflow
				}
				newLen := len(stack) - 1 + len(act.push)
				if newLen > maxStack {
					return ErrStackOverflow
				}
				stack = stack[:len(stack)-1]
				stack = append(stack, act.push...)
				code = act.code

			default: // actionNone, actionDone: both pop frames
				n := act.pop
				if act.kind == actionNone {
					n = 1
				}
				n = xmath.Clamp(n, 0, len(stack))
				stack = stack[:len(stack)-n]
			}
		}

		if p.Transition.Func != nil {
			var next State
			if len(stack) > 0 {
				next = stack[len(stack)-1]
			}
			tc := &TransitionContext{
				Prev:      cur,
				Next:      next,
				Code:      code,
				StackSize: len(stack),
				Data:      p.Transition.Data,
			}
			p.Transition.Func(tc)
			code = tc.Code

			switch {
			case tc.Next.IsNull():
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			case len(stack) == 0:
				stack = append(stack, tc.Next)
			case !tc.Next.Equal(next):
				stack[len(stack)-1] = tc.Next
			}

			if len(stack) == 0 {
				if cur.IsNull() {
					nullPassDone = true
				}
			} else {
				nullPassDone = false
			}
		}
	}

	return code
}
