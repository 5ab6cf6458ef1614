package hsp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stateInc and stateDec, plus transition0, are the counting chain used to
// verify the driver loop: inc counts up while proceeding with itself, then
// hands off to dec (installed by the transition, which also counts its own
// invocations) which counts back down to zero.

func stateInc(h *Handle, data, meta any) Action {
	counter := data.(*int)
	*counter++
	if *counter < 100 {
		self := NewState(stateInc, counter)
		return Proceed(h.Code()+1, self, self)
	}
	return Done(h.StackSize())
}

func stateDec(h *Handle, data, meta any) Action {
	if h.Code() > 0 {
		return Proceed(h.Code()-1, NewState(stateDec, data))
	}
	return Action{}
}

func countingTransition(tc *TransitionContext) {
	counter := tc.Data.(*int)
	*counter++
	if funcPointer(tc.Prev.Func) == funcPointer(stateInc) && tc.Next.IsNull() {
		tc.Next = tc.Prev.WithFunc(stateDec)
	}
}

func TestProcessor_Run_countingChain(t *testing.T) {
	var stateCounter, transCounter int

	p := New(
		NewState(stateInc, &stateCounter),
		NewTransition(countingTransition, &transCounter),
	)

	code := p.Run(context.Background())

	assert.Equal(t, Status(0), code)
	assert.Equal(t, 100, stateCounter)
	assert.Equal(t, 201, transCounter)
}

func TestProcessor_Run_nullEntry(t *testing.T) {
	p := New(NullState, NullTransition)
	assert.Equal(t, Status(0), p.Run(context.Background()))
}

func TestProcessor_Run_nullTransitionNeverInvoked(t *testing.T) {
	fn := func(h *Handle, data, meta any) Action { return Done(1) }
	p := New(NewState(fn, nil), NullTransition)
	code := p.Run(context.Background())
	assert.Equal(t, Status(0), code)
}

func everGrowing(h *Handle, data, meta any) Action {
	self := NewState(everGrowing, nil)
	return Proceed(0, self, self)
}

func TestProcessor_Run_stackOverflow(t *testing.T) {
	p := New(NewState(everGrowing, nil), NullTransition, WithMaxStack(8))
	code := p.Run(context.Background())
	assert.Equal(t, ErrStackOverflow, code)
}

func tripleGrowing(h *Handle, data, meta any) Action {
	self := NewState(tripleGrowing, nil)
	return Proceed(0, self, self, self)
}

func TestProcessor_Run_maxPushOverflow(t *testing.T) {
	p := New(NewState(tripleGrowing, nil), NullTransition, WithMaxPush(1))
	code := p.Run(context.Background())
	assert.Equal(t, ErrStackOverflow, code)
}
