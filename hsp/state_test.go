package hsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func someStateFunc(*Handle, any, any) Action  { return Action{} }
func otherStateFunc(*Handle, any, any) Action { return Action{} }

func TestState_IsNull(t *testing.T) {
	assert.True(t, NullState.IsNull())
	assert.True(t, State{}.IsNull())
	assert.False(t, NewState(someStateFunc, nil).IsNull())
}

func TestState_Equal(t *testing.T) {
	a := NewStateWithMeta(someStateFunc, "meta", "data")
	b := NewStateWithMeta(someStateFunc, "meta", "data")
	c := NewStateWithMeta(otherStateFunc, "meta", "data")
	d := NewStateWithMeta(someStateFunc, "meta", "other-data")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, NullState.Equal(State{}))
}

func TestState_WithFunc(t *testing.T) {
	s := NewStateWithMeta(someStateFunc, "meta", "data")
	s2 := s.WithFunc(otherStateFunc)

	assert.Equal(t, "data", s2.Data)
	assert.Equal(t, "meta", s2.Meta)
	assert.Equal(t, funcPointer(otherStateFunc), funcPointer(s2.Func))
	assert.Equal(t, funcPointer(someStateFunc), funcPointer(s.Func), "WithFunc must not mutate the receiver")
}

func TestHandle_LoggerDefaultsToNoop(t *testing.T) {
	h := &Handle{}
	assert.NotPanics(t, func() {
		h.Logger().Error("test", "something happened: %d", 1)
	})
}
