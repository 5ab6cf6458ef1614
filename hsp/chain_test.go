package hsp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mutualChainState1 and mutualChainState2 are the two sides of the built-in
// chain helper's ping-pong, cross-referencing each other through a pair of
// ChainNode values.

func mutualChainState1(h *Handle, data, meta any) Action {
	counter := data.(*int)
	*counter++
	if *counter == 100 {
		return Done(h.StackSize())
	}
	return Action{}
}

func mutualChainState2(_ *Handle, _, meta any) Action {
	counter := meta.(*int)
	*counter++
	return Action{}
}

func TestChainExecute_mutualChain(t *testing.T) {
	var counter1, counter2 int
	var chain1, chain2 ChainNode

	chain2 = ChainNode{Next: NewState(mutualChainState1, &counter1), Data: &chain1}
	chain1 = ChainNode{Next: NewStateWithMeta(mutualChainState2, &counter2, nil), Data: &chain2}

	p := New(NewState(ChainExecute, &chain2), NullTransition)
	code := p.Run(context.Background())

	assert.Equal(t, Status(0), code)
	assert.Equal(t, 100, counter1)
	assert.Equal(t, 99, counter2)
}

func TestChainExecute_nonChainData(t *testing.T) {
	p := New(NewState(ChainExecute, "not a chain node"), NullTransition)
	assert.Equal(t, Status(0), p.Run(context.Background()))
}
