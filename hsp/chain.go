package hsp

// ChainNode is the built-in composition helper's link: Next is the state to
// run, and Data is the other chain node to hand back to [ChainExecute] once
// Next returns without fully unwinding the stack. A pair of ChainNodes
// referencing each other's Data builds a two-state ping-pong: each side
// runs once per round trip through ChainExecute.
type ChainNode struct {
	Next State
	Data any
}

// ChainExecute is the one built-in state function the driver ships with.
// Its own Data is the current [ChainNode]; each activation proceeds to two
// frames: the node's Next state on top
// (runs first), and another ChainExecute frame underneath carrying the
// node's Data as the next link and the current node as the back-link
// metadata. When Next pops itself with no further action, control returns
// to that underlying frame and the chain advances to the other side.
func ChainExecute(h *Handle, data, meta any) Action {
	node, ok := data.(*ChainNode)
	if !ok || node == nil {
		return Done(1)
	}
	return Proceed(h.Code(),
		NewStateWithMeta(ChainExecute, node, node.Data),
		node.Next,
	)
}
