package transition

import (
	"fmt"

	"github.com/katalvlaran/bitsearch/state"
)

// Toggle is a fixed catalog of XOR operations. Every operation applies from
// every state, so Successors is total. The zero value is an empty catalog.
type Toggle struct {
	ops []state.State
}

// NewToggle copies ops into a new catalog, preserving their order.
func NewToggle(ops ...state.State) *Toggle {
	cp := make([]state.State, len(ops))
	copy(cp, ops)

	return &Toggle{ops: cp}
}

// NewToggleFromPositions builds a catalog where operation i toggles the
// positions listed in positions[i].
// Returns state.ErrInvalidEncoding (wrapped with the operation index) for an
// out-of-range position.
func NewToggleFromPositions(positions [][]int) (*Toggle, error) {
	ops := make([]state.State, 0, len(positions))
	for i, ps := range positions {
		op, err := state.FromPositions(ps...)
		if err != nil {
			return nil, fmt.Errorf("transition: operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}

	return &Toggle{ops: ops}, nil
}

// Len returns the number of operations in the catalog.
func (t *Toggle) Len() int { return len(t.ops) }

// Op returns operation i.
func (t *Toggle) Op(i int) state.State { return t.ops[i] }

// Ops returns a copy of the catalog.
func (t *Toggle) Ops() []state.State {
	cp := make([]state.State, len(t.ops))
	copy(cp, t.ops)

	return cp
}

// Successors appends one Move per operation, in catalog order.
// Complexity: O(Len()).
func (t *Toggle) Successors(s state.State, buf []Move) []Move {
	for i, op := range t.ops {
		buf = append(buf, Move{State: state.Apply(s, op), Op: i})
	}

	return buf
}

// Replay applies the operations with the given catalog indices to start, in order.
func (t *Toggle) Replay(start state.State, indices []int) (state.State, error) {
	s := start
	for _, i := range indices {
		if i < 0 || i >= len(t.ops) {
			return 0, fmt.Errorf("transition: operation index %d outside catalog of %d", i, len(t.ops))
		}
		s = state.Apply(s, t.ops[i])
	}

	return s, nil
}
