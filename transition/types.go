package transition

import (
	"errors"

	"github.com/katalvlaran/bitsearch/state"
)

// ErrMalformedGraph is returned when an adjacency description is inconsistent,
// for example when a successor references an undeclared node.
var ErrMalformedGraph = errors.New("transition: malformed graph")

// Move is one successor of a toggle state: the resulting State and the
// catalog index of the operation that produced it.
type Move struct {
	State state.State
	Op    int
}

// StateModel enumerates the successors of a State. Successors appends to buf
// (which may be nil) and returns the extended slice, so callers can reuse one
// buffer per search.
type StateModel interface {
	Successors(s state.State, buf []Move) []Move
}

// GraphModel is a step relation over dense node indices with an auxiliary
// marker mask.
//
// Successors must not be mutated by the caller. Mark must be monotonic and
// idempotent. Terminal nodes end a path; their successors are never asked for.
type GraphModel interface {
	Successors(node int) []int
	Mark(node int, mask state.State) state.State
	Terminal(node int) bool
}
