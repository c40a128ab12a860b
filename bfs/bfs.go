// Package bfs provides breadth-first search over toggle states, returning the
// minimum number of operations that turn a start State into a target State.
//
// BFS expands states in non-decreasing depth with optional hooks, depth
// limiting, a state budget and cancellation.
package bfs

import (
	"context"
	"fmt"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/bitsearch/state"
	"github.com/katalvlaran/bitsearch/transition"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	s     state.State
	depth int
}

// link records how a state was first reached; op is -1 for the start state.
type link struct {
	prev state.State
	op   int
}

// walker encapsulates mutable BFS state. It is owned by one ShortestPath call.
type walker struct {
	model  transition.StateModel
	opts   BFSOptions
	ctx    context.Context
	start  state.State
	target state.State
	queue  deque.Deque[queueItem]
	parent map[state.State]link // doubles as the visited set
	buf    []transition.Move
	res    *Result
}

// ShortestPath runs breadth-first search from start until target is produced,
// applying any number of functional Options.
//
// The first time target appears as a successor it is reached through a
// minimum-length operation sequence; the check is done before enqueueing.
// Returns ErrNilModel for a nil model, ErrOptionViolation for bad options,
// ErrNoSolution when the frontier empties, ErrBudgetExceeded when MaxStates
// is hit, the context error on cancellation, or any OnVisit hook error.
//
// Complexity: O(R × K) time and O(R) memory, R = reachable states, K = successors per state.
func ShortestPath(m transition.StateModel, start, target state.State, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Already there: zero operations
	if start == target {
		return &Result{Steps: 0, Ops: []int{}, Visited: 1}, nil
	}

	w := &walker{
		model:  m,
		opts:   o,
		ctx:    o.Ctx,
		start:  start,
		target: target,
		parent: make(map[state.State]link),
		res:    &Result{},
	}

	// Seed frontier with the start state (no parent)
	w.enqueue(start, 0, link{op: -1})

	return w.loop()
}

// enqueue marks s visited, records how it was reached, calls OnEnqueue and
// appends it to the frontier.
func (w *walker) enqueue(s state.State, depth int, via link) {
	w.parent[s] = via
	w.opts.OnEnqueue(s, depth)
	w.queue.PushBack(queueItem{s: s, depth: depth})
}

// dequeue pops the oldest frontier item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue.PopFront()
	w.opts.OnDequeue(item.s, item.depth)

	return item
}

// loop processes the frontier until the target is produced, the frontier
// empties, or an error occurs.
func (w *walker) loop() (*Result, error) {
	for w.queue.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.opts.OnVisit(item.s, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %v: %w", item.s, err)
		}
		w.res.Expanded++

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		w.buf = w.model.Successors(item.s, w.buf[:0])
		for _, mv := range w.buf {
			if mv.State == w.target {
				w.parent[mv.State] = link{prev: item.s, op: mv.Op}
				return w.finish(nextDepth), nil
			}
			if _, seen := w.parent[mv.State]; seen {
				continue
			}
			if w.opts.MaxStates > 0 && len(w.parent) >= w.opts.MaxStates {
				return nil, fmt.Errorf("%w: %d states recorded", ErrBudgetExceeded, len(w.parent))
			}
			w.enqueue(mv.State, nextDepth, link{prev: item.s, op: mv.Op})
		}
	}

	if w.opts.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: target %v not reachable within %d operations", ErrNoSolution, w.target, w.opts.MaxDepth)
	}

	return nil, fmt.Errorf("%w: target %v unreachable after %d states", ErrNoSolution, w.target, len(w.parent))
}

// finish fills the result and reconstructs the operation sequence by walking
// parent links back from the target.
func (w *walker) finish(steps int) *Result {
	ops := make([]int, steps)
	cur := w.target
	for i := steps - 1; i >= 0; i-- {
		via := w.parent[cur]
		ops[i] = via.op
		cur = via.prev
	}

	w.res.Steps = steps
	w.res.Ops = ops
	w.res.Visited = len(w.parent)

	return w.res
}
