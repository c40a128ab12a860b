// Package bfs provides tunable options, error definitions and results
// for the breadth-first shortest-path solver.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bitsearch/state"
	"github.com/katalvlaran/bitsearch/transition"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilModel is returned if a nil transition model is passed.
	ErrNilModel = errors.New("bfs: model is nil")

	// ErrNoSolution is returned when every reachable state was expanded
	// without reaching the target.
	ErrNoSolution = errors.New("bfs: no solution found")

	// ErrBudgetExceeded is returned when the visited set outgrows MaxStates.
	ErrBudgetExceeded = errors.New("bfs: state budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it will be recorded
// internally and surfaced as ErrOptionViolation when ShortestPath is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. It is checked on every frontier pop.
	Ctx context.Context

	// OnEnqueue is called when a new state enters the frontier.
	OnEnqueue func(s state.State, depth int)

	// OnDequeue is called when a state leaves the frontier.
	OnDequeue func(s state.State, depth int)

	// OnVisit is called right before a dequeued state is expanded. If it
	// returns an error, the search aborts and propagates that error.
	OnVisit func(s state.State, depth int) error

	// MaxDepth, if > 0, stops expanding states at this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, bounds the size of the visited set.
	// A value of 0 disables the budget.
	MaxStates int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit, no state budget
//   - no-op hooks
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(state.State, int) {},
		OnDequeue: func(state.State, int) {},
		OnVisit:   func(state.State, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s state.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s state.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run before expansion; returning an
// error from this callback stops the search.
func WithOnVisit(fn func(s state.State, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search from expanding states at depth d.
//
//	d > 0: only sequences of at most d operations are considered
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates bounds the number of distinct states the search may record.
// It keeps a malformed instance from exhausting all 2^width states.
//
//	n > 0: budget of n states (the start state included)
//	n == 0: explicit no budget
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Problem is one toggle puzzle instance: reach Target from Start using Model.
type Problem struct {
	Start  state.State
	Target state.State
	Model  transition.StateModel
}

// Solve runs ShortestPath on the problem.
func (p Problem) Solve(opts ...Option) (*Result, error) {
	return ShortestPath(p.Model, p.Start, p.Target, opts...)
}

// Result holds the outcome of a successful search:
//   - Steps: minimum number of operations from start to target.
//   - Ops: catalog indices of one minimum sequence, in application order.
//   - Expanded: number of states dequeued and expanded.
//   - Visited: number of distinct states recorded (start included).
type Result struct {
	Steps    int
	Ops      []int
	Expanded int
	Visited  int
}
