// Package dfs defines types and options for memoized depth-first path counting,
// including cancellation, cache hooks, a frame budget and acceptance predicates.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bitsearch/state"
)

var (
	// ErrNilModel is returned when a nil transition model is passed to Count.
	ErrNilModel = errors.New("dfs: model is nil")

	// ErrStartNotFound indicates that the start node is not part of the model.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates that a (node, mask) pair was reached again
	// while it was still being evaluated. Counting requires an acyclic model.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrBudgetExceeded indicates that MaxFrames evaluation frames were opened.
	ErrBudgetExceeded = errors.New("dfs: frame budget exceeded")

	// ErrOverflow indicates that a path count does not fit in a uint64.
	ErrOverflow = errors.New("dfs: path count overflows uint64")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of Count.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a counting run.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked every time a new evaluation frame is opened.
	Ctx context.Context

	// StartMask is the marker mask carried into the start node. Default 0.
	StartMask state.State

	// Required lists the marker bits a path must have collected when it
	// reaches a terminal node. Ignored when Accept is set.
	Required state.State

	// Accept, if non-nil, decides whether a terminal (node, mask) counts.
	Accept func(node int, mask state.State) bool

	// OnCacheHit, if non-nil, is invoked when a (node, mask) value is reused.
	OnCacheHit func(node int, mask state.State, count uint64)

	// OnCacheMiss, if non-nil, is invoked when a (node, mask) frame is opened
	// because no cached value exists.
	OnCacheMiss func(node int, mask state.State)

	// MaxFrames, if > 0, bounds the number of frames opened. 0 means no budget.
	MaxFrames int

	// NoMemo disables the cache: every (node, mask) is recomputed.
	// The count is unchanged; only the running time grows.
	NoMemo bool

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - empty start and required masks
//   - no hooks, no budget, memoization on
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context for the run.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartMask sets the mask carried into the start node.
func WithStartMask(mask state.State) Option {
	return func(o *DFSOptions) {
		o.StartMask = mask
	}
}

// WithRequired sets the marker bits every counted path must have collected.
func WithRequired(mask state.State) Option {
	return func(o *DFSOptions) {
		o.Required = mask
	}
}

// WithAccept installs a custom terminal predicate over (node, mask).
func WithAccept(fn func(node int, mask state.State) bool) Option {
	return func(o *DFSOptions) {
		o.Accept = fn
	}
}

// WithOnCacheHit installs fn as the cache hit hook.
func WithOnCacheHit(fn func(node int, mask state.State, count uint64)) Option {
	return func(o *DFSOptions) {
		o.OnCacheHit = fn
	}
}

// WithOnCacheMiss installs fn as the cache miss hook.
func WithOnCacheMiss(fn func(node int, mask state.State)) Option {
	return func(o *DFSOptions) {
		o.OnCacheMiss = fn
	}
}

// WithMaxFrames bounds the number of evaluation frames.
//
//	n > 0: budget of n frames
//	n == 0: explicit no budget
//	n < 0: invalid option → ErrOptionViolation
func WithMaxFrames(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxFrames cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxFrames = n
	}
}

// WithoutMemo disables memoization. Intended for cross-checks on small models.
func WithoutMemo() Option {
	return func(o *DFSOptions) {
		o.NoMemo = true
	}
}

// Result captures the outcome of a counting run.
type Result struct {
	// Count is the number of accepted paths from the start to a terminal node.
	Count uint64

	// Hits is the number of cache lookups answered without recomputation.
	Hits int

	// Misses is the number of (node, mask) frames opened and evaluated.
	Misses int

	// Frames is the peak number of frames on the work stack at once.
	Frames int

	// CacheSize is the number of (node, mask) entries stored at the end.
	CacheSize int
}
