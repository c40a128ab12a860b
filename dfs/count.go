// SPDX-License-Identifier: MIT
//
// File: count.go
// Role: Memoized path counting over a transition.GraphModel with an explicit
//       work stack instead of recursion.
// Determinism:
//   - Successors are evaluated in model order (pre-order), so hook calls are
//     reproducible for a fixed model.

package dfs

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/bitsearch/state"
	"github.com/katalvlaran/bitsearch/transition"
)

// sized is implemented by models that know their node count; Count uses it
// to reject an out-of-range start node.
type sized interface {
	Len() int
}

// key identifies a memoized sub-result: node index and incoming marker mask.
type key struct {
	node int
	mask state.State
}

// frame is one pending evaluation on the work stack.
type frame struct {
	key  key         // (node, incoming mask), the cache key
	mask state.State // mask after Mark(node, incoming)
	succ []int       // successors, read-only
	next int         // index of the next successor to evaluate
	sum  uint64      // accepted paths found so far below this node
}

// counter encapsulates state during one Count call. Nothing here is shared
// between calls.
type counter struct {
	model  transition.GraphModel
	opts   DFSOptions
	cache  map[key]uint64
	active map[key]struct{} // keys currently on the stack (Gray)
	stack  []frame
	res    *Result
}

// Count returns the number of distinct successor sequences from start to a
// terminal node whose final marker mask is accepted.
//
// For each (node, mask) it
//  1. returns the cached value on a hit,
//  2. applies mark(node, mask),
//  3. returns 1 or 0 at a terminal node (not cached),
//  4. otherwise sums its successors and caches the sum under (node, mask).
//
// Errors:
//   - ErrNilModel, ErrStartNotFound, ErrOptionViolation for invalid input.
//   - ErrCycleDetected if a (node, mask) pair is reached from itself.
//   - ErrBudgetExceeded, ErrOverflow, or ctx.Err().
//
// Complexity: O(N × M × d) time and O(N × M) memory with memoization, where
// N is the node count, M the number of distinct masks and d the out-degree.
func Count(m transition.GraphModel, start int, opts ...Option) (*Result, error) {
	// 1. Validate input model
	if m == nil {
		return nil, ErrNilModel
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Accept == nil {
		required := o.Required
		o.Accept = func(_ int, mask state.State) bool { return mask.Contains(required) }
	}

	// 3. Verify the start node when the model can tell
	if s, ok := m.(sized); ok && (start < 0 || start >= s.Len()) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	c := &counter{
		model:  m,
		opts:   o,
		cache:  make(map[key]uint64),
		active: make(map[key]struct{}),
		res:    &Result{},
	}

	// 4. Evaluate
	total, err := c.run(start, o.StartMask)
	if err != nil {
		return nil, err
	}
	c.res.Count = total
	c.res.CacheSize = len(c.cache)

	return c.res, nil
}

// run drives the work stack until the start frame is resolved.
func (c *counter) run(start int, mask state.State) (uint64, error) {
	v, done, err := c.open(start, mask)
	if err != nil || done {
		return v, err
	}

	for {
		top := &c.stack[len(c.stack)-1]

		// 1. Descend into the next successor, if any
		if top.next < len(top.succ) {
			child := top.succ[top.next]
			top.next++
			v, done, err = c.open(child, top.mask)
			if err != nil {
				return 0, err
			}
			if done {
				// open did not push, top is still valid
				if top.sum, err = add(top.sum, v); err != nil {
					return 0, err
				}
			}
			continue
		}

		// 2. All successors summed: cache, pop and fold into the parent
		f := *top
		c.stack = c.stack[:len(c.stack)-1]
		delete(c.active, f.key)
		if !c.opts.NoMemo {
			c.cache[f.key] = f.sum
		}
		if len(c.stack) == 0 {
			return f.sum, nil
		}
		parent := &c.stack[len(c.stack)-1]
		if parent.sum, err = add(parent.sum, f.sum); err != nil {
			return 0, err
		}
	}
}

// open resolves (node, in) immediately when possible (cache hit or terminal)
// and reports done=true with its value. Otherwise it pushes a new frame.
func (c *counter) open(node int, in state.State) (uint64, bool, error) {
	k := key{node: node, mask: in}

	// 1. Cache lookup
	if !c.opts.NoMemo {
		if v, ok := c.cache[k]; ok {
			c.res.Hits++
			if c.opts.OnCacheHit != nil {
				c.opts.OnCacheHit(node, in, v)
			}
			return v, true, nil
		}
	}

	// 2. Marker update
	mask := c.model.Mark(node, in)

	// 3. Terminal base case, not cached
	if c.model.Terminal(node) {
		if c.opts.Accept(node, mask) {
			return 1, true, nil
		}
		return 0, true, nil
	}

	// 4. A Gray key means we came back to a pair still under evaluation
	if _, onStack := c.active[k]; onStack {
		return 0, false, fmt.Errorf("%w: node %d re-entered with mask %v", ErrCycleDetected, node, in)
	}

	// Cancellation and budget checks at every frame boundary
	select {
	case <-c.opts.Ctx.Done():
		return 0, false, c.opts.Ctx.Err()
	default:
	}
	if c.opts.MaxFrames > 0 && c.res.Misses >= c.opts.MaxFrames {
		return 0, false, fmt.Errorf("%w: %d frames opened", ErrBudgetExceeded, c.res.Misses)
	}

	c.res.Misses++
	if c.opts.OnCacheMiss != nil {
		c.opts.OnCacheMiss(node, in)
	}
	c.active[k] = struct{}{}
	c.stack = append(c.stack, frame{key: k, mask: mask, succ: c.model.Successors(node)})
	if len(c.stack) > c.res.Frames {
		c.res.Frames = len(c.stack)
	}

	return 0, false, nil
}

// add returns a+b or ErrOverflow.
func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}

	return sum, nil
}

// CountNamed counts paths of a named network from start to its terminal,
// requiring every listed marker. With no required markers every path counts.
func CountNamed(n *transition.Network, start string, required []string, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNilModel
	}
	id, ok := n.ID(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	var mask state.State
	if len(required) > 0 {
		var err error
		if mask, err = n.MarkerMask(required...); err != nil {
			return nil, err
		}
	}

	return Count(n, id, append([]Option{WithRequired(mask)}, opts...)...)
}
