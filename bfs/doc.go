// Package bfs provides a production-grade breadth-first shortest-path solver
// over bitmask states, returning the minimum number of toggle operations that
// turn a start state into a target state.
//
// What
//
//   - Explore states in non-decreasing depth (operation count) from the start.
//   - Returns a Result containing:
//   - Steps: minimum number of operations
//   - Ops: catalog indices of one minimum sequence, in order
//   - Expanded / Visited: search diagnostics
//   - Supports functional hooks at three stages:
//   - OnEnqueue (a new state enters the frontier)
//   - OnDequeue (a state leaves the frontier)
//   - OnVisit   (before expansion; may abort with an error)
//   - Honors MaxDepth (d>0) and MaxStates (n>0) limits, 0 meaning "no limit".
//
// Why breadth-first
//
//	The frontier is first-in-first-out, so every state at depth d is expanded
//	before any state at depth d+1. The first time the target is produced it is
//	therefore produced by a shortest sequence. The target test happens on each
//	successor before it is enqueued, which saves one full layer of expansion.
//	A depth-first or heuristic order could return a longer sequence.
//
// Determinism
//
//	Successors are generated in catalog order, so Ops is reproducible.
//
// Complexity (R = reachable states, K = operations per state)
//
//   - Time:   O(R × K)
//   - Memory: O(R) for the frontier and the visited/parent table
//
// R is bounded by 2^width but is usually far smaller. Use WithMaxStates to give
// unsatisfiable instances a deterministic upper bound.
//
// Usage
//
//	ops, _ := transition.NewToggleFromPositions([][]int{{0, 2}, {0, 1}})
//	target, _ := state.Encode(".##.")
//	res, err := bfs.ShortestPath(ops, 0, target,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxStates(1<<20),
//	)
//	if errors.Is(err, bfs.ErrNoSolution) {
//	    // definite negative result
//	}
//
// Errors
//
//   - ErrNilModel         if the model is nil.
//   - ErrOptionViolation  for a negative MaxDepth or MaxStates.
//   - ErrNoSolution       if the target cannot be reached.
//   - ErrBudgetExceeded   if MaxStates is hit.
//   - ctx.Err()           on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
