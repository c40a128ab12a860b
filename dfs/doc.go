// Package dfs counts paths through a transition.GraphModel with a memoized,
// depth-first evaluation that carries a marker mask along each path.
//
// What:
//
//   - Count(m, start, opts...) returns how many distinct successor sequences
//     lead from start to a terminal node whose final mask is accepted.
//     The default acceptance is "mask contains every Required bit".
//   - A sub-result is cached under (node, incoming mask). Two paths that
//     reach the same node having collected the same markers share one
//     computation, which turns an exponential enumeration into a linear pass
//     over the reachable (node, mask) pairs.
//   - Evaluation uses an explicit work stack: no recursion, so deep chains
//     do not grow the goroutine stack.
//   - CountNamed is a thin adapter for *transition.Network with names.
//
// Per (node, mask) the order is fixed:
//
//  1. cache lookup (hit returns the stored value, OnCacheHit fires)
//  2. mask = Mark(node, mask)
//  3. terminal node: 1 if Accept(node, mask), else 0; never cached
//  4. sum over Successors(node), store under the incoming (node, mask)
//
// A dead end (no successors, not terminal) contributes 0.
//
// Why:
//   - "How many routes pass through both of these checkpoints" questions
//     over device or dependency graphs
//   - Counting beam timelines through a splitter manifold (see package splitter)
//
// Complexity:
//
//   - Memoized: Time O(K × d), Memory O(K), K = reachable (node, mask) pairs
//   - WithoutMemo: Time O(P), P = number of paths; only for cross-checks
//
// Errors:
//
//   - ErrNilModel          model is nil
//   - ErrStartNotFound     start outside the model (when it reports Len)
//   - ErrCycleDetected     a (node, mask) pair reached from itself
//   - ErrBudgetExceeded    more than MaxFrames frames opened
//   - ErrOverflow          the count exceeds uint64
//   - ErrOptionViolation   an invalid Option (e.g. negative MaxFrames)
//   - context.Canceled / context.DeadlineExceeded
//
// Usage:
//
//	n, _ := transition.NewNetwork(spec)
//	res, err := dfs.CountNamed(n, "svr", []string{"fft", "dac"})
//	fmt.Println(res.Count)
package dfs
