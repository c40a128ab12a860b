// Package transition defines the two successor models searched by bfs and dfs.
//
// What
//
//   - StateModel (Toggle variant): from any State, every operation of a fixed
//     catalog is applicable and yields State XOR operation. Toggle is the
//     catalog implementation.
//   - GraphModel (Graph Step variant): from a node, move to its successor
//     nodes, updating an auxiliary marker mask on the way. Network is the
//     implementation built from a caller-supplied adjacency mapping;
//     splitter.Manifold is the height-bounded one.
//
// Network assigns every node name a small dense integer index at construction
// (sorted name order), so solvers key their caches by (index, mask) instead of
// by names. Once built, a Network is immutable and safe for concurrent reads.
//
// Mark contract
//
//	Mark(node, mask) only ever adds bits (monotonic) and applying it twice at
//	the same node gives the same mask as applying it once (idempotent).
//
// Errors
//
//   - ErrMalformedGraph   undeclared successor, duplicate successor, empty name,
//     marker on an undeclared node, unknown required marker.
//   - state.ErrInvalidEncoding for marker bits or operation positions that do
//     not fit a State.
package transition
