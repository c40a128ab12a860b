// Package state provides the fixed-width bitmask used as a search state by the
// bfs and dfs solvers of github.com/katalvlaran/bitsearch.
//
// What
//
//   - State is a uint64 bit pattern. Bit i is "on" when position i is lit
//     (toggle puzzles) or when marker i has been seen (path-constraint puzzles).
//   - Encode / FromPositions build a State from a pattern description.
//   - Apply performs one toggle operation: s XOR op.
//   - Has, With, Contains, Count, Positions query and extend a State.
//
// Equality and hashing are purely structural: two States with the same bit
// pattern are the same state regardless of how they were reached, and a State
// can be used directly as a map key.
//
// Errors
//
//   - ErrInvalidEncoding if a pattern is wider than MaxWidth bits, contains a
//     character other than '#' or '.', or a position lies outside [0, MaxWidth).
//
// Usage
//
//	target, err := state.Encode(".##.")    // 0b0110
//	op, _ := state.FromPositions(1, 3)     // 0b1010
//	next := state.Apply(target, op)        // 0b1100
package state
