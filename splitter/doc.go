// Package splitter models a beam travelling down a rectangular manifold.
//
// A single source emits a beam that moves one row down per step. When the
// cell below a beam holds a splitter, the beam stops and two beams continue
// from the cells to the left and right of the splitter. Beams may leave the
// grid sideways; they keep falling there, and the last row ends every beam.
//
// Two measures are offered:
//
//   - Timelines: each split forks the current timeline, so this counts the
//     distinct left/right choice sequences. The manifold implements
//     transition.GraphModel without markers and the count is dfs.Count over it.
//   - Splits: the beam front is simulated row by row with beams on the same
//     cell merged, and every beam reaching a splitter counts once.
//
// Splitter sets are validated up front: a splitter outside the grid, on the
// source, or listed twice is transition.ErrMalformedGraph.
package splitter
