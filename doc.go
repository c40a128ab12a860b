// Package bitsearch is a bitmask state search and counting engine.
//
// It answers two kinds of question over small, fully known systems:
//
//   - What is the fewest number of toggle operations that turns an all-off
//     configuration into a target pattern? (package bfs over a
//     transition.Toggle catalog)
//   - How many distinct routes lead from a start to a terminal node, counting
//     only routes that collected a required set of markers on the way?
//     (package dfs over a transition.Network or a splitter.Manifold)
//
// Layout, leaves first:
//
//	state/        State bitmask: encode patterns, XOR-apply, test bits
//	transition/   Toggle (XOR catalog) and Network (named node arena) models
//	bfs/          breadth-first shortest operation sequence
//	dfs/          memoized path counting keyed by (node, mask)
//	splitter/     beam manifold: timelines via dfs, split count by simulation
//	batch/        worker pool summing many independent instances
//	telemetry/    Prometheus hooks and OpenTelemetry setup
//	config/       YAML run configuration and logger
//	instance/     YAML instance documents → typed problems
//	cmd/bitsearch  command-line driver
//
// Library packages never log; they expose hooks and return sentinel errors
// that callers test with errors.Is.
package bitsearch
