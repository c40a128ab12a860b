package bfs_test

import (
	"testing"

	"github.com/katalvlaran/bitsearch/bfs"
	"github.com/katalvlaran/bitsearch/state"
	"github.com/katalvlaran/bitsearch/transition"
)

// BenchmarkShortestPath_SingleBits measures BFS over a catalog of N single-bit
// operations with an all-ones target, the worst case for depth (N layers).
func BenchmarkShortestPath_SingleBits(b *testing.B) {
	const N = 14
	ops := make([]state.State, N)
	for i := range ops {
		ops[i] = 1 << uint(i)
	}
	tg := transition.NewToggle(ops...)
	target := state.State(1<<N - 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(tg, 0, target)
	}
}

// BenchmarkShortestPath_NoSolution measures full exhaustion of 2^12 states.
func BenchmarkShortestPath_NoSolution(b *testing.B) {
	const N = 12
	ops := make([]state.State, N)
	for i := range ops {
		ops[i] = 1 << uint(i)
	}
	tg := transition.NewToggle(ops...)
	target := state.State(1) << 50

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(tg, 0, target)
	}
}
