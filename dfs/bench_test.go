package dfs_test

import (
	"testing"

	"github.com/katalvlaran/bitsearch/dfs"
)

// BenchmarkCount_Ladder60 counts 2^60 paths through 121 nodes; memoization
// keeps it linear in the node count.
func BenchmarkCount_Ladder60(b *testing.B) {
	d := ladder(60)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Count(d, 0)
	}
}

// BenchmarkCount_LadderNoMemo enumerates 2^12 paths one by one.
func BenchmarkCount_LadderNoMemo(b *testing.B) {
	d := ladder(12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Count(d, 0, dfs.WithoutMemo())
	}
}
