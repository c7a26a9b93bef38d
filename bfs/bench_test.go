package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvkit/adjacency"
	"github.com/katalvlaran/lvkit/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	s := adjacency.New[int, int]()
	for i := 0; i < N; i++ {
		s.Join(i, i+1, 0, false)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(s, 0)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a random sparse graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V, E = 5000, 20000
	r := rand.New(rand.NewSource(42))
	s := adjacency.New[int, int]()
	for i := 0; i < E; i++ {
		s.Join(r.Intn(V), r.Intn(V), 0, true)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(s, 0)
	}
}
