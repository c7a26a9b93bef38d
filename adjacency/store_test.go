package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/adjacency"
)

// neighbors fetches the edge set of key and fails the test if key is unknown.
func neighbors(t *testing.T, s *adjacency.Store[int, int], key int) map[int]int {
	t.Helper()
	got, ok := s.Neighbors(key)
	require.True(t, ok, "expected %d to be a known source", key)

	return got
}

func TestJoin_Unidirectional(t *testing.T) {
	s := adjacency.New[int, int]()
	s.Join(1, 2, 10, false)
	s.Join(2, 3, 20, false)
	s.Join(3, 1, 30, false)
	s.Join(4, 3, 40, false)
	s.Join(3, 4, 50, false)
	s.Join(3, 4, 60, false)

	assert.Equal(t, map[int]int{2: 10}, neighbors(t, s, 1))
	assert.Equal(t, map[int]int{3: 20}, neighbors(t, s, 2))
	// 3→4 is overwritten, never duplicated.
	assert.Equal(t, map[int]int{1: 30, 4: 60}, neighbors(t, s, 3))
	assert.Equal(t, map[int]int{3: 40}, neighbors(t, s, 4))
	assert.Equal(t, 5, s.EdgeCount())
}

func TestJoin_Bidirectional(t *testing.T) {
	s := adjacency.New[int, int]()
	s.Join(1, 2, 10, true)
	s.Join(2, 3, 20, true)
	s.Join(3, 1, 30, true)
	s.Join(4, 3, 40, true)
	s.Join(3, 4, 60, true)

	assert.Equal(t, map[int]int{2: 10, 3: 30}, neighbors(t, s, 1))
	assert.Equal(t, map[int]int{1: 10, 3: 20}, neighbors(t, s, 2))
	assert.Equal(t, map[int]int{1: 30, 2: 20, 4: 60}, neighbors(t, s, 3))
	assert.Equal(t, map[int]int{3: 60}, neighbors(t, s, 4))
}

func TestJoin_BidirectionalEqualsTwoDirected(t *testing.T) {
	pairs := []struct{ a, b, w int }{
		{1, 2, 5}, {2, 3, 7}, {3, 1, 9}, {1, 2, 11}, {4, 4, 1},
	}
	bi := adjacency.New[int, int]()
	uni := adjacency.New[int, int]()
	for _, p := range pairs {
		bi.Join(p.a, p.b, p.w, true)
		uni.Join(p.b, p.a, p.w, false)
		uni.Join(p.a, p.b, p.w, false)
	}

	require.Equal(t, uni.Len(), bi.Len())
	require.Equal(t, uni.EdgeCount(), bi.EdgeCount())
	for k := range uni.Sources() {
		want, _ := uni.Neighbors(k)
		got, ok := bi.Neighbors(k)
		require.True(t, ok)
		assert.Equal(t, want, got, "neighbors of %d", k)
	}
}

func TestNeighbors_UnknownVsEmpty(t *testing.T) {
	s := adjacency.New[string, float64]()
	s.Join("A", "B", 1.5, false)

	// B is only a destination: unknown, not empty.
	got, ok := s.Neighbors("B")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, s.Known("B"))

	// Lookups must not create entries.
	_, _ = s.Neighbors("Z")
	for range s.Edges("Z") {
		t.Fatal("unknown key yielded an edge")
	}
	_, _ = s.Payload("Z", "A")
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Known("Z"))
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	s := adjacency.New[string, int]()
	s.Join("A", "B", 1, false)

	got, ok := s.Neighbors("A")
	require.True(t, ok)
	got["C"] = 99
	got["B"] = 42

	p, ok := s.Payload("A", "B")
	require.True(t, ok)
	assert.Equal(t, 1, p)
	assert.False(t, s.HasEdge("A", "C"))
}

func TestPayloadAndHasEdge(t *testing.T) {
	s := adjacency.New[string, int]()
	s.Join("A", "B", 3, true)

	p, ok := s.Payload("B", "A")
	assert.True(t, ok)
	assert.Equal(t, 3, p)
	assert.True(t, s.HasEdge("A", "B"))
	assert.False(t, s.HasEdge("A", "C"))

	_, ok = s.Payload("C", "A")
	assert.False(t, ok)
}

func TestSelfLoop(t *testing.T) {
	s := adjacency.New[int, int]()
	s.Join(7, 7, 1, true)
	s.Join(7, 7, 2, true)

	assert.Equal(t, map[int]int{7: 2}, neighbors(t, s, 7))
	assert.Equal(t, 1, s.EdgeCount())
}

func TestSortedEdges(t *testing.T) {
	s := adjacency.New[int, string]()
	s.Join(1, 9, "i", false)
	s.Join(1, 3, "c", false)
	s.Join(1, 5, "e", false)
	s.Join(1, 3, "C", false)

	got, ok := adjacency.SortedEdges(s, 1)
	require.True(t, ok)
	assert.Equal(t, []adjacency.Edge[int, string]{
		{To: 3, Payload: "C"},
		{To: 5, Payload: "e"},
		{To: 9, Payload: "i"},
	}, got)

	_, ok = adjacency.SortedEdges(s, 9)
	assert.False(t, ok)
}

func TestEdges_EarlyStop(t *testing.T) {
	s := adjacency.New[int, int]()
	for i := 0; i < 10; i++ {
		s.Join(0, i+1, i, false)
	}
	seen := 0
	for range s.Edges(0) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestNilStore_Reads(t *testing.T) {
	var s *adjacency.Store[int, int]
	_, ok := s.Neighbors(1)
	assert.False(t, ok)
	assert.False(t, s.Known(1))
	assert.False(t, s.HasEdge(1, 2))
	assert.Zero(t, s.Len())
	assert.Zero(t, s.EdgeCount())
	for range s.Sources() {
		t.Fatal("nil store yielded a source")
	}
}

func TestJoin_SelfLoopScale(t *testing.T) {
	s := adjacency.New[int, int]()
	for i := 0; i < 200_000; i++ {
		s.Join(i, i, i, true)
	}
	assert.Equal(t, 200_000, s.Len())
	assert.Equal(t, 200_000, s.EdgeCount())
}
