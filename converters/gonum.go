package converters

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvkit/adjacency"
)

// Numeric is the set of payload types that can be exported as gonum weights.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// IDMap translates between Store keys and the gonum node IDs assigned by ToGonum.
type IDMap[K cmp.Ordered] struct {
	ids  map[K]int64
	keys []K // keys[id] = key
}

// ID returns the gonum node ID assigned to k.
func (m *IDMap[K]) ID(k K) (int64, bool) {
	id, ok := m.ids[k]

	return id, ok
}

// Key returns the Store key behind gonum node id.
func (m *IDMap[K]) Key(id int64) (K, bool) {
	if id < 0 || id >= int64(len(m.keys)) {
		var zero K
		return zero, false
	}

	return m.keys[id], true
}

// Len returns the number of mapped nodes.
func (m *IDMap[K]) Len() int { return len(m.keys) }

// ToGonum exports s as a weighted directed gonum graph.
// Node IDs are 0..n-1 in ascending key order; each stored edge becomes one
// weighted edge (float64). Absent edges weigh +Inf, self weight is 0.
//
// Complexity: O((V + E) log V)
func ToGonum[K cmp.Ordered, W Numeric](s *adjacency.Store[K, W]) (*simple.WeightedDirectedGraph, *IDMap[K]) {
	// 1) Collect every key seen as source or destination.
	seen := make(map[K]struct{}, s.Len())
	for src := range s.Sources() {
		seen[src] = struct{}{}
		for dst := range s.Edges(src) {
			seen[dst] = struct{}{}
		}
	}
	keys := make([]K, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	// 2) Assign dense IDs and add nodes.
	m := &IDMap[K]{ids: make(map[K]int64, len(keys)), keys: keys}
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i, k := range keys {
		m.ids[k] = int64(i)
		g.AddNode(simple.Node(i))
	}

	// 3) Copy edges in source order.
	for i, k := range keys {
		edges, ok := adjacency.SortedEdges(s, k)
		if !ok {
			continue
		}
		for _, e := range edges {
			to := m.ids[e.To]
			if to == int64(i) {
				continue
			}
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(i),
				T: simple.Node(to),
				W: float64(e.Payload),
			})
		}
	}

	return g, m
}

// FromGonum imports g into a Store keyed by gonum node ID.
// Every edge u→v becomes Join(u, v, weight, false).
//
// Complexity: O(V + E)
func FromGonum(g graph.WeightedDirected) *adjacency.Store[int64, float64] {
	s := adjacency.New[int64, float64]()
	nodes := g.Nodes()
	for nodes.Next() {
		uid := nodes.Node().ID()
		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			w, ok := g.Weight(uid, vid)
			if !ok {
				continue
			}
			s.Join(uid, vid, w, false)
		}
	}

	return s
}
