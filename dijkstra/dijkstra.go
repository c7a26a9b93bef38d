package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvkit/adjacency"
)

// Solve computes shortest distances from start to every node reachable in s.
//
// The result always contains start → 0. Nodes that cannot be reached are
// absent. If start was never registered in s, the result is {start: 0}.
// Weights must be non-negative; this is not checked (see Run).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Solve[K cmp.Ordered, W Weight](s *adjacency.Store[K, W], start K) map[K]W {
	r := newRunner(s, start, DefaultOptions())
	// Without CheckOverflow, process has no failure path.
	_ = r.process()

	return r.dist
}

// Run computes shortest distances from start like Solve, configured by opts.
//
// Preconditions checked (in order):
//  1. With WithNegativeWeightCheck(): no edge weight < 0 (ErrNegativeWeight).
//  2. With WithOverflowCheck(): no relaxation overflows W (ErrDistanceOverflow).
//
// With WithReturnPath(), Result.Prev records one shortest-path predecessor per
// reached node, and Result.PathTo can rebuild paths.
func Run[K cmp.Ordered, W Weight](s *adjacency.Store[K, W], start K, opts ...Option) (*Result[K, W], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.CheckNegative {
		if err := scanNegative(s); err != nil {
			return nil, err
		}
	}

	r := newRunner(s, start, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result[K, W]{Source: start, Dist: r.dist, Prev: r.prev}, nil
}

// scanNegative fails on the first edge with a negative weight.
func scanNegative[K cmp.Ordered, W Weight](s *adjacency.Store[K, W]) error {
	for src := range s.Sources() {
		for dst, w := range s.Edges(src) {
			if w < 0 {
				return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, src, dst, w)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[K cmp.Ordered, W Weight] struct {
	s     *adjacency.Store[K, W] // read-only input
	opts  Options
	dist  map[K]W        // best known distance from start
	prev  map[K]K        // predecessor on the best path; nil unless ReturnPath
	final map[K]struct{} // nodes whose distance is settled
	pq    nodePQ[K, W]
}

// newRunner seeds dist with start → 0 and the heap with (0, start).
func newRunner[K cmp.Ordered, W Weight](s *adjacency.Store[K, W], start K, opts Options) *runner[K, W] {
	n := s.Len() + 1
	r := &runner[K, W]{
		s:     s,
		opts:  opts,
		dist:  make(map[K]W, n),
		final: make(map[K]struct{}, n),
		pq:    make(nodePQ[K, W], 0, n),
	}
	if opts.ReturnPath {
		r.prev = make(map[K]K, n)
	}

	r.dist[start] = 0
	heap.Push(&r.pq, nodeItem[K, W]{id: start, dist: 0})

	return r
}

// process pops nodes in (distance, id) order until the heap is empty.
// Stale entries for already-finalized nodes are discarded on pop.
func (r *runner[K, W]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[K, W])
		if _, done := r.final[item.id]; done {
			continue
		}
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
		r.final[item.id] = struct{}{}
	}

	return nil
}

// relax tries to improve every neighbor of u through u, pushing a new heap
// entry for each improvement. Unknown u has no edges and relaxes nothing.
func (r *runner[K, W]) relax(u K, d W) error {
	for v, w := range r.s.Edges(u) {
		cand, ok := add(d, w)
		if !ok {
			if r.opts.CheckOverflow {
				return fmt.Errorf("%w: %v + edge %v→%v weight=%v", ErrDistanceOverflow, d, u, v, w)
			}
			continue
		}

		// Strict "<" keeps the first-found path on ties.
		if cur, seen := r.dist[v]; seen && cand >= cur {
			continue
		}
		r.dist[v] = cand
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem[K, W]{id: v, dist: cand})
	}

	return nil
}

// add returns d + w and whether the sum is representable in W.
func add[W Weight](d, w W) (W, bool) {
	sum := d + w
	// Integer wrap-around.
	if w > 0 && sum < d {
		return sum, false
	}
	// Float overflow to +Inf from finite operands.
	if math.IsInf(float64(sum), 1) && !math.IsInf(float64(d), 1) && !math.IsInf(float64(w), 1) {
		return sum, false
	}

	return sum, true
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed with.
type nodeItem[K cmp.Ordered, W Weight] struct {
	id   K
	dist W
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id) ascending.
// Several entries for one node may coexist; all but the smallest are stale.
type nodePQ[K cmp.Ordered, W Weight] []nodeItem[K, W]

// Len returns the number of items in the heap.
func (pq nodePQ[K, W]) Len() int { return len(pq) }

// Less orders by distance, then by node ID for determinism.
func (pq nodePQ[K, W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ[K, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ[K, W]) Push(x any) { *pq = append(*pq, x.(nodeItem[K, W])) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ[K, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
