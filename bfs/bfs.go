// Package bfs provides breadth-first search over an adjacency.Store,
// returning hop-count distances, parent links, and visit order.
//
// Edge payloads are ignored: every edge counts as one hop. Neighbors of a
// node are visited in ascending ID order, so results are deterministic.
// A start node that was never a source in the store is visited alone.
package bfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/lvkit/adjacency"
)

// queueItem pairs a node with its BFS depth.
type queueItem[K cmp.Ordered] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K cmp.Ordered, P any] struct {
	store *adjacency.Store[K, P]
	opts  Options[K]
	ctx   context.Context
	queue []queueItem[K]
	res   *Result[K]
}

// BFS runs breadth-first search on s starting from start, applying any
// number of functional Options. Returns ErrOptionViolation for bad options,
// the context error on cancellation, or any error returned by OnVisit.
//
// Complexity: O(V + E·log d) where d is the largest out-degree (neighbor sort).
func BFS[K cmp.Ordered, P any](s *adjacency.Store[K, P], start K, opts ...Option[K]) (*Result[K], error) {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := s.Len() + 1
	w := &walker[K, P]{
		store: s,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[K], 0, n),
		res: &Result[K]{
			Start:  start,
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue records id's depth and adds it to the queue.
func (w *walker[K, P]) enqueue(id K, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K, P]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen neighbor.
func (w *walker[K, P]) enqueueNeighbors(item queueItem[K]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	edges, ok := adjacency.SortedEdges(w.store, item.id)
	if !ok {
		return
	}
	for _, e := range edges {
		if !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Parent[e.To] = item.id
		w.enqueue(e.To, next)
	}
}
