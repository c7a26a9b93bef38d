// Package bfs provides tunable options and error definitions
// for breadth-first search over an adjacency.Store.
package bfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the target was not reached.
	ErrNoPath = errors.New("bfs: no path to target")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// and surfaced as ErrOptionViolation when BFS is invoked.
//
// Options that carry no node value need explicit instantiation:
//
//	bfs.BFS(s, "A", bfs.WithMaxDepth[string](2))
type Option[K cmp.Ordered] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K cmp.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor K) bool

	// err is recorded during option parsing.
	err error
}

// DefaultOptions returns Options with: background context, no depth
// limit, no filtering and a no-op OnVisit.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{
		Ctx:            context.Background(),
		OnVisit:        func(K, int) error { return nil },
		FilterNeighbor: func(_, _ K) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K cmp.Ordered](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K cmp.Ordered](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[K cmp.Ordered](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K cmp.Ordered](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start:  the start node.
//   - Order:  nodes in visit sequence.
//   - Depth:  node → number of edges from Start.
//   - Parent: node → predecessor in the BFS tree (Start has none).
type Result[K cmp.Ordered] struct {
	Start  K
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs a fewest-edges path from Start to dest.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	path := []K{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
