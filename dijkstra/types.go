package dijkstra

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Run and Result.PathTo.
var (
	// ErrNegativeWeight indicates that the pre-scan found an edge with a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrDistanceOverflow indicates that an accumulated distance does not fit in the weight type.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows weight type")

	// ErrNoPath indicates that the requested target was not reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrNoPredecessors indicates that the Result was computed without WithReturnPath().
	ErrNoPredecessors = errors.New("dijkstra: predecessor map not recorded")
)

// Weight is the set of edge payload types the solver accepts.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Options configures Run.
//
// ReturnPath    – record predecessors in Result.Prev.
// CheckNegative – scan every edge before solving and fail on a negative weight.
// CheckOverflow – fail instead of discarding a candidate distance that overflows.
type Options struct {
	ReturnPath    bool
	CheckNegative bool
	CheckOverflow bool
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns the configuration Solve uses: no predecessors, no guards.
func DefaultOptions() Options {
	return Options{}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithNegativeWeightCheck enables an O(E) pre-scan rejecting negative weights.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegative = true
	}
}

// WithOverflowCheck makes distance overflow an error (ErrDistanceOverflow).
func WithOverflowCheck() Option {
	return func(o *Options) {
		o.CheckOverflow = true
	}
}

// Result holds the outcome of Run.
//
//   - Source: the start node.
//   - Dist:   node → shortest distance from Source; only reached nodes appear.
//   - Prev:   node → predecessor on one shortest path; nil unless WithReturnPath().
//     Source itself has no entry.
type Result[K cmp.Ordered, W Weight] struct {
	Source K
	Dist   map[K]W
	Prev   map[K]K
}

// PathTo reconstructs the node sequence Source → … → dest.
// Returns ErrNoPredecessors if Prev was not recorded, ErrNoPath if dest was not reached.
func (r *Result[K, W]) PathTo(dest K) ([]K, error) {
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	path := []K{dest}
	for cur := dest; cur != r.Source; {
		p, ok := r.Prev[cur]
		// A broken or cyclic chain only arises from negative weights or edited maps.
		if !ok || len(path) > len(r.Dist) {
			return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}
