package adjacency

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Join registers the directed edge src→dest carrying payload.
// If bidirectional is true, the mirror edge dest→src is registered first with a
// copy of the same payload, then src→dest. Each registration independently
// replaces any existing edge to the same target.
//
// Complexity: O(1) amortized
func (s *Store[K, P]) Join(src, dest K, payload P, bidirectional bool) {
	if bidirectional {
		s.register(dest, src, payload)
	}
	s.register(src, dest, payload)
}

// register stores key→target with payload, creating key's edge set on first use.
func (s *Store[K, P]) register(key, target K, payload P) {
	targets, ok := s.edges[key]
	if !ok {
		targets = make(map[K]P, 1)
		s.edges[key] = targets
	}
	if _, exists := targets[target]; !exists {
		s.count++
	}
	targets[target] = payload
}

// Neighbors returns a copy of the edge set registered for key as a source,
// as target → payload. ok is false if key has never been a source; a key that
// was only ever a destination is unknown.
//
// Complexity: O(d), d = out-degree of key
func (s *Store[K, P]) Neighbors(key K) (map[K]P, bool) {
	if s == nil {
		return nil, false
	}
	targets, ok := s.edges[key]
	if !ok {
		return nil, false
	}

	return maps.Clone(targets), true
}

// Edges returns an iterator over the outgoing edges of key without copying.
// Unknown keys yield an empty sequence. The Store must not be mutated while
// the iterator is in use.
func (s *Store[K, P]) Edges(key K) iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		if s == nil {
			return
		}
		for to, p := range s.edges[key] {
			if !yield(to, p) {
				return
			}
		}
	}
}

// Known reports whether key has been used as a source.
func (s *Store[K, P]) Known(key K) bool {
	if s == nil {
		return false
	}
	_, ok := s.edges[key]

	return ok
}

// Payload returns the payload of the edge src→dest, if any.
func (s *Store[K, P]) Payload(src, dest K) (P, bool) {
	var zero P
	if s == nil {
		return zero, false
	}
	p, ok := s.edges[src][dest]
	if !ok {
		return zero, false
	}

	return p, true
}

// HasEdge reports whether the edge src→dest exists.
func (s *Store[K, P]) HasEdge(src, dest K) bool {
	_, ok := s.Payload(src, dest)

	return ok
}

// Len returns the number of known (source) nodes.
func (s *Store[K, P]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.edges)
}

// EdgeCount returns the number of directed edges. A bidirectional Join of two
// distinct nodes counts twice.
func (s *Store[K, P]) EdgeCount() int {
	if s == nil {
		return 0
	}

	return s.count
}

// Sources returns an iterator over every known node, in no particular order.
func (s *Store[K, P]) Sources() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		for k := range s.edges {
			if !yield(k) {
				return
			}
		}
	}
}

// SortedEdges lists the outgoing edges of key ordered by ascending target.
// ok is false if key has never been a source.
//
// Complexity: O(d·log d)
func SortedEdges[K cmp.Ordered, P any](s *Store[K, P], key K) ([]Edge[K, P], bool) {
	if !s.Known(key) {
		return nil, false
	}
	targets := s.edges[key]
	out := make([]Edge[K, P], 0, len(targets))
	for to, p := range targets {
		out = append(out, Edge[K, P]{To: to, Payload: p})
	}
	slices.SortFunc(out, func(a, b Edge[K, P]) int { return cmp.Compare(a.To, b.To) })

	return out, true
}
