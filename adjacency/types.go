package adjacency

// Edge is one outgoing edge of a source node: its target and payload.
// Two edges leaving the same source are the same edge iff their targets match;
// the payload does not take part in identity.
type Edge[K comparable, P any] struct {
	// To is the target node ID.
	To K

	// Payload is the value carried by the edge (a weight for shortest paths).
	Payload P
}

// Store maps each source node to its outgoing edges.
//
// K is the node identifier and must be comparable. P is the edge payload; it is
// stored by value, so a bidirectional Join keeps two independent copies.
// The zero value is not usable; construct with New.
type Store[K comparable, P any] struct {
	// edges[src][dest] = payload
	edges map[K]map[K]P

	// count is the number of directed edges across all sources.
	count int
}

// New returns an empty Store.
//
// Complexity: O(1)
func New[K comparable, P any]() *Store[K, P] {
	return &Store[K, P]{edges: make(map[K]map[K]P)}
}
