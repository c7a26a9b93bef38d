// Package adjacency provides Store, a generic in-memory adjacency container
// mapping each source node to its outgoing edges.
//
// Storage model:
//
//	edges[src][dest] = payload
//
// The nested map makes the central invariant explicit: for any source there is
// at most one outgoing edge to a given target, and its payload is the one most
// recently registered. Joining the same (src, dest) pair twice overwrites the
// payload instead of adding a parallel edge.
//
// Known vs. unknown nodes:
//
//   - A node becomes known only when it is used as the source of a Join
//     (a bidirectional Join makes both endpoints sources).
//   - A node that has only ever been a destination has no entry:
//     Neighbors reports ok == false for it, not an empty set.
//   - Read operations never create entries as a side effect.
//
// Core methods:
//
//	New[K, P]() *Store[K, P]                        // O(1)
//	Join(src, dest K, payload P, bidirectional bool) // O(1) amortized
//	Neighbors(key K) (map[K]P, bool)                 // O(d), returns a copy
//	Edges(key K) iter.Seq2[K, P]                     // O(1) to create, zero-copy
//	SortedEdges(s, key) ([]Edge[K, P], bool)         // O(d·log d), deterministic
//
// Thread safety:
//
//   - Store has no internal locking. Concurrent reads are safe while no Join
//     runs; any mutation must be synchronized by the caller.
package adjacency
