// Package dijkstra computes single-source shortest distances over an
// adjacency.Store whose edge payloads are non-negative numeric weights.
//
// Overview:
//
//   - Solve(s, start) returns dist[v] for every node v reachable from start.
//     start always maps to 0. Unreachable nodes are absent: there is no
//     "infinity" sentinel in the result.
//   - Run(s, start, opts...) runs the same algorithm with optional predecessor
//     tracking and opt-in guards that turn silent boundary conditions into errors.
//
// Algorithm:
//
//   - A binary min-heap (container/heap) ordered by (distance, node ID); the node
//     ID is a deterministic tie-break, which is why K must be cmp.Ordered.
//   - Lazy deletion instead of decrease-key: an improved distance pushes a new
//     heap entry and leaves the stale one in place. Stale entries are dropped on
//     pop by checking the finalized set.
//   - A node that was never a source in the store (a leaf, or an unknown start)
//     simply has nothing to relax.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); up to E entries can sit in the heap under lazy deletion.
//
// Boundaries:
//
//   - Negative weights are a caller precondition. Solve does not check them and
//     returns unspecified distances if they are present. Run with
//     WithNegativeWeightCheck() fails fast with ErrNegativeWeight.
//   - A candidate distance d+w that does not fit in W is discarded, so the path
//     behind it is treated as longer than any representable distance. Run with
//     WithOverflowCheck() reports ErrDistanceOverflow instead.
//
// Errors (sentinel, Run and Result.PathTo only):
//
//	ErrNegativeWeight    - an edge with a negative weight was found by the pre-scan.
//	ErrDistanceOverflow  - a distance exceeded the range of W.
//	ErrNoPath            - PathTo target was not reached.
//	ErrNoPredecessors    - PathTo called on a Result built without WithReturnPath().
//
// Thread safety:
//
//   - The store is only read. Any number of Solve/Run calls may share one store
//     as long as no Join runs concurrently with them.
package dijkstra
