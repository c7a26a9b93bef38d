// Package bfs provides breadth-first search over an adjacency.Store,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook, called per node; a non-nil error aborts the search.
//   - Per-edge filtering via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Fewest-hop paths in O(V + E) time, ignoring edge payloads.
//   - Reachability and level layering over the same Store the dijkstra
//     package solves on.
//
// Determinism
//
//	Neighbors are enqueued in ascending ID order (adjacency.SortedEdges), so
//	the visit sequence is fully reproducible.
//
// Absence
//
//	A start node unknown to the Store is not an error: the result holds only
//	the start at depth 0, mirroring dijkstra.Solve.
package bfs
