// Package converters provides two-way adapters between adjacency.Store and
// gonum/graph:
//
//   - ToGonum exports a weighted Store to a *simple.WeightedDirectedGraph,
//     assigning dense int64 node IDs in ascending key order.
//   - FromGonum imports any graph.WeightedDirected into a Store keyed by
//     gonum node ID.
//
// Use converters to run gonum's algorithm suite (paths, flows, community,
// topological ordering) on a graph built with lvkit, or the other way round.
//
// Mapping rules:
//
//   - Every node that appears in the Store, as source or destination, becomes
//     a gonum node. Destination-only nodes therefore exist in gonum even
//     though the Store reports them as unknown.
//   - Self-loops are skipped on export; gonum's simple graphs do not hold them.
//   - On import, a gonum node without outgoing edges is unknown in the Store.
package converters
