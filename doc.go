// Package lvkit is a small toolbox of generic in-memory data structures,
// centred on a weighted adjacency graph and its shortest-path solver.
//
// Under the hood, everything is organized in subpackages:
//
//	adjacency/   Store[K, P]: node → (target → payload), one edge per pair, latest wins
//	dijkstra/    Solve / Run: single-source shortest distances, lazy-deletion heap
//	bfs/         fewest-hop traversal over the same Store
//	converters/  export to / import from gonum/graph
//	primes/      6k±1 sieve of Eratosthenes and factorization
//	groupedmap/  one-to-many maps that drop empty groups (hash and B-tree backed)
//
// Quick example:
//
//	s := adjacency.New[int, int]()
//	s.Join(1, 2, 15, true)
//	s.Join(2, 5, 4, true)
//	dist := dijkstra.Solve(s, 1) // map[1:0 2:15 5:19]
//
//	go get github.com/katalvlaran/lvkit
package lvkit
