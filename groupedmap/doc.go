// Package groupedmap provides one-to-many maps whose groups live exactly as
// long as they hold a value:
//
//   - Add(k, v) creates the group for k on first insertion.
//   - Remove(k, v) deletes the group for k once its last value is gone.
//
// Two variants share the contract:
//
//	HashGroups[K, V comparable]  // Go maps; unordered, O(1) per operation
//	OrderedGroups[K, V cmp.Ordered] // B-trees; ascending keys and values, O(log n)
//
// Neither variant is safe for concurrent mutation.
package groupedmap
