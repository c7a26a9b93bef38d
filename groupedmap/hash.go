package groupedmap

import "maps"

// HashGroups maps each key to a set of values, backed by Go maps.
type HashGroups[K, V comparable] struct {
	groups map[K]map[V]struct{}
}

// NewHashGroups returns an empty HashGroups.
func NewHashGroups[K, V comparable]() *HashGroups[K, V] {
	return &HashGroups[K, V]{groups: make(map[K]map[V]struct{})}
}

// Add inserts v into k's group, creating the group if needed.
// Reports whether v was not already present.
func (g *HashGroups[K, V]) Add(k K, v V) bool {
	set, ok := g.groups[k]
	if !ok {
		set = make(map[V]struct{}, 1)
		g.groups[k] = set
	}
	if _, dup := set[v]; dup {
		return false
	}
	set[v] = struct{}{}

	return true
}

// Remove deletes v from k's group and drops the group once it is empty.
// Reports whether v was present.
func (g *HashGroups[K, V]) Remove(k K, v V) bool {
	set, ok := g.groups[k]
	if !ok {
		return false
	}
	if _, ok = set[v]; !ok {
		return false
	}
	delete(set, v)
	if len(set) == 0 {
		delete(g.groups, k)
	}

	return true
}

// Group returns a copy of k's values; ok is false if k has no group.
func (g *HashGroups[K, V]) Group(k K) (map[V]struct{}, bool) {
	set, ok := g.groups[k]
	if !ok {
		return nil, false
	}

	return maps.Clone(set), true
}

// Has reports whether v is in k's group.
func (g *HashGroups[K, V]) Has(k K, v V) bool {
	_, ok := g.groups[k][v]

	return ok
}

// Len returns the number of non-empty groups.
func (g *HashGroups[K, V]) Len() int { return len(g.groups) }
