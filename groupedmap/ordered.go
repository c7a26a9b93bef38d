package groupedmap

import (
	"cmp"

	"github.com/google/btree"
)

// degree is the B-tree branching factor for both key and value trees.
const degree = 8

// group is one key and its values. Only key takes part in ordering.
type group[K, V cmp.Ordered] struct {
	key  K
	vals *btree.BTreeG[V]
}

// OrderedGroups maps each key to a sorted set of values, with keys kept in
// ascending order.
type OrderedGroups[K, V cmp.Ordered] struct {
	tree *btree.BTreeG[group[K, V]]
}

// NewOrderedGroups returns an empty OrderedGroups.
func NewOrderedGroups[K, V cmp.Ordered]() *OrderedGroups[K, V] {
	return &OrderedGroups[K, V]{
		tree: btree.NewG[group[K, V]](degree, func(a, b group[K, V]) bool { return cmp.Less(a.key, b.key) }),
	}
}

// Add inserts v into k's group, creating the group if needed.
// Reports whether v was not already present.
func (g *OrderedGroups[K, V]) Add(k K, v V) bool {
	item, ok := g.tree.Get(group[K, V]{key: k})
	if !ok {
		item = group[K, V]{key: k, vals: btree.NewG[V](degree, cmp.Less[V])}
		g.tree.ReplaceOrInsert(item)
	}
	_, dup := item.vals.ReplaceOrInsert(v)

	return !dup
}

// Remove deletes v from k's group and drops the group once it is empty.
// Reports whether v was present.
func (g *OrderedGroups[K, V]) Remove(k K, v V) bool {
	item, ok := g.tree.Get(group[K, V]{key: k})
	if !ok {
		return false
	}
	if _, ok = item.vals.Delete(v); !ok {
		return false
	}
	if item.vals.Len() == 0 {
		g.tree.Delete(item)
	}

	return true
}

// Group returns k's values in ascending order; ok is false if k has no group.
func (g *OrderedGroups[K, V]) Group(k K) ([]V, bool) {
	item, ok := g.tree.Get(group[K, V]{key: k})
	if !ok {
		return nil, false
	}

	return values(item.vals), true
}

// Has reports whether v is in k's group.
func (g *OrderedGroups[K, V]) Has(k K, v V) bool {
	item, ok := g.tree.Get(group[K, V]{key: k})

	return ok && item.vals.Has(v)
}

// Keys returns every key with a non-empty group, ascending.
func (g *OrderedGroups[K, V]) Keys() []K {
	out := make([]K, 0, g.tree.Len())
	g.tree.Ascend(func(item group[K, V]) bool {
		out = append(out, item.key)
		return true
	})

	return out
}

// Ascend calls fn for each group in ascending key order until fn returns false.
func (g *OrderedGroups[K, V]) Ascend(fn func(k K, vals []V) bool) {
	g.tree.Ascend(func(item group[K, V]) bool {
		return fn(item.key, values(item.vals))
	})
}

// Len returns the number of non-empty groups.
func (g *OrderedGroups[K, V]) Len() int { return g.tree.Len() }

func values[V cmp.Ordered](t *btree.BTreeG[V]) []V {
	out := make([]V, 0, t.Len())
	t.Ascend(func(v V) bool {
		out = append(out, v)
		return true
	})

	return out
}
