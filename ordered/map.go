package ordered

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/avl"
)

// Pair is a key/value pair, as used for initializing maps.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// InsertResult reports the outcome of one insertion of a bulk insert.
type InsertResult[K, V any] struct {
	Pos      avl.Iterator[K, V] // position of the key
	Inserted bool               // false if the key was already present
}

// Map is an ordered map with unique keys.
type Map[K, V any] struct {
	tree *avl.Tree[K, V]
}

// NewMap creates an empty map for naturally ordered keys.
func NewMap[K containers.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: avl.NewOrdered[K, V]()}
}

// NewMapFunc creates an empty map ordering keys with cmp.
func NewMapFunc[K, V any](cmp func(a, b K) int) (*Map[K, V], error) {
	tree, err := avl.New[K, V](avl.Config[K]{Compare: cmp})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// MapOf creates a map from pairs. For duplicate keys the first pair wins.
func MapOf[K containers.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	m.InsertMany(pairs...)
	return m
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map holds no keys.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// MaxSize returns the theoretical maximum number of keys.
func (m *Map[K, V]) MaxSize() int {
	return m.tree.MaxSize()
}

// Clear removes all keys.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Index returns a pointer to the value mapped to key. A missing key is
// inserted with the zero value first.
func (m *Map[K, V]) Index(key K) *V {
	var zero V
	it, _ := m.tree.Insert(key, zero)
	return it.Ptr()
}

// At returns the value mapped to key. For a missing key an error wrapping
// containers.ErrKeyNotFound is returned. At never modifies the map.
func (m *Map[K, V]) At(key K) (V, error) {
	it := m.tree.Search(key)
	if it.IsEnd() {
		var zero V
		return zero, fmt.Errorf("%w: map key %v", containers.ErrKeyNotFound, key)
	}
	return it.Value(), nil
}

// Insert maps key to value if key is not yet present. It returns the position
// of key and whether an insertion took place.
func (m *Map[K, V]) Insert(key K, value V) (avl.Iterator[K, V], bool) {
	return m.tree.Insert(key, value)
}

// InsertPair is Insert for a Pair.
func (m *Map[K, V]) InsertPair(p Pair[K, V]) (avl.Iterator[K, V], bool) {
	return m.tree.Insert(p.Key, p.Value)
}

// InsertOrAssign maps key to value, overwriting an existing mapping. The flag
// is true if key was inserted, false if it was assigned.
func (m *Map[K, V]) InsertOrAssign(key K, value V) (avl.Iterator[K, V], bool) {
	it, inserted := m.tree.Insert(key, value)
	if !inserted {
		*it.Ptr() = value
	}
	return it, inserted
}

// InsertMany inserts pairs in order and reports the outcome of each insertion.
func (m *Map[K, V]) InsertMany(pairs ...Pair[K, V]) []InsertResult[K, V] {
	results := make([]InsertResult[K, V], len(pairs))
	for i, p := range pairs {
		results[i].Pos, results[i].Inserted = m.InsertPair(p)
	}
	return results
}

// Erase removes the key at position it.
func (m *Map[K, V]) Erase(it avl.Iterator[K, V]) error {
	return m.tree.EraseAt(it)
}

// EraseKey removes key. For a missing key an error wrapping
// containers.ErrKeyNotFound is returned.
func (m *Map[K, V]) EraseKey(key K) error {
	return m.tree.Erase(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(key)
}

// Find returns the position of key, or End if absent.
func (m *Map[K, V]) Find(key K) avl.Iterator[K, V] {
	return m.tree.Search(key)
}

// Begin returns the position of the smallest key.
func (m *Map[K, V]) Begin() avl.Iterator[K, V] {
	return m.tree.Begin()
}

// End returns the position past the largest key.
func (m *Map[K, V]) End() avl.Iterator[K, V] {
	return m.tree.End()
}

// LowerBound returns the position of the first key not less than key.
func (m *Map[K, V]) LowerBound(key K) avl.Iterator[K, V] {
	return m.tree.LowerBound(key)
}

// UpperBound returns the position of the first key greater than key.
func (m *Map[K, V]) UpperBound(key K) avl.Iterator[K, V] {
	return m.tree.UpperBound(key)
}

// All returns an iterator over all key/value pairs in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Keys returns an iterator over all keys in order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return m.tree.Keys()
}

// Swap exchanges the contents of two maps.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree.Swap(other.tree)
}

// Clone returns a copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Merge moves every mapping of other whose key is absent in m into m. Mappings
// with keys already present in m remain in other.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	if other == nil || other == m {
		return
	}
	var moved []K
	for k, v := range other.tree.All() {
		if _, inserted := m.tree.Insert(k, v); inserted {
			moved = append(moved, k)
		}
	}
	for _, k := range moved {
		err := other.tree.Erase(k)
		assert(err == nil, "ordered: merged key vanished from source")
	}
	tracer().Debugf("ordered: merged %d keys into map", len(moved))
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
