package ordered

import (
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/avl"
)

// Set is an ordered set of unique keys.
type Set[K any] struct {
	tree *avl.Tree[K, struct{}]
}

// NewSet creates an empty set for naturally ordered keys.
func NewSet[K containers.Ordered]() *Set[K] {
	return &Set[K]{tree: avl.NewOrdered[K, struct{}]()}
}

// NewSetFunc creates an empty set ordering keys with cmp.
func NewSetFunc[K any](cmp func(a, b K) int) (*Set[K], error) {
	tree, err := avl.New[K, struct{}](avl.Config[K]{Compare: cmp})
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// SetOf creates a set holding keys.
func SetOf[K containers.Ordered](keys ...K) *Set[K] {
	s := NewSet[K]()
	s.InsertMany(keys...)
	return s
}

// Len returns the number of keys.
func (s *Set[K]) Len() int { return s.tree.Len() }

// IsEmpty reports whether the set holds no keys.
func (s *Set[K]) IsEmpty() bool { return s.tree.IsEmpty() }

// MaxSize returns the theoretical maximum number of keys.
func (s *Set[K]) MaxSize() int { return s.tree.MaxSize() }

// Clear removes all keys.
func (s *Set[K]) Clear() { s.tree.Clear() }

// Insert adds key if not yet present. It returns the position of key and
// whether an insertion took place.
func (s *Set[K]) Insert(key K) (avl.Iterator[K, struct{}], bool) {
	return s.tree.Insert(key, struct{}{})
}

// InsertMany inserts keys and returns the number of keys actually added.
func (s *Set[K]) InsertMany(keys ...K) int {
	added := 0
	for _, k := range keys {
		if _, ok := s.Insert(k); ok {
			added++
		}
	}
	return added
}

// Erase removes the key at position it.
func (s *Set[K]) Erase(it avl.Iterator[K, struct{}]) error {
	return s.tree.EraseAt(it)
}

// EraseKey removes key. For a missing key an error wrapping
// containers.ErrKeyNotFound is returned.
func (s *Set[K]) EraseKey(key K) error {
	return s.tree.Erase(key)
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool { return s.tree.Contains(key) }

// Find returns the position of key, or End if absent.
func (s *Set[K]) Find(key K) avl.Iterator[K, struct{}] { return s.tree.Search(key) }

// Begin returns the position of the smallest key.
func (s *Set[K]) Begin() avl.Iterator[K, struct{}] { return s.tree.Begin() }

// End returns the position past the largest key.
func (s *Set[K]) End() avl.Iterator[K, struct{}] { return s.tree.End() }

// LowerBound returns the position of the first key not less than key.
func (s *Set[K]) LowerBound(key K) avl.Iterator[K, struct{}] {
	return s.tree.LowerBound(key)
}

// UpperBound returns the position of the first key greater than key.
func (s *Set[K]) UpperBound(key K) avl.Iterator[K, struct{}] {
	return s.tree.UpperBound(key)
}

// All returns an iterator over all keys in order.
func (s *Set[K]) All() iter.Seq[K] { return s.tree.Keys() }

// Swap exchanges the contents of two sets.
func (s *Set[K]) Swap(other *Set[K]) { s.tree.Swap(other.tree) }

// Clone returns a copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.tree.Clone()}
}

// Merge moves every key of other absent in s into s. Keys already present in
// s remain in other.
func (s *Set[K]) Merge(other *Set[K]) {
	if other == nil || other == s {
		return
	}
	var moved []K
	for k := range other.tree.Keys() {
		if _, inserted := s.Insert(k); inserted {
			moved = append(moved, k)
		}
	}
	for _, k := range moved {
		err := other.tree.Erase(k)
		assert(err == nil, "ordered: merged key vanished from source")
	}
	tracer().Debugf("ordered: merged %d keys into set", len(moved))
}
