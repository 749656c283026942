package ordered

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/avl"
)

// Multiset is an ordered collection of keys allowing duplicates. Equal keys
// share a single tree node holding an occurrence count.
type Multiset[K any] struct {
	tree *avl.Tree[K, int]
	size int // total number of occurrences
}

// NewMultiset creates an empty multiset for naturally ordered keys.
func NewMultiset[K containers.Ordered]() *Multiset[K] {
	return &Multiset[K]{tree: avl.NewOrdered[K, int]()}
}

// NewMultisetFunc creates an empty multiset ordering keys with cmp.
func NewMultisetFunc[K any](cmp func(a, b K) int) (*Multiset[K], error) {
	tree, err := avl.New[K, int](avl.Config[K]{Compare: cmp})
	if err != nil {
		return nil, err
	}
	return &Multiset[K]{tree: tree}, nil
}

// MultisetOf creates a multiset holding keys.
func MultisetOf[K containers.Ordered](keys ...K) *Multiset[K] {
	ms := NewMultiset[K]()
	ms.InsertMany(keys...)
	return ms
}

// MultiIterator references a single occurrence of a key in a multiset, or the
// end position.
type MultiIterator[K any] struct {
	pos avl.Iterator[K, int]
	occ int // occurrence index within the node, 0 ≤ occ < count
}

// IsEnd reports whether the iterator is positioned past the last occurrence.
func (it MultiIterator[K]) IsEnd() bool {
	return it.pos.IsEnd()
}

// Key returns the referenced key, or the zero value at the end position.
func (it MultiIterator[K]) Key() K {
	return it.pos.Key()
}

// Equal reports whether two iterators reference the same occurrence.
func (it MultiIterator[K]) Equal(other MultiIterator[K]) bool {
	return it.pos.Equal(other.pos) && it.occ == other.occ
}

// Next steps to the next occurrence, which may be another occurrence of the
// same key.
func (it MultiIterator[K]) Next() MultiIterator[K] {
	if it.pos.IsEnd() {
		return it
	}
	if it.occ+1 < it.pos.Value() {
		return MultiIterator[K]{pos: it.pos, occ: it.occ + 1}
	}
	return MultiIterator[K]{pos: it.pos.Next()}
}

// Prev steps to the previous occurrence. Stepping back from the end position
// yields the last occurrence of the largest key.
func (it MultiIterator[K]) Prev() MultiIterator[K] {
	if !it.pos.IsEnd() && it.occ > 0 {
		return MultiIterator[K]{pos: it.pos, occ: it.occ - 1}
	}
	prev := it.pos.Prev()
	if prev.IsEnd() {
		return MultiIterator[K]{pos: prev}
	}
	return MultiIterator[K]{pos: prev, occ: prev.Value() - 1}
}

func (ms *Multiset[K]) firstOf(pos avl.Iterator[K, int]) MultiIterator[K] {
	return MultiIterator[K]{pos: pos}
}

// Len returns the total number of occurrences.
func (ms *Multiset[K]) Len() int { return ms.size }

// Distinct returns the number of distinct keys.
func (ms *Multiset[K]) Distinct() int { return ms.tree.Len() }

// IsEmpty reports whether the multiset holds no keys.
func (ms *Multiset[K]) IsEmpty() bool { return ms.size == 0 }

// MaxSize returns the theoretical maximum number of occurrences.
func (ms *Multiset[K]) MaxSize() int { return ms.tree.MaxSize() }

// Clear removes all keys.
func (ms *Multiset[K]) Clear() {
	ms.tree.Clear()
	ms.size = 0
}

// Insert adds an occurrence of key and returns its position.
func (ms *Multiset[K]) Insert(key K) MultiIterator[K] {
	pos, _ := ms.tree.Insert(key, 0)
	cnt := pos.Ptr()
	*cnt++
	ms.size++
	return MultiIterator[K]{pos: pos, occ: *cnt - 1}
}

// InsertMany adds an occurrence for each of keys.
func (ms *Multiset[K]) InsertMany(keys ...K) {
	for _, k := range keys {
		ms.Insert(k)
	}
}

// Erase removes the occurrence at position it. If more occurrences of its key
// remain, only the count is decremented.
func (ms *Multiset[K]) Erase(it MultiIterator[K]) error {
	if it.pos.IsEnd() || !it.pos.Equal(ms.tree.Search(it.pos.Key())) {
		return fmt.Errorf("%w: multiset iterator not dereferenceable", containers.ErrInvalidPosition)
	}
	cnt := it.pos.Ptr()
	if *cnt > 1 {
		*cnt--
	} else if err := ms.tree.EraseAt(it.pos); err != nil {
		return err
	}
	ms.size--
	return nil
}

// EraseKey removes all occurrences of key and returns how many there were.
// For a missing key an error wrapping containers.ErrKeyNotFound is returned.
func (ms *Multiset[K]) EraseKey(key K) (int, error) {
	pos := ms.tree.Search(key)
	if pos.IsEnd() {
		return 0, fmt.Errorf("%w: multiset key %v", containers.ErrKeyNotFound, key)
	}
	n := pos.Value()
	if err := ms.tree.EraseAt(pos); err != nil {
		return 0, err
	}
	ms.size -= n
	return n, nil
}

// Count returns the number of occurrences of key.
func (ms *Multiset[K]) Count(key K) int {
	return ms.tree.Search(key).Value()
}

// Contains reports whether key occurs at least once.
func (ms *Multiset[K]) Contains(key K) bool { return ms.tree.Contains(key) }

// Find returns the position of the first occurrence of key, or End.
func (ms *Multiset[K]) Find(key K) MultiIterator[K] {
	return ms.firstOf(ms.tree.Search(key))
}

// Begin returns the position of the first occurrence of the smallest key.
func (ms *Multiset[K]) Begin() MultiIterator[K] { return ms.firstOf(ms.tree.Begin()) }

// End returns the position past the last occurrence.
func (ms *Multiset[K]) End() MultiIterator[K] { return ms.firstOf(ms.tree.End()) }

// LowerBound returns the first occurrence of the smallest key not less than key.
func (ms *Multiset[K]) LowerBound(key K) MultiIterator[K] {
	return ms.firstOf(ms.tree.LowerBound(key))
}

// UpperBound returns the first occurrence of the smallest key greater than key.
func (ms *Multiset[K]) UpperBound(key K) MultiIterator[K] {
	return ms.firstOf(ms.tree.UpperBound(key))
}

// EqualRange returns the half-open range [lo, hi) of all occurrences of key.
func (ms *Multiset[K]) EqualRange(key K) (lo, hi MultiIterator[K]) {
	return ms.LowerBound(key), ms.UpperBound(key)
}

// All returns an iterator yielding every key once per occurrence, in order.
func (ms *Multiset[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k, n := range ms.tree.All() {
			for range n {
				if !yield(k) {
					return
				}
			}
		}
	}
}

// Swap exchanges the contents of two multisets.
func (ms *Multiset[K]) Swap(other *Multiset[K]) {
	ms.tree.Swap(other.tree)
	ms.size, other.size = other.size, ms.size
}

// Clone returns a copy of the multiset.
func (ms *Multiset[K]) Clone() *Multiset[K] {
	return &Multiset[K]{tree: ms.tree.Clone(), size: ms.size}
}

// Merge moves all occurrences of other into ms, leaving other empty.
func (ms *Multiset[K]) Merge(other *Multiset[K]) {
	if other == nil || other == ms {
		return
	}
	for k, n := range other.tree.All() {
		pos, _ := ms.tree.Insert(k, 0)
		*pos.Ptr() += n
	}
	tracer().Debugf("ordered: merged %d occurrences into multiset", other.size)
	ms.size += other.size
	other.Clear()
}
