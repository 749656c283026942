package avl

import "iter"

// ForEach walks nodes in key order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K, V]) forEachNode(n *node[K, V], fn func(key K, value V) bool) bool {
	if n == nil {
		return true
	}
	if !t.forEachNode(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return t.forEachNode(n.right, fn)
}

// All returns an iterator over all key/value pairs in key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ForEach(yield)
	}
}

// Keys returns an iterator over all keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(func(key K, _ V) bool {
			return yield(key)
		})
	}
}

// Backward returns an iterator over all key/value pairs in descending key
// order, following predecessor links.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Last(); !it.IsEnd(); it = it.Prev() {
			if !yield(it.n.key, it.n.value) {
				return
			}
		}
	}
}
