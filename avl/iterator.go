package avl

// Iterator references a node of a tree, or the end position past the last
// node. Iterators are small values and may be copied freely.
//
// An iterator is invalidated when the node it references is erased. Erasing
// other nodes does not invalidate it.
type Iterator[K, V any] struct {
	tree *Tree[K, V]
	n    *node[K, V]
}

// Begin returns an iterator to the node with the smallest key, or the end
// iterator for an empty tree.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	if t == nil || t.root == nil {
		return Iterator[K, V]{tree: t}
	}
	return Iterator[K, V]{tree: t, n: t.root.leftmost()}
}

// End returns the iterator positioned past the last node.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: t}
}

// Last returns an iterator to the node with the largest key, or the end
// iterator for an empty tree.
func (t *Tree[K, V]) Last() Iterator[K, V] {
	if t == nil || t.root == nil {
		return Iterator[K, V]{tree: t}
	}
	return Iterator[K, V]{tree: t, n: t.root.rightmost()}
}

// LowerBound returns an iterator to the first node with a key not less than
// key, or End if there is none. The tree is not modified.
func (t *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	if t == nil {
		return Iterator[K, V]{}
	}
	var candidate *node[K, V]
	for n := t.root; n != nil; {
		if t.cfg.Compare(n.key, key) >= 0 {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[K, V]{tree: t, n: candidate}
}

// UpperBound returns an iterator to the first node with a key greater than
// key, or End if there is none. The tree is not modified.
func (t *Tree[K, V]) UpperBound(key K) Iterator[K, V] {
	if t == nil {
		return Iterator[K, V]{}
	}
	var candidate *node[K, V]
	for n := t.root; n != nil; {
		if t.cfg.Compare(n.key, key) > 0 {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[K, V]{tree: t, n: candidate}
}

// IsEnd reports whether the iterator is positioned past the last node.
func (it Iterator[K, V]) IsEnd() bool {
	return it.n == nil
}

// Equal reports whether two iterators reference the same node. End iterators
// are equal only if they belong to the same tree.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	if it.n == nil || other.n == nil {
		return it.n == other.n && it.tree == other.tree
	}
	return it.n == other.n
}

// Key returns the key of the referenced node. For the end iterator the zero
// value of K is returned.
func (it Iterator[K, V]) Key() K {
	if it.n == nil {
		var zero K
		return zero
	}
	return it.n.key
}

// Value returns the value of the referenced node. For the end iterator the
// zero value of V is returned.
func (it Iterator[K, V]) Value() V {
	if it.n == nil {
		var zero V
		return zero
	}
	return it.n.value
}

// Ptr returns a pointer to the value stored in the referenced node, allowing
// in-place updates. Keys cannot be changed. For the end iterator Ptr returns nil.
func (it Iterator[K, V]) Ptr() *V {
	if it.n == nil {
		return nil
	}
	return &it.n.value
}

// Next returns an iterator to the in-order successor. Advancing the end
// iterator yields the end iterator.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if it.n == nil {
		return it
	}
	return Iterator[K, V]{tree: it.tree, n: it.n.successor()}
}

// Prev returns an iterator to the in-order predecessor. Stepping back from the
// end iterator yields the last node; stepping back from the first node yields
// the end iterator.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.n == nil {
		return it.tree.Last()
	}
	return Iterator[K, V]{tree: it.tree, n: it.n.predecessor()}
}

// successor is the leftmost node of the right subtree, if present. Otherwise
// it walks up while n is a right child and lands on the parent one further up.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	return n.parent
}
