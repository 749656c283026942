package avl

import (
	"fmt"
	"math"

	"github.com/npillmayer/containers"
)

// Tree is a height-balanced binary search tree mapping keys K to values V.
//
// Trees have to be created with New or NewOrdered. They own their nodes
// exclusively; no node is ever shared between two trees.
type Tree[K, V any] struct {
	cfg  Config[K]
	root *node[K, V]
	size int
}

type node[K, V any] struct {
	key    K
	value  V
	height int // -1 for empty subtrees, 0 for leafs
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V] // back-reference, nil for the root
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree ordering keys by their natural order.
func NewOrdered[K containers.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{cfg: OrderedConfig[K]()}
}

// Config returns a copy of the tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Len returns the number of nodes, i.e. the number of distinct keys.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// MaxSize returns the theoretical maximum number of nodes.
func (t *Tree[K, V]) MaxSize() int {
	return math.MaxInt
}

// Height returns the number of levels of the tree, where 0 means empty and 1
// means a single root node.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root) + 1
}

// Search finds the node for key. If key is not present, the end iterator is
// returned.
func (t *Tree[K, V]) Search(key K) Iterator[K, V] {
	if t == nil {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{tree: t, n: t.search(key)}
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t != nil && t.search(key) != nil
}

func (t *Tree[K, V]) search(key K) *node[K, V] {
	n := t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Insert inserts key with an associated value. If key is already present,
// the tree is left unchanged and Insert returns an iterator to the existing
// node and false. Otherwise a new node is created, the tree is rebalanced
// and Insert returns an iterator to the new node and true.
func (t *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	root, target, added := t.insertNode(t.root, key, value)
	t.root = root
	t.root.parent = nil
	if added {
		t.size++
	}
	return Iterator[K, V]{tree: t, n: target}, added
}

// insertNode descends by key order and returns the (possibly rotated) subtree
// root, the node holding key and whether that node has been created.
func (t *Tree[K, V]) insertNode(n *node[K, V], key K, value V) (*node[K, V], *node[K, V], bool) {
	if n == nil {
		leaf := &node[K, V]{key: key, value: value}
		return leaf, leaf, true
	}
	var target *node[K, V]
	var added bool
	c := t.cfg.Compare(key, n.key)
	switch {
	case c < 0:
		var sub *node[K, V]
		sub, target, added = t.insertNode(n.left, key, value)
		n.setLeft(sub)
	case c > 0:
		var sub *node[K, V]
		sub, target, added = t.insertNode(n.right, key, value)
		n.setRight(sub)
	default:
		return n, n, false
	}
	if !added {
		return n, target, false
	}
	return t.balance(n), target, true
}

// Erase removes the node for key. If key is not present, Erase returns an
// error wrapping containers.ErrKeyNotFound and leaves the tree untouched.
func (t *Tree[K, V]) Erase(key K) error {
	if t == nil || t.search(key) == nil {
		tracer().Debugf("avl: erase of absent key %v", key)
		return fmt.Errorf("%w: cannot erase %v", containers.ErrKeyNotFound, key)
	}
	t.root = t.eraseNode(t.root, key)
	if t.root != nil {
		t.root.parent = nil
	}
	t.size--
	assert(t.size >= 0, "avl: tree size underflow")
	return nil
}

// EraseAt removes the node an iterator is positioned at. The iterator must
// reference a node currently linked into t. Iterators to erased nodes, or to
// nodes moved to another tree by Swap or MoveFrom, are rejected with an error
// wrapping containers.ErrInvalidPosition.
func (t *Tree[K, V]) EraseAt(it Iterator[K, V]) error {
	if t == nil || it.tree != t || it.n == nil || t.search(it.n.key) != it.n {
		return fmt.Errorf("%w: iterator does not reference a node of this tree", containers.ErrInvalidPosition)
	}
	return t.Erase(it.n.key)
}

// eraseNode removes key from subtree n. If the node has no right child, its
// left child takes its place. Otherwise the in-order successor is detached
// from the right subtree and re-hung in place of the erased node.
func (t *Tree[K, V]) eraseNode(n *node[K, V], key K) *node[K, V] {
	assert(n != nil, "avl: eraseNode reached an empty subtree")
	c := t.cfg.Compare(key, n.key)
	switch {
	case c < 0:
		n.setLeft(t.eraseNode(n.left, key))
	case c > 0:
		n.setRight(t.eraseNode(n.right, key))
	default:
		left, right := n.left, n.right
		n.left, n.right, n.parent = nil, nil, nil
		if right == nil {
			return left
		}
		successor := right.leftmost()
		rest := t.eraseMin(right)
		successor.setRight(rest)
		successor.setLeft(left)
		return t.balance(successor)
	}
	return t.balance(n)
}

// eraseMin detaches the leftmost node of subtree n and returns the rebalanced
// remainder.
func (t *Tree[K, V]) eraseMin(n *node[K, V]) *node[K, V] {
	if n.left == nil {
		return n.right
	}
	n.setLeft(t.eraseMin(n.left))
	return t.balance(n)
}

// Clear removes all nodes from the tree.
func (t *Tree[K, V]) Clear() {
	if t == nil || t.root == nil {
		return
	}
	tracer().Debugf("avl: clearing tree with %d nodes", t.size)
	t.root = nil
	t.size = 0
}

// Clone returns a deep structural copy of the tree.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	return &Tree[K, V]{
		cfg:  t.cfg,
		root: cloneNode(t.root, nil),
		size: t.size,
	}
}

func cloneNode[K, V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := &node[K, V]{key: n.key, value: n.value, height: n.height, parent: parent}
	c.left = cloneNode(n.left, c)
	c.right = cloneNode(n.right, c)
	return c
}

// Swap exchanges the contents of two trees.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	if t == nil || other == nil || t == other {
		return
	}
	t.cfg, other.cfg = other.cfg, t.cfg
	t.root, other.root = other.root, t.root
	t.size, other.size = other.size, t.size
}

// MoveFrom transfers all nodes of other to t, dropping the previous contents
// of t. other is left empty.
func (t *Tree[K, V]) MoveFrom(other *Tree[K, V]) {
	if t == nil || other == nil || t == other {
		return
	}
	t.cfg = other.cfg
	t.root, t.size = other.root, other.size
	other.root, other.size = nil, 0
}

// --- Balancing -------------------------------------------------------------

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// balanceFactor is height(right) - height(left).
func balanceFactor[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return height(n.right) - height(n.left)
}

func (n *node[K, V]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

func (n *node[K, V]) setLeft(child *node[K, V]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

func (n *node[K, V]) setRight(child *node[K, V]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// balance recomputes the height of n and restores the balance invariant with
// single or double rotations. It returns the new subtree root; the caller is
// responsible for hanging it into the parent.
func (t *Tree[K, V]) balance(n *node[K, V]) *node[K, V] {
	n.updateHeight()
	switch bf := balanceFactor(n); bf {
	case 2:
		if balanceFactor(n.right) < 0 {
			n.setRight(rotateRight(n.right))
		}
		return rotateLeft(n)
	case -2:
		if balanceFactor(n.left) > 0 {
			n.setLeft(rotateLeft(n.left))
		}
		return rotateRight(n)
	default:
		assert(bf >= -1 && bf <= 1, "avl: balance factor out of range")
	}
	return n
}

// rotateLeft lifts the right child of n. Heights are recomputed for the two
// nodes involved only.
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	pivot := n.right
	n.setRight(pivot.left)
	pivot.setLeft(n)
	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// rotateRight lifts the left child of n.
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	pivot := n.left
	n.setLeft(pivot.right)
	pivot.setRight(n)
	n.updateHeight()
	pivot.updateHeight()
	return pivot
}
