package avl

import "fmt"

// Check validates structural tree invariants: key ordering, cached heights,
// balance factors, parent links and the node count.
//
// This checker is intentionally strict and should be used in tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariant, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	count, _, err := t.checkNode(t.root, nil, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes, size %d)", ErrInvariant, count, t.size)
	}
	return nil
}

// checkNode validates subtree n. lo and hi, if not nil, are the nodes whose
// keys bound all keys of the subtree (exclusive).
func (t *Tree[K, V]) checkNode(n, parent, lo, hi *node[K, V]) (count int, h int, err error) {
	if n == nil {
		return 0, -1, nil
	}
	if n.parent != parent {
		return 0, 0, fmt.Errorf("%w: broken parent link at key %v", ErrInvariant, n.key)
	}
	if lo != nil && t.cfg.Compare(n.key, lo.key) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvariant, n.key, lo.key)
	}
	if hi != nil && t.cfg.Compare(n.key, hi.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrInvariant, n.key, hi.key)
	}
	lcount, lh, err := t.checkNode(n.left, n, lo, n)
	if err != nil {
		return 0, 0, err
	}
	rcount, rh, err := t.checkNode(n.right, n, n, hi)
	if err != nil {
		return 0, 0, err
	}
	h = max(lh, rh) + 1
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: cached height %d at key %v, actual %d", ErrInvariant, n.height, n.key, h)
	}
	if bf := rh - lh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: balance factor %d at key %v", ErrInvariant, bf, n.key)
	}
	return lcount + rcount + 1, h, nil
}
