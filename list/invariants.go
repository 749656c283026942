package list

import "fmt"

// Check validates the structural invariants of the list: sibling links are
// symmetric, every element references l, the chain is terminated at both ends
// and its length matches the element count.
func (l *List[T]) Check() error {
	if (l.head == nil) != (l.tail == nil) {
		return fmt.Errorf("%w: head/tail disagree on emptiness", ErrInvariant)
	}
	if l.head != nil && l.head.prev != nil {
		return fmt.Errorf("%w: head has a predecessor", ErrInvariant)
	}
	if l.tail != nil && l.tail.next != nil {
		return fmt.Errorf("%w: tail has a successor", ErrInvariant)
	}
	count := 0
	var last *Element[T]
	for e := l.head; e != nil; e = e.next {
		if e.list != l {
			return fmt.Errorf("%w: element #%d references a foreign list", ErrInvariant, count)
		}
		if e.prev != last {
			return fmt.Errorf("%w: broken back link at element #%d", ErrInvariant, count)
		}
		last = e
		count++
		if count > l.size {
			return fmt.Errorf("%w: size mismatch, chain longer than %d", ErrInvariant, l.size)
		}
	}
	if last != l.tail {
		return fmt.Errorf("%w: chain does not end at tail", ErrInvariant)
	}
	if count != l.size {
		return fmt.Errorf("%w: size mismatch, chain has %d elements, size is %d", ErrInvariant, count, l.size)
	}
	return nil
}
