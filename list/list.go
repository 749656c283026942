package list

import (
	"fmt"
	"iter"
	"math"

	"github.com/npillmayer/containers"
)

// Element is an element of a linked list.
type Element[T any] struct {
	// Value is the payload stored with this element.
	Value T
	next  *Element[T]
	prev  *Element[T]
	list  *List[T] // nil if the element has been removed
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	if e == nil || e.list == nil {
		return nil
	}
	return e.next
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if e == nil || e.list == nil {
		return nil
	}
	return e.prev
}

// List is a doubly linked list. The zero value is an empty list ready to use.
//
// Positions are given as elements; a nil element denotes the position past
// the last element (end).
type List[T any] struct {
	head *Element[T]
	tail *Element[T]
	size int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From creates a list holding values in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// NewWithCount creates a list of n zero values.
func NewWithCount[T any](n int) (*List[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", containers.ErrOutOfRange, n)
	}
	l := New[T]()
	var zero T
	for range n {
		l.PushBack(zero)
	}
	return l, nil
}

// Clone returns a copy of the list holding copies of all values.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for e := l.head; e != nil; e = e.next {
		c.PushBack(e.Value)
	}
	return c
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// MaxSize returns the theoretical maximum number of elements.
func (l *List[T]) MaxSize() int {
	return math.MaxInt
}

// FrontElement returns the first element of the list or nil.
func (l *List[T]) FrontElement() *Element[T] {
	return l.head
}

// BackElement returns the last element of the list or nil.
func (l *List[T]) BackElement() *Element[T] {
	return l.tail
}

// Front returns the first value. For an empty list an error wrapping
// containers.ErrEmptyContainer is returned.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, fmt.Errorf("%w: front of empty list", containers.ErrEmptyContainer)
	}
	return l.head.Value, nil
}

// Back returns the last value. For an empty list an error wrapping
// containers.ErrEmptyContainer is returned.
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, fmt.Errorf("%w: back of empty list", containers.ErrEmptyContainer)
	}
	return l.tail.Value, nil
}

// PushFront inserts v at the front of the list and returns its element.
func (l *List[T]) PushFront(v T) *Element[T] {
	e := &Element[T]{Value: v, next: l.head, list: l}
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.size++
	return e
}

// PushBack inserts v at the back of the list and returns its element.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v, prev: l.tail, list: l}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.size++
	return e
}

// PopFront removes the first element and returns its value.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, fmt.Errorf("%w: pop front of empty list", containers.ErrEmptyContainer)
	}
	e := l.head
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.size--
	e.detach()
	return e.Value, nil
}

// PopBack removes the last element and returns its value.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, fmt.Errorf("%w: pop back of empty list", containers.ErrEmptyContainer)
	}
	e := l.tail
	l.tail = e.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	l.size--
	e.detach()
	return e.Value, nil
}

func (e *Element[T]) detach() {
	e.next, e.prev, e.list = nil, nil, nil
}

// owns reports whether pos is a position of l. nil (end) is a position of
// every list.
func (l *List[T]) owns(pos *Element[T]) bool {
	return pos == nil || pos.list == l
}

// Insert inserts v immediately before pos and returns the new element.
// A nil pos appends v at the back.
func (l *List[T]) Insert(pos *Element[T], v T) (*Element[T], error) {
	if !l.owns(pos) {
		return nil, fmt.Errorf("%w: insert position not in list", containers.ErrInvalidPosition)
	}
	if pos == nil {
		return l.PushBack(v), nil
	}
	if pos == l.head {
		return l.PushFront(v), nil
	}
	e := &Element[T]{Value: v, prev: pos.prev, next: pos, list: l}
	pos.prev.next = e
	pos.prev = e
	l.size++
	return e, nil
}

// Erase removes the element at pos. pos must be an element of l.
func (l *List[T]) Erase(pos *Element[T]) error {
	if pos == nil || pos.list != l {
		return fmt.Errorf("%w: erase position not in list", containers.ErrInvalidPosition)
	}
	if pos == l.head {
		_, err := l.PopFront()
		return err
	}
	if pos == l.tail {
		_, err := l.PopBack()
		return err
	}
	pos.prev.next = pos.next
	pos.next.prev = pos.prev
	l.size--
	pos.detach()
	return nil
}

// Splice moves all elements of other into l, immediately before pos. A nil
// pos appends them at the back. other is left empty.
//
// Elements keep their identity, values are not copied.
func (l *List[T]) Splice(pos *Element[T], other *List[T]) error {
	if other == nil || other == l {
		return fmt.Errorf("%w: cannot splice a list into itself", containers.ErrInvalidPosition)
	}
	if !l.owns(pos) {
		return fmt.Errorf("%w: splice position not in list", containers.ErrInvalidPosition)
	}
	if other.head == nil {
		return nil
	}
	tracer().Debugf("list: splicing %d elements", other.size)
	first, last := other.head, other.tail
	for e := first; e != nil; e = e.next {
		e.list = l
	}
	switch {
	case l.head == nil:
		l.head, l.tail = first, last
	case pos == nil:
		l.tail.next = first
		first.prev = l.tail
		l.tail = last
	case pos == l.head:
		last.next = pos
		pos.prev = last
		l.head = first
	default:
		first.prev = pos.prev
		pos.prev.next = first
		last.next = pos
		pos.prev = last
	}
	l.size += other.size
	other.head, other.tail, other.size = nil, nil, 0
	return nil
}

// Swap exchanges the contents of two lists.
func (l *List[T]) Swap(other *List[T]) {
	if other == nil || other == l {
		return
	}
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
	l.restamp()
	other.restamp()
}

// restamp re-links all elements to l.
func (l *List[T]) restamp() {
	for e := l.head; e != nil; e = e.next {
		e.list = l
	}
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.detach()
		e = next
	}
	l.head, l.tail, l.size = nil, nil, 0
}

// Reverse reverses the order of elements in place.
func (l *List[T]) Reverse() {
	if l.size <= 1 {
		return
	}
	for e := l.head; e != nil; {
		next := e.next
		e.next, e.prev = e.prev, next
		e = next
	}
	l.head, l.tail = l.tail, l.head
}

// InsertMany inserts values before pos, keeping their order, and returns the
// element of the last value inserted. If values is empty, pos is returned.
func (l *List[T]) InsertMany(pos *Element[T], values ...T) (*Element[T], error) {
	if !l.owns(pos) {
		return nil, fmt.Errorf("%w: insert position not in list", containers.ErrInvalidPosition)
	}
	last := pos
	for _, v := range values {
		var err error
		last, err = l.Insert(pos, v)
		assert(err == nil, "list: insert at owned position failed")
	}
	return last, nil
}

// InsertManyBack appends values at the back, keeping their order.
func (l *List[T]) InsertManyBack(values ...T) {
	for _, v := range values {
		l.PushBack(v)
	}
}

// InsertManyFront prepends values at the front, keeping their order.
func (l *List[T]) InsertManyFront(values ...T) {
	_, err := l.InsertMany(l.head, values...)
	assert(err == nil, "list: insert at head failed")
}

// All returns an iterator over all values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over all values from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Values returns all values from front to back as a slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
