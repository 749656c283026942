/*
Package stack implements a LIFO stack as an adapter over a doubly linked list.
The top of the stack is the front of the list.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package stack

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/list"
)

// Stack is a last-in first-out stack. The zero value is an empty stack.
type Stack[T any] struct {
	items list.List[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// From creates a stack by pushing values in order; the last value ends up on top.
func From[T any](values ...T) *Stack[T] {
	s := New[T]()
	s.InsertManyFront(values...)
	return s
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return s.items.Len() }

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool { return s.items.IsEmpty() }

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items.PushFront(v)
}

// InsertManyFront pushes values in order, leaving the last one on top.
func (s *Stack[T]) InsertManyFront(values ...T) {
	for _, v := range values {
		s.Push(v)
	}
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	v, err := s.items.PopFront()
	if err != nil {
		return v, fmt.Errorf("%w: pop from empty stack", containers.ErrEmptyContainer)
	}
	return v, nil
}

// Top returns the top value without removing it.
func (s *Stack[T]) Top() (T, error) {
	v, err := s.items.Front()
	if err != nil {
		return v, fmt.Errorf("%w: top of empty stack", containers.ErrEmptyContainer)
	}
	return v, nil
}

// Swap exchanges the contents of two stacks.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.items.Swap(&other.items)
}
