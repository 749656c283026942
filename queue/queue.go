/*
Package queue implements a FIFO queue as an adapter over a doubly linked list.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package queue

import (
	"fmt"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/list"
)

// Queue is a first-in first-out queue. The zero value is an empty queue.
type Queue[T any] struct {
	items list.List[T]
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// From creates a queue holding values, the first value at the front.
func From[T any](values ...T) *Queue[T] {
	q := New[T]()
	q.InsertManyBack(values...)
	return q
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return q.items.Len() }

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool { return q.items.IsEmpty() }

// Push appends v at the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.items.PushBack(v)
}

// InsertManyBack appends values at the back, keeping their order.
func (q *Queue[T]) InsertManyBack(values ...T) {
	q.items.InsertManyBack(values...)
}

// Pop removes and returns the value at the front.
func (q *Queue[T]) Pop() (T, error) {
	v, err := q.items.PopFront()
	if err != nil {
		return v, fmt.Errorf("%w: pop from empty queue", containers.ErrEmptyContainer)
	}
	return v, nil
}

// Front returns the value at the front without removing it.
func (q *Queue[T]) Front() (T, error) {
	v, err := q.items.Front()
	if err != nil {
		return v, fmt.Errorf("%w: front of empty queue", containers.ErrEmptyContainer)
	}
	return v, nil
}

// Back returns the most recently pushed value.
func (q *Queue[T]) Back() (T, error) {
	v, err := q.items.Back()
	if err != nil {
		return v, fmt.Errorf("%w: back of empty queue", containers.ErrEmptyContainer)
	}
	return v, nil
}

// Swap exchanges the contents of two queues.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.items.Swap(&other.items)
}
