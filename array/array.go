/*
Package array implements a fixed-size array whose length is chosen at
construction time. Element access is bounds-checked and reported as errors
instead of panics.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package array

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/containers"
)

// Array is a fixed-size sequence of values.
type Array[T any] struct {
	data []T
}

// New creates an array of n zero values.
func New[T any](n int) (*Array[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative array size %d", containers.ErrOutOfRange, n)
	}
	return &Array[T]{data: make([]T, n)}, nil
}

// From creates an array of size n, initialized with values. Remaining slots
// hold zero values. More than n values are an error.
func From[T any](n int, values ...T) (*Array[T], error) {
	if len(values) > n {
		return nil, fmt.Errorf("%w: %d initial values for array of size %d",
			containers.ErrOutOfRange, len(values), n)
	}
	a, err := New[T](n)
	if err != nil {
		return nil, err
	}
	copy(a.data, values)
	return a, nil
}

// Len returns the fixed size of the array.
func (a *Array[T]) Len() int { return len(a.data) }

// IsEmpty reports whether the array has size 0.
func (a *Array[T]) IsEmpty() bool { return len(a.data) == 0 }

// MaxSize returns the size of the array, which never changes.
func (a *Array[T]) MaxSize() int { return len(a.data) }

func (a *Array[T]) check(i int) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("%w: index %d, array size %d", containers.ErrOutOfRange, i, len(a.data))
	}
	return nil
}

// At returns the value at index i.
func (a *Array[T]) At(i int) (T, error) {
	if err := a.check(i); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// Set stores v at index i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Front returns the first value.
func (a *Array[T]) Front() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: front of empty array", containers.ErrEmptyContainer)
	}
	return a.data[0], nil
}

// Back returns the last value.
func (a *Array[T]) Back() (T, error) {
	if len(a.data) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: back of empty array", containers.ErrEmptyContainer)
	}
	return a.data[len(a.data)-1], nil
}

// Fill sets every slot to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Swap exchanges the contents of two arrays.
func (a *Array[T]) Swap(other *Array[T]) {
	a.data, other.data = other.data, a.data
}

// Data returns the underlying storage. Changes to it are visible in a.
func (a *Array[T]) Data() []T { return a.data }

// All returns an iterator over index/value pairs.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return slices.All(a.data)
}
