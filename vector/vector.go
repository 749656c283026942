/*
Package vector implements a growable array with explicit capacity control.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vector

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

// Vector is a growable sequence of values. The zero value is an empty vector.
type Vector[T any] struct {
	data []T
}

// New creates an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize creates a vector of n zero values.
func NewWithSize[T any](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vector size %d", containers.ErrOutOfRange, n)
	}
	return &Vector[T]{data: make([]T, n)}, nil
}

// From creates a vector holding a copy of values.
func From[T any](values ...T) *Vector[T] {
	return &Vector[T]{data: slices.Clone(values)}
}

// Len returns the number of values.
func (v *Vector[T]) Len() int { return len(v.data) }

// IsEmpty reports whether the vector holds no values.
func (v *Vector[T]) IsEmpty() bool { return len(v.data) == 0 }

// MaxSize returns the theoretical maximum number of values.
func (v *Vector[T]) MaxSize() int { return math.MaxInt }

// Capacity returns the number of values the vector can hold without
// reallocating.
func (v *Vector[T]) Capacity() int { return cap(v.data) }

// Reserve makes room for at least n values. It never shrinks the vector.
func (v *Vector[T]) Reserve(n int) {
	if n > cap(v.data) {
		tracer().Debugf("vector: reserving capacity %d", n)
		v.data = slices.Grow(v.data, n-len(v.data))
	}
}

// ShrinkToFit releases unused capacity.
func (v *Vector[T]) ShrinkToFit() {
	if cap(v.data) > len(v.data) {
		data := make([]T, len(v.data))
		copy(data, v.data)
		v.data = data
	}
}

// Clear removes all values, keeping the capacity.
func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

func (v *Vector[T]) check(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: index %d, vector length %d", containers.ErrOutOfRange, i, len(v.data))
	}
	return nil
}

// At returns the value at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.check(i, len(v.data)); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// Set stores x at index i.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.check(i, len(v.data)); err != nil {
		return err
	}
	v.data[i] = x
	return nil
}

// Front returns the first value.
func (v *Vector[T]) Front() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: front of empty vector", containers.ErrEmptyContainer)
	}
	return v.data[0], nil
}

// Back returns the last value.
func (v *Vector[T]) Back() (T, error) {
	if len(v.data) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: back of empty vector", containers.ErrEmptyContainer)
	}
	return v.data[len(v.data)-1], nil
}

// PushBack appends x.
func (v *Vector[T]) PushBack(x T) {
	v.data = append(v.data, x)
}

// InsertManyBack appends values in order.
func (v *Vector[T]) InsertManyBack(values ...T) {
	v.data = append(v.data, values...)
}

// PopBack removes and returns the last value.
func (v *Vector[T]) PopBack() (T, error) {
	x, err := v.Back()
	if err != nil {
		return x, err
	}
	var zero T
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return x, nil
}

// Insert inserts x before index pos. pos == Len() appends.
func (v *Vector[T]) Insert(pos int, x T) error {
	return v.InsertMany(pos, x)
}

// InsertMany inserts values before index pos, keeping their order.
func (v *Vector[T]) InsertMany(pos int, values ...T) error {
	if err := v.check(pos, len(v.data)+1); err != nil {
		return err
	}
	v.data = slices.Insert(v.data, pos, values...)
	return nil
}

// Erase removes the value at index pos.
func (v *Vector[T]) Erase(pos int) error {
	if err := v.check(pos, len(v.data)); err != nil {
		return err
	}
	v.data = slices.Delete(v.data, pos, pos+1)
	return nil
}

// Swap exchanges the contents of two vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
}

// Data returns the underlying storage, valid until the next mutation.
func (v *Vector[T]) Data() []T { return v.data }

// All returns an iterator over index/value pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.data)
}
