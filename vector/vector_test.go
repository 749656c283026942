package vector

import (
	"testing"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestVectorPushPop(t *testing.T) {
	v := New[int]()
	require.True(t, v.IsEmpty())
	v.PushBack(1)
	v.InsertManyBack(2, 3)
	require.Equal(t, []int{1, 2, 3}, v.Data())
	x, err := v.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, x)
	front, _ := v.Front()
	back, _ := v.Back()
	require.Equal(t, 1, front)
	require.Equal(t, 2, back)
	v.Clear()
	_, err = v.PopBack()
	require.ErrorIs(t, err, containers.ErrEmptyContainer)
	_, err = v.Front()
	require.ErrorIs(t, err, containers.ErrEmptyContainer)
}

func TestVectorInsertErase(t *testing.T) {
	v := From(1, 4)
	require.NoError(t, v.InsertMany(1, 2, 3))
	require.NoError(t, v.Insert(v.Len(), 5))
	require.NoError(t, v.Insert(0, 0))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, v.Data())
	require.ErrorIs(t, v.Insert(7, 9), containers.ErrOutOfRange)
	require.NoError(t, v.Erase(0))
	require.ErrorIs(t, v.Erase(v.Len()), containers.ErrOutOfRange)
	require.Equal(t, []int{1, 2, 3, 4, 5}, v.Data())
	require.NoError(t, v.Set(0, 10))
	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 10, x)
	_, err = v.At(-1)
	require.ErrorIs(t, err, containers.ErrOutOfRange)
}

func TestVectorCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	v, err := NewWithSize[string](2)
	require.NoError(t, err)
	v.Reserve(100)
	require.GreaterOrEqual(t, v.Capacity(), 100)
	require.Equal(t, 2, v.Len())
	v.Reserve(10)
	require.GreaterOrEqual(t, v.Capacity(), 100, "Reserve must not shrink")
	v.ShrinkToFit()
	require.Equal(t, 2, v.Capacity())
	_, err = NewWithSize[int](-3)
	require.ErrorIs(t, err, containers.ErrOutOfRange)
}

func TestVectorSwapAll(t *testing.T) {
	a, b := From("a"), From("x", "y")
	a.Swap(b)
	require.Equal(t, 2, a.Len())
	var got []string
	for _, s := range a.All() {
		got = append(got, s)
	}
	require.Equal(t, []string{"x", "y"}, got)
	require.Equal(t, b.MaxSize(), a.MaxSize())
}
