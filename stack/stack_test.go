package stack

import (
	"testing"

	"github.com/npillmayer/containers"
	"github.com/stretchr/testify/require"
)

func TestStackLIFO(t *testing.T) {
	s := From(1, 2, 3)
	top, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, 3, top)
	s.Push(4)
	for want := 4; want >= 1; want-- {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	require.True(t, s.IsEmpty())
}

func TestStackEmptyAccess(t *testing.T) {
	var s Stack[int]
	_, err := s.Pop()
	require.ErrorIs(t, err, containers.ErrEmptyContainer)
	_, err = s.Top()
	require.ErrorIs(t, err, containers.ErrEmptyContainer)
	require.Equal(t, 0, s.Len())
}

func TestStackSwap(t *testing.T) {
	a, b := From("x"), From("p", "q")
	a.Swap(b)
	top, _ := a.Top()
	require.Equal(t, "q", top)
	require.Equal(t, 1, b.Len())
}
