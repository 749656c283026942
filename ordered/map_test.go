package ordered

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/containers"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestMapIndexInsertsZeroValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	m := MapOf(Pair[int, int]{1, 1}, Pair[int, int]{2, 2})
	require.Equal(t, 0, *m.Index(3))
	require.Equal(t, 3, m.Len())
	*m.Index(1) += 10
	v, err := m.At(1)
	require.NoError(t, err)
	require.Equal(t, 11, v)
}

func TestMapAtMissingKey(t *testing.T) {
	m := NewMap[string, int]()
	_, err := m.At("nope")
	require.ErrorIs(t, err, containers.ErrKeyNotFound)
	require.True(t, m.IsEmpty(), "At must not insert")
	require.ErrorIs(t, m.EraseKey("nope"), containers.ErrKeyNotFound)
}

func TestMapInsertVariants(t *testing.T) {
	m := NewMap[string, int]()
	it, ok := m.Insert("a", 1)
	require.True(t, ok)
	require.Equal(t, "a", it.Key())
	_, ok = m.InsertPair(Pair[string, int]{"a", 2})
	require.False(t, ok)
	require.Equal(t, 1, m.Find("a").Value())
	_, ok = m.InsertOrAssign("a", 3)
	require.False(t, ok)
	require.Equal(t, 3, m.Find("a").Value())
	_, ok = m.InsertOrAssign("b", 4)
	require.True(t, ok)
	results := m.InsertMany(Pair[string, int]{"c", 5}, Pair[string, int]{"b", 0})
	require.Len(t, results, 2)
	require.True(t, results[0].Inserted)
	require.False(t, results[1].Inserted)
	require.Equal(t, "b", results[1].Pos.Key())

	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"a", "b", "c"}, keys)
	require.True(t, m.Contains("c"))
	require.NoError(t, m.Erase(m.Begin()))
	require.False(t, m.Contains("a"))
	require.ErrorIs(t, m.Erase(m.End()), containers.ErrInvalidPosition)
}

func TestMapBoundsAndIteration(t *testing.T) {
	m := MapOf(Pair[int, string]{10, "x"}, Pair[int, string]{20, "y"}, Pair[int, string]{30, "z"})
	require.Equal(t, 20, m.LowerBound(15).Key())
	require.Equal(t, 30, m.UpperBound(20).Key())
	require.True(t, m.UpperBound(30).IsEnd())
	n := 0
	for it := m.Begin(); !it.Equal(m.End()); it = it.Next() {
		n++
	}
	require.Equal(t, 3, n)
}

func TestMapWithComparator(t *testing.T) {
	m, err := NewMapFunc[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	require.NoError(t, err)
	m.Insert("Go", 1)
	_, ok := m.Insert("GO", 2)
	require.False(t, ok)
	_, err = NewMapFunc[string, int](nil)
	require.Error(t, err)
}

func TestMapMergeSwapClone(t *testing.T) {
	a := MapOf(Pair[int, string]{1, "a1"}, Pair[int, string]{2, "a2"})
	b := MapOf(Pair[int, string]{2, "b2"}, Pair[int, string]{3, "b3"})
	a.Merge(b)
	require.Equal(t, 3, a.Len())
	v, _ := a.At(2)
	require.Equal(t, "a2", v, "existing mapping must win")
	require.Equal(t, 1, b.Len())
	require.True(t, b.Contains(2), "conflicting key stays in source")

	c := a.Clone()
	*c.Index(1) = "changed"
	v, _ = a.At(1)
	require.Equal(t, "a1", v)

	a.Swap(b)
	require.Equal(t, 1, a.Len())
	require.Equal(t, 3, b.Len())
	b.Clear()
	require.True(t, b.IsEmpty())
}

func TestMapAgainstReference(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	m := NewMap[int, int]()
	ref := treemap.NewWithIntComparator()
	for step := 0; step < 2000; step++ {
		k := r.Intn(100)
		switch r.Intn(3) {
		case 0, 1:
			m.InsertOrAssign(k, step)
			ref.Put(k, step)
		default:
			_, found := ref.Get(k)
			err := m.EraseKey(k)
			require.Equal(t, found, err == nil, "step %d: erase(%d)", step, k)
			ref.Remove(k)
		}
	}
	require.Equal(t, ref.Size(), m.Len())
	var keys []int
	for k, v := range m.All() {
		rv, found := ref.Get(k)
		require.True(t, found)
		require.Equal(t, rv, v)
		keys = append(keys, k)
	}
	require.True(t, slices.IsSorted(keys))
}

func TestMapEraseRejectsStaleIterators(t *testing.T) {
	a := MapOf(Pair[int, string]{1, "a1"})
	b := MapOf(Pair[int, string]{1, "b1"})
	it := a.Find(1)
	a.Swap(b)
	require.ErrorIs(t, a.Erase(it), containers.ErrInvalidPosition)
	require.Equal(t, 1, a.Len())
	v, err := a.At(1)
	require.NoError(t, err)
	require.Equal(t, "b1", v)

	m := MapOf(Pair[int, string]{5, "old"})
	old := m.Find(5)
	require.NoError(t, m.EraseKey(5))
	m.Insert(5, "new")
	require.ErrorIs(t, m.Erase(old), containers.ErrInvalidPosition)
	require.Equal(t, 1, m.Len())
	v, _ = m.At(5)
	require.Equal(t, "new", v)
}

func TestMapEndIteratorsDiffer(t *testing.T) {
	a, b := NewMap[int, int](), NewMap[int, int]()
	require.True(t, a.Begin().Equal(a.End()))
	require.False(t, a.End().Equal(b.End()))
}
