package list

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/utils"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./list -run TestRandomizedSort -count=1
//   - Fuzz test for this file:
//     go test ./list -run '^$' -fuzz FuzzSort -fuzztime=10s

// sortAgainstReference sorts values with our quicksort and with the
// reference list implementation and compares the results.
func sortAgainstReference(t *testing.T, values []int) {
	t.Helper()
	l := From(values...)
	Sort(l)
	checked(t, l)
	ref := doublylinkedlist.New()
	for _, v := range values {
		ref.Add(v)
	}
	ref.Sort(utils.IntComparator)
	got := l.Values()
	if len(got) != ref.Size() {
		t.Fatalf("size mismatch: list=%d reference=%d", len(got), ref.Size())
	}
	for i, v := range ref.Values() {
		if got[i] != v.(int) {
			t.Fatalf("mismatch at %d: got %d want %d", i, got[i], v)
		}
	}
	Sort(l) // sorting is idempotent
	if !slices.Equal(got, l.Values()) {
		t.Fatalf("second sort changed order: %v", l.Values())
	}
}

func TestRandomizedSort(t *testing.T) {
	r := rand.New(rand.NewSource(20261016))
	for round := 0; round < 50; round++ {
		n := r.Intn(200)
		values := make([]int, n)
		for i := range values {
			values[i] = r.Intn(n/2 + 1)
		}
		sortAgainstReference(t, values)
	}
	sorted := make([]int, 300)
	for i := range sorted {
		sorted[i] = i
	}
	sortAgainstReference(t, sorted)
}

func TestRandomizedMergeKeepsAllValues(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		var all []int
		a, b := New[int](), New[int]()
		for range r.Intn(50) {
			v := r.Intn(30)
			a.PushBack(v)
			all = append(all, v)
		}
		for range r.Intn(50) {
			v := r.Intn(30)
			b.PushBack(v)
			all = append(all, v)
		}
		Merge(a, b)
		slices.Sort(all)
		expectValues(t, a, all...)
		expectValues(t, b)
	}
}

func FuzzSort(f *testing.F) {
	f.Add([]byte{5, 4, 3, 2, 1})
	f.Add([]byte{1, 1, 1})
	f.Fuzz(func(t *testing.T, data []byte) {
		values := make([]int, len(data))
		for i, b := range data {
			values[i] = int(b)
		}
		sortAgainstReference(t, values)
	})
}
