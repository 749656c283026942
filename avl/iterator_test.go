package avl

import "testing"

func TestIteratorForwardAndBackward(t *testing.T) {
	tree := makeIntTree(t, 8, 3, 10, 1, 6, 14, 4, 7, 13)
	want := []int{1, 3, 4, 6, 7, 8, 10, 13, 14}
	var got []int
	for it := tree.Begin(); !it.Equal(tree.End()); it = it.Next() {
		got = append(got, it.Key())
	}
	if !equalInts(got, want) {
		t.Fatalf("forward traversal: got %v want %v", got, want)
	}
	got = got[:0]
	for it := tree.Last(); !it.IsEnd(); it = it.Prev() {
		got = append(got, it.Key())
	}
	for i := range want {
		if got[i] != want[len(want)-1-i] {
			t.Fatalf("backward traversal: got %v", got)
		}
	}
	got = got[:0]
	for k := range tree.Backward() {
		got = append(got, k)
	}
	if len(got) != len(want) || got[0] != 14 {
		t.Fatalf("Backward(): got %v", got)
	}
}

func TestIteratorEndSentinel(t *testing.T) {
	tree := makeIntTree(t, 1, 2)
	end := tree.End()
	if end.Key() != 0 || end.Value() != "" || end.Ptr() != nil {
		t.Fatalf("expected zero values from end iterator")
	}
	if !end.Next().IsEnd() {
		t.Fatalf("advancing end must stay at end")
	}
	if end.Prev().Key() != 2 {
		t.Fatalf("expected Prev(End) to be last node, got %d", end.Prev().Key())
	}
	if !tree.Begin().Prev().IsEnd() {
		t.Fatalf("expected Prev(Begin) to be End")
	}
}

func TestIteratorPtrUpdatesValue(t *testing.T) {
	tree := makeIntTree(t, 1)
	*tree.Begin().Ptr() = "one"
	if tree.Search(1).Value() != "one" {
		t.Fatalf("in-place update through Ptr() got lost")
	}
}

func TestIteratorSurvivesEraseOfOtherNodes(t *testing.T) {
	tree := makeIntTree(t, 1, 2, 3, 4, 5, 6, 7)
	it := tree.Search(5)
	for _, k := range []int{1, 2, 3, 7} {
		if err := tree.Erase(k); err != nil {
			t.Fatalf("erase failed: %v", err)
		}
	}
	if it.Key() != 5 || it.Next().Key() != 6 || it.Prev().Key() != 4 {
		t.Fatalf("iterator broken after unrelated erasures")
	}
}

func TestBounds(t *testing.T) {
	tree := makeIntTree(t, 10, 20, 30, 40)
	type tc struct {
		key        int
		lower      int
		upper      int
		lowerAtEnd bool
		upperAtEnd bool
	}
	cases := []tc{
		{key: 5, lower: 10, upper: 10},
		{key: 10, lower: 10, upper: 20},
		{key: 25, lower: 30, upper: 30},
		{key: 40, lower: 40, upperAtEnd: true},
		{key: 41, lowerAtEnd: true, upperAtEnd: true},
	}
	for _, c := range cases {
		lo, hi := tree.LowerBound(c.key), tree.UpperBound(c.key)
		if lo.IsEnd() != c.lowerAtEnd || (!c.lowerAtEnd && lo.Key() != c.lower) {
			t.Fatalf("LowerBound(%d): got %d (end=%v)", c.key, lo.Key(), lo.IsEnd())
		}
		if hi.IsEnd() != c.upperAtEnd || (!c.upperAtEnd && hi.Key() != c.upper) {
			t.Fatalf("UpperBound(%d): got %d (end=%v)", c.key, hi.Key(), hi.IsEnd())
		}
	}
	if tree.Len() != 4 {
		t.Fatalf("bound queries modified the tree")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestForEachStopsEarly(t *testing.T) {
	tree := makeIntTree(t, 1, 2, 3, 4)
	var seen []int
	tree.ForEach(func(k int, _ string) bool {
		seen = append(seen, k)
		return k < 2
	})
	if !equalInts(seen, []int{1, 2}) {
		t.Fatalf("expected early stop after 2, saw %v", seen)
	}
	n := 0
	for range tree.All() {
		n++
	}
	if n != tree.Len() {
		t.Fatalf("All() yielded %d pairs, tree has %d", n, tree.Len())
	}
}

func TestEndIteratorsOfDifferentTrees(t *testing.T) {
	a, b := makeIntTree(t, 1), makeIntTree(t, 1)
	if a.End().Equal(b.End()) {
		t.Fatalf("end iterators of different trees must not be equal")
	}
	if !a.End().Equal(a.Begin().Next()) {
		t.Fatalf("stepping past the last node must yield End of the same tree")
	}
	if a.Begin().Equal(b.Begin()) {
		t.Fatalf("iterators to different nodes must not be equal")
	}
}
