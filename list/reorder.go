package list

import (
	"github.com/npillmayer/containers"
)

// Sort sorts a list of naturally ordered values in ascending order.
func Sort[T containers.Ordered](l *List[T]) {
	l.SortFunc(containers.Compare[T])
}

// Merge merges other into l, both in ascending natural order. See MergeFunc.
func Merge[T containers.Ordered](l, other *List[T]) {
	l.MergeFunc(other, containers.Compare[T])
}

// Unique removes consecutive duplicate values from l.
func Unique[T comparable](l *List[T]) {
	l.UniqueFunc(func(a, b T) bool { return a == b })
}

// span is a closed range of elements [low…high] awaiting partitioning.
type span[T any] struct {
	low, high *Element[T]
}

// SortFunc sorts the list in place with a quicksort over the element chain,
// using cmp to compare values. cmp(a, b) has to return a negative number for
// a < b, a positive number for a > b and zero otherwise.
//
// Values are swapped between elements, so elements keep their position in the
// chain while their values move. The pivot is always the last value of a
// range, thus already sorted input exhibits the quadratic worst case.
// Sorting is not stable.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	if l.size <= 1 {
		return
	}
	tracer().Debugf("list: sorting %d elements", l.size)
	stack := []span[T]{{l.head, l.tail}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pivot := partition(s.low, s.high, cmp)
		if pivot != s.low && pivot.prev != s.low {
			stack = append(stack, span[T]{s.low, pivot.prev})
		}
		if pivot != s.high && pivot.next != s.high {
			stack = append(stack, span[T]{pivot.next, s.high})
		}
	}
}

// partition moves every value not greater than the value of high to the front
// of [low…high] and places the pivot value right behind them. It returns the
// element holding the pivot.
func partition[T any](low, high *Element[T], cmp func(a, b T) int) *Element[T] {
	pivot := high.Value
	var i *Element[T] // nil: before low
	advance := func() {
		if i == nil {
			i = low
		} else {
			i = i.next
		}
	}
	for j := low; j != high; j = j.next {
		if cmp(j.Value, pivot) <= 0 {
			advance()
			i.Value, j.Value = j.Value, i.Value
		}
	}
	advance()
	i.Value, high.Value = high.Value, i.Value
	return i
}

// MergeFunc sorts both l and other with cmp and merges all elements of other
// into l, keeping l sorted. other is left empty. Of equal values, those from l
// come first.
//
// Elements of other are relinked, not copied.
func (l *List[T]) MergeFunc(other *List[T], cmp func(a, b T) int) {
	if other == nil || other == l {
		return
	}
	l.SortFunc(cmp)
	other.SortFunc(cmp)
	if other.head == nil {
		return
	}
	tracer().Debugf("list: merging %d into %d elements", other.size, l.size)
	a, b := l.head, other.head
	var head, tail *Element[T]
	link := func(e *Element[T]) {
		e.list = l
		e.prev = tail
		if tail == nil {
			head = e
		} else {
			tail.next = e
		}
		tail = e
	}
	for a != nil && b != nil {
		if cmp(b.Value, a.Value) < 0 {
			next := b.next
			link(b)
			b = next
		} else {
			next := a.next
			link(a)
			a = next
		}
	}
	for rest := a; rest != nil; {
		next := rest.next
		link(rest)
		rest = next
	}
	for rest := b; rest != nil; {
		next := rest.next
		link(rest)
		rest = next
	}
	tail.next = nil
	l.head, l.tail = head, tail
	l.size += other.size
	other.head, other.tail, other.size = nil, nil, 0
}

// UniqueFunc removes all but the first element of every run of consecutive
// elements with equal values, as reported by eq.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) {
	for e := l.head; e != nil && e.next != nil; {
		if eq(e.Value, e.next.Value) {
			err := l.Erase(e.next)
			assert(err == nil, "list: erase of own element failed")
			continue
		}
		e = e.next
	}
}
