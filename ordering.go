package containers

import "golang.org/x/exp/constraints"

// Ordered is the constraint for key and value types with a natural order,
// i.e. types supporting < and >.
type Ordered interface {
	constraints.Ordered
}

// Compare returns -1 if a < b, +1 if a > b and 0 otherwise.
//
// Compare is the default comparator for tree-backed containers.
func Compare[K Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Less reports whether a < b.
func Less[K Ordered](a, b K) bool {
	return a < b
}
