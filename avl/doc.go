/*
Package avl implements a generic, height-balanced binary search tree.

The tree is the backend for the ordered containers of this module (Map, Set and
Multiset). It stores one node per distinct key; every node carries an
auxiliary value V, which clients use for mapped values, as an unused
placeholder, or as an occurrence count.

Invariants:
  - BST ordering: keys in a left subtree compare less than the node key, keys
    in a right subtree compare greater.
  - Balance: for every node the heights of its subtrees differ by at most one.
    Heights are cached per node, where an empty subtree has height -1 and a
    leaf has height 0.
  - Parent links: every node references its parent, the root references nil.
    Parent links are back-references only and are re-stamped on every path
    touched by a mutating operation.

Parent links allow iterators to step to in-order successors and predecessors
without an auxiliary stack. An iterator positioned past the last node is the
end iterator; reading a key or value from it yields zero values instead of
panicking.

Tree.Check validates all invariants and is used heavily in tests.

A tree is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
