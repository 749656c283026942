/*
Package ordered implements the associative containers Map, Set and Multiset
as views over an AVL tree (package avl).

Keys are kept in ascending order, either by their natural order (constructors
NewMap, NewSet, NewMultiset) or by a client-supplied comparison function
(the …Func constructors). Iterators are the tree's bidirectional iterators;
the end iterator yields zero values.

A Multiset stores one tree node per distinct key and counts occurrences in the
node's value. Its iterators therefore carry an occurrence index in addition to
the tree position, presenting every occurrence as a separate element.

None of the containers is safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ordered

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
