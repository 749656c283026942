/*
Package list implements a generic doubly linked list.

The list keeps pointers to its first and last element and a running element
count. Elements link to their siblings and to the list they belong to; this
back-reference is used to reject positions belonging to other lists.

Besides O(1) insertion and removal at arbitrary positions, the list offers
splicing, merging, reversal, removal of adjacent duplicates and an in-place
quicksort over the element chain.

Operations requiring an order or an equality relation come in two flavours:
as methods taking a comparison function (SortFunc, MergeFunc, UniqueFunc) and
as package-level generic functions for naturally ordered or comparable element
types (Sort, Merge, Unique).

A list is not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package list

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
