/*
Package containers offers generic sequential and ordered container types.

Containers

The sub-packages implement the classic set of containers found in most
standard libraries, with a behavioural contract close to them:

	list      doubly linked list with splice, merge, unique, reverse and sort
	avl       height-balanced binary search tree with bidirectional iterators
	ordered   Map, Set and Multiset as thin views over an AVL tree
	queue     FIFO adapter over list
	stack     LIFO adapter over list
	array     fixed-size array
	vector    growable array with explicit capacity control

The interesting parts are the AVL tree and the linked list. The tree keeps
parent back-references to allow iteration in both directions without an
auxiliary stack. Multisets fold equal keys into a single tree node carrying an
occurrence count, thus the tree always holds one node per distinct key.

All containers are meant to be used from a single goroutine. None of them
synchronizes access; clients have to guard shared instances themselves.

Errors

Contract violations are reported as errors wrapping one of the sentinels
ErrOutOfRange, ErrEmptyContainer, ErrKeyNotFound or ErrInvalidPosition.
Use errors.Is to check for them. An operation returning an error did not
modify its container.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the containers module
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrOutOfRange is flagged whenever an index is beyond the bounds of a
// container, or a fixed-size container receives too many initial values.
const ErrOutOfRange = ContainerError("index out of range")

// ErrEmptyContainer is flagged when accessing or removing the front, back or
// top of an empty container.
const ErrEmptyContainer = ContainerError("container is empty")

// ErrKeyNotFound is flagged by lookups and erasures of keys not present in an
// associative container.
const ErrKeyNotFound = ContainerError("key not found")

// ErrInvalidPosition is flagged whenever a position (element or iterator) does
// not belong to the container an operation is applied to.
const ErrInvalidPosition = ContainerError("invalid position")
