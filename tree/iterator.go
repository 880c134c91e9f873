/**
 * Copyright (c) 2019, The Treewalk Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package tree

import (
	"fmt"
)

// Order selects the strategy used to visit the nodes beneath a Container.
type Order int

const (
	// DepthFirst visits nodes in pre-order: a node is reported, then its entire subtree is
	// reported before any of its remaining siblings.
	DepthFirst Order = iota

	// BreadthFirst visits nodes in level order: every node at depth d is reported before any
	// node at depth d+1.
	BreadthFirst
)

// String returns the name of the order for diagnostics.
func (order Order) String() string {
	switch order {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	}
	return fmt.Sprintf("Order(%d)", int(order))
}

// Iterator steps through the nodes beneath a Container, one node at a time, following the
// conventions described in package github.com/botobag/treewalk/iterator. The traversal is lazy:
// an iterator only expands the children of a Container when that container is consumed by Next.
//
// An iterator does not snapshot the tree. First re-reads the root container's children, and
// expansion reads each visited container's children at the time of the visit; mutating the tree
// during an in-flight traversal is unsupported. An iterator instance serves one logical traversal
// at a time and owns its private traversal state, so several iterators over the same tree can run
// independently without coordination.
type Iterator interface {
	// First restarts the traversal from the root container's current children and returns the
	// first node to be visited, or nil if the root container is empty.
	First() Node

	// Next returns the node at the front of the traversal and advances past it, scheduling the
	// node's children (if it is a Container) for later visits. It returns nil once the traversal
	// is exhausted.
	Next() Node

	// CurrentItem returns the node at the front of the traversal without advancing, or
	// iterator.Done once the traversal is exhausted.
	CurrentItem() (Node, error)

	// IsDone reports whether the traversal has run out of nodes. A traversal over an empty
	// container is immediately done.
	IsDone() bool
}

// Iterator returns an iterator over the nodes beneath the container, visiting them in the given
// order. The container itself is not visited. It panics if order is not one of DepthFirst and
// BreadthFirst.
func (container *Container) Iterator(order Order) Iterator {
	switch order {
	case DepthFirst:
		return newDepthFirstIterator(container)
	case BreadthFirst:
		return newBreadthFirstIterator(container)
	default:
		panic(fmt.Sprintf("unsupported traversal order %v", order))
	}
}
