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
	"github.com/botobag/treewalk/iterator"
)

// breadthFirstIterator implements Iterator with level-order visiting. It keeps the nodes still to
// be visited in a FIFO queue; consuming a Container appends that container's children at the back
// of the queue, behind every node already scheduled. Since the queue is seeded with the root's
// children (depth 1) and each visit only enqueues nodes one level deeper than the visited node,
// every node at depth d leaves the queue before any node at depth d+1.
type breadthFirstIterator struct {
	root  *Container
	queue []Node
}

var _ Iterator = (*breadthFirstIterator)(nil)

func newBreadthFirstIterator(root *Container) *breadthFirstIterator {
	iter := &breadthFirstIterator{root: root}
	iter.reset()
	return iter
}

func (iter *breadthFirstIterator) reset() {
	iter.queue = append([]Node(nil), iter.root.children...)
}

// First implements Iterator. It rebuilds the queue from the root container's current children.
func (iter *breadthFirstIterator) First() Node {
	iter.reset()
	if len(iter.queue) == 0 {
		return nil
	}
	return iter.queue[0]
}

// Next implements Iterator.
func (iter *breadthFirstIterator) Next() Node {
	if len(iter.queue) == 0 {
		return nil
	}

	node := iter.queue[0]
	iter.queue = iter.queue[1:]
	if container, ok := node.(*Container); ok {
		iter.queue = append(iter.queue, container.children...)
	}

	return node
}

// CurrentItem implements Iterator.
func (iter *breadthFirstIterator) CurrentItem() (Node, error) {
	if len(iter.queue) == 0 {
		return nil, iterator.Done
	}
	return iter.queue[0], nil
}

// IsDone implements Iterator.
func (iter *breadthFirstIterator) IsDone() bool {
	return len(iter.queue) == 0
}
