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

// depthFirstIterator implements Iterator with pre-order depth-first visiting. It keeps the nodes
// still to be visited on an explicit stack; the node on top of the stack is the front of the
// traversal. Consuming a Container pushes that container's children (in reverse, so the first
// child ends up on top) which schedules the subtree ahead of the container's remaining siblings.
type depthFirstIterator struct {
	root  *Container
	stack []Node
}

var _ Iterator = (*depthFirstIterator)(nil)

func newDepthFirstIterator(root *Container) *depthFirstIterator {
	iter := &depthFirstIterator{root: root}
	iter.reset()
	return iter
}

func (iter *depthFirstIterator) reset() {
	numChildren := iter.root.NumChildren()
	stack := make([]Node, 0, numChildren)
	for i := numChildren - 1; i >= 0; i-- {
		stack = append(stack, iter.root.children[i])
	}
	iter.stack = stack
}

// First implements Iterator. It rebuilds the stack from the root container's current children.
func (iter *depthFirstIterator) First() Node {
	iter.reset()
	if len(iter.stack) == 0 {
		return nil
	}
	return iter.stack[len(iter.stack)-1]
}

// Next implements Iterator.
func (iter *depthFirstIterator) Next() Node {
	stack := iter.stack
	top := len(stack) - 1
	if top < 0 {
		return nil
	}

	node := stack[top]
	stack = stack[:top]
	if container, ok := node.(*Container); ok {
		for i := container.NumChildren() - 1; i >= 0; i-- {
			stack = append(stack, container.children[i])
		}
	}
	iter.stack = stack

	return node
}

// CurrentItem implements Iterator.
func (iter *depthFirstIterator) CurrentItem() (Node, error) {
	if len(iter.stack) == 0 {
		return nil, iterator.Done
	}
	return iter.stack[len(iter.stack)-1], nil
}

// IsDone implements Iterator.
func (iter *depthFirstIterator) IsDone() bool {
	return len(iter.stack) == 0
}
