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

// Package tree provides a composite tree of Container and Leaf nodes together with lazy external
// iterators over it (see package github.com/botobag/treewalk/iterator for the iteration
// conventions), an aggregation over leaf values, a text printer and JSON encoding.
package tree

// Node represents a node in a composite tree. There are exactly two kinds of nodes: a *Container
// which holds an ordered sequence of child nodes, and a *Leaf which carries a fixed value. A type
// switch over these two covers every Node; code that only needs to know whether a node can hold
// children uses AsContainer.
type Node interface {
	// Name returns the label assigned to the node at construction.
	Name() string

	// node makes sure that only types in this package can be assigned to a Node. This seals the
	// set of node kinds so type switches over Node remain exhaustive.
	node()
}

// A Leaf is a node that carries a fixed value and never has children. Both the name and the value
// are set at construction and are immutable afterwards.
type Leaf struct {
	name  string
	value int
}

var _ Node = (*Leaf)(nil)

// NewLeaf creates a Leaf with the given name and value.
func NewLeaf(name string, value int) *Leaf {
	return &Leaf{
		name:  name,
		value: value,
	}
}

// Name implements Node.
func (leaf *Leaf) Name() string {
	return leaf.name
}

// Value returns the fixed value carried by the leaf.
func (leaf *Leaf) Value() int {
	return leaf.value
}

// node marks *Leaf as a Node.
func (*Leaf) node() {}

// A Container is a node that holds an ordered sequence of child nodes. The sequence is owned
// exclusively by the container: children carry no back-reference to their parent and must not be
// shared between parents. The order of the sequence is significant; it defines the sibling order
// seen by depth-first traversal and the level order seen by breadth-first traversal.
//
// A container must not (directly or transitively) contain itself. The model performs no cycle
// detection; acyclicity is a construction discipline.
type Container struct {
	name     string
	children []Node
}

var _ Node = (*Container)(nil)

// NewContainer creates a Container with the given name and no children.
func NewContainer(name string) *Container {
	return &Container{name: name}
}

// Name implements Node.
func (container *Container) Name() string {
	return container.name
}

// Append adds child to the end of the container's children.
func (container *Container) Append(child Node) {
	container.children = append(container.children, child)
}

// Remove removes the first child that is identical to the given node. Identity means pointer
// identity; a child that is merely structurally equal to the argument is not removed. Remove is a
// no-op when no identical child is present.
func (container *Container) Remove(child Node) {
	for i, c := range container.children {
		if c == child {
			container.children = append(container.children[:i], container.children[i+1:]...)
			return
		}
	}
}

// ChildAt returns the child at the given position, or nil if i is out of range (including
// negative indices). It never panics.
func (container *Container) ChildAt(i int) Node {
	if i < 0 || i >= len(container.children) {
		return nil
	}
	return container.children[i]
}

// NumChildren returns the number of direct children in the container.
func (container *Container) NumChildren() int {
	return len(container.children)
}

// node marks *Container as a Node.
func (*Container) node() {}

// AsContainer returns n as a *Container when it is one. It is the capability query for code that
// wants to grow a subtree under a node it only holds as a Node; callers must check ok before
// using the result.
func AsContainer(n Node) (*Container, bool) {
	container, ok := n.(*Container)
	return container, ok
}
