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

package tree_test

import (
	"github.com/botobag/treewalk/tree"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// doubleCountingSum drives a breadth-first iterator like Sum does, but mishandles visited
// containers: instead of leaving a container's contents to the iterator, it peeks inside and adds
// the values of the container's direct leaf children. Every one of those leaves is delivered by
// the iterator as well, so each gets counted twice.
func doubleCountingSum(container *tree.Container) int {
	var (
		iter  = container.Iterator(tree.BreadthFirst)
		total int
	)
	for node := iter.Next(); node != nil; node = iter.Next() {
		switch node := node.(type) {
		case *tree.Leaf:
			total += node.Value()
		case *tree.Container:
			for i := 0; i < node.NumChildren(); i++ {
				if leaf, ok := node.ChildAt(i).(*tree.Leaf); ok {
					total += leaf.Value()
				}
			}
		}
	}
	return total
}

var _ = Describe("Sum", func() {
	It("sums a container holding a single leaf", func() {
		root := tree.NewContainer("root")
		root.Append(tree.NewLeaf("only", 20))

		Expect(tree.Sum(root, tree.DepthFirst)).Should(Equal(20))
		Expect(tree.Sum(root, tree.BreadthFirst)).Should(Equal(20))
	})

	It("counts every nested leaf exactly once regardless of order", func() {
		root := buildNestedTree()

		// 4 leaves at mixed depths, 20 each.
		Expect(tree.Sum(root, tree.DepthFirst)).Should(Equal(80))
		Expect(tree.Sum(root, tree.BreadthFirst)).Should(Equal(80))
	})

	It("sums an empty container to 0", func() {
		root := tree.NewContainer("root")

		Expect(tree.Sum(root, tree.DepthFirst)).Should(Equal(0))
		Expect(tree.Sum(root, tree.BreadthFirst)).Should(Equal(0))
	})

	It("ignores containers that hold only other containers", func() {
		var (
			root  = tree.NewContainer("root")
			outer = tree.NewContainer("outer")
			inner = tree.NewContainer("inner")
		)
		inner.Append(tree.NewLeaf("deep", 20))
		outer.Append(inner)
		root.Append(outer)

		Expect(tree.Sum(root, tree.DepthFirst)).Should(Equal(20))
		Expect(tree.Sum(root, tree.BreadthFirst)).Should(Equal(20))
	})

	It("demonstrates the double-count of an aggregator that looks into visited containers", func() {
		root := buildNestedTree()

		// The leaves under E are counted when E is visited and again when the iterator delivers
		// them, inflating the total; Sum only accumulates at leaf visits and stays correct.
		Expect(doubleCountingSum(root)).Should(Equal(120))
		Expect(tree.Sum(root, tree.BreadthFirst)).Should(Equal(80))
	})
})
