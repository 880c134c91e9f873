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

// Sum returns the sum of the values of all leaves beneath the container, visiting them with an
// iterator of the given order. Both orders reach every leaf exactly once, so the total does not
// depend on the order. An empty container sums to 0.
func Sum(container *Container, order Order) int {
	var (
		iter  = container.Iterator(order)
		total int
	)
	for node := iter.Next(); node != nil; node = iter.Next() {
		switch node := node.(type) {
		case *Leaf:
			total += node.Value()
		case *Container:
			// The iterator has already scheduled this container's children. Summing must not
			// recurse into the subtree here or every leaf below would be counted again.
		}
	}
	return total
}
