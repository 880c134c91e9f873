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

// Package iterator documents the guidelines for the external iterators in Treewalk and defines the
// Done sentinel shared by all of them.
//
// An external iterator is one whose stepping is driven by the calling code rather than by the
// collection being traversed. Every iterator in Treewalk exposes the same four operations:
//
//	// First restarts the traversal from the collection's current contents and returns the first
//	// element to be visited, or nil if the collection is empty.
//	First() Element
//
//	// Next returns the element at the front of the traversal and advances past it, lazily
//	// scheduling whatever that element exposes for later visits. Once the traversal is
//	// exhausted, Next returns nil; it never returns an error.
//	Next() Element
//
//	// CurrentItem returns the element at the front of the traversal without advancing. It
//	// returns iterator.Done once the traversal is exhausted; that is the only failure any
//	// iterator reports, and it indicates misuse by the caller rather than a data problem.
//	CurrentItem() (Element, error)
//
//	// IsDone reports whether the traversal has run out of elements. It stays true on any
//	// further calls after exhaustion.
//	IsDone() bool
//
// The canonical driver loop therefore needs no error handling at all:
//
//	iter := collection.Iterator(...)
//	for node := iter.Next(); node != nil; node = iter.Next() {
//		process(node)
//	}
//
// Callers that want to peek before consuming use CurrentItem and check for Done:
//
//	node, err := iter.CurrentItem()
//	if err == iterator.Done {
//		// Traversal completed.
//	}
//
// An "iterable" collection provides a method named Iterator which returns an iterator over its
// elements, optionally taking a selector when more than one visiting order is supported.
//
// Each iterator instance owns its private traversal state and serves exactly one logical
// traversal at a time. Iterators over the same collection are fully independent of each other, so
// running several traversals simultaneously simply requires one iterator instance per traversal;
// sharing a single instance between them is not supported.
package iterator
