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
	"unsafe"

	"github.com/botobag/treewalk/jsonwriter"

	jsoniter "github.com/json-iterator/go"
)

// Nodes encode to JSON as follows: a Leaf becomes an object with "name" and "value" fields and a
// Container becomes an object with "name" and "children" fields, where "children" is the array of
// the encodings of its children ("[]" when there are none).

// leafMarshaller implements jsoniter.ValEncoder to encode Leaf to JSON.
type leafMarshaller struct{}

var _ jsoniter.ValEncoder = leafMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (leafMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

// Encode implements jsoniter.ValEncoder.
func (leafMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	encodeNode((*Leaf)(ptr), stream)
}

// containerMarshaller implements jsoniter.ValEncoder to encode Container to JSON.
type containerMarshaller struct{}

var _ jsoniter.ValEncoder = containerMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (containerMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

// Encode implements jsoniter.ValEncoder.
func (containerMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	encodeNode((*Container)(ptr), stream)
}

// encodeNode writes the encoding of the subtree rooted at node into stream. It recurses over the
// children itself instead of going through stream.WriteVal so a tree is encoded with exactly one
// encoder lookup.
func encodeNode(node Node, stream *jsoniter.Stream) {
	switch node := node.(type) {
	case *Leaf:
		stream.WriteObjectStart()
		stream.WriteObjectField("name")
		stream.WriteString(node.Name())
		stream.WriteMore()
		stream.WriteObjectField("value")
		stream.WriteInt(node.Value())
		stream.WriteObjectEnd()

	case *Container:
		stream.WriteObjectStart()
		stream.WriteObjectField("name")
		stream.WriteString(node.Name())
		stream.WriteMore()
		stream.WriteObjectField("children")
		if len(node.children) == 0 {
			stream.WriteEmptyArray()
		} else {
			stream.WriteArrayStart()
			for i, child := range node.children {
				if i > 0 {
					stream.WriteMore()
				}
				encodeNode(child, stream)
			}
			stream.WriteArrayEnd()
		}
		stream.WriteObjectEnd()

	default:
		stream.Error = fmt.Errorf(`unsupported node type "%T" to encode`, node)
	}
}

// MarshalJSON implements json.Marshaler.
func (leaf *Leaf) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(leaf)
}

// MarshalJSON implements json.Marshaler.
func (container *Container) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(container)
}

// MarshalJSONTo implements jsonwriter.ValueMarshaler to encode the leaf into a stream without
// going through reflection.
func (leaf *Leaf) MarshalJSONTo(stream *jsonwriter.Stream) error {
	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(leaf.Name())
	stream.WriteMore()
	stream.WriteObjectField("value")
	stream.WriteInt(leaf.Value())
	stream.WriteObjectEnd()
	return nil
}

// MarshalJSONTo implements jsonwriter.ValueMarshaler to encode the subtree rooted at the
// container into a stream without going through reflection.
func (container *Container) MarshalJSONTo(stream *jsonwriter.Stream) error {
	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(container.Name())
	stream.WriteMore()
	stream.WriteObjectField("children")
	if len(container.children) == 0 {
		stream.WriteEmptyArray()
	} else {
		stream.WriteArrayStart()
		for i, child := range container.children {
			if i > 0 {
				stream.WriteMore()
			}
			// Both node kinds implement ValueMarshaler; this dispatches to the child's own
			// MarshalJSONTo.
			stream.WriteValue(child.(jsonwriter.ValueMarshaler))
		}
		stream.WriteArrayEnd()
	}
	stream.WriteObjectEnd()
	return nil
}

func init() {
	jsoniter.RegisterTypeEncoder("tree.Leaf", leafMarshaller{})
	jsoniter.RegisterTypeEncoder("tree.Container", containerMarshaller{})
}
