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

package jsonwriter_test

import (
	"bytes"
	"errors"
	"strings"

	"github.com/botobag/treewalk/jsonwriter"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// brokenWriter fails every write with the same error.
type brokenWriter struct {
	err error
}

func (w brokenWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

// encode runs write against a fresh stream and returns everything it produced.
func encode(write func(stream *jsonwriter.Stream)) string {
	var buf bytes.Buffer
	stream := jsonwriter.NewStream(&buf)
	write(stream)
	Expect(stream.Flush()).Should(Succeed())
	return buf.String()
}

var _ = Describe("Stream", func() {
	It("composes objects and arrays from individual writes", func() {
		Expect(encode(func(stream *jsonwriter.Stream) {
			stream.WriteObjectStart()
			stream.WriteObjectField("name")
			stream.WriteString("root")
			stream.WriteMore()
			stream.WriteObjectField("children")
			stream.WriteArrayStart()
			stream.WriteInt(1)
			stream.WriteMore()
			stream.WriteInt(2)
			stream.WriteArrayEnd()
			stream.WriteObjectEnd()
		})).Should(Equal(`{"name":"root","children":[1,2]}`))
	})

	It("writes the empty composites in their short form", func() {
		Expect(encode(func(stream *jsonwriter.Stream) {
			stream.WriteArrayStart()
			stream.WriteEmptyObject()
			stream.WriteMore()
			stream.WriteEmptyArray()
			stream.WriteMore()
			stream.WriteNil()
			stream.WriteMore()
			stream.WriteBool(true)
			stream.WriteMore()
			stream.WriteBool(false)
			stream.WriteArrayEnd()
		})).Should(Equal(`[{},[],null,true,false]`))
	})

	It("escapes strings", func() {
		Expect(encode(func(stream *jsonwriter.Stream) {
			stream.WriteString("a\"b\\c\nd\te\r")
		})).Should(Equal(`"a\"b\\c\nd\te\r"`))

		// Control characters without a short escape use \u00XX.
		Expect(encode(func(stream *jsonwriter.Stream) {
			stream.WriteString("a\x01b")
		})).Should(Equal("\"a\\u0001b\""))

		// UTF-8 passes through untouched.
		Expect(encode(func(stream *jsonwriter.Stream) {
			stream.WriteString("héllo")
		})).Should(Equal(`"héllo"`))

		// The HTML-significant characters also pass through, unlike encoding/json's default.
		Expect(encode(func(stream *jsonwriter.Stream) {
			stream.WriteString("a<b>&c")
		})).Should(Equal(`"a<b>&c"`))
	})

	It("writes integers", func() {
		Expect(encode(func(stream *jsonwriter.Stream) {
			stream.WriteArrayStart()
			stream.WriteInt(-42)
			stream.WriteMore()
			stream.WriteInt64(1<<62 - 1)
			stream.WriteMore()
			stream.WriteUint(7)
			stream.WriteMore()
			stream.WriteUint64(1<<63 + 1)
			stream.WriteArrayEnd()
		})).Should(Equal(`[-42,4611686018427387903,7,9223372036854775809]`))
	})

	It("buffers small writes until Flush", func() {
		var buf bytes.Buffer
		stream := jsonwriter.NewStream(&buf)

		stream.WriteString("buffered")
		Expect(buf.Len()).Should(Equal(0))

		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.String()).Should(Equal(`"buffered"`))
	})

	It("latches the first write error and discards further writes", func() {
		var (
			errBroken = errors.New("broken pipe")
			stream    = jsonwriter.NewStream(brokenWriter{err: errBroken})
		)

		stream.WriteString("doomed")
		Expect(stream.Error()).ShouldNot(HaveOccurred())

		Expect(stream.Flush()).Should(Equal(errBroken))
		Expect(stream.Error()).Should(Equal(errBroken))

		stream.WriteString("ignored")
		Expect(stream.Flush()).Should(Equal(errBroken))
	})

	It("surfaces the write error on an oversized write without Flush", func() {
		var (
			errBroken = errors.New("broken pipe")
			stream    = jsonwriter.NewStream(brokenWriter{err: errBroken})
		)

		stream.WriteRawString(strings.Repeat("x", 4096))
		Expect(stream.Error()).Should(Equal(errBroken))
	})
})

// pricedItem exercises the ValueMarshaler plumbing.
type pricedItem struct {
	Name  string
	Price int
}

func (item *pricedItem) MarshalJSONTo(stream *jsonwriter.Stream) error {
	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(item.Name)
	stream.WriteMore()
	stream.WriteObjectField("price")
	stream.WriteInt(item.Price)
	stream.WriteObjectEnd()
	return nil
}

// failingMarshaler always reports an error from MarshalJSONTo.
type failingMarshaler struct{}

func (failingMarshaler) MarshalJSONTo(stream *jsonwriter.Stream) error {
	return errors.New("cannot marshal")
}

var _ = Describe("ValueMarshaler", func() {
	It("marshals a value through Marshal", func() {
		encoded, err := jsonwriter.Marshal(&pricedItem{Name: "book", Price: 20})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(encoded)).Should(Equal(`{"name":"book","price":20}`))
	})

	It("marshals a nil pointer as null", func() {
		encoded, err := jsonwriter.Marshal((*pricedItem)(nil))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(encoded)).Should(Equal("null"))
	})

	It("writes nested values through WriteValue", func() {
		Expect(encode(func(stream *jsonwriter.Stream) {
			stream.WriteArrayStart()
			stream.WriteValue(&pricedItem{Name: "book", Price: 20})
			stream.WriteMore()
			stream.WriteValue((*pricedItem)(nil))
			stream.WriteArrayEnd()
		})).Should(Equal(`[{"name":"book","price":20},null]`))
	})

	It("returns the marshaler's error from Marshal without wrapping", func() {
		_, err := jsonwriter.Marshal(failingMarshaler{})
		Expect(err).Should(MatchError("cannot marshal"))
	})

	It("wraps the marshaler's error from WriteValue", func() {
		var buf bytes.Buffer
		stream := jsonwriter.NewStream(&buf)

		stream.WriteValue(failingMarshaler{})
		Expect(stream.Error()).Should(HaveOccurred())
		Expect(stream.Error().Error()).Should(ContainSubstring("cannot marshal"))
	})
})
