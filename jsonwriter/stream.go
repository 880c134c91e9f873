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

// Package jsonwriter provides a small streaming JSON writer. Unlike encoding/json, it performs no
// reflection: callers compose the encoding out of Write{ObjectStart,ObjectField,...} calls, or
// implement ValueMarshaler to let a type write itself into a Stream.
package jsonwriter

import (
	"io"
)

const initialStreamBufSize = 512

// Stream provides functions for writing JSON encoding. Writes are buffered and sent to the output
// io.Writer when the buffer fills up and on Flush. The first error returned by the output writer
// is latched; once it is set, every subsequent write is discarded and Flush keeps returning it.
type Stream struct {
	// Output stream
	w io.Writer

	// Buffer that sits in front of writes to w
	buf []byte

	// Scratch buffer for formatting numbers
	scratch [32]byte

	// Error occurred during writing
	err error
}

// NewStream creates a stream for writing data in JSON encoding.
func NewStream(w io.Writer) *Stream {
	return &Stream{
		w:   w,
		buf: make([]byte, 0, initialStreamBufSize),
	}
}

// Error returns error occurred during use of the stream.
func (stream *Stream) Error() error {
	return stream.err
}

// write is the lowest level that performs writes. It appends b to the buffer, sending the buffer
// contents to w first when they would no longer fit.
func (stream *Stream) write(b []byte) {
	if stream.err != nil {
		return
	}

	if len(stream.buf)+len(b) > cap(stream.buf) {
		stream.flushBuf()
	}

	if len(b) > cap(stream.buf) {
		// Oversized write; bypass the buffer (which flushBuf has just emptied).
		if stream.err == nil {
			if _, err := stream.w.Write(b); err != nil {
				stream.err = err
			}
		}
		return
	}

	stream.buf = append(stream.buf, b...)
}

func (stream *Stream) flushBuf() {
	if len(stream.buf) == 0 {
		return
	}
	_, err := stream.w.Write(stream.buf)
	stream.buf = stream.buf[:0]
	if err != nil {
		stream.err = err
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (stream *Stream) Flush() error {
	if stream.err != nil {
		return stream.err
	}
	stream.flushBuf()
	return stream.err
}

func (stream *Stream) writeOneByte(b byte) {
	if stream.err != nil {
		return
	}
	if len(stream.buf)+1 > cap(stream.buf) {
		stream.flushBuf()
	}
	stream.buf = append(stream.buf, b)
}

func (stream *Stream) writeTwoBytes(b1 byte, b2 byte) {
	if stream.err != nil {
		return
	}
	if len(stream.buf)+2 > cap(stream.buf) {
		stream.flushBuf()
	}
	stream.buf = append(stream.buf, b1, b2)
}

// WriteRawString writes raw string into output without any escaping.
func (stream *Stream) WriteRawString(s string) {
	stream.write([]byte(s))
}

// WriteMore writes a ",".
func (stream *Stream) WriteMore() {
	stream.writeOneByte(',')
}

// WriteArrayStart writes a "[".
func (stream *Stream) WriteArrayStart() {
	stream.writeOneByte('[')
}

// WriteArrayEnd writes a "]".
func (stream *Stream) WriteArrayEnd() {
	stream.writeOneByte(']')
}

// WriteEmptyArray writes "[]".
func (stream *Stream) WriteEmptyArray() {
	stream.writeTwoBytes('[', ']')
}

// WriteObjectStart writes a "{".
func (stream *Stream) WriteObjectStart() {
	stream.writeOneByte('{')
}

// WriteObjectField writes a "field:".
func (stream *Stream) WriteObjectField(field string) {
	stream.WriteString(field)
	stream.writeOneByte(':')
}

// WriteObjectEnd writes a "}".
func (stream *Stream) WriteObjectEnd() {
	stream.writeOneByte('}')
}

// WriteEmptyObject writes "{}".
func (stream *Stream) WriteEmptyObject() {
	stream.writeTwoBytes('{', '}')
}

// WriteBool encodes a boolean value.
func (stream *Stream) WriteBool(b bool) {
	if b {
		stream.WriteRawString("true")
	} else {
		stream.WriteRawString("false")
	}
}

// WriteNil writes "null".
func (stream *Stream) WriteNil() {
	stream.WriteRawString("null")
}

const hexDigits = "0123456789abcdef"

// WriteString encodes s as a JSON string, quoting it and escaping the quotation mark, the reverse
// solidus and the control characters. Valid UTF-8 outside those is written as is; in particular,
// the HTML-significant characters "<", ">" and "&" are not escaped, unlike encoding/json and
// json-iterator in their default configurations.
func (stream *Stream) WriteString(s string) {
	stream.writeOneByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}

		if start < i {
			stream.WriteRawString(s[start:i])
		}
		switch c {
		case '"':
			stream.writeTwoBytes('\\', '"')
		case '\\':
			stream.writeTwoBytes('\\', '\\')
		case '\n':
			stream.writeTwoBytes('\\', 'n')
		case '\r':
			stream.writeTwoBytes('\\', 'r')
		case '\t':
			stream.writeTwoBytes('\\', 't')
		default:
			stream.WriteRawString(`\u00`)
			stream.writeTwoBytes(hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	if start < len(s) {
		stream.WriteRawString(s[start:])
	}
	stream.writeOneByte('"')
}
