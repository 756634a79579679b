/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package strbuilder is an Array[byte] with convenience appenders, used by
// LineReader to accumulate a line that spans more than one buffer refill.
package strbuilder

import "github.com/nabbar/hammer/container/array"

// Builder accumulates bytes and renders them as whole or partial strings.
type Builder struct {
	buf *array.Array[byte]
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{buf: array.New[byte](nil)}
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int { return b.buf.Count() }

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) {
	b.buf.Add(c)
}

// Write appends p, implementing io.ByteWriter-adjacent convenience.
func (b *Builder) Write(p []byte) {
	b.buf.AddRange(p)
}

// WriteString appends the bytes of s.
func (b *Builder) WriteString(s string) {
	b.buf.AddRange([]byte(s))
}

// String renders the whole accumulated content.
func (b *Builder) String() string {
	return string(b.buf.Slice())
}

// Substring renders the byte range [from, to) of the accumulated content.
func (b *Builder) Substring(from, to int) string {
	s := b.buf.Slice()
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return ""
	}
	return string(s[from:to])
}

// CString renders the accumulated content followed by a trailing NUL byte,
// for call sites that must interoperate with NUL-terminated byte runs.
func (b *Builder) CString() []byte {
	s := b.buf.Slice()
	out := make([]byte, len(s)+1)
	copy(out, s)
	return out
}

// Reset empties the builder, retaining its backing capacity.
func (b *Builder) Reset() {
	b.buf.Clear()
}
