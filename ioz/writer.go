/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

package ioz

import "github.com/nabbar/hammer/herr"

// MemoryWriter accumulates everything written to it into a growable buffer.
// Used by tests and for rendering output before a transport is known.
type MemoryWriter struct {
	buf []byte
}

// NewMemoryWriter creates an empty writer.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{}
}

func (m *MemoryWriter) Write(buf []byte) (int, herr.Kind) {
	m.buf = append(m.buf, buf...)
	return len(buf), herr.OK
}

func (m *MemoryWriter) Close() herr.Kind { return herr.OK }

// Bytes returns the accumulated content. The returned slice aliases the
// writer's internal buffer and must not be retained across further writes.
func (m *MemoryWriter) Bytes() []byte { return m.buf }

// CappedWriter wraps a Writer and refuses to accept more than cap bytes in
// total, returning LimitExceeded on overrun - the write-side counterpart to
// LimitedReader.
type CappedWriter struct {
	dst   Writer
	cap   int64
	total int64
}

// NewCappedWriter wraps dst with a byte cap.
func NewCappedWriter(dst Writer, cap int64) *CappedWriter {
	return &CappedWriter{dst: dst, cap: cap}
}

func (c *CappedWriter) Write(buf []byte) (int, herr.Kind) {
	if c.total+int64(len(buf)) > c.cap {
		return 0, herr.LimitExceeded
	}
	n, kind := c.dst.Write(buf)
	c.total += int64(n)
	return n, kind
}

func (c *CappedWriter) Close() herr.Kind { return c.dst.Close() }
