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

// MemoryReader reads from a fixed byte slice.
type MemoryReader struct {
	data []byte
	pos  int64
}

// NewMemoryReader wraps data. data is not copied.
func NewMemoryReader(data []byte) *MemoryReader {
	return &MemoryReader{data: data}
}

func (m *MemoryReader) Read(buf []byte) (int, herr.Kind) {
	if len(buf) == 0 {
		return 0, herr.OK
	}
	if m.pos >= int64(len(m.data)) {
		return 0, herr.OK
	}
	n := copy(buf, m.data[m.pos:])
	m.pos += int64(n)
	return n, herr.OK
}

// Seek repositions within the buffer. Seeking past the end returns
// InvalidArgument and leaves the position unchanged.
func (m *MemoryReader) Seek(offset int64) herr.Kind {
	if offset < 0 || offset > int64(len(m.data)) {
		return herr.InvalidArgument
	}
	m.pos = offset
	return herr.OK
}

func (m *MemoryReader) Close() herr.Kind { return herr.OK }

// Remaining returns the unread tail of the buffer without consuming it.
func (m *MemoryReader) Remaining() []byte {
	if m.pos >= int64(len(m.data)) {
		return nil
	}
	return m.data[m.pos:]
}
