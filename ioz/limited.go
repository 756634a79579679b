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

// LimitedReader wraps a source and refuses to deliver more than cap bytes in
// total, returning LimitExceeded on overrun. Used by the HTTP parser to
// bound the header block independently of the transport's own limits.
type LimitedReader struct {
	src   Reader
	cap   int64
	total int64
}

// NewLimitedReader wraps src with a byte cap.
func NewLimitedReader(src Reader, cap int64) *LimitedReader {
	return &LimitedReader{src: src, cap: cap}
}

func (l *LimitedReader) Read(buf []byte) (int, herr.Kind) {
	if len(buf) == 0 {
		return 0, herr.OK
	}
	if l.total >= l.cap {
		return 0, herr.LimitExceeded
	}
	remaining := l.cap - l.total
	if int64(len(buf)) > remaining {
		buf = buf[:remaining]
	}
	n, kind := l.src.Read(buf)
	l.total += int64(n)
	return n, kind
}

func (l *LimitedReader) Seek(offset int64) herr.Kind { return herr.NotImplemented }

func (l *LimitedReader) Close() herr.Kind { return l.src.Close() }

// Consumed returns the number of bytes read through the limit so far.
func (l *LimitedReader) Consumed() int64 { return l.total }
