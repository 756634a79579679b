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

// Package ioz is the runtime core's streaming I/O layer: a Reader/Writer
// contract expressed in terms of herr.Kind rather than the standard error
// interface (so short reads, EOF, and genuine failures stay unambiguous down
// every call chain), plus the Memory/Limited/Composite reader variants and
// the line-buffered LineReader that the HTTP parser is built on.
package ioz

import "github.com/nabbar/hammer/herr"

// Reader is the polymorphic read contract every streaming source in this
// module implements. A zero-length Read returns (0, herr.OK) immediately.
// Short reads are legal. Once end of stream is reached, further calls return
// (0, herr.OK) - callers distinguish "more may come later" from "this is
// over" the same way the source runtime does: by noticing 0 bytes with OK.
type Reader interface {
	// Read fills buf[:n] with up to len(buf) bytes, returning the count
	// actually read.
	Read(buf []byte) (n int, kind herr.Kind)
	// Seek repositions the stream to an absolute byte offset. Readers that
	// cannot seek return NotImplemented.
	Seek(offset int64) herr.Kind
	// Close releases reader-specific resources.
	Close() herr.Kind
}

// Writer is the polymorphic write contract.
type Writer interface {
	Write(buf []byte) (n int, kind herr.Kind)
	Close() herr.Kind
}
