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

import (
	"bytes"

	"github.com/nabbar/hammer/container/strbuilder"
	"github.com/nabbar/hammer/herr"
)

// NewlineMode selects how LineReader recognizes a line terminator.
type NewlineMode int

const (
	// LF treats a bare '\n' as the line terminator.
	LF NewlineMode = iota
	// CRLF treats a "\r\n" pair as the line terminator, stripping the CR
	// from the produced line. A lone '\n' not preceded by '\r' is still
	// accepted as a terminator (it simply has nothing to strip); the HTTP
	// header scanner accepts such lines too and rejects only a '\r' left
	// inside a line.
	CRLF
)

// LineReader produces a lazy, finite, non-restartable sequence of line
// strings from an underlying Reader. It owns a caller-supplied scratch
// buffer and an internal accumulator for lines that span more than one
// refill.
type LineReader struct {
	src           Reader
	buf           []byte
	bufIndex      int
	bytesInBuffer int
	acc           *strbuilder.Builder
	mode          NewlineMode
	done          bool
}

// NewLineReader wraps src. buf is the caller-supplied scratch buffer and
// must have length >= 1, or this returns InvalidArgument.
func NewLineReader(src Reader, buf []byte, mode NewlineMode) (*LineReader, herr.Kind) {
	if len(buf) == 0 {
		return nil, herr.InvalidArgument
	}
	return &LineReader{src: src, buf: buf, mode: mode, acc: strbuilder.New()}, herr.OK
}

func (l *LineReader) refill() herr.Kind {
	n, kind := l.src.Read(l.buf)
	if kind != herr.OK {
		return kind
	}
	l.bufIndex = 0
	l.bytesInBuffer = n
	return herr.OK
}

// ReadLine returns the next line (without its terminator). Input that ends
// with a newline yields one final empty line. After the stream ends, every
// subsequent call returns InvalidState.
func (l *LineReader) ReadLine() (string, herr.Kind) {
	if l.done {
		return "", herr.InvalidState
	}
	for {
		if l.bytesInBuffer == 0 {
			afterNewline := l.bufIndex > 0 && l.buf[l.bufIndex-1] == '\n'
			if kind := l.refill(); kind != herr.OK {
				return "", kind
			}
			if l.bytesInBuffer == 0 {
				l.done = true
				if l.acc.Len() == 0 && !afterNewline {
					return "", herr.InvalidState
				}
				line := l.acc.String()
				l.acc.Reset()
				return line, herr.OK
			}
		}

		window := l.buf[l.bufIndex:l.bytesInBuffer]
		if rel := bytes.IndexByte(window, '\n'); rel >= 0 {
			abs := l.bufIndex + rel
			l.acc.Write(l.buf[l.bufIndex:abs])
			l.bufIndex = abs + 1

			line := l.acc.String()
			if l.mode == CRLF {
				if n := len(line); n > 0 && line[n-1] == '\r' {
					line = line[:n-1]
				}
			}
			l.acc.Reset()
			return line, herr.OK
		}

		l.acc.Write(window)
		l.bufIndex = l.bytesInBuffer
		l.bytesInBuffer = 0
	}
}

// Residual returns the bytes already pulled into the scratch buffer that
// have not yet been handed out as part of a line - the start of whatever
// follows the last line returned. The HTTP parser uses this to stitch the
// header scanner's leftover bytes onto the transport for the body, via a
// CompositeReader. The returned slice aliases the caller-supplied buffer and
// is only valid until the next ReadLine call.
func (l *LineReader) Residual() []byte {
	return l.buf[l.bufIndex:l.bytesInBuffer]
}

// ReadAllLines drains src to EOF, returning every line produced.
func ReadAllLines(src Reader, buf []byte, mode NewlineMode) ([]string, herr.Kind) {
	lr, kind := NewLineReader(src, buf, mode)
	if kind != herr.OK {
		return nil, kind
	}
	var lines []string
	for {
		line, kind := lr.ReadLine()
		if kind == herr.InvalidState {
			return lines, herr.OK
		}
		if kind != herr.OK {
			return lines, kind
		}
		lines = append(lines, line)
	}
}
