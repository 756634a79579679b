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

// Package httpreq parses an RFC9112-leaning HTTP/1.1 request line and header
// block from a streaming Reader, exposing the body as a Reader that picks up
// exactly where the header scanner left off.
package httpreq

import (
	"strings"

	"github.com/nabbar/hammer/alloc"
	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/ioz"
)

// MaxReadBufferSize bounds both the headers cap and the LineReader scratch
// buffer a caller may request.
const MaxReadBufferSize = 1 << 20

// DefaultMaxHeadersSize is used by callers that don't need a tighter cap.
const DefaultMaxHeadersSize = 8192

var recognizedMethods = []string{"GET", "POST", "PUT", "DELETE", "HEAD"}

// Request is a parsed request line plus header block, with the body exposed
// as a streaming Reader.
type Request struct {
	Method  string
	URL     string
	headers map[string][]string
	Body    ioz.Reader
}

// Parse reads one request from transport, sizing its scratch buffer through
// the plain system allocator. See ParseWithAllocator to route that
// allocation through a tracked or bounded Allocator instead.
func Parse(transport ioz.Reader, maxHeadersSize, readBufferSize int) (*Request, herr.Kind) {
	return ParseWithAllocator(transport, maxHeadersSize, readBufferSize, nil)
}

// ParseWithAllocator is Parse with an explicit Allocator for the
// LineReader's scratch buffer, letting an embedder observe or bound that
// one allocation per parsed request (e.g. through alloc.Stats wired to a
// Prometheus counter) instead of it always going through the bare Go
// allocator. A nil allocator falls back to alloc.NewSystem().
//
// maxHeadersSize bounds the header block (LimitExceeded on overrun);
// readBufferSize sizes the scratch buffer on its own, independent of
// maxHeadersSize. Both must be in (0, MaxReadBufferSize] or this returns
// InvalidArgument.
func ParseWithAllocator(transport ioz.Reader, maxHeadersSize, readBufferSize int, a alloc.Allocator) (*Request, herr.Kind) {
	if maxHeadersSize <= 0 || maxHeadersSize > MaxReadBufferSize {
		return nil, herr.InvalidArgument
	}
	if readBufferSize <= 0 || readBufferSize > MaxReadBufferSize {
		return nil, herr.InvalidArgument
	}
	if a == nil {
		a = alloc.NewSystem()
	}

	limited := ioz.NewLimitedReader(transport, int64(maxHeadersSize))
	buf := a.Allocate(readBufferSize)
	if buf == nil {
		return nil, herr.OutOfMemory
	}
	lr, kind := ioz.NewLineReader(limited, buf, ioz.CRLF)
	if kind != herr.OK {
		return nil, kind
	}

	req := &Request{headers: make(map[string][]string)}

	line, kind := lr.ReadLine()
	if kind == herr.InvalidState {
		return nil, herr.InvalidData
	}
	if kind != herr.OK {
		return nil, kind
	}
	if kind := req.parseRequestLine(line); kind != herr.OK {
		return nil, kind
	}

	for {
		line, kind = lr.ReadLine()
		if kind == herr.InvalidState {
			return nil, herr.InvalidData
		}
		if kind != herr.OK {
			return nil, kind
		}
		if line == "" {
			break
		}
		if kind := req.parseHeaderLine(line); kind != herr.OK {
			return nil, kind
		}
	}

	residual := append([]byte(nil), lr.Residual()...)
	residualReader := ioz.NewMemoryReader(residual)
	req.Body = ioz.NewCompositeReader(func(finishedIndex int) {
		if finishedIndex == 0 {
			residual = nil
		}
	}, residualReader, transport)

	return req, herr.OK
}

func (r *Request) parseRequestLine(line string) herr.Kind {
	for _, m := range recognizedMethods {
		prefix := m + " "
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		rest := line[len(prefix):]
		const suffix = " HTTP/1.1"
		if !strings.HasSuffix(rest, suffix) {
			return herr.InvalidData
		}
		r.Method = m
		r.URL = rest[:len(rest)-len(suffix)]
		return herr.OK
	}
	return herr.InvalidData
}

func (r *Request) parseHeaderLine(line string) herr.Kind {
	if strings.ContainsRune(line, '\r') {
		return herr.InvalidData
	}
	if line[0] == ' ' || line[0] == '\t' {
		return herr.InvalidData // line folding not supported
	}

	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return herr.InvalidData
	}
	name := line[:idx]
	if !isToken(name) {
		return herr.InvalidData
	}
	value := trimHTTPWhitespace(line[idx+1:])
	if value == "" {
		return herr.InvalidData
	}

	canon := canonicalize(name)
	r.headers[canon] = append(r.headers[canon], value)
	return herr.OK
}

func trimHTTPWhitespace(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end := len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

// canonicalize capitalizes the first byte and every byte following '-',
// lowercasing everything else, ASCII range only. It is idempotent: running
// it twice produces the same result as running it once.
func canonicalize(name string) string {
	out := []byte(name)
	upperNext := true
	for i, c := range out {
		switch {
		case upperNext && c >= 'a' && c <= 'z':
			out[i] = c - ('a' - 'A')
		case !upperNext && c >= 'A' && c <= 'Z':
			out[i] = c + ('a' - 'A')
		}
		upperNext = c == '-'
	}
	return string(out)
}

// HeaderRef returns the index-th value stored under name (canonicalized the
// same way as during parsing), or NotFound.
func (r *Request) HeaderRef(name string, index int) (string, herr.Kind) {
	values, ok := r.headers[canonicalize(name)]
	if !ok || index < 0 || index >= len(values) {
		return "", herr.NotFound
	}
	return values[index], herr.OK
}
