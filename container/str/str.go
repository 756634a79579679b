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

// Package str provides the runtime core's own String type: either an owned
// copy (backed by an allocator, disposed explicitly) or a view that borrows
// someone else's bytes and never frees anything. Go's native string already
// gives most callers what they want; this type exists because the metadata
// loader and the HTTP parser both need to distinguish "this points into a
// buffer I still control" from "this is mine to free", which a plain string
// can't express.
package str

import (
	"bytes"
	"hash/maphash"

	"github.com/nabbar/hammer/alloc"
)

// processSalt seeds every hash computed by this package for the lifetime of
// the process, so two runs of the same binary produce different hash values
// for the same bytes - this is what makes the hash resistant to a
// precomputed-collision denial of service.
var processSalt = maphash.MakeSeed()

// String is either owned (its bytes were copied into allocator-owned memory,
// and Dispose frees them) or a view (its bytes are borrowed, and Dispose is a
// no-op).
type String struct {
	data      []byte
	owned     bool
	allocator alloc.Allocator
	hash      uint32
	hashValid bool
}

// View returns a String over a copy of s's bytes; Dispose on the result does
// nothing. ViewBytes is the variant that borrows without copying.
func View(s string) *String {
	return &String{data: []byte(s)}
}

// ViewBytes is View over a byte slice the caller guarantees it owns for the
// view's lifetime.
func ViewBytes(b []byte) *String {
	return &String{data: b}
}

// Owned copies s into a fresh block obtained from a. Dispose later returns
// that block to a.
func Owned(a alloc.Allocator, s string) *String {
	block := a.Allocate(len(s))
	copy(block, s)
	return &String{data: block, owned: true, allocator: a}
}

// Len returns the byte length.
func (s *String) Len() int { return len(s.data) }

// Bytes exposes the underlying bytes. Callers must not retain a reference
// past the String's Dispose.
func (s *String) Bytes() []byte { return s.data }

// String renders the content as a Go string (always a copy).
func (s *String) String() string { return string(s.data) }

// IsOwned reports whether this String owns its backing bytes.
func (s *String) IsOwned() bool { return s.owned }

// Equal compares byte content.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.data, other.data)
}

// Hash returns the cached 32-bit hash, computing and caching it on first
// use. The hash is stable for the lifetime of the process (see processSalt)
// but will differ across separate process runs of the same binary.
func (s *String) Hash() uint32 {
	if !s.hashValid {
		var h maphash.Hash
		h.SetSeed(processSalt)
		_, _ = h.Write(s.data)
		s.hash = uint32(h.Sum64())
		s.hashValid = true
	}
	return s.hash
}

// Truncate cuts the string at the first NUL byte found at or after offset 0,
// mirroring the C-string truncation semantics of the source runtime for
// owned, mutable strings. It is a no-op on views and invalidates any cached
// hash.
func (s *String) Truncate() {
	if !s.owned {
		return
	}
	if i := bytes.IndexByte(s.data, 0); i >= 0 {
		s.data = s.data[:i]
		s.hashValid = false
	}
}

// Dispose returns owned bytes to their allocator. A no-op for views.
func (s *String) Dispose() {
	if s.owned && s.allocator != nil {
		s.allocator.Free(s.data)
	}
	s.data = nil
}
