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

package alloc

import "github.com/nabbar/hammer/herr"

// systemAllocator delegates straight to the Go runtime allocator. It is safe
// for concurrent use by multiple goroutines, unlike every other variant in
// this package.
type systemAllocator struct{}

// NewSystem returns the passthrough allocator. Dispose is a no-op: everything
// is managed by the Go runtime's garbage collector.
func NewSystem() Allocator {
	return systemAllocator{}
}

func (systemAllocator) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, alignUp(n))[:n]
}

func (s systemAllocator) AllocateZeroed(n int) []byte {
	// make() already zero-fills in Go, so this is identical to Allocate.
	return s.Allocate(n)
}

func (s systemAllocator) Realloc(old []byte, newSize int) []byte {
	if newSize <= len(old) {
		return old
	}
	nw := s.Allocate(newSize)
	if nw == nil {
		return nil
	}
	copy(nw, old)
	return nw
}

func (systemAllocator) Free([]byte) {}

func (systemAllocator) Dispose() herr.Kind { return herr.OK }
