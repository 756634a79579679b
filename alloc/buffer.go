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

// Buffer satisfies allocations from a fixed, caller-supplied region. Once the
// region is exhausted it either falls through to an optional fallback
// allocator or returns nil. Like BumpPointer it never frees individual
// blocks; Dispose forgets the region and disposes the fallback, if any.
type Buffer struct {
	region   []byte
	index    int
	fallback Allocator
}

// NewBuffer wraps region. fallback may be nil, in which case overflow
// allocations simply fail.
func NewBuffer(region []byte, fallback Allocator) *Buffer {
	return &Buffer{region: region, fallback: fallback}
}

func (b *Buffer) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	if b.index+n <= len(b.region) {
		block := b.region[b.index : b.index+n : b.index+n]
		b.index += n
		return block
	}
	if b.fallback != nil {
		return b.fallback.Allocate(n)
	}
	return nil
}

func (b *Buffer) AllocateZeroed(n int) []byte {
	block := b.Allocate(n)
	if block != nil {
		for i := range block {
			block[i] = 0
		}
	}
	return block
}

func (b *Buffer) Realloc(old []byte, newSize int) []byte {
	if newSize <= len(old) {
		return old
	}
	nw := b.Allocate(newSize)
	if nw == nil {
		return nil
	}
	copy(nw, old)
	return nw
}

// Free is a no-op, like every other region-style allocator in this package:
// neither the fixed region nor (once exhausted) the fallback allocator ever
// reclaims individual blocks here.
func (b *Buffer) Free([]byte) {}

func (b *Buffer) Dispose() herr.Kind {
	b.region = nil
	if b.fallback != nil {
		return b.fallback.Dispose()
	}
	return herr.OK
}
