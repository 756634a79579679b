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

// Package alloc provides a family of pluggable allocation strategies behind a
// single interface, so the rest of the runtime core never needs to know
// whether a block came from the OS, a bump-pointer arena, or a fixed test
// buffer. This matters for two things: being able to bound a subsystem to a
// single arena (and free it all at once), and being able to deterministically
// inject out-of-memory conditions in tests.
package alloc

import "github.com/nabbar/hammer/herr"

// wordAlignment is the multiple that System pads every requested size up to
// before allocating. BumpPointer and Buffer carve blocks at their exact
// requested sizes, so the blocks they return are not padded to it, and Stats
// records the requested size.
const wordAlignment = 16

// Allocator is the capability set every allocation strategy in this package
// implements. Allocate returns nil (not an error) when memory is exhausted,
// mirroring the null-pointer contract of the source runtime; the Kind return
// is reserved for the rarer invalid-argument and double-dispose cases.
type Allocator interface {
	// Allocate returns a block of at least n bytes, or nil if exhausted.
	Allocate(n int) []byte
	// AllocateZeroed is Allocate followed by a zero-fill; kept distinct
	// because BumpPointer can skip the fill when the backing array is
	// already known to be zeroed.
	AllocateZeroed(n int) []byte
	// Realloc grows (never shrinks) a block: unchanged if newSize<=len(old),
	// else allocates newSize, copies len(old) bytes in, frees old, returns
	// new. Returns nil (old left intact) if the new block can't be obtained.
	Realloc(old []byte, newSize int) []byte
	// Free returns a block to the allocator. Safe to call with nil. Callers
	// must never free a block through an allocator other than the one that
	// produced it.
	Free(block []byte)
	// Dispose releases the allocator's own bookkeeping. Behavior is
	// undefined if blocks it handed out are still alive.
	Dispose() herr.Kind
}

func alignUp(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + wordAlignment - 1) &^ (wordAlignment - 1)
}
