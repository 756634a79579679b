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

// bumpSegmentSize is the size of each arena segment. Allocations larger than
// half of it are routed to the large-object side list instead of wasting a
// whole segment on one oversized request.
const bumpSegmentSize = 256 * 1024
const bumpLargeObjectThreshold = bumpSegmentSize / 2

type bumpSegment struct {
	data  []byte
	index int
}

// bumpPointer is a monotonic region allocator: allocations bump an index into
// the current segment and a new segment is appended when one fills up. There
// is no per-object free; the only way to reclaim memory is Dispose, which
// drops every segment and large object at once. Not safe for concurrent use -
// the index bump is a plain read-modify-write with no locking, matching the
// source runtime's single-thread-per-arena contract.
type bumpPointer struct {
	base     Allocator
	segments []*bumpSegment
	large    [][]byte
}

// NewBumpPointer creates a region allocator that falls back to base for
// oversized allocations and for each new segment. base must outlive the
// returned allocator.
func NewBumpPointer(base Allocator) Allocator {
	if base == nil {
		base = NewSystem()
	}
	return &bumpPointer{base: base}
}

func (b *bumpPointer) newSegment() *bumpSegment {
	data := b.base.Allocate(bumpSegmentSize)
	if data == nil {
		return nil
	}
	return &bumpSegment{data: data}
}

func (b *bumpPointer) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	if n > bumpLargeObjectThreshold {
		block := b.base.Allocate(n)
		if block == nil {
			return nil
		}
		b.large = append(b.large, block)
		return block
	}
	if len(b.segments) == 0 {
		s := b.newSegment()
		if s == nil {
			return nil
		}
		b.segments = append(b.segments, s)
	}
	cur := b.segments[len(b.segments)-1]
	if cur.index+n > len(cur.data) {
		s := b.newSegment()
		if s == nil {
			return nil
		}
		b.segments = append(b.segments, s)
		cur = s
	}
	block := cur.data[cur.index : cur.index+n : cur.index+n]
	cur.index += n
	return block
}

func (b *bumpPointer) AllocateZeroed(n int) []byte {
	// Segment bytes start zeroed and are never reused after Dispose, so a
	// fresh bump allocation is already zero; large objects route through
	// base, whose own zero-fill semantics apply.
	return b.Allocate(n)
}

func (b *bumpPointer) Realloc(old []byte, newSize int) []byte {
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

// Free is a no-op: bump-pointer arenas never reclaim individual objects.
func (b *bumpPointer) Free([]byte) {}

// Dispose releases every segment and large object through the base
// allocator and returns OK; Free reports no failure to merge.
func (b *bumpPointer) Dispose() herr.Kind {
	for _, s := range b.segments {
		b.base.Free(s.data)
	}
	for _, l := range b.large {
		b.base.Free(l)
	}
	b.segments = nil
	b.large = nil
	return herr.OK
}
