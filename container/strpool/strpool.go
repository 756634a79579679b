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

// Package strpool is a deduplicating string interner backed by a
// bump-pointer arena: the metadata loader uses it so that, say, a module
// name referenced by a hundred methods is stored exactly once.
package strpool

import (
	"github.com/nabbar/hammer/alloc"
	"github.com/nabbar/hammer/container/str"
)

// StringPool maps a string value to one canonical owned copy. Returned
// references are stable until the pool itself is disposed.
type StringPool struct {
	arena   alloc.Allocator
	entries map[string]*str.String
}

// New creates a pool whose interned copies are allocated from a private
// bump-pointer arena wrapping base (base may be nil to use the system
// allocator).
func New(base alloc.Allocator) *StringPool {
	return &StringPool{
		arena:   alloc.NewBumpPointer(base),
		entries: make(map[string]*str.String),
	}
}

// GetRef returns the canonical *str.String for s, interning it on first
// sight. Any sequence of calls with pairwise-equal inputs returns the same
// pointer.
func (p *StringPool) GetRef(s string) *str.String {
	if existing, ok := p.entries[s]; ok {
		return existing
	}
	canonical := str.Owned(p.arena, s)
	p.entries[s] = canonical
	return canonical
}

// Count returns the number of distinct interned strings.
func (p *StringPool) Count() int { return len(p.entries) }

// Dispose releases the arena (and therefore every interned copy) at once.
// Every reference previously returned by GetRef is invalidated.
func (p *StringPool) Dispose() {
	_ = p.arena.Dispose()
	p.entries = nil
}
