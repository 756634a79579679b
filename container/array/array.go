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

// Package array is a generic, amortized-growth array; the string builder
// accumulates its bytes in one.
package array

import "sort"

// DisposeFunc releases resources owned by a single stored element. Nil means
// the array does not own its elements.
type DisposeFunc[T any] func(T)

// Array is a contiguous, value-storing, amortized-doubling-growth array.
// Not safe for concurrent use.
type Array[T any] struct {
	items   []T
	dispose DisposeFunc[T]
}

// New creates an empty array. dispose, if non-nil, is invoked on every
// element removed by Clear.
func New[T any](dispose DisposeFunc[T]) *Array[T] {
	return &Array[T]{dispose: dispose}
}

// NewWithCapacity is New with a pre-sized backing slice.
func NewWithCapacity[T any](capacity int, dispose DisposeFunc[T]) *Array[T] {
	a := New[T](dispose)
	if capacity > 0 {
		a.items = make([]T, 0, capacity)
	}
	return a
}

// Count returns the number of stored elements.
func (a *Array[T]) Count() int { return len(a.items) }

// Capacity returns the backing slice's capacity.
func (a *Array[T]) Capacity() int { return cap(a.items) }

// Add appends v, growing capacity by doubling when full (Go's append already
// implements amortized doubling; this wrapper exists so the growth policy is
// named and testable like its source-runtime counterpart).
func (a *Array[T]) Add(v T) {
	a.items = append(a.items, v)
}

// Get returns the element at i, or ok=false if i is out of bounds.
func (a *Array[T]) Get(i int) (v T, ok bool) {
	if i < 0 || i >= len(a.items) {
		return v, false
	}
	return a.items[i], true
}

// Set overwrites the element at i. Returns false if i is out of bounds.
func (a *Array[T]) Set(i int, v T) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	a.items[i] = v
	return true
}

// AddRange copies items in directly, growing the backing slice to fit the
// whole range in one step rather than doubling repeatedly.
func (a *Array[T]) AddRange(items []T) {
	if len(items) == 0 {
		return
	}
	needed := len(a.items) + len(items)
	if needed > cap(a.items) {
		grown := make([]T, len(a.items), needed)
		copy(grown, a.items)
		a.items = grown
	}
	a.items = append(a.items, items...)
}

// InitFunc initializes the slot at index during Expand.
type InitFunc[T any] func(index int, slot *T)

// Expand grows the count by n. If init is nil the new slots are left at
// their zero value; otherwise init is called once per new slot so callers
// can construct elements in place.
func (a *Array[T]) Expand(n int, init InitFunc[T]) {
	if n <= 0 {
		return
	}
	start := len(a.items)
	a.items = append(a.items, make([]T, n)...)
	if init != nil {
		for i := start; i < start+n; i++ {
			init(i, &a.items[i])
		}
	}
}

// Clear disposes every element (if a DisposeFunc was configured) and resets
// the count to 0 while retaining the backing capacity.
func (a *Array[T]) Clear() {
	if a.dispose != nil {
		for _, v := range a.items {
			a.dispose(v)
		}
	}
	a.items = a.items[:0]
}

// CompareFunc orders two elements: negative if a<b, zero if equal, positive
// if a>b.
type CompareFunc[T any] func(a, b T) int

// Sort performs an unstable sort driven by cmp.
func (a *Array[T]) Sort(cmp CompareFunc[T]) {
	sort.Slice(a.items, func(i, j int) bool {
		return cmp(a.items[i], a.items[j]) < 0
	})
}

// Slice exposes the live backing slice for read-only iteration. Mutating its
// length is the caller's responsibility to avoid - use the Array's own
// methods instead.
func (a *Array[T]) Slice() []T { return a.items }
