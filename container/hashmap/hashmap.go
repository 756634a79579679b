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

// Package hashmap is a separate-chaining generic hash map with a per-instance
// salt, giving owning key/value storage.
package hashmap

import (
	"hash/maphash"

	"github.com/nabbar/hammer/herr"
)

// DisposeFunc releases a key or value removed from the map.
type DisposeFunc[T any] func(T)

// HashFunc computes a caller-supplied hash for a key. If nil, the map uses
// hash/maphash.Comparable seeded with a per-instance salt.
type HashFunc[K any] func(key K) uint64

// EqualsFunc compares two keys for equality. If nil, Go's built-in ==
// applies (K is constrained to comparable).
type EqualsFunc[K any] func(a, b K) bool

type entry[K comparable, V any] struct {
	key   K
	value V
}

// HashMap is a separate-chaining hash map. Buckets hold pointers to
// individually heap-allocated entries rather than entries by value, so an
// existing entry's address never moves: rehash re-links the same *entry
// nodes into new buckets instead of copying them, and a sibling Put that
// grows a bucket appends a new pointer rather than relocating prior ones.
// This is what lets GetRef hand out a pointer that survives both. Not safe
// for concurrent use.
type HashMap[K comparable, V any] struct {
	buckets    [][]*entry[K, V]
	count      int
	loadFactor float64
	seed       maphash.Seed
	hashFunc   HashFunc[K]
	equalsFunc EqualsFunc[K]
	keyDispose DisposeFunc[K]
	valDispose DisposeFunc[V]
}

// DefaultLoadFactor is used by New when no explicit factor is required.
const DefaultLoadFactor = 0.75

// New creates a hash map with initialCapacity buckets and loadFactor in
// (0.5, 1.0]. Returns InvalidArgument if either is out of range.
func New[K comparable, V any](initialCapacity int, loadFactor float64, keyDispose DisposeFunc[K], valDispose DisposeFunc[V]) (*HashMap[K, V], herr.Kind) {
	if initialCapacity <= 0 || loadFactor <= 0.5 || loadFactor > 1.0 {
		return nil, herr.InvalidArgument
	}
	return &HashMap[K, V]{
		buckets:    make([][]*entry[K, V], initialCapacity),
		loadFactor: loadFactor,
		seed:       maphash.MakeSeed(),
		keyDispose: keyDispose,
		valDispose: valDispose,
	}, herr.OK
}

// SetHashFunc overrides the default hashing strategy.
func (h *HashMap[K, V]) SetHashFunc(f HashFunc[K]) { h.hashFunc = f }

// SetEqualsFunc overrides the default (==) key comparison.
func (h *HashMap[K, V]) SetEqualsFunc(f EqualsFunc[K]) { h.equalsFunc = f }

func (h *HashMap[K, V]) hash(key K) uint64 {
	if h.hashFunc != nil {
		return h.hashFunc(key)
	}
	return maphash.Comparable(h.seed, key)
}

func (h *HashMap[K, V]) equal(a, b K) bool {
	if h.equalsFunc != nil {
		return h.equalsFunc(a, b)
	}
	return a == b
}

func (h *HashMap[K, V]) bucketIndex(key K, bucketCount int) int {
	return int(h.hash(key) % uint64(bucketCount))
}

// Count returns the number of stored entries.
func (h *HashMap[K, V]) Count() int { return h.count }

func (h *HashMap[K, V]) findInBucket(bucket []*entry[K, V], key K) int {
	for i := range bucket {
		if h.equal(bucket[i].key, key) {
			return i
		}
	}
	return -1
}

// Put inserts or overwrites key's value. If the key already exists, the prior
// value is disposed (if a value DisposeFunc was configured) and the entry
// node is overwritten in place - its address, and any GetRef pointer to it,
// stays valid. May trigger a rehash to roughly 2n+1 buckets.
func (h *HashMap[K, V]) Put(key K, value V) {
	idx := h.bucketIndex(key, len(h.buckets))
	if i := h.findInBucket(h.buckets[idx], key); i >= 0 {
		if h.valDispose != nil {
			h.valDispose(h.buckets[idx][i].value)
		}
		h.buckets[idx][i].value = value
		return
	}
	h.buckets[idx] = append(h.buckets[idx], &entry[K, V]{key: key, value: value})
	h.count++
	if float64(h.count) > float64(len(h.buckets))*h.loadFactor {
		h.rehash()
	}
}

// rehash re-links the existing *entry nodes into a larger bucket array. It
// never copies an entry by value, so a pointer returned by an earlier GetRef
// still points at the live node afterward.
func (h *HashMap[K, V]) rehash() {
	newCount := 2*len(h.buckets) + 1
	grown := make([][]*entry[K, V], newCount)
	for _, bucket := range h.buckets {
		for _, e := range bucket {
			idx := h.bucketIndex(e.key, newCount)
			grown[idx] = append(grown[idx], e)
		}
	}
	h.buckets = grown
}

// Get returns the value stored under key, or NotFound if absent.
func (h *HashMap[K, V]) Get(key K) (v V, kind herr.Kind) {
	idx := h.bucketIndex(key, len(h.buckets))
	if i := h.findInBucket(h.buckets[idx], key); i >= 0 {
		return h.buckets[idx][i].value, herr.OK
	}
	return v, herr.NotFound
}

// GetRef returns a stable pointer to the stored value: the entry node it
// points into is never relocated by Put (same key) or rehash, only freed by
// Remove, so the pointer remains valid until that key is removed.
func (h *HashMap[K, V]) GetRef(key K) (*V, herr.Kind) {
	idx := h.bucketIndex(key, len(h.buckets))
	if i := h.findInBucket(h.buckets[idx], key); i >= 0 {
		return &h.buckets[idx][i].value, herr.OK
	}
	return nil, herr.NotFound
}

// Remove deletes key, disposing both key and value (if configured). Returns
// removed=false if key was not present.
func (h *HashMap[K, V]) Remove(key K) (removed bool) {
	idx := h.bucketIndex(key, len(h.buckets))
	bucket := h.buckets[idx]
	i := h.findInBucket(bucket, key)
	if i < 0 {
		return false
	}
	e := bucket[i]
	h.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
	h.count--
	if h.keyDispose != nil {
		h.keyDispose(e.key)
	}
	if h.valDispose != nil {
		h.valDispose(e.value)
	}
	return true
}

// EnumerateFunc is invoked once per entry during Enumerate. Returning any
// kind other than OK stops iteration and is propagated as Enumerate's result.
type EnumerateFunc[K comparable, V any] func(key K, value V) herr.Kind

// Enumerate iterates all entries in unspecified order.
func (h *HashMap[K, V]) Enumerate(f EnumerateFunc[K, V]) herr.Kind {
	for _, bucket := range h.buckets {
		for _, e := range bucket {
			if kind := f(e.key, e.value); kind != herr.OK {
				return kind
			}
		}
	}
	return herr.OK
}

// MoveTo empties h into dst. Both must share key/value types (enforced by
// the type system here). All-or-nothing: since insertion into dst cannot
// itself fail in this implementation, a partial move is not observable -
// either every entry moves, or (on a nil dst) neither map is touched.
func (h *HashMap[K, V]) MoveTo(dst *HashMap[K, V]) herr.Kind {
	if dst == nil {
		return herr.InvalidArgument
	}
	for _, bucket := range h.buckets {
		for _, e := range bucket {
			dst.Put(e.key, e.value)
		}
	}
	h.buckets = make([][]*entry[K, V], len(h.buckets))
	h.count = 0
	return herr.OK
}

// Dispose disposes every remaining key/value pair and empties the map.
func (h *HashMap[K, V]) Dispose() {
	if h.keyDispose == nil && h.valDispose == nil {
		h.buckets = nil
		h.count = 0
		return
	}
	for _, bucket := range h.buckets {
		for _, e := range bucket {
			if h.keyDispose != nil {
				h.keyDispose(e.key)
			}
			if h.valDispose != nil {
				h.valDispose(e.value)
			}
		}
	}
	h.buckets = nil
	h.count = 0
}
