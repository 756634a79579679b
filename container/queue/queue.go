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

// Package queue is a generic ring-buffer queue, optionally bounded. Worker
// and WorkerPool build their item queues on top of this.
package queue

import "github.com/nabbar/hammer/herr"

// DisposeFunc releases a still-resident element on Dispose.
type DisposeFunc[T any] func(T)

// Queue is a ring buffer of element slots. When unbounded it grows by
// doubling on full; when bounded, Enqueue past the configured limit returns
// LimitExceeded. Not safe for concurrent use - callers needing cross-
// goroutine access (e.g. Worker) wrap it in their own mutex.
type Queue[T any] struct {
	buf     []T
	head    int
	count   int
	bound   int // 0 means unbounded
	dispose DisposeFunc[T]
}

// New creates an unbounded queue.
func New[T any](dispose DisposeFunc[T]) *Queue[T] {
	return &Queue[T]{buf: make([]T, 4), dispose: dispose}
}

// NewBounded creates a queue that refuses to grow past capacity elements.
func NewBounded[T any](capacity int, dispose DisposeFunc[T]) *Queue[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Queue[T]{buf: make([]T, capacity), bound: capacity, dispose: dispose}
}

// Count returns the number of resident elements.
func (q *Queue[T]) Count() int { return q.count }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }

func (q *Queue[T]) grow() {
	newCap := len(q.buf) * 2
	if newCap == 0 {
		newCap = 4
	}
	grown := make([]T, newCap)
	for i := 0; i < q.count; i++ {
		grown[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = grown
	q.head = 0
}

// Enqueue adds v to the tail. Returns LimitExceeded if the queue is bounded
// and already at capacity.
func (q *Queue[T]) Enqueue(v T) herr.Kind {
	if q.count == len(q.buf) {
		if q.bound != 0 {
			return herr.LimitExceeded
		}
		q.grow()
	}
	tail := (q.head + q.count) % len(q.buf)
	q.buf[tail] = v
	q.count++
	return herr.OK
}

// Dequeue removes and returns the head element. Returns InvalidState if the
// queue is empty.
func (q *Queue[T]) Dequeue() (v T, kind herr.Kind) {
	if q.count == 0 {
		return v, herr.InvalidState
	}
	v = q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return v, herr.OK
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (v T, kind herr.Kind) {
	if q.count == 0 {
		return v, herr.InvalidState
	}
	return q.buf[q.head], herr.OK
}

// Dispose invokes the configured DisposeFunc on every still-resident
// element, then empties the queue.
func (q *Queue[T]) Dispose() {
	if q.dispose != nil {
		for i := 0; i < q.count; i++ {
			q.dispose(q.buf[(q.head+i)%len(q.buf)])
		}
	}
	q.head, q.count = 0, 0
}
