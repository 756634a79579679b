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

// Package worker is the runtime core's single-consumer work-dispatch
// primitive (Worker) and its round-robin fan-out counterpart (WorkerPool).
package worker

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/nabbar/hammer/container/queue"
	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/sync2"
)

// MaxItemSize bounds what a Worker[T] will accept, mirroring the stack-
// buffered dequeue cap of the source runtime (there the cap keeps a fixed
// on-stack scratch buffer safe; here it's a sanity check against building a
// worker around an accidentally enormous value type).
const MaxItemSize = 1024

// pollInterval is how often the worker loop re-checks abort state even
// without a signal, so Stop is eventually observed under any scheduling.
const pollInterval = 50 * time.Millisecond

// Func processes one dequeued item.
type Func[T any] func(item T) herr.Kind

// DisposeFunc releases a queued item, called after Func regardless of its
// result.
type DisposeFunc[T any] func(item T)

// Worker is a thread, a queue, a mutex guarding the queue, and a waitable
// event, combined into a single-consumer dispatch loop.
type Worker[T any] struct {
	mu    sync.Mutex
	q     *queue.Queue[T]
	event *sync2.WaitableEvent
	th    *sync2.Thread

	fn      Func[T]
	dispose DisposeFunc[T]

	shouldDrain atomic.Bool
	draining    atomic.Bool
	exitKind    atomic.Uint32
}

// New creates and starts a Worker. Returns InvalidArgument if T is larger
// than MaxItemSize.
func New[T any](fn Func[T], dispose DisposeFunc[T]) (*Worker[T], herr.Kind) {
	var zero T
	if unsafe.Sizeof(zero) > MaxItemSize {
		return nil, herr.InvalidArgument
	}
	w := &Worker[T]{
		q:       queue.New[T](nil),
		event:   sync2.NewWaitableEvent(),
		th:      sync2.NewThread("worker"),
		fn:      fn,
		dispose: dispose,
	}
	w.exitKind.Store(uint32(herr.OK))
	w.th.Start(func(self *sync2.Thread) herr.Kind {
		return w.run(self)
	})
	return w, herr.OK
}

func (w *Worker[T]) dequeue() (T, herr.Kind) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.q.Dequeue()
}

// drainOnce dequeues and processes items one at a time. When drain is
// false, the loop condition is re-checked before every dequeue so an abort
// requested while items are still queued stops consumption after the
// in-flight item completes, rather than draining the whole backlog; when
// drain is true the abort state is ignored and every queued item runs.
func (w *Worker[T]) drainOnce(self *sync2.Thread, drain bool) herr.Kind {
	for drain || !self.ShouldAbort() {
		item, kind := w.dequeue()
		if kind == herr.InvalidState {
			return herr.OK
		}
		result := w.fn(item)
		if w.dispose != nil {
			w.dispose(item)
		}
		if result != herr.OK {
			return result
		}
	}
	return herr.OK
}

func (w *Worker[T]) run(self *sync2.Thread) herr.Kind {
	for !self.ShouldAbort() {
		w.event.Wait(pollInterval)
		if kind := w.drainOnce(self, false); kind != herr.OK {
			w.exitKind.Store(uint32(kind))
			return kind
		}
	}
	if w.shouldDrain.Load() {
		w.draining.Store(true)
		if kind := w.drainOnce(self, true); kind != herr.OK {
			w.exitKind.Store(uint32(kind))
			return kind
		}
	}
	return herr.OK
}

// Enqueue copies item onto the tail of the queue and signals the worker.
func (w *Worker[T]) Enqueue(item T) herr.Kind {
	w.mu.Lock()
	kind := w.q.Enqueue(item)
	w.mu.Unlock()
	if kind == herr.OK {
		w.event.Signal()
	}
	return kind
}

// Stop requests the worker to abort. If drain is true, every item already
// enqueued at the moment of the call is guaranteed to be processed before
// the loop exits; if false, the worker finishes its current item (if any)
// and exits without touching the rest of the queue.
func (w *Worker[T]) Stop(drain bool) {
	w.shouldDrain.Store(drain)
	w.th.Abort()
	w.event.Signal()
}

// Wait joins the worker thread.
func (w *Worker[T]) Wait(timeout time.Duration) herr.Kind {
	return w.th.Join(timeout)
}

// ExitKind returns the error the run loop finished with.
func (w *Worker[T]) ExitKind() herr.Kind { return herr.Kind(w.exitKind.Load()) }

// Dispose releases the queue. Requires the worker to be Stopped, returning
// InvalidState otherwise.
func (w *Worker[T]) Dispose() herr.Kind {
	if w.th.State() != sync2.Stopped {
		return herr.InvalidState
	}
	w.q.Dispose()
	w.th.Dispose()
	return herr.OK
}
