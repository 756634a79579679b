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

package sync2

import (
	"sync"
	"time"

	"github.com/nabbar/hammer/herr"
)

// WaitableEvent is an auto-reset, one-shot signal. A signal issued while no
// goroutine is waiting latches and is consumed by the next Wait; a signal
// wakes at most one waiter.
type WaitableEvent struct {
	mu       sync.Mutex
	cond     *sync.Cond
	signaled bool
}

// NewWaitableEvent creates an unsignaled event.
func NewWaitableEvent() *WaitableEvent {
	e := &WaitableEvent{}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// Signal sets the signaled state and wakes at most one waiter.
func (e *WaitableEvent) Signal() {
	e.mu.Lock()
	e.signaled = true
	e.mu.Unlock()
	e.cond.Signal()
}

// Wait blocks until signaled or timeout elapses. On success the signaled
// state is consumed (auto-reset). timeout <= 0 waits forever.
func (e *WaitableEvent) Wait(timeout time.Duration) herr.Kind {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.signaled {
		e.signaled = false
		return herr.OK
	}
	if timeout <= 0 {
		for !e.signaled {
			e.cond.Wait()
		}
		e.signaled = false
		return herr.OK
	}

	deadline := time.Now().Add(timeout)

	// sync.Cond has no timed wait; a helper goroutine turns the deadline
	// into a Broadcast so the blocked cond.Wait below re-checks the flag.
	timer := time.AfterFunc(timeout, func() {
		e.mu.Lock()
		e.cond.Broadcast()
		e.mu.Unlock()
	})
	defer timer.Stop()

	for !e.signaled && time.Now().Before(deadline) {
		e.cond.Wait()
	}
	if !e.signaled {
		return herr.Timeout
	}
	e.signaled = false
	return herr.OK
}
