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
	"runtime"
	"sync/atomic"
	"time"

	"github.com/nabbar/hammer/herr"
)

// State is a Thread's cooperative lifecycle state.
type State uint32

const (
	Unstarted State = iota
	Running
	AbortRequested
	Stopped
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Running:
		return "running"
	case AbortRequested:
		return "abort-requested"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Func is the user body run on a Thread. It should poll the passed State
// accessor between units of work so cooperative abort is observed.
type Func func(self *Thread) herr.Kind

// Thread wraps a goroutine with a name, optional CPU affinity hint, and a
// two-owner reference count matching the source runtime's handle/task
// split: the handle returned to the caller is one owner, the running
// goroutine is the other, and the last release is what actually frees
// thread-local bookkeeping.
//
// Go schedules goroutines onto OS threads transparently; there is no
// portable userspace equivalent of a priority or a CPU affinity mask
// attached to a single goroutine, so Priority and Affinity are stored but
// otherwise inert here (Affinity is honored only by runtime.LockOSThread
// plus the caller's own sched_setaffinity call, which belongs in the
// platform-specific server bootstrap, not this package).
type Thread struct {
	name     string
	priority int
	affinity []int

	state   atomic.Uint32
	refs    atomic.Int32
	done    chan struct{}
	exit    herr.Kind
	started atomic.Bool
	gid     atomic.Uint64
}

// NewThread creates a Thread in state Unstarted. It must be started with
// Start before Join or Abort are meaningful.
func NewThread(name string) *Thread {
	t := &Thread{name: name, done: make(chan struct{})}
	t.refs.Store(2) // handle + task
	t.state.Store(uint32(Unstarted))
	return t
}

func (t *Thread) Name() string { return t.name }

// SetPriority and SetAffinity record hints consulted only by callers that
// choose to act on them (see the type doc).
func (t *Thread) SetPriority(p int)       { t.priority = p }
func (t *Thread) SetAffinity(cpus []int)  { t.affinity = cpus }
func (t *Thread) Priority() int           { return t.priority }
func (t *Thread) Affinity() []int         { return append([]int(nil), t.affinity...) }

// State returns the thread's current lifecycle state.
func (t *Thread) State() State { return State(t.state.Load()) }

// Start spawns the goroutine running fn. Calling Start twice panics.
func (t *Thread) Start(fn Func) {
	if !t.started.CompareAndSwap(false, true) {
		panic("sync2: Thread already started")
	}
	t.state.Store(uint32(Running))
	go func() {
		t.gid.Store(goroutineID())
		t.exit = fn(t)
		t.state.Store(uint32(Stopped))
		close(t.done)
		t.release()
	}()
}

func (t *Thread) release() {
	if t.refs.Add(-1) == 0 {
		t.name = ""
		t.affinity = nil
	}
}

// Dispose releases the handle's ownership share. Safe to call while the
// task is still running; the task's own release will free bookkeeping once
// both sides have let go.
func (t *Thread) Dispose() { t.release() }

// Abort requests cooperative termination. Idempotent; has no effect once
// Stopped.
func (t *Thread) Abort() {
	t.state.CompareAndSwap(uint32(Running), uint32(AbortRequested))
}

// ShouldAbort reports whether the loop body should exit cooperatively.
func (t *Thread) ShouldAbort() bool {
	return State(t.state.Load()) == AbortRequested
}

// Join blocks until Stopped or timeout. Rejects calls from the thread's own
// goroutine (InvalidArgument), which would deadlock. timeout <= 0 waits
// forever.
func (t *Thread) Join(timeout time.Duration) herr.Kind {
	if t.started.Load() && t.gid.Load() != 0 && t.gid.Load() == goroutineID() {
		return herr.InvalidArgument
	}
	select {
	case <-t.done:
		return herr.OK
	default:
	}
	if timeout <= 0 {
		<-t.done
		return herr.OK
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-t.done:
		return herr.OK
	case <-timer.C:
		return herr.Timeout
	}
}

// ExitKind returns the error the thread body finished with. Only meaningful
// once Join has returned OK.
func (t *Thread) ExitKind() herr.Kind { return t.exit }

// Sleep is a bounded pause, the cooperative counterpart to a platform
// nanosleep. It does not consult abort state; long-running loops should
// sleep in small increments and check ShouldAbort between them.
func Sleep(d time.Duration) { time.Sleep(d) }

// Gosched yields the current goroutine's remaining time slice, used by
// spin-wait loops in tests that don't want to pay a full timer tick.
func Gosched() { runtime.Gosched() }
