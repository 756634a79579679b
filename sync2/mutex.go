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

// Package sync2 holds the runtime core's concurrency primitives: a
// recursive mutex, an auto-reset WaitableEvent, and a cooperatively
// abortable Thread wrapping a goroutine with a two-owner reference count.
package sync2

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// goroutineID extracts the calling goroutine's numeric ID from its stack
// trace header ("goroutine 123 [running]:..."). Go deliberately exposes no
// public API for this; every userspace recursive-mutex implementation short
// of a cgo thread-local resorts to the same trick, so this is the idiomatic
// workaround rather than a design choice of ours.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	field := bytes.Fields(buf[:n])[1]
	id, _ := strconv.ParseUint(string(field), 10, 64)
	return id
}

// Mutex is recursive: the goroutine already holding the lock may lock it
// again without deadlocking, and must unlock the same number of times.
// Destroying a Mutex while it is still locked is undefined behavior, same
// as the platform mutex it's modeled on - callers must not do it.
type Mutex struct {
	mu    sync.Mutex
	cond  *sync.Cond
	owner uint64
	held  bool
	depth int
}

// NewMutex creates an unlocked recursive mutex.
func NewMutex() *Mutex {
	m := &Mutex{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Lock acquires the mutex, blocking until available. Re-entering from the
// goroutine that already holds it increments the recursion depth instead of
// blocking.
func (m *Mutex) Lock() {
	gid := goroutineID()

	m.mu.Lock()
	defer m.mu.Unlock()

	for m.held && m.owner != gid {
		m.cond.Wait()
	}
	m.owner = gid
	m.held = true
	m.depth++
}

// Unlock releases one level of recursion. The final Unlock for a given Lock
// chain wakes one waiter, if any.
func (m *Mutex) Unlock() {
	gid := goroutineID()

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.held || m.owner != gid {
		panic("sync2: Unlock of mutex not held by the calling goroutine")
	}
	m.depth--
	if m.depth == 0 {
		m.held = false
		m.cond.Signal()
	}
}
