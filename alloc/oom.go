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

import (
	"sync/atomic"

	"github.com/nabbar/hammer/herr"
)

// OOM wraps another allocator and fails deterministically at the N-th
// allocation attempt (1-indexed), then keeps failing. It exists purely to
// drive out-of-memory injection tests elsewhere in the module; it is not
// meant to appear in production wiring.
type OOM struct {
	base      Allocator
	failAt    int64
	attempted atomic.Int64
	reached   atomic.Bool
}

// NewOOM wraps base so that the failAt-th call to Allocate/AllocateZeroed/
// Realloc returns nil, and every call after it does too. A failAt of 0 or
// less never fails.
func NewOOM(base Allocator, failAt int) *OOM {
	return &OOM{base: base, failAt: int64(failAt)}
}

// Reached reports whether the configured failure point has been hit yet.
func (o *OOM) Reached() bool { return o.reached.Load() }

func (o *OOM) shouldFail() bool {
	if o.failAt <= 0 {
		return false
	}
	n := o.attempted.Add(1)
	if n >= o.failAt {
		o.reached.Store(true)
		return true
	}
	return false
}

func (o *OOM) Allocate(n int) []byte {
	if o.shouldFail() {
		return nil
	}
	return o.base.Allocate(n)
}

func (o *OOM) AllocateZeroed(n int) []byte {
	if o.shouldFail() {
		return nil
	}
	return o.base.AllocateZeroed(n)
}

func (o *OOM) Realloc(old []byte, newSize int) []byte {
	if newSize <= len(old) {
		return old
	}
	if o.shouldFail() {
		return nil
	}
	return o.base.Realloc(old, newSize)
}

func (o *OOM) Free(block []byte) { o.base.Free(block) }

func (o *OOM) Dispose() herr.Kind { return o.base.Dispose() }
