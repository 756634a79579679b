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

package worker

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/nabbar/hammer/herr"
)

// Pool is a fixed array of Workers sharing the same processing function,
// dispatched round-robin.
type Pool[T any] struct {
	workers []*Worker[T]
	index   atomic.Uint64
}

// NewPool creates n workers, all running fn/dispose. Returns InvalidArgument
// if n <= 0 or T exceeds MaxItemSize.
func NewPool[T any](n int, fn Func[T], dispose DisposeFunc[T]) (*Pool[T], herr.Kind) {
	if n <= 0 {
		return nil, herr.InvalidArgument
	}
	p := &Pool[T]{workers: make([]*Worker[T], n)}
	for i := 0; i < n; i++ {
		w, kind := New(fn, dispose)
		if kind != herr.OK {
			for j := 0; j < i; j++ {
				p.workers[j].Stop(false)
				_ = p.workers[j].Wait(0)
				_ = p.workers[j].Dispose()
			}
			return nil, kind
		}
		p.workers[i] = w
	}
	return p, herr.OK
}

// Enqueue atomically increments index, takes the incremented value mod N as
// the target, and enqueues into that worker. Per-item ordering is preserved only within a single target
// worker, not across the pool.
func (p *Pool[T]) Enqueue(item T) herr.Kind {
	target := p.index.Add(1) % uint64(len(p.workers))
	return p.workers[target].Enqueue(item)
}

// Size returns the number of workers in the pool.
func (p *Pool[T]) Size() int { return len(p.workers) }

// Stop broadcasts Stop(drain) to every worker.
func (p *Pool[T]) Stop(drain bool) {
	for _, w := range p.workers {
		w.Stop(drain)
	}
}

// Wait joins every worker concurrently, so the full timeout budget applies
// once across the pool rather than serially per worker. Every worker's
// failure is collected into the returned error (a *multierror.Error,
// nil if every worker joined cleanly) so a caller that wants the detail -
// which workers failed and how - can inspect or log it; the returned Kind
// is the merge of all of them, for callers that only care about the
// worst outcome.
func (p *Pool[T]) Wait(timeout time.Duration) (herr.Kind, error) {
	var (
		mu   sync.Mutex
		errs *multierror.Error
	)
	result := herr.OK

	var g errgroup.Group
	for _, w := range p.workers {
		w := w
		g.Go(func() error {
			if kind := w.Wait(timeout); kind != herr.OK {
				mu.Lock()
				errs = multierror.Append(errs, kind)
				result = herr.Merge(result, kind)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return result, errs.ErrorOrNil()
}

// Dispose disposes every worker, requiring each to be Stopped.
func (p *Pool[T]) Dispose() herr.Kind {
	result := herr.OK
	for _, w := range p.workers {
		result = herr.Merge(result, w.Dispose())
	}
	return result
}
