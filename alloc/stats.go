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
	"github.com/prometheus/client_golang/prometheus"
)

// Stats wraps another allocator and counts every allocation made through it.
// Counting can be toggled off without losing the wrapper (e.g. to exclude a
// warm-up phase from a test assertion).
type Stats struct {
	base     Allocator
	tracking atomic.Bool
	count    atomic.Int64
	bytes    atomic.Int64
	metric   prometheus.Counter
}

// NewStats wraps base with an allocation counter. Tracking starts enabled. If
// metric is non-nil it is incremented alongside the internal counter on every
// tracked allocation, letting an embedder expose allocator pressure through
// its own Prometheus registry.
func NewStats(base Allocator, metric prometheus.Counter) *Stats {
	s := &Stats{base: base, metric: metric}
	s.tracking.Store(true)
	return s
}

// SetTracking toggles whether further allocations are counted.
func (s *Stats) SetTracking(enabled bool) {
	s.tracking.Store(enabled)
}

// Count returns the number of allocations counted so far.
func (s *Stats) Count() int64 { return s.count.Load() }

// Bytes returns the cumulative requested size of counted allocations.
func (s *Stats) Bytes() int64 { return s.bytes.Load() }

func (s *Stats) record(n int) {
	if !s.tracking.Load() {
		return
	}
	s.count.Add(1)
	s.bytes.Add(int64(n))
	if s.metric != nil {
		s.metric.Inc()
	}
}

func (s *Stats) Allocate(n int) []byte {
	block := s.base.Allocate(n)
	if block != nil {
		s.record(n)
	}
	return block
}

func (s *Stats) AllocateZeroed(n int) []byte {
	block := s.base.AllocateZeroed(n)
	if block != nil {
		s.record(n)
	}
	return block
}

func (s *Stats) Realloc(old []byte, newSize int) []byte {
	if newSize <= len(old) {
		return old
	}
	block := s.base.Realloc(old, newSize)
	if block != nil {
		s.record(newSize - len(old))
	}
	return block
}

func (s *Stats) Free(block []byte) { s.base.Free(block) }

func (s *Stats) Dispose() herr.Kind { return s.base.Dispose() }
