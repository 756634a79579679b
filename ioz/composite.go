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

package ioz

import "github.com/nabbar/hammer/herr"

// BoundaryFunc is invoked when CompositeReader finishes draining the source
// at finishedIndex and is about to move on to the next one.
type BoundaryFunc func(finishedIndex int)

// CompositeReader concatenates an ordered list of readers, draining each to
// EOF before advancing. HTTPRequest uses exactly one instance of this with
// two sources: the bytes already pulled into the header scanner's scratch
// buffer, then the live transport - see the boundary callback's role in
// freeing that scratch buffer eagerly once it's been handed off.
type CompositeReader struct {
	sources  []Reader
	index    int
	boundary BoundaryFunc
}

// NewCompositeReader chains sources in order. boundary may be nil.
func NewCompositeReader(boundary BoundaryFunc, sources ...Reader) *CompositeReader {
	return &CompositeReader{sources: sources, boundary: boundary}
}

func (c *CompositeReader) Read(buf []byte) (int, herr.Kind) {
	if len(buf) == 0 {
		return 0, herr.OK
	}
	for c.index < len(c.sources) {
		n, kind := c.sources[c.index].Read(buf)
		if kind != herr.OK {
			return n, kind
		}
		if n > 0 {
			return n, herr.OK
		}
		// n == 0, OK: this source is exhausted, cross the boundary.
		finished := c.index
		c.index++
		if c.boundary != nil {
			c.boundary(finished)
		}
	}
	return 0, herr.OK
}

func (c *CompositeReader) Seek(offset int64) herr.Kind { return herr.NotImplemented }

// Close closes every remaining source, merging errors with the older-wins
// rule so the first failure is what the caller sees.
func (c *CompositeReader) Close() herr.Kind {
	result := herr.OK
	for i := c.index; i < len(c.sources); i++ {
		result = herr.Merge(result, c.sources[i].Close())
	}
	return result
}
