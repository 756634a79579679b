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

// Package mathz is checked non-negative integer arithmetic, for callers that
// cannot trust a plain +/* to not wrap around.
package mathz

import "github.com/nabbar/hammer/herr"

// AddInt returns a+b, or Overflow if the sum would exceed the int range.
// Both operands are expected non-negative, matching the size/count/capacity
// values this is meant for.
func AddInt(a, b int) (int, herr.Kind) {
	if a < 0 || b < 0 {
		return 0, herr.InvalidArgument
	}
	if b > maxInt-a {
		return 0, herr.Overflow
	}
	return a + b, herr.OK
}

// MulInt returns a*b, or Overflow if the product would exceed the int range.
func MulInt(a, b int) (int, herr.Kind) {
	if a < 0 || b < 0 {
		return 0, herr.InvalidArgument
	}
	if a == 0 || b == 0 {
		return 0, herr.OK
	}
	result := a * b
	if result/b != a {
		return 0, herr.Overflow
	}
	return result, herr.OK
}

// AddMul returns a+(b*c), or Overflow if either the multiplication or the
// addition would wrap.
func AddMul(a, b, c int) (int, herr.Kind) {
	mul, kind := MulInt(b, c)
	if kind != herr.OK {
		return 0, kind
	}
	return AddInt(a, mul)
}

const maxInt = int(^uint(0) >> 1)
