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

package httpreq

// tokenTable is the RFC9110 "tchar" set, tightly encoded as a 256-entry
// table rather than a range check, so every byte of a candidate header name
// is a single array lookup. This is the canonical list scenario 6's
// per-byte valid/invalid assertions derive from.
var tokenTable [256]bool

const tcharPunct = "!#$%&'*+-.^_`|~"

func init() {
	for c := 'a'; c <= 'z'; c++ {
		tokenTable[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		tokenTable[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		tokenTable[c] = true
	}
	for _, c := range tcharPunct {
		tokenTable[byte(c)] = true
	}
}

// isToken reports whether every byte of s is a valid RFC9110 token
// character.
func isToken(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tokenTable[s[i]] {
			return false
		}
	}
	return true
}
