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

package metadata

import "regexp"

var nameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// isValidName reports whether s matches /[A-Za-z_][A-Za-z0-9_]*/ in full.
func isValidName(s string) bool {
	return nameRE.MatchString(s)
}

// isValidSignatureDesc validates a method signature descriptor. Outside
// braces each byte must be one of V, I, F, B, with V legal only as the
// first token (the return type). Inside braces (a fully-qualified class
// name) any byte but '}' is accepted, nesting is rejected, and an unmatched
// '{' at end of input is rejected. At least one token must be present.
//
// The grammar as given tolerates empty braces ("{}") and digit-leading
// class names inside them - this validator matches that laxity rather than
// silently tightening it.
func isValidSignatureDesc(s string) bool {
	if len(s) == 0 {
		return false
	}

	inBrace := false
	tokens := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inBrace {
			if c == '{' {
				return false // nesting
			}
			if c == '}' {
				inBrace = false
				tokens++
			}
			continue
		}

		switch c {
		case '{':
			inBrace = true
		case 'V':
			if i != 0 {
				return false
			}
			tokens++
		case 'I', 'F', 'B':
			tokens++
		default:
			return false
		}
	}

	if inBrace {
		return false // unmatched '{' at end
	}
	return tokens > 0
}
