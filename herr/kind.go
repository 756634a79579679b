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

// Package herr is the closed error taxonomy shared by every layer of the
// runtime core. It intentionally does not implement the standard error
// interface with free-form messages: every fallible operation in this module
// returns a Kind, and Kind is the only thing callers should switch on.
package herr

// Kind is a closed enum of error classes. The zero value, OK, means success.
type Kind uint8

const (
	OK Kind = iota
	OutOfMemory
	InvalidArgument
	InvalidState
	OutOfRange
	NotFound
	PlatformDependent
	InvalidData
	LimitExceeded
	Timeout
	NotImplemented
	Overflow
	Underflow
	AccessDenied
	Disconnected
)

var names = [...]string{
	"ok",
	"out of memory",
	"invalid argument",
	"invalid state",
	"out of range",
	"not found",
	"platform dependent",
	"invalid data",
	"limit exceeded",
	"timeout",
	"not implemented",
	"overflow",
	"underflow",
	"access denied",
	"disconnected",
}

// String renders the kind's canonical lowercase name. Unknown values (should
// never occur, since Kind is closed) fall back to "unknown".
func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// IsOK reports whether the kind represents success.
func (k Kind) IsOK() bool {
	return k == OK
}

// Error satisfies the standard error interface so a Kind can be returned or
// wrapped anywhere Go code expects an error value, while merge/comparison
// logic in this package keeps working off the Kind itself.
func (k Kind) Error() string {
	return k.String()
}
