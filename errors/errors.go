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

// Package errors is the embedder-facing error type. It wraps a herr.Kind
// with an optional cause and a captured stack trace for logging, without
// leaking back into core APIs - those keep returning bare herr.Kind values.
package errors

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/nabbar/hammer/herr"
)

// Error is a loggable wrapper around a herr.Kind: a human message, an
// optional wrapped cause, and the stack at the point it was created.
type Error struct {
	kind  herr.Kind
	msg   string
	cause error
	stack []uintptr
}

// New captures the current stack and wraps kind with msg.
func New(kind herr.Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg, stack: captureStack()}
}

// Wrap attaches cause to kind, capturing the stack at the wrap site.
func Wrap(kind herr.Kind, cause error, msg string) *Error {
	return &Error{kind: kind, msg: msg, cause: cause, stack: captureStack()}
}

func captureStack() []uintptr {
	pc := make([]uintptr, 32)
	n := runtime.Callers(3, pc)
	return pc[:n]
}

// Kind returns the wrapped herr.Kind.
func (e *Error) Kind() herr.Kind { return e.kind }

// Unwrap makes Error compatible with errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Error satisfies the standard error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Stack renders the captured call stack, one frame per line, for logging.
func (e *Error) Stack() string {
	frames := runtime.CallersFrames(e.stack)
	var b strings.Builder
	for {
		f, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return b.String()
}
