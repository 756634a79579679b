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

// Package logger is the single embedder-owned logging sink. Core packages
// (worker, socket, metadata, sync2, ioz, alloc) never log; only
// cmd/hammerctl holds a Logger and passes fields explicitly.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	hmerr "github.com/nabbar/hammer/errors"
	"github.com/nabbar/hammer/herr"
)

// Logger wraps a configured logrus.Logger.
type Logger struct {
	*logrus.Logger
}

// New builds a Logger writing to out at the given level ("debug", "info",
// "warn", "error") and format ("text" or "json"). An unrecognized level
// defaults to info rather than failing, since logging misconfiguration
// should not prevent the process from starting.
func New(level, format string, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{Logger: l}
}

// Kind logs msg at the level implied by kind (Error for anything but OK,
// Info for OK), attaching the kind as a structured field.
func (l *Logger) Kind(kind herr.Kind, msg string) {
	entry := l.WithField("kind", kind.String())
	if kind == herr.OK {
		entry.Info(msg)
		return
	}
	entry.Error(msg)
}

// Err logs an embedder error, including its stack trace as a field.
func (l *Logger) Err(e *hmerr.Error) {
	l.WithField("kind", e.Kind().String()).WithField("stack", e.Stack()).Error(e.Error())
}
