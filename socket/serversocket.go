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

package socket

import (
	"context"
	"errors"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/nabbar/hammer/herr"
)

var cachedBacklog atomic.Int64 // 0 = not yet computed, -1 = computed-to-zero sentinel

// backlog returns the process-wide cached listen backlog, computing it at
// most once (a benign race: two goroutines may compute it concurrently, at
// worst doing the syscall twice).
func backlog() int {
	if v := cachedBacklog.Load(); v != 0 {
		if v == -1 {
			return 0
		}
		return int(v)
	}
	n := systemSomaxconn()
	if n == 0 {
		cachedBacklog.Store(-1)
		return 0
	}
	cachedBacklog.Store(int64(n))
	return n
}

// ServerSocket wraps a listening TCP endpoint. Accept inherits the parent's
// read/write timeout for every Socket it returns.
type ServerSocket struct {
	ln      *net.TCPListener
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

// Listen binds addr:port, sets SO_REUSEADDR|SO_REUSEPORT, and starts
// listening with the system backlog (or the library default if
// unreadable).
func Listen(addr string, port int, timeout time.Duration) (*ServerSocket, herr.Kind) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			return c.Control(func(fd uintptr) {
				applyListenerSockopts(fd)
			})
		},
	}

	ln, err := lc.Listen(context.Background(), "tcp", net.JoinHostPort(addr, strconv.Itoa(port)))
	if err != nil {
		return nil, herr.PlatformDependent
	}
	tcpLn, ok := ln.(*net.TCPListener)
	if !ok {
		_ = ln.Close()
		return nil, herr.PlatformDependent
	}
	_ = backlog() // warm the process-wide cache; the stdlib listener already applied its own backlog internally
	return &ServerSocket{ln: tcpLn, timeout: timeout}, herr.OK
}

// Accept blocks up to the server's timeout, returning a Socket for the new
// connection or Timeout if none arrived in the window.
func (s *ServerSocket) Accept() (*Socket, herr.Kind) {
	if s.timeout > 0 {
		_ = s.ln.SetDeadline(time.Now().Add(s.timeout))
	} else {
		_ = s.ln.SetDeadline(time.Time{})
	}

	conn, err := s.ln.AcceptTCP()
	if err != nil {
		var opErr *net.OpError
		if errors.As(err, &opErr) && opErr.Timeout() {
			return nil, herr.Timeout
		}
		if errors.Is(err, net.ErrClosed) {
			return nil, herr.Disconnected
		}
		return nil, herr.PlatformDependent
	}
	return wrapTCPConn(conn, s.timeout), herr.OK
}

// Close performs shutdown(RDWR)-equivalent semantics then releases the fd.
// Idempotent.
func (s *ServerSocket) Close() herr.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return herr.OK
	}
	s.closed = true
	if err := s.ln.Close(); err != nil {
		return herr.PlatformDependent
	}
	return herr.OK
}

// Addr returns the bound address.
func (s *ServerSocket) Addr() net.Addr { return s.ln.Addr() }
