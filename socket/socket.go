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

// Package socket is the runtime core's TCP client/server substrate: Socket
// wraps a single connection with timeout-bounded send/read/close and a
// Disconnected/Timeout/NotFound error mapping instead of Go's net.Error
// shapes; ServerSocket wraps a listener with SO_REUSEADDR|SO_REUSEPORT and a
// cached backlog.
package socket

import (
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/nabbar/hammer/herr"
	"github.com/nabbar/hammer/ioz"
)

// Socket wraps a single TCP connection. Both Send and Read block up to the
// configured timeout (0 disables the bound).
type Socket struct {
	conn    *net.TCPConn
	timeout time.Duration
}

// Dial resolves host:port and connects, classifying resolver failures as
// NotFound per the source runtime's getaddrinfo(NONAME|AGAIN) mapping.
func Dial(host string, port int, timeout time.Duration) (*Socket, herr.Kind) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	dialer := net.Dialer{}
	if timeout > 0 {
		dialer.Timeout = timeout
	}

	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && (dnsErr.IsNotFound || dnsErr.IsTemporary) {
			return nil, herr.NotFound
		}
		var opErr *net.OpError
		if errors.As(err, &opErr) && opErr.Timeout() {
			return nil, herr.Timeout
		}
		return nil, herr.PlatformDependent
	}

	tcp, ok := conn.(*net.TCPConn)
	if !ok {
		_ = conn.Close()
		return nil, herr.PlatformDependent
	}
	applyTimeoutSockopts(tcp, timeout)
	return &Socket{conn: tcp, timeout: timeout}, herr.OK
}

// wrapTCPConn adopts an already-connected TCPConn (used by ServerSocket's
// Accept), inheriting timeout.
func wrapTCPConn(conn *net.TCPConn, timeout time.Duration) *Socket {
	applyTimeoutSockopts(conn, timeout)
	return &Socket{conn: conn, timeout: timeout}
}

func (s *Socket) deadline() time.Time {
	if s.timeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(s.timeout)
}

// Send writes buf in full or returns Disconnected if the peer reset the
// connection (the equivalent of a broken-pipe signal suppressed via
// MSG_NOSIGNAL on POSIX).
func (s *Socket) Send(buf []byte) (int, herr.Kind) {
	_ = s.conn.SetWriteDeadline(s.deadline())
	n, err := s.conn.Write(buf)
	if err == nil {
		return n, herr.OK
	}
	if errors.Is(err, net.ErrClosed) {
		return n, herr.Disconnected
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return n, herr.Timeout
		}
		return n, herr.Disconnected
	}
	return n, herr.PlatformDependent
}

// Read returns OK with 0 bytes when the peer has closed the stream cleanly.
func (s *Socket) Read(buf []byte) (int, herr.Kind) {
	_ = s.conn.SetReadDeadline(s.deadline())
	n, err := s.conn.Read(buf)
	if err == nil {
		return n, herr.OK
	}
	if errors.Is(err, net.ErrClosed) {
		return n, herr.Disconnected
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Timeout() {
		return n, herr.Timeout
	}
	// io.EOF and similar: treat as a clean peer close, per contract.
	return n, herr.OK
}

func (s *Socket) Seek(offset int64) herr.Kind { return herr.NotImplemented }

// Close disposes the underlying file descriptor.
func (s *Socket) Close() herr.Kind {
	if err := s.conn.Close(); err != nil {
		return herr.PlatformDependent
	}
	return herr.OK
}

// Reader exposes this socket as an ioz.Reader so it composes with the
// streaming layer (LineReader, LimitedReader, the HTTP parser).
func (s *Socket) Reader() ioz.Reader { return socketReader{s} }

type socketReader struct{ s *Socket }

func (r socketReader) Read(buf []byte) (int, herr.Kind) { return r.s.Read(buf) }
func (r socketReader) Seek(offset int64) herr.Kind      { return herr.NotImplemented }
func (r socketReader) Close() herr.Kind                 { return r.s.Close() }
