//go:build unix

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
	"net"
	"time"

	"golang.org/x/sys/unix"
)

// applyTimeoutSockopts mirrors SO_RCVTIMEO/SO_SNDTIMEO onto the raw fd. Go's
// runtime netpoller drives actual blocking through SetDeadline (see Send and
// Read), so these socket options are not load-bearing for correctness on
// this platform - they're set anyway so an fd handed off outside Go's
// runtime (e.g. via File()) inherits the same bound.
func applyTimeoutSockopts(conn *net.TCPConn, timeout time.Duration) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return
	}
	tv := durationToTimeval(timeout)
	_ = raw.Control(func(fd uintptr) {
		_ = unix.SetsockoptTimeval(int(fd), unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv)
		_ = unix.SetsockoptTimeval(int(fd), unix.SOL_SOCKET, unix.SO_SNDTIMEO, &tv)
	})
}

func durationToTimeval(d time.Duration) unix.Timeval {
	if d <= 0 {
		return unix.Timeval{}
	}
	return unix.NsecToTimeval(d.Nanoseconds())
}

// applyListenerSockopts sets SO_REUSEADDR and SO_REUSEPORT on the listening
// fd before bind, matching the source runtime's ServerSocket construction.
func applyListenerSockopts(fd uintptr) {
	_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
}
