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

// Package file provides the small filesystem preflight checks shared by the
// config loader and the image loader, so neither has to restate the
// stat-and-classify dance on its own.
package file

import (
	"errors"
	"os"

	"github.com/nabbar/hammer/herr"
)

// CheckReadable classifies path: a missing path is NotFound, a directory
// where a regular file is expected is InvalidArgument, a present file the
// caller lacks read permission on is AccessDenied, and any other failure
// (I/O error) is PlatformDependent. Readability is probed with an actual
// open-for-read rather than Stat: Stat only requires directory traversal
// permission on the parent, so a present-but-unreadable file would
// otherwise be misreported as OK.
func CheckReadable(path string) herr.Kind {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return herr.NotFound
		}
		if errors.Is(err, os.ErrPermission) {
			return herr.AccessDenied
		}
		return herr.PlatformDependent
	}
	if info.IsDir() {
		return herr.InvalidArgument
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return herr.AccessDenied
		}
		return herr.PlatformDependent
	}
	_ = f.Close()
	return herr.OK
}
