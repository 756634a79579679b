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

// Package metadata loads a module/class/method registry from a read-only
// image file and enforces the structural invariants (no duplicate names or
// ids, no forward references) while building it.
package metadata

// ModuleMeta is one row of the module table.
type ModuleMeta struct {
	ID   uint32
	Name string
}

// ClassMeta is one row of the class table.
type ClassMeta struct {
	ID       uint32
	ModuleID uint32
	Name     string
}

// MethodMeta is one row of the method table. Opcode aliases the storage
// layer's blob; callers that need to retain it beyond the loader callback's
// scope must copy it.
type MethodMeta struct {
	ID        uint32
	ClassID   uint32
	ModuleID  uint32
	Name      string
	Signature string
	Opcode    []byte
}

const (
	minMethodSize = 1
	maxMethodSize = 65535
)
