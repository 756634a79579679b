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

import "github.com/nabbar/hammer/herr"

// Method is a live, registry-owned method: its signature has already passed
// validation and its opcode bytes have been copied out of the loader's
// transient row.
type Method struct {
	ID        uint32
	Name      string
	Signature string
	Opcode    []byte
	Class     *Class
}

// Class is a live, registry-owned class.
type Class struct {
	ID      uint32
	Name    string
	Module  *Module
	methods []*Method

	methodsByID   map[uint32]*Method
	methodsByName map[string]*Method
}

func (c *Class) Methods() []*Method { return c.methods }

func (c *Class) MethodByID(id uint32) (*Method, bool) {
	m, ok := c.methodsByID[id]
	return m, ok
}

func (c *Class) MethodByName(name string) (*Method, bool) {
	m, ok := c.methodsByName[name]
	return m, ok
}

// Module is a live, registry-owned module.
type Module struct {
	ID      uint32
	Name    string
	classes []*Class

	classesByID   map[uint32]*Class
	classesByName map[string]*Class
}

func (m *Module) Classes() []*Class { return m.classes }

func (m *Module) ClassByID(id uint32) (*Class, bool) {
	c, ok := m.classesByID[id]
	return c, ok
}

func (m *Module) ClassByName(name string) (*Class, bool) {
	c, ok := m.classesByName[name]
	return c, ok
}

// Registry is the fully materialized, queryable module/class/method graph
// built from a Loader. It is immutable once Load returns OK: there is no
// incremental insert API, matching the image format's batch-load nature.
type Registry struct {
	modules []*Module

	modulesByID   map[uint32]*Module
	modulesByName map[string]*Module

	classesByID map[uint32]*Class
	methodsByID map[uint32]*Method
}

// Load drains src via Enumerate and builds the registry in three passes
// (modules, then classes against their parent module, then methods against
// their parent class). Any structural violation - duplicate id, duplicate
// name, reference to an unknown parent, or an invalid signature descriptor -
// aborts the whole load; Load never returns a partially built registry.
func Load(src Loader) (*Registry, herr.Kind) {
	r := &Registry{
		modulesByID:   make(map[uint32]*Module),
		modulesByName: make(map[string]*Module),
		classesByID:   make(map[uint32]*Class),
		methodsByID:   make(map[uint32]*Method),
	}

	kind := src.Enumerate(r.addModule, r.addClass, r.addMethod)
	if kind != herr.OK {
		return nil, kind
	}
	return r, herr.OK
}

func (r *Registry) addModule(m ModuleMeta) herr.Kind {
	if !isValidName(m.Name) {
		return herr.InvalidData
	}
	if _, exists := r.modulesByID[m.ID]; exists {
		return herr.InvalidData
	}
	if _, exists := r.modulesByName[m.Name]; exists {
		return herr.InvalidData
	}

	mod := &Module{
		ID:            m.ID,
		Name:          m.Name,
		classesByID:   make(map[uint32]*Class),
		classesByName: make(map[string]*Class),
	}
	r.modules = append(r.modules, mod)
	r.modulesByID[m.ID] = mod
	r.modulesByName[m.Name] = mod
	return herr.OK
}

func (r *Registry) addClass(c ClassMeta) herr.Kind {
	if !isValidName(c.Name) {
		return herr.InvalidData
	}
	if _, exists := r.classesByID[c.ID]; exists {
		return herr.InvalidData
	}
	mod, ok := r.modulesByID[c.ModuleID]
	if !ok {
		return herr.InvalidData
	}
	if _, exists := mod.classesByName[c.Name]; exists {
		return herr.InvalidData
	}

	cls := &Class{
		ID:            c.ID,
		Name:          c.Name,
		Module:        mod,
		methodsByID:   make(map[uint32]*Method),
		methodsByName: make(map[string]*Method),
	}
	mod.classes = append(mod.classes, cls)
	mod.classesByID[c.ID] = cls
	mod.classesByName[c.Name] = cls
	r.classesByID[c.ID] = cls
	return herr.OK
}

func (r *Registry) addMethod(m MethodMeta) herr.Kind {
	if !isValidName(m.Name) {
		return herr.InvalidData
	}
	if !isValidSignatureDesc(m.Signature) {
		return herr.InvalidData
	}
	if _, exists := r.methodsByID[m.ID]; exists {
		return herr.InvalidData
	}
	cls, ok := r.classesByID[m.ClassID]
	if !ok || cls.Module.ID != m.ModuleID {
		return herr.InvalidData
	}
	if _, exists := cls.methodsByName[m.Name]; exists {
		return herr.InvalidData
	}

	opcode := make([]byte, len(m.Opcode))
	copy(opcode, m.Opcode)

	mth := &Method{
		ID:        m.ID,
		Name:      m.Name,
		Signature: m.Signature,
		Opcode:    opcode,
		Class:     cls,
	}
	cls.methods = append(cls.methods, mth)
	cls.methodsByID[m.ID] = mth
	cls.methodsByName[m.Name] = mth
	r.methodsByID[m.ID] = mth
	return herr.OK
}

func (r *Registry) Modules() []*Module { return r.modules }

func (r *Registry) ModuleByID(id uint32) (*Module, bool) {
	m, ok := r.modulesByID[id]
	return m, ok
}

func (r *Registry) ModuleByName(name string) (*Module, bool) {
	m, ok := r.modulesByName[name]
	return m, ok
}

func (r *Registry) ClassByID(id uint32) (*Class, bool) {
	c, ok := r.classesByID[id]
	return c, ok
}

func (r *Registry) MethodByID(id uint32) (*Method, bool) {
	m, ok := r.methodsByID[id]
	return m, ok
}
