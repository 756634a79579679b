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

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nabbar/hammer/file"
	"github.com/nabbar/hammer/herr"
)

// ModulesCallback, ClassesCallback and MethodsCallback are invoked once per
// row. Returning any kind other than OK aborts enumeration and that kind is
// what Enumerate returns.
type (
	ModulesCallback func(ModuleMeta) herr.Kind
	ClassesCallback func(ClassMeta) herr.Kind
	MethodsCallback func(MethodMeta) herr.Kind
)

// Loader is the polymorphic contract every image backend implements.
type Loader interface {
	Enumerate(modules ModulesCallback, classes ClassesCallback, methods MethodsCallback) herr.Kind
	Dispose() herr.Kind
}

type moduleRow struct {
	ModuleID uint32 `gorm:"column:module_id"`
	Name     string `gorm:"column:name"`
}

type classRow struct {
	ClassID  uint32 `gorm:"column:class_id"`
	ModuleID uint32 `gorm:"column:module_id"`
	Name     string `gorm:"column:name"`
}

type methodRow struct {
	MethodID  uint32 `gorm:"column:method_id"`
	ClassID   uint32 `gorm:"column:class_id"`
	ModuleID  uint32 `gorm:"column:module_id"`
	Name      string `gorm:"column:name"`
	Signature string `gorm:"column:signature"`
	Code      []byte `gorm:"column:code"`
	Length    int64  `gorm:"column:length"`
}

// ImageLoader reads modules/classes/methods from a read-only sqlite-backed
// image file with the three-table shape:
//
//	module(module_id, name)
//	class(class_id, module_id, name)
//	method(method_id, class_id, module_id, name, signature, code)
type ImageLoader struct {
	db *gorm.DB
}

// OpenImage opens path read-only. A missing file returns NotFound; a file
// that opens but doesn't look like the expected schema returns InvalidData
// on the first query instead (sqlite doesn't validate schema at open time).
func OpenImage(path string) (*ImageLoader, herr.Kind) {
	if kind := file.CheckReadable(path); kind != herr.OK {
		return nil, kind
	}

	db, err := gorm.Open(sqlite.Open(path+"?mode=ro"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, herr.InvalidData
	}
	return &ImageLoader{db: db}, herr.OK
}

// Enumerate runs the three fixed queries in order (modules, classes,
// methods), invoking each non-nil callback per row. A query the image cannot
// answer (missing table or column) and a row that fails to decode
// (oversize/undersize method length, garbage columns) both map to
// InvalidData; storage-layer allocation failures are not reported apart
// from these.
func (l *ImageLoader) Enumerate(modules ModulesCallback, classes ClassesCallback, methods MethodsCallback) herr.Kind {
	if modules != nil {
		if kind := l.enumerateModules(modules); kind != herr.OK {
			return kind
		}
	}
	if classes != nil {
		if kind := l.enumerateClasses(classes); kind != herr.OK {
			return kind
		}
	}
	if methods != nil {
		if kind := l.enumerateMethods(methods); kind != herr.OK {
			return kind
		}
	}
	return herr.OK
}

func (l *ImageLoader) enumerateModules(cb ModulesCallback) herr.Kind {
	rows, err := l.db.Table("module").Select("module_id, name").Rows()
	if err != nil {
		return herr.InvalidData
	}
	defer rows.Close()

	for rows.Next() {
		var r moduleRow
		if err := l.db.ScanRows(rows, &r); err != nil {
			return herr.InvalidData
		}
		if kind := cb(ModuleMeta{ID: r.ModuleID, Name: r.Name}); kind != herr.OK {
			return kind
		}
	}
	return herr.OK
}

func (l *ImageLoader) enumerateClasses(cb ClassesCallback) herr.Kind {
	rows, err := l.db.Table("class").Select("class_id, module_id, name").Rows()
	if err != nil {
		return herr.InvalidData
	}
	defer rows.Close()

	for rows.Next() {
		var r classRow
		if err := l.db.ScanRows(rows, &r); err != nil {
			return herr.InvalidData
		}
		if kind := cb(ClassMeta{ID: r.ClassID, ModuleID: r.ModuleID, Name: r.Name}); kind != herr.OK {
			return kind
		}
	}
	return herr.OK
}

func (l *ImageLoader) enumerateMethods(cb MethodsCallback) herr.Kind {
	rows, err := l.db.Table("method").
		Select("method_id, class_id, module_id, name, signature, code, length(code) as length").
		Rows()
	if err != nil {
		return herr.InvalidData
	}
	defer rows.Close()

	for rows.Next() {
		var r methodRow
		if err := l.db.ScanRows(rows, &r); err != nil {
			return herr.InvalidData
		}
		if r.Length < minMethodSize || r.Length > maxMethodSize {
			return herr.InvalidData
		}
		if kind := cb(MethodMeta{
			ID:        r.MethodID,
			ClassID:   r.ClassID,
			ModuleID:  r.ModuleID,
			Name:      r.Name,
			Signature: r.Signature,
			Opcode:    r.Code,
		}); kind != herr.OK {
			return kind
		}
	}
	return herr.OK
}

// Dispose closes the underlying connection.
func (l *ImageLoader) Dispose() herr.Kind {
	sqlDB, err := l.db.DB()
	if err != nil {
		return herr.PlatformDependent
	}
	if err := sqlDB.Close(); err != nil {
		return herr.PlatformDependent
	}
	return herr.OK
}
