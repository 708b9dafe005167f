/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attributes

import (
	"path/filepath"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/managedstore"
	"github.com/suparena/managedstore/document"
	"github.com/suparena/managedstore/fsutil"
)

// UserDefinedKey is the reserved configuration sub-tree holding
// user-specified values merged verbatim from config documents.
const UserDefinedKey = "user_defined"

// BaseAttributes carries the state every attributes type shares: the
// handle, registration ID, origin file directory, creation stamp and the
// nested configuration tree that holds all typed values.
type BaseAttributes struct {
	handle        string
	id            int
	fileDirectory string
	createdAt     strfmt.DateTime
	config        *document.Object
}

// NewBaseAttributes creates an unregistered attributes base named handle.
func NewBaseAttributes(handle string) BaseAttributes {
	return BaseAttributes{
		handle:    handle,
		id:        managedstore.IDUndefined,
		createdAt: strfmt.DateTime(time.Now()),
		config:    document.NewObject(),
	}
}

// Handle returns the attributes' unique name within its container.
func (a *BaseAttributes) Handle() string { return a.handle }

// SetHandle renames the attributes.
func (a *BaseAttributes) SetHandle(handle string) { a.handle = handle }

// ID returns the registration ID, or managedstore.IDUndefined when the
// attributes have not been registered.
func (a *BaseAttributes) ID() int { return a.id }

// SetID records the registration ID.
func (a *BaseAttributes) SetID(id int) { a.id = id }

// FileDirectory returns the directory the attributes were loaded from,
// empty for purely in-memory attributes.
func (a *BaseAttributes) FileDirectory() string { return a.fileDirectory }

// SetFileDirectory records the origin directory.
func (a *BaseAttributes) SetFileDirectory(dir string) { a.fileDirectory = dir }

// CreatedAt returns the in-memory creation stamp. It is metadata, not part
// of the persisted configuration.
func (a *BaseAttributes) CreatedAt() strfmt.DateTime { return a.createdAt }

// Config returns the attributes' nested configuration tree.
func (a *BaseAttributes) Config() *document.Object { return a.config }

// UserConfig returns the user_defined sub-tree, creating it if absent.
func (a *BaseAttributes) UserConfig() *document.Object {
	return a.config.EnsureObject(UserDefinedKey)
}

// SimplifiedHandle returns the handle reduced to a bare name: directory
// components and compound config extensions stripped.
func (a *BaseAttributes) SimplifiedHandle() string {
	return fsutil.StripExtensions(filepath.Base(a.handle))
}

// cloneBase returns a deep copy of the base state.
func (a *BaseAttributes) cloneBase() BaseAttributes {
	out := *a
	out.config = a.config.Clone()
	return out
}

// Typed configuration accessors shared by all attributes types.

// SetFloat stores a float configuration value.
func (a *BaseAttributes) SetFloat(key string, v float64) { a.config.Set(key, v) }

// Float reads a float configuration value, zero if absent or mistyped.
func (a *BaseAttributes) Float(key string) float64 {
	v, _ := a.config.Float(key)
	return v
}

// SetInt stores an integer configuration value.
func (a *BaseAttributes) SetInt(key string, v int64) { a.config.Set(key, v) }

// Int reads an integer configuration value, zero if absent or mistyped.
func (a *BaseAttributes) Int(key string) int64 {
	v, _ := a.config.Int(key)
	return v
}

// SetBool stores a boolean configuration value.
func (a *BaseAttributes) SetBool(key string, v bool) { a.config.Set(key, v) }

// Bool reads a boolean configuration value, false if absent or mistyped.
func (a *BaseAttributes) Bool(key string) bool {
	v, _ := a.config.Bool(key)
	return v
}

// SetString stores a string configuration value.
func (a *BaseAttributes) SetString(key string, v string) { a.config.Set(key, v) }

// String reads a string configuration value, empty if absent or mistyped.
func (a *BaseAttributes) String(key string) string {
	v, _ := a.config.String(key)
	return v
}

// SetVec3 stores a 3-vector configuration value.
func (a *BaseAttributes) SetVec3(key string, v [3]float64) { a.config.SetVec3(key, v) }

// Vec3 reads a 3-vector configuration value, zero if absent or mistyped.
func (a *BaseAttributes) Vec3(key string) [3]float64 {
	v, _ := a.config.Vec3(key)
	return v
}
