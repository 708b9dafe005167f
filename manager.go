/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managedstore

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/suparena/managedstore/document"
	"github.com/suparena/managedstore/fsutil"
)

// BindFunc is the type-specific document binding hook: it populates an
// already-constructed default object from a parsed document. Binders are
// tolerant per field; a malformed or missing individual field never fails
// the whole document.
type BindFunc[T any] func(obj T, doc *document.Object)

// Manager is the attributes-manager layer on top of FileContainer: it adds
// the document-to-object binding, user-defined sub-configuration merging,
// and batch/glob-driven bulk loading.
type Manager[T FileManaged[T]] struct {
	*FileContainer[T]

	bind BindFunc[T]
}

// NewManager creates an attributes manager for objects described by
// objectType, whose config files carry ext. newDefault constructs an
// unregistered default object for a handle; bind populates one from a
// parsed document.
func NewManager[T FileManaged[T]](objectType, ext string, access AccessPolicy, newDefault func(handle string) T, bind BindFunc[T], opts ...Option) *Manager[T] {
	m := &Manager[T]{
		FileContainer: NewFileContainer[T](objectType, ext, access, newDefault, opts...),
		bind:          bind,
	}
	m.FileContainer.buildFromDoc = m.BuildFromDoc
	return m
}

// BuildFromDoc creates a default object named name and populates it from
// doc via the type-specific binder. It always succeeds: unrecognized or
// malformed fields are handled per field inside the binder.
func (m *Manager[T]) BuildFromDoc(name string, doc *document.Object) T {
	obj := m.CreateDefault(name, false)
	m.bind(obj, doc)
	return obj
}

// ParseUserDefined merges the document's reserved "user_defined" object
// into obj's user configuration sub-tree. It returns true iff at least one
// setting was merged; on a false return (key absent, value not an object,
// or an empty sub-config) obj is left untouched. A non-object value is
// additionally logged as a warning.
func (m *Manager[T]) ParseUserDefined(obj T, doc *document.Object) bool {
	if !doc.Has(userDefinedKey) {
		return false
	}
	sub, ok := doc.Object(userDefinedKey)
	if !ok {
		m.log.Warn("user_defined tag present but not an object, skipping",
			zap.String("handle", obj.Handle()))
		return false
	}
	// An empty sub-config merges nothing; leave the object untouched.
	if sub.Len() == 0 {
		return false
	}
	merged := obj.Config().EnsureObject(userDefinedKey).Merge(sub)
	return merged > 0
}

// userDefinedKey is the reserved document-root key for user configuration.
const userDefinedKey = "user_defined"

// LoadAllFileBasedTemplates attempts a file-based create+register for every
// path in order, independently. The result has exactly the input's length
// and order; a failed path yields IDUndefined at its index. When
// saveAsDefaults is set every successfully loaded handle is marked
// protected.
func (m *Manager[T]) LoadAllFileBasedTemplates(paths []string, saveAsDefaults bool) []int {
	ids := make([]int, len(paths))
	for i := range ids {
		ids[i] = IDUndefined
	}
	if len(paths) == 0 {
		return ids
	}
	m.log.Debug("loading templates",
		zap.Int("count", len(paths)),
		zap.String("dir", filepath.Dir(paths[0])))
	loaded := 0
	for i, p := range paths {
		obj, err := m.CreateFromFile(p, true)
		if err != nil {
			// Diagnostics are emitted at the failure site; the batch
			// carries on with the remaining files.
			continue
		}
		if saveAsDefaults {
			m.SetProtected(obj.Handle(), true)
		}
		ids[i] = obj.ID()
		loaded++
	}
	m.log.Debug("loaded file-based templates",
		zap.Int("loaded", loaded), zap.Int("requested", len(paths)))
	return ids
}

// LoadAllTemplatesFromPathAndExt loads templates from path. A directory is
// shallow-scanned in ascending sorted order for entries ending in ext
// (case-insensitive) and those are bulk-loaded, tolerating per-file
// failures. Anything else is treated as a candidate file: normalized to
// carry ext and loaded if it exists, or the whole call fails with an empty
// result.
func (m *Manager[T]) LoadAllTemplatesFromPathAndExt(path, ext string, saveAsDefaults bool) []int {
	var paths []string
	if fsutil.IsDir(path) {
		m.log.Debug("scanning library directory",
			zap.String("dir", path), zap.String("ext", ext))
		names, err := fsutil.ListSorted(path)
		if err != nil {
			m.log.Error("failed listing directory",
				zap.String("dir", path), zap.Error(err))
			return []int{}
		}
		for _, name := range names {
			if fsutil.HasSuffixFold(name, ext) {
				paths = append(paths, filepath.Join(path, name))
			}
		}
	} else {
		candidate := m.ConvertFilenameToExt(path, ext)
		if !fsutil.Exists(candidate) {
			m.log.Warn("path is neither a directory nor a config file, aborting parse",
				zap.String("path", path), zap.String("candidate", candidate))
			return []int{}
		}
		paths = append(paths, candidate)
	}
	return m.LoadAllFileBasedTemplates(paths, saveAsDefaults)
}

// LoadAllConfigsFromPath loads templates from path using the container's
// own extension.
func (m *Manager[T]) LoadAllConfigsFromPath(path string, saveAsDefaults bool) []int {
	return m.LoadAllTemplatesFromPathAndExt(path, m.ext, saveAsDefaults)
}

// BuildSrcPathsFromArrayAndLoad walks a document array of path strings,
// joins each with baseDir, expands wildcards, and bulk-loads every ext
// config found in the resulting directories as protected defaults.
// Non-string entries are skipped with a warning; a path with zero glob
// matches is a logged skip, not an error.
func (m *Manager[T]) BuildSrcPathsFromArrayAndLoad(baseDir, ext string, paths document.Array) {
	for i, v := range paths {
		rel, ok := v.(string)
		if !ok {
			m.log.Error("invalid path value in file path array element, skipping",
				zap.Int("index", i))
			continue
		}
		absolutePath := filepath.Join(baseDir, rel)
		globPaths := fsutil.GlobDirs(absolutePath)
		if len(globPaths) == 0 {
			m.log.Warn("no glob path result", zap.String("path", absolutePath))
			continue
		}
		for _, globPath := range globPaths {
			m.log.Debug("glob path result",
				zap.String("path", absolutePath), zap.String("match", globPath))
			m.LoadAllTemplatesFromPathAndExt(globPath, ext, true)
		}
	}
	m.log.Debug("processed config path array", zap.Int("paths", len(paths)))
}

// BuildCfgPathsFromArrayAndLoad is BuildSrcPathsFromArrayAndLoad using the
// container's own extension.
func (m *Manager[T]) BuildCfgPathsFromArrayAndLoad(baseDir string, paths document.Array) {
	m.BuildSrcPathsFromArrayAndLoad(baseDir, m.ext, paths)
}

// CreateObject creates an object for any requested name. The filename is
// normalized to the container's extension; if that config file exists the
// object is built from it, otherwise a fresh default is synthesized using
// the original, unnormalized filename as its handle. The only failure mode
// is a config file that exists but cannot be parsed.
func (m *Manager[T]) CreateObject(filename string, register bool) (T, error) {
	configFilename := filename
	if !fsutil.HasSuffixFold(filename, m.ext) {
		configFilename = m.FormattedFilename(filename)
	}
	if fsutil.Exists(configFilename) {
		m.log.Debug("creating object from config file",
			zap.String("file", configFilename), zap.String("requested", filename))
		return m.CreateFromFile(configFilename, register)
	}
	if fsutil.Exists(filename) {
		m.log.Debug("file exists but is not a recognized config, creating default",
			zap.String("file", filename))
	} else {
		m.log.Debug("file not found, creating default", zap.String("file", filename))
	}
	return m.CreateDefault(filename, register), nil
}
