/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managedstore

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/suparena/managedstore/document"
	"github.com/suparena/managedstore/errors"
	"github.com/suparena/managedstore/fsutil"
)

// FileBacked extends the managed contract with the file provenance and
// configuration-tree access that file-based containers require.
type FileBacked interface {
	// FileDirectory is the directory the object was loaded from, empty for
	// purely in-memory objects.
	FileDirectory() string
	SetFileDirectory(dir string)

	// Config is the object's nested configuration tree; it is what gets
	// serialized on save.
	Config() *document.Object
}

// FileManaged is the object contract for FileContainer.
type FileManaged[T any] interface {
	Managed[T]
	FileBacked
}

// WriteFunc serializes one managed object to filename inside dir. The
// default implementation writes the object's configuration tree through the
// container's codec; per-type containers may substitute their own.
type WriteFunc[T any] func(obj T, filename, dir string) error

// FileContainer extends Container with document-file load and save:
// parsing config files into objects, filename normalization against the
// container's fixed extension, and collision-avoiding save naming.
type FileContainer[T FileManaged[T]] struct {
	*Container[T]

	ext   string
	codec document.Codec

	// buildFromDoc turns a parsed document into an object. The default
	// merges the document into a default object's config; the attributes
	// manager layered on top replaces it with its typed binder.
	buildFromDoc func(name string, doc *document.Object) T

	write WriteFunc[T]
}

// NewFileContainer creates a file-based registry whose persisted file names
// all carry ext (leading dot included, e.g. ".object_config.json"). The
// extension is fixed for the container's lifetime.
func NewFileContainer[T FileManaged[T]](objectType, ext string, access AccessPolicy, newDefault func(handle string) T, opts ...Option) *FileContainer[T] {
	var o containerOptions
	for _, opt := range opts {
		opt(&o)
	}
	fc := &FileContainer[T]{
		Container: NewContainer[T](objectType, access, newDefault, opts...),
		ext:       ext,
		codec:     o.codec,
	}
	if fc.codec == nil {
		fc.codec = document.JSONCodec{}
	}
	fc.write = fc.writeDefault
	// Without a manager layer on top there is no typed binder; a loaded
	// document merges straight into the default object's config tree.
	fc.buildFromDoc = func(name string, doc *document.Object) T {
		obj := fc.CreateDefault(name, false)
		obj.Config().Merge(doc)
		return obj
	}
	return fc
}

// Ext returns the fixed file extension for this container's config files.
func (c *FileContainer[T]) Ext() string { return c.ext }

// Codec returns the document codec in use.
func (c *FileContainer[T]) Codec() document.Codec { return c.codec }

// SetWriteFunc replaces the serialization hook used by the save paths.
func (c *FileContainer[T]) SetWriteFunc(f WriteFunc[T]) { c.write = f }

// CreateFromFile creates an object from the named config file, using the
// file name as the object's handle. On a missing file or a parse failure
// the zero value is returned with a diagnostic; nothing is registered. On
// success the object is optionally registered (replacing any previous
// object with the same handle).
func (c *FileContainer[T]) CreateFromFile(filename string, register bool) (T, error) {
	var zero T
	if !fsutil.Exists(filename) {
		c.log.Error("config file does not exist", zap.String("file", filename))
		return zero, errors.NewNotFoundError(c.objectType, filename)
	}
	doc, err := c.codec.DecodeFile(filename)
	if err != nil {
		c.log.Error("failure reading config document",
			zap.String("file", filename), zap.Error(err))
		return zero, errors.NewParseError(filename, err)
	}
	obj := c.buildFromDoc(filename, doc)
	c.setFileDirectoryFromHandle(obj)
	if register {
		if _, err := c.Register(obj, true); err != nil {
			return zero, err
		}
	}
	return obj, nil
}

// ConvertFilenameToExt returns filename unchanged when it already contains
// ext (case-insensitive); otherwise it strips the last extension segment
// and appends ext. The transformation is idempotent.
func (c *FileContainer[T]) ConvertFilenameToExt(filename, ext string) string {
	if fsutil.ContainsFold(filename, ext) {
		c.log.Debug("filename already carries extension",
			zap.String("file", filename), zap.String("ext", ext))
		return filename
	}
	base, _ := fsutil.SplitExtension(filename)
	res := base + ext
	c.log.Debug("filename normalized to extension",
		zap.String("file", filename), zap.String("result", res))
	return res
}

// FormattedFilename normalizes filename to carry this container's
// extension.
func (c *FileContainer[T]) FormattedFilename(filename string) string {
	return c.ConvertFilenameToExt(filename, c.ext)
}

// SaveObject saves the registered object under handle to its stored file
// directory, deriving the file name from the handle. When overwrite is
// false a colliding name gets a " (copy NNNN)" suffix, counting up from
// 0000 until a free name is found.
func (c *FileContainer[T]) SaveObject(handle string, overwrite bool) error {
	obj, ok := c.objectInternal(handle)
	if !ok {
		c.log.Error("no object exists with handle to save",
			zap.String("handle", handle))
		return errors.NewNotFoundError(c.objectType, handle)
	}
	fileDirectory := obj.FileDirectory()

	// Strip the object's file directory from the handle to get the raw
	// name; fall back to the simplified handle when the directory is not a
	// prefix of it.
	var fileNameRaw string
	if pos := strings.Index(handle, fileDirectory); fileDirectory != "" && pos >= 0 {
		fileNameRaw = strings.TrimLeft(handle[pos+len(fileDirectory):], "/\\")
	} else {
		fileNameRaw = filepath.Base(handle)
	}
	fileNameBase := fsutil.StripExtensions(fileNameRaw)
	fileName := fileNameBase + c.ext
	if !overwrite {
		count := 0
		for fsutil.Exists(filepath.Join(fileDirectory, fileName)) {
			fileName = fmt.Sprintf("%s (copy %04d)%s", fileNameBase, count, c.ext)
			count++
		}
	}
	return c.write(obj, fileName, fileDirectory)
}

// SaveObjectAs saves the registered object under handle to the explicitly
// named file, overwriting any existing file. When fullFilename carries no
// directory component the object's stored file directory is used.
func (c *FileContainer[T]) SaveObjectAs(handle, fullFilename string) error {
	obj, ok := c.objectInternal(handle)
	if !ok {
		c.log.Error("no object exists with handle to save",
			zap.String("handle", handle))
		return errors.NewNotFoundError(c.objectType, handle)
	}
	fileDirectory := ""
	if strings.ContainsAny(fullFilename, "/\\") {
		fileDirectory = filepath.Dir(fullFilename)
	}
	if fileDirectory == "" {
		fileDirectory = obj.FileDirectory()
	}
	fileName := fsutil.StripExtensions(filepath.Base(fullFilename)) + c.ext
	return c.write(obj, fileName, fileDirectory)
}

// writeDefault is the default WriteFunc: it verifies the destination
// directory, serializes the object's configuration tree through the codec
// and writes the file.
func (c *FileContainer[T]) writeDefault(obj T, filename, dir string) error {
	if !fsutil.IsDir(dir) {
		c.log.Error("destination directory does not exist",
			zap.String("dir", dir), zap.String("handle", obj.Handle()))
		return errors.NewDirectoryMissingError(dir)
	}
	fullFilename := filepath.Join(dir, filename)
	if err := c.codec.EncodeFile(fullFilename, obj.Config()); err != nil {
		c.log.Error("failed writing config file",
			zap.String("file", fullFilename), zap.Error(err))
		return err
	}
	c.log.Debug("wrote config file", zap.String("file", fullFilename))
	return nil
}

// setFileDirectoryFromHandle records the handle's directory component as
// the object's file directory, when one exists.
func (c *FileContainer[T]) setFileDirectoryFromHandle(obj T) {
	handle := obj.Handle()
	if !strings.ContainsAny(handle, "/\\") {
		return
	}
	if dir := filepath.Dir(handle); dir != "." {
		obj.SetFileDirectory(dir)
	}
}
