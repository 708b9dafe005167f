/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managedstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/suparena/managedstore/document"
	"github.com/suparena/managedstore/errors"
	"github.com/suparena/managedstore/fsutil"
)

const testExt = ".test_config.json"

// newTestManager builds a Manager over testAttrs with a binder that copies
// the known fields and merges user configuration.
func newTestManager(opts ...Option) *Manager[*testAttrs] {
	var m *Manager[*testAttrs]
	bind := func(obj *testAttrs, doc *document.Object) {
		if s, ok := doc.String("label"); ok {
			obj.config.Set("label", s)
		}
		if f, ok := doc.Float("value"); ok {
			obj.config.Set("value", f)
		}
		m.ParseUserDefined(obj, doc)
	}
	m = NewManager[*testAttrs]("test attributes", testExt, AccessShare, newTestAttrs, bind, opts...)
	return m
}

func writeTestConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestConvertFilenameToExt(t *testing.T) {
	m := newTestManager()

	cases := []struct {
		in   string
		want string
	}{
		{"chair", "chair" + testExt},
		{"chair.glb", "chair" + testExt},
		{"chair" + testExt, "chair" + testExt},
		{"CHAIR.TEST_CONFIG.JSON", "CHAIR.TEST_CONFIG.JSON"},
		{"assets/chair.glb", "assets/chair" + testExt},
		{"chair.old" + testExt, "chair.old" + testExt},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, m.ConvertFilenameToExt(tc.in, testExt), "input %q", tc.in)
		require.Equal(t, tc.want, m.FormattedFilename(tc.in), "input %q", tc.in)
	}
}

func TestConvertFilenameToExtIdempotent(t *testing.T) {
	m := newTestManager()
	exts := []string{testExt, ".stage_config.json", ".cfg.yaml", ".json"}

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.String().Draw(t, "name")
		ext := rapid.SampledFrom(exts).Draw(t, "ext")

		once := m.ConvertFilenameToExt(name, ext)
		twice := m.ConvertFilenameToExt(once, ext)
		if once != twice {
			t.Fatalf("normalization not idempotent: %q -> %q -> %q", name, once, twice)
		}
	})
}

func TestFileContainerStandalone(t *testing.T) {
	// A FileContainer built without a manager layer loads files on its own:
	// the document merges into the default config tree.
	fc := NewFileContainer[*testAttrs]("test attributes", testExt, AccessShare, newTestAttrs)
	dir := t.TempDir()
	path := filepath.Join(dir, "chair"+testExt)
	writeTestConfig(t, path, `{"label": "armchair", "extra": true}`)

	obj, err := fc.CreateFromFile(path, true)
	require.NoError(t, err)
	require.Equal(t, "armchair", obj.label())
	extra, ok := obj.config.Bool("extra")
	require.True(t, ok)
	require.True(t, extra)
	require.True(t, fc.Has(path))
	require.Equal(t, dir, obj.FileDirectory())
}

func TestCreateFromFile(t *testing.T) {
	m := newTestManager()
	dir := t.TempDir()

	t.Run("LoadsAndRegisters", func(t *testing.T) {
		path := filepath.Join(dir, "chair"+testExt)
		writeTestConfig(t, path, `{"label": "armchair", "value": 2.5}`)

		obj, err := m.CreateFromFile(path, true)
		require.NoError(t, err)
		require.Equal(t, path, obj.Handle())
		require.Equal(t, dir, obj.FileDirectory())
		require.Equal(t, "armchair", obj.label())
		require.True(t, m.Has(path))
	})

	t.Run("WithoutRegister", func(t *testing.T) {
		path := filepath.Join(dir, "stool"+testExt)
		writeTestConfig(t, path, `{"label": "stool"}`)

		obj, err := m.CreateFromFile(path, false)
		require.NoError(t, err)
		require.Equal(t, IDUndefined, obj.ID())
		require.False(t, m.Has(path))
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := m.CreateFromFile(filepath.Join(dir, "absent"+testExt), true)
		require.True(t, errors.IsNotFound(err))
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := filepath.Join(dir, "broken"+testExt)
		writeTestConfig(t, path, `{"label": `)

		_, err := m.CreateFromFile(path, true)
		require.True(t, errors.IsParseError(err))
		require.False(t, m.Has(path))
	})
}

func TestSaveObject(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		m := newTestManager()
		dir := t.TempDir()

		obj := newTestAttrs("chair")
		obj.SetFileDirectory(dir)
		obj.config.Set("label", "armchair")
		obj.config.Set("value", 2.5)
		_, err := m.Register(obj, false)
		require.NoError(t, err)

		require.NoError(t, m.SaveObject("chair", true))
		saved := filepath.Join(dir, "chair"+testExt)
		require.True(t, fsutil.Exists(saved))

		loaded, err := m.CreateFromFile(saved, false)
		require.NoError(t, err)
		require.Equal(t, "armchair", loaded.label())
		v, ok := loaded.config.Float("value")
		require.True(t, ok)
		require.Equal(t, 2.5, v)
	})

	t.Run("CollisionNaming", func(t *testing.T) {
		m := newTestManager()
		dir := t.TempDir()

		obj := newTestAttrs("chair")
		obj.SetFileDirectory(dir)
		m.Register(obj, false)

		require.NoError(t, m.SaveObject("chair", false))
		require.NoError(t, m.SaveObject("chair", false))
		require.NoError(t, m.SaveObject("chair", false))

		require.True(t, fsutil.Exists(filepath.Join(dir, "chair"+testExt)))
		require.True(t, fsutil.Exists(filepath.Join(dir, "chair (copy 0000)"+testExt)))
		require.True(t, fsutil.Exists(filepath.Join(dir, "chair (copy 0001)"+testExt)))
	})

	t.Run("OverwriteReplacesInPlace", func(t *testing.T) {
		m := newTestManager()
		dir := t.TempDir()

		obj := newTestAttrs("chair")
		obj.SetFileDirectory(dir)
		m.Register(obj, false)

		require.NoError(t, m.SaveObject("chair", true))
		require.NoError(t, m.SaveObject("chair", true))

		names, err := fsutil.ListSorted(dir)
		require.NoError(t, err)
		require.Equal(t, []string{"chair" + testExt}, names)
	})

	t.Run("HandleCarryingDirectory", func(t *testing.T) {
		m := newTestManager()
		dir := t.TempDir()
		path := filepath.Join(dir, "chair"+testExt)
		writeTestConfig(t, path, `{"label": "armchair"}`)

		_, err := m.CreateFromFile(path, true)
		require.NoError(t, err)

		// The directory prefix comes off the handle; the save lands next to
		// the source file, not under a nested path.
		require.NoError(t, m.SaveObject(path, false))
		require.True(t, fsutil.Exists(filepath.Join(dir, "chair (copy 0000)"+testExt)))
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		m := newTestManager()
		obj := newTestAttrs("orphan")
		m.Register(obj, false)

		err := m.SaveObject("orphan", true)
		require.True(t, errors.IsDirectoryMissing(err))
	})

	t.Run("UnknownHandle", func(t *testing.T) {
		m := newTestManager()
		err := m.SaveObject("missing", true)
		require.True(t, errors.IsNotFound(err))
	})
}

func TestSaveObjectAs(t *testing.T) {
	m := newTestManager()
	dir := t.TempDir()

	obj := newTestAttrs("chair")
	obj.SetFileDirectory(dir)
	obj.config.Set("label", "armchair")
	m.Register(obj, false)

	t.Run("ExplicitDirectory", func(t *testing.T) {
		other := t.TempDir()
		require.NoError(t, m.SaveObjectAs("chair", filepath.Join(other, "renamed.foo.bar")))
		require.True(t, fsutil.Exists(filepath.Join(other, "renamed"+testExt)))
	})

	t.Run("BareNameUsesObjectDirectory", func(t *testing.T) {
		require.NoError(t, m.SaveObjectAs("chair", "bare"))
		require.True(t, fsutil.Exists(filepath.Join(dir, "bare"+testExt)))
	})

	t.Run("Overwrites", func(t *testing.T) {
		require.NoError(t, m.SaveObjectAs("chair", "bare"))
		names, err := fsutil.ListSorted(dir)
		require.NoError(t, err)
		require.Contains(t, names, "bare"+testExt)
	})

	t.Run("UnknownHandle", func(t *testing.T) {
		err := m.SaveObjectAs("missing", "anywhere")
		require.True(t, errors.IsNotFound(err))
	})
}

func TestYAMLCodec(t *testing.T) {
	m := NewManager[*testAttrs]("test attributes", ".test_config.yaml", AccessShare,
		newTestAttrs,
		func(obj *testAttrs, doc *document.Object) {
			if s, ok := doc.String("label"); ok {
				obj.config.Set("label", s)
			}
		},
		WithCodec(document.YAMLCodec{}))

	dir := t.TempDir()
	obj := newTestAttrs("chair")
	obj.SetFileDirectory(dir)
	obj.config.Set("label", "armchair")
	m.Register(obj, false)

	require.NoError(t, m.SaveObject("chair", true))
	saved := filepath.Join(dir, "chair.test_config.yaml")
	require.True(t, fsutil.Exists(saved))

	loaded, err := m.CreateFromFile(saved, false)
	require.NoError(t, err)
	require.Equal(t, "armchair", loaded.label())
}
