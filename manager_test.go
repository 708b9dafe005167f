/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managedstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suparena/managedstore/document"
	"github.com/suparena/managedstore/errors"
)

func TestBuildFromDoc(t *testing.T) {
	m := newTestManager()

	doc, err := document.ParseJSON([]byte(`{"label": "armchair", "unknown_key": 7}`))
	require.NoError(t, err)

	obj := m.BuildFromDoc("chair", doc)
	require.Equal(t, "chair", obj.Handle())
	require.Equal(t, IDUndefined, obj.ID())
	require.Equal(t, "armchair", obj.label())

	// Fields absent from the document keep their defaults.
	v, ok := obj.config.Float("value")
	require.True(t, ok)
	require.Equal(t, 0.0, v)
}

func TestParseUserDefined(t *testing.T) {
	m := newTestManager()

	t.Run("Absent", func(t *testing.T) {
		obj := newTestAttrs("a")
		doc, _ := document.ParseJSON([]byte(`{"label": "x"}`))
		require.False(t, m.ParseUserDefined(obj, doc))
		require.False(t, obj.config.Has("user_defined"))
	})

	t.Run("NonObjectSkipped", func(t *testing.T) {
		for _, body := range []string{
			`{"user_defined": [1, 2, 3]}`,
			`{"user_defined": 42}`,
		} {
			obj := newTestAttrs("a")
			doc, err := document.ParseJSON([]byte(body))
			require.NoError(t, err)
			require.False(t, m.ParseUserDefined(obj, doc))
			require.False(t, obj.config.Has("user_defined"))
		}
	})

	t.Run("EmptyObject", func(t *testing.T) {
		obj := newTestAttrs("a")
		doc, _ := document.ParseJSON([]byte(`{"user_defined": {}}`))
		require.False(t, m.ParseUserDefined(obj, doc))
		// A false return leaves the object untouched: no empty subtree
		// appears in the config.
		require.False(t, obj.config.Has("user_defined"))
	})

	t.Run("MergesSettings", func(t *testing.T) {
		obj := newTestAttrs("a")
		doc, _ := document.ParseJSON([]byte(
			`{"user_defined": {"owner": "alice", "tags": {"kind": "seat"}}}`))
		require.True(t, m.ParseUserDefined(obj, doc))

		user, ok := obj.config.Object("user_defined")
		require.True(t, ok)
		owner, ok := user.String("owner")
		require.True(t, ok)
		require.Equal(t, "alice", owner)
		tags, ok := user.Object("tags")
		require.True(t, ok)
		kind, ok := tags.String("kind")
		require.True(t, ok)
		require.Equal(t, "seat", kind)
	})

	t.Run("NeverBindsTypedFields", func(t *testing.T) {
		// A label inside user_defined stays user data; the typed field keeps
		// its default.
		path := filepath.Join(t.TempDir(), "chair"+testExt)
		writeTestConfig(t, path, `{"user_defined": {"label": "smuggled"}}`)

		obj, err := m.CreateFromFile(path, false)
		require.NoError(t, err)
		require.Equal(t, "", obj.label())
	})
}

func TestLoadAllFileBasedTemplates(t *testing.T) {
	m := newTestManager()
	dir := t.TempDir()

	good1 := filepath.Join(dir, "a"+testExt)
	bad := filepath.Join(dir, "b"+testExt)
	good2 := filepath.Join(dir, "c"+testExt)
	writeTestConfig(t, good1, `{"label": "a"}`)
	writeTestConfig(t, bad, `not json`)
	writeTestConfig(t, good2, `{"label": "c"}`)

	paths := []string{good1, bad, good2, filepath.Join(dir, "absent"+testExt)}
	ids := m.LoadAllFileBasedTemplates(paths, false)

	// Result parallels the input: same length, same order, IDUndefined at
	// every failed index.
	require.Len(t, ids, len(paths))
	require.NotEqual(t, IDUndefined, ids[0])
	require.Equal(t, IDUndefined, ids[1])
	require.NotEqual(t, IDUndefined, ids[2])
	require.Equal(t, IDUndefined, ids[3])
	require.Less(t, ids[0], ids[2])

	require.Equal(t, 2, m.Len())
	require.False(t, m.IsProtected(good1))
}

func TestLoadAllFileBasedTemplatesAsDefaults(t *testing.T) {
	m := newTestManager()
	dir := t.TempDir()
	path := filepath.Join(dir, "a"+testExt)
	writeTestConfig(t, path, `{"label": "a"}`)

	ids := m.LoadAllFileBasedTemplates([]string{path}, true)
	require.NotEqual(t, IDUndefined, ids[0])
	require.True(t, m.IsProtected(path))

	_, err := m.Remove(path)
	require.True(t, errors.IsProtected(err))
	require.True(t, m.Has(path))
}

func TestLoadAllTemplatesFromPathAndExt(t *testing.T) {
	t.Run("DirectoryScan", func(t *testing.T) {
		m := newTestManager()
		dir := t.TempDir()
		writeTestConfig(t, filepath.Join(dir, "b"+testExt), `{"label": "b"}`)
		writeTestConfig(t, filepath.Join(dir, "a"+testExt), `{"label": "a"}`)
		writeTestConfig(t, filepath.Join(dir, "A_UPPER"+testExt), `{"label": "A"}`)
		writeTestConfig(t, filepath.Join(dir, "notes.txt"), `ignored`)
		writeTestConfig(t, filepath.Join(dir, "other.json"), `{}`)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
		writeTestConfig(t, filepath.Join(dir, "nested", "d"+testExt), `{"label": "d"}`)

		ids := m.LoadAllConfigsFromPath(dir, false)

		// Shallow scan: only matching files in the directory itself, in
		// ascending sorted order.
		require.Len(t, ids, 3)
		require.Equal(t, 3, m.Len())
		require.False(t, m.Has(filepath.Join(dir, "nested", "d"+testExt)))

		h0, _ := m.HandleByID(ids[0])
		h1, _ := m.HandleByID(ids[1])
		h2, _ := m.HandleByID(ids[2])
		require.Equal(t, filepath.Join(dir, "A_UPPER"+testExt), h0)
		require.Equal(t, filepath.Join(dir, "a"+testExt), h1)
		require.Equal(t, filepath.Join(dir, "b"+testExt), h2)
	})

	t.Run("SingleFile", func(t *testing.T) {
		m := newTestManager()
		dir := t.TempDir()
		writeTestConfig(t, filepath.Join(dir, "chair"+testExt), `{"label": "x"}`)

		// A bare name is normalized to the extension before loading.
		ids := m.LoadAllConfigsFromPath(filepath.Join(dir, "chair"), false)
		require.Len(t, ids, 1)
		require.NotEqual(t, IDUndefined, ids[0])
	})

	t.Run("SingleFileAllOrNothing", func(t *testing.T) {
		m := newTestManager()
		dir := t.TempDir()

		ids := m.LoadAllConfigsFromPath(filepath.Join(dir, "absent"), false)
		require.Empty(t, ids)
		require.Equal(t, 0, m.Len())
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		m := newTestManager()
		ids := m.LoadAllConfigsFromPath(t.TempDir(), false)
		require.Empty(t, ids)
	})
}

func TestBuildSrcPathsFromArrayAndLoad(t *testing.T) {
	m := newTestManager()
	base := t.TempDir()

	libA := filepath.Join(base, "lib_a")
	libB := filepath.Join(base, "lib_b")
	other := filepath.Join(base, "other")
	require.NoError(t, os.Mkdir(libA, 0o755))
	require.NoError(t, os.Mkdir(libB, 0o755))
	require.NoError(t, os.Mkdir(other, 0o755))
	writeTestConfig(t, filepath.Join(libA, "a"+testExt), `{"label": "a"}`)
	writeTestConfig(t, filepath.Join(libB, "b"+testExt), `{"label": "b"}`)
	writeTestConfig(t, filepath.Join(other, "c"+testExt), `{"label": "c"}`)

	paths := document.Array{"lib_*", int64(42), "no_such_*"}
	m.BuildSrcPathsFromArrayAndLoad(base, testExt, paths)

	require.Equal(t, 2, m.Len())
	require.True(t, m.Has(filepath.Join(libA, "a"+testExt)))
	require.True(t, m.Has(filepath.Join(libB, "b"+testExt)))
	require.False(t, m.Has(filepath.Join(other, "c"+testExt)))

	// Glob-loaded templates are library defaults, hence protected.
	require.True(t, m.IsProtected(filepath.Join(libA, "a"+testExt)))
}

func TestCreateObject(t *testing.T) {
	t.Run("FromExistingConfig", func(t *testing.T) {
		m := newTestManager()
		dir := t.TempDir()
		path := filepath.Join(dir, "chair"+testExt)
		writeTestConfig(t, path, `{"label": "armchair"}`)

		obj, err := m.CreateObject(filepath.Join(dir, "chair"), true)
		require.NoError(t, err)
		require.Equal(t, "armchair", obj.label())
		require.True(t, m.Has(path))
	})

	t.Run("DefaultForUnknownName", func(t *testing.T) {
		m := newTestManager()

		obj, err := m.CreateObject("synthesized.glb", true)
		require.NoError(t, err)
		require.Equal(t, "synthesized.glb", obj.Handle())
		require.Equal(t, "", obj.label())
		require.True(t, m.Has("synthesized.glb"))
	})

	t.Run("DefaultWithoutRegister", func(t *testing.T) {
		m := newTestManager()

		obj, err := m.CreateObject("loose", false)
		require.NoError(t, err)
		require.Equal(t, IDUndefined, obj.ID())
		require.Equal(t, 0, m.Len())
	})

	t.Run("MalformedConfigFails", func(t *testing.T) {
		m := newTestManager()
		dir := t.TempDir()
		path := filepath.Join(dir, "broken"+testExt)
		writeTestConfig(t, path, `{{`)

		_, err := m.CreateObject(path, true)
		require.True(t, errors.IsParseError(err))
		require.Equal(t, 0, m.Len())
	})
}
