/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExistsAndIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	require.True(t, Exists(dir))
	require.True(t, Exists(file))
	require.False(t, Exists(filepath.Join(dir, "missing")))

	require.True(t, IsDir(dir))
	require.False(t, IsDir(file))
	require.False(t, IsDir(filepath.Join(dir, "missing")))
}

func TestListSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), nil, 0o644))

	names, err := ListSorted(dir)
	require.NoError(t, err)
	// Shallow: the subdirectory appears by name, its contents do not.
	require.Equal(t, []string{"a.txt", "b.txt", "c.txt", "sub"}, names)

	_, err = ListSorted(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestSplitExtension(t *testing.T) {
	tests := []struct {
		in, base, ext string
	}{
		{"chair.object_config.json", "chair.object_config", ".json"},
		{"chair.object_config", "chair", ".object_config"},
		{"chair", "chair", ""},
		{"dir/name.glb", "dir/name", ".glb"},
	}
	for _, tt := range tests {
		base, ext := SplitExtension(tt.in)
		require.Equal(t, tt.base, base, tt.in)
		require.Equal(t, tt.ext, ext, tt.in)
	}
}

func TestStripExtensions(t *testing.T) {
	require.Equal(t, "chair", StripExtensions("chair.object_config.json"))
	require.Equal(t, "chair", StripExtensions("chair.json"))
	require.Equal(t, "chair", StripExtensions("chair"))
	require.Equal(t, "data/cfg/chair", StripExtensions("data/cfg/chair.object_config.json"))
}

func TestSuffixAndContainsFold(t *testing.T) {
	require.True(t, HasSuffixFold("chair.Object_Config.JSON", ".object_config.json"))
	require.False(t, HasSuffixFold("chair.txt", ".object_config.json"))
	require.False(t, HasSuffixFold("x", ".object_config.json"))

	require.True(t, ContainsFold("a/b/Chair.OBJECT_config.json.bak", ".object_config.json"))
	require.False(t, ContainsFold("a/b/chair.stage_config.json", ".object_config.json"))
}

func TestGlobDirs(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"set_a/configs", "set_b/configs", "set_c/other"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	// A file that matches the pattern must be filtered out.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "set_d"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "set_d", "configs"), []byte("x"), 0o644))

	dirs := GlobDirs(filepath.Join(root, "set_*", "configs"))
	require.Equal(t, []string{
		filepath.Join(root, "set_a", "configs"),
		filepath.Join(root, "set_b", "configs"),
	}, dirs)

	require.Empty(t, GlobDirs(filepath.Join(root, "nomatch_*", "configs")))
}
