/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package fsutil provides the file system primitives consumed by the
// registry: existence checks, shallow sorted listings, extension splitting
// and wildcard directory expansion.
package fsutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exists reports whether the named file or directory exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether the named path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListSorted returns the names of the entries of dir in ascending sorted
// order. The listing is shallow; subdirectory contents are not visited.
func ListSorted(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// SplitExtension splits the last extension segment off path, returning the
// remainder and the extension including its dot. A path without an
// extension returns an empty extension.
func SplitExtension(path string) (base, ext string) {
	ext = filepath.Ext(path)
	return path[:len(path)-len(ext)], ext
}

// StripExtensions removes up to two trailing extension segments from path,
// reducing compound config extensions like "chair.object_config.json" to
// "chair".
func StripExtensions(path string) string {
	base, _ := SplitExtension(path)
	base, _ = SplitExtension(base)
	return base
}

// HasSuffixFold reports whether s ends with suffix under case-insensitive
// comparison.
func HasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// ContainsFold reports whether substr occurs anywhere in s under
// case-insensitive comparison.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// GlobDirs expands a path whose segments may contain wildcards into the
// ordered set of concrete directories that match. Matches that are not
// directories are dropped. An empty result is not an error.
func GlobDirs(pattern string) []string {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		// Only malformed patterns error; treat them as a non-match.
		return nil
	}
	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		if IsDir(m) {
			dirs = append(dirs, m)
		}
	}
	sort.Strings(dirs)
	return dirs
}
