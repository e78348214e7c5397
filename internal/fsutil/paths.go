// Package fsutil provides the path queries used while translating a project:
// joining, relative paths, parent directories and extension checks.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ChildFile resolves rel against dir. An absolute rel is returned cleaned and
// unchanged, matching how project files refer to folders outside the tree.
func ChildFile(dir, rel string) string {
	if rel == "" {
		return filepath.Clean(dir)
	}
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(dir, rel)
}

// Join joins path elements with the OS separator.
func Join(elem ...string) string {
	return filepath.Join(elem...)
}

// RelativeTo expresses target relative to base. When no relative form exists
// (different volumes, for instance) the cleaned target is returned.
func RelativeTo(target, base string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.Clean(target)
	}
	return rel
}

// Parent returns the directory containing path.
func Parent(path string) string {
	return filepath.Dir(path)
}

// FileName returns the last element of path.
func FileName(path string) string {
	return filepath.Base(path)
}

// HasExtension reports whether path ends in ext, compared case-insensitively.
// ext may be given with or without its leading dot; an empty ext matches
// nothing.
func HasExtension(path, ext string) bool {
	if ext == "" {
		return false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.EqualFold(filepath.Ext(path), ext)
}

// Absolute resolves path against dir unless it is already absolute.
func Absolute(path, dir string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	return os.Getwd()
}
