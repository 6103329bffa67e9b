package fileutil

import (
	"errors"
	"io/fs"
	"os"
)

// Exists reports whether anything (file, directory, or dangling symlink)
// occupies path. Errors other than "not exist" are returned so callers can
// refuse to proceed on paths they cannot inspect.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// RegularFileSize returns the size of path when it is a regular file
// (following symlinks). ok is false for missing paths and non-files.
func RegularFileSize(path string) (size int64, ok bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0, false
	}
	return info.Size(), true
}
