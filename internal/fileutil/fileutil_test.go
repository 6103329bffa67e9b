package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"encodewatch/internal/fileutil"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.mkv")
	if err := os.WriteFile(file, []byte("abc"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	dangling := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "nowhere"), dangling); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	for _, path := range []string{file, dir, dangling} {
		ok, err := fileutil.Exists(path)
		if err != nil || !ok {
			t.Fatalf("expected %s to exist: ok=%v err=%v", path, ok, err)
		}
	}
	ok, err := fileutil.Exists(filepath.Join(dir, "missing"))
	if err != nil || ok {
		t.Fatalf("expected missing path: ok=%v err=%v", ok, err)
	}
}

func TestRegularFileSize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.mkv")
	if err := os.WriteFile(file, []byte("abcd"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	size, ok := fileutil.RegularFileSize(file)
	if !ok || size != 4 {
		t.Fatalf("unexpected size: %d ok=%v", size, ok)
	}
	if _, ok := fileutil.RegularFileSize(dir); ok {
		t.Fatal("directory must not count as a regular file")
	}
	if _, ok := fileutil.RegularFileSize(filepath.Join(dir, "missing")); ok {
		t.Fatal("missing path must not count as a regular file")
	}
}
