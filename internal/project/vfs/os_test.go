package vfs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFS_WriteFileTruncates(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(p, []byte("0123456789\n"), 0600); err != nil {
		t.Fatal(err)
	}

	f := NewOSFS()
	if err := f.WriteFile(p, []byte("ab\n"), DefaultPerm); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := f.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "ab\n" {
		t.Errorf("expected %q, got %q", "ab\n", data)
	}

	info, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected existing permissions kept, got %v", info.Mode().Perm())
	}
}

func TestOSFS_WriteFileCreates(t *testing.T) {
	p := filepath.Join(t.TempDir(), "new.txt")

	f := NewOSFS()
	if f.Exists(p) {
		t.Fatal("file should not exist yet")
	}
	if err := f.WriteFile(p, []byte("x\n"), DefaultPerm); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if !f.Exists(p) {
		t.Error("file should exist after write")
	}
}

func TestOSFS_Open(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(p, []byte("line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewOSFS()
	rc, err := f.Open(p)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "line\n" {
		t.Errorf("expected %q, got %q", "line\n", data)
	}

	if _, err := f.Open(dir); !errors.Is(err, ErrIsDir) {
		t.Errorf("expected ErrIsDir opening a directory, got %v", err)
	}
	if !f.IsDir(dir) {
		t.Error("IsDir should report the temp dir")
	}
}
