package vfs

import (
	"errors"
	"io"
	"io/fs"
	"testing"
)

func TestMemFS_AddFile(t *testing.T) {
	m := NewMemFS()
	m.AddFile("/a/b/c/file.txt", "content")

	if !m.Exists("/a/b/c/file.txt") {
		t.Error("file should exist")
	}
	if !m.IsDir("/a/b/c") {
		t.Error("parent directory should exist")
	}
	if !m.IsDir("/a/b") {
		t.Error("grandparent directory should exist")
	}
	if m.IsDir("/a/b/c/file.txt") {
		t.Error("file should not be a directory")
	}
}

func TestMemFS_ReadFile(t *testing.T) {
	m := NewMemFS()
	m.AddFile("notes.txt", "hello\n")

	data, err := m.ReadFile("/notes.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("expected %q, got %q", "hello\n", data)
	}

	data[0] = 'j'
	if got, _ := m.Content("/notes.txt"); got != "hello\n" {
		t.Errorf("ReadFile must return a copy, content now %q", got)
	}
}

func TestMemFS_Open(t *testing.T) {
	m := NewMemFS()
	m.AddFile("/f.txt", "abc")
	m.AddDir("/dir")

	rc, err := m.Open("/f.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("expected abc, got %q", data)
	}

	if _, err := m.Open("/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if _, err := m.Open("/dir"); !errors.Is(err, ErrIsDir) {
		t.Errorf("expected ErrIsDir, got %v", err)
	}
}

func TestMemFS_WriteFile(t *testing.T) {
	m := NewMemFS()
	m.AddFile("/f.txt", "a much longer original body\n")

	if err := m.WriteFile("/f.txt", []byte("short\n"), DefaultPerm); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if got, _ := m.Content("/f.txt"); got != "short\n" {
		t.Errorf("expected content truncated to %q, got %q", "short\n", got)
	}

	if err := m.WriteFile("/new.txt", []byte("x\n"), DefaultPerm); err != nil {
		t.Fatalf("WriteFile create failed: %v", err)
	}
	if !m.Exists("/new.txt") {
		t.Error("new file should exist")
	}
}

func TestMemFS_WriteFileErrors(t *testing.T) {
	m := NewMemFS()
	m.AddDir("/dir")

	if err := m.WriteFile("/dir", nil, DefaultPerm); !errors.Is(err, ErrIsDir) {
		t.Errorf("expected ErrIsDir, got %v", err)
	}
	if err := m.WriteFile("/nope/f.txt", nil, DefaultPerm); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist for missing parent, got %v", err)
	}

	diskFull := errors.New("no space left on device")
	m.AddFile("/f.txt", "keep")
	m.FailWrites("/f.txt", diskFull)
	if err := m.WriteFile("/f.txt", []byte("lost"), DefaultPerm); !errors.Is(err, diskFull) {
		t.Errorf("expected injected error, got %v", err)
	}
	if got, _ := m.Content("/f.txt"); got != "keep" {
		t.Errorf("failed write must not change content, got %q", got)
	}

	m.FailWrites("/f.txt", nil)
	if err := m.WriteFile("/f.txt", []byte("saved"), DefaultPerm); err != nil {
		t.Errorf("expected write to succeed after clearing failure, got %v", err)
	}
}
