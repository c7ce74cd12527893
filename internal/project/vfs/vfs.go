// Package vfs provides the file system abstraction the editor loads and
// saves documents through.
//
// OSFS talks to the operating system. MemFS keeps everything in memory
// and is used by tests to exercise load, save and failure paths without
// touching the disk.
package vfs

import (
	"errors"
	"io"
	"io/fs"
)

// DefaultPerm is the permission used when saving creates a new file.
const DefaultPerm fs.FileMode = 0644

// ErrIsDir indicates a directory was given where a file was expected.
var ErrIsDir = errors.New("is a directory")

// VFS is the set of file operations the editor needs. Implementations
// must not keep handles open across calls.
type VFS interface {
	// Open opens a file for reading. The caller closes it.
	Open(path string) (io.ReadCloser, error)

	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file content with data. The file is opened
	// read-write (created with perm if missing), truncated to len(data),
	// then written. A short write is reported as io.ErrShortWrite.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Exists returns true if the path exists.
	Exists(path string) bool

	// IsDir returns true if the path is a directory.
	IsDir(path string) bool
}
