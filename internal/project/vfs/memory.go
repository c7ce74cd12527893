package vfs

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"
)

// MemFS implements VFS using an in-memory file system.
// It is primarily used for testing.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu        sync.RWMutex
	files     map[string]*memFile
	dirs      map[string]bool
	writeErrs map[string]error
	now       func() time.Time
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files:     make(map[string]*memFile),
		dirs:      map[string]bool{"/": true},
		writeErrs: make(map[string]error),
		now:       time.Now,
	}
}

// Ensure MemFS implements VFS.
var _ VFS = (*MemFS)(nil)

// AddFile creates a file with the given content, creating parent
// directories as needed.
func (m *MemFS) AddFile(filePath, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	m.mkdirAll(path.Dir(filePath))
	m.files[filePath] = &memFile{
		content: []byte(content),
		mode:    DefaultPerm,
		modTime: m.now(),
	}
}

// AddDir creates a directory and its parents.
func (m *MemFS) AddDir(dirPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mkdirAll(m.cleanPath(dirPath))
}

// FailWrites makes every WriteFile to filePath return err until cleared
// with a nil err.
func (m *MemFS) FailWrites(filePath string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	if err == nil {
		delete(m.writeErrs, filePath)
		return
	}
	m.writeErrs[filePath] = err
}

// Content returns the file content as a string and whether it exists.
func (m *MemFS) Content(filePath string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[m.cleanPath(filePath)]
	if !ok {
		return "", false
	}
	return string(f.content), true
}

// Open opens a file for reading.
func (m *MemFS) Open(filePath string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "open", Path: filePath, Err: ErrIsDir}
		}
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}

	return io.NopCloser(bytes.NewReader(bytes.Clone(f.content))), nil
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: ErrIsDir}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}

	return bytes.Clone(f.content), nil
}

// WriteFile replaces the file content with data.
func (m *MemFS) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = m.cleanPath(filePath)
	if err, ok := m.writeErrs[filePath]; ok {
		return &fs.PathError{Op: "write", Path: filePath, Err: err}
	}
	if m.dirs[filePath] {
		return &fs.PathError{Op: "open", Path: filePath, Err: ErrIsDir}
	}
	if !m.dirs[path.Dir(filePath)] {
		return &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}

	f, ok := m.files[filePath]
	if !ok {
		f = &memFile{mode: perm}
		m.files[filePath] = f
	}
	f.content = bytes.Clone(data)
	f.modTime = m.now()
	return nil
}

// Exists returns true if the path exists.
func (m *MemFS) Exists(filePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = m.cleanPath(filePath)
	_, ok := m.files[filePath]
	return ok || m.dirs[filePath]
}

// IsDir returns true if the path is a directory.
func (m *MemFS) IsDir(filePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[m.cleanPath(filePath)]
}

// mkdirAll must be called with the lock held.
func (m *MemFS) mkdirAll(dirPath string) {
	for dirPath != "/" && dirPath != "." {
		m.dirs[dirPath] = true
		dirPath = path.Dir(dirPath)
	}
}

// cleanPath makes every path absolute; relative paths are resolved
// against the root.
func (m *MemFS) cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
