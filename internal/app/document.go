package app

import (
	"github.com/dshills/charlie/internal/engine/buffer"
	"github.com/dshills/charlie/internal/project/vfs"
)

// Document is the file being edited: its rows, dirty state and name.
type Document struct {
	store    *buffer.Store
	filename string
	fs       vfs.VFS
}

// NewDocument creates an empty, unnamed document backed by fsys.
func NewDocument(fsys vfs.VFS, opts ...buffer.Option) *Document {
	if fsys == nil {
		fsys = vfs.NewOSFS()
	}
	return &Document{
		store: buffer.New(opts...),
		fs:    fsys,
	}
}

// Store returns the row store.
func (d *Document) Store() *buffer.Store {
	return d.store
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return d.store.Len()
}

// Row returns row i, or nil if out of range.
func (d *Document) Row(i int) *buffer.Row {
	return d.store.Row(i)
}

// Filename returns the file name, empty for a new document.
func (d *Document) Filename() string {
	return d.filename
}

// SetFilename names the document. The next Save writes there.
func (d *Document) SetFilename(name string) {
	d.filename = name
}

// IsDirty reports whether the document has unsaved changes.
func (d *Document) IsDirty() bool {
	return d.store.IsDirty()
}

// Open replaces the content with the file at path. On failure the
// document is left untouched.
func (d *Document) Open(path string) error {
	rc, err := d.fs.Open(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}
	defer rc.Close()

	if err := d.store.Load(rc); err != nil {
		return NewOperationError("read", path, err)
	}
	d.filename = path
	return nil
}

// Save writes every row followed by '\n' to the document's file and
// returns the number of bytes written. The dirty state only changes on
// success.
func (d *Document) Save() (int, error) {
	if d.filename == "" {
		return 0, ErrNoFilename
	}
	data := d.store.Serialize()
	if err := d.fs.WriteFile(d.filename, data, vfs.DefaultPerm); err != nil {
		return 0, NewOperationError("save", d.filename, err)
	}
	d.store.MarkClean()
	return len(data), nil
}
