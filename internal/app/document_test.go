package app

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/charlie/internal/engine/buffer"
	"github.com/dshills/charlie/internal/project/vfs"
)

func TestDocument_Open(t *testing.T) {
	mem := vfs.NewMemFS()
	mem.AddFile("/doc.txt", "a\tb\r\nhello\n")

	doc := NewDocument(mem, buffer.WithTabStop(4))
	if err := doc.Open("/doc.txt"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if doc.Filename() != "/doc.txt" {
		t.Errorf("expected filename /doc.txt, got %q", doc.Filename())
	}
	if diff := cmp.Diff([]string{"a\tb", "hello"}, doc.Store().Lines()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if got := string(doc.Row(0).Render()); got != "a   b" {
		t.Errorf("expected render %q, got %q", "a   b", got)
	}
	if got := doc.Row(0).CharToRender(2); got != 4 {
		t.Errorf("expected render column 4, got %d", got)
	}
	if doc.IsDirty() {
		t.Error("freshly opened document should be clean")
	}
}

func TestDocument_OpenMissingKeepsContent(t *testing.T) {
	mem := vfs.NewMemFS()
	mem.AddFile("/keep.txt", "keep\n")

	doc := NewDocument(mem)
	if err := doc.Open("/keep.txt"); err != nil {
		t.Fatal(err)
	}

	err := doc.Open("/missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open" {
		t.Errorf("expected open OperationError, got %v", err)
	}
	if doc.Filename() != "/keep.txt" {
		t.Errorf("filename changed to %q", doc.Filename())
	}
	if diff := cmp.Diff([]string{"keep"}, doc.Store().Lines()); diff != "" {
		t.Errorf("rows changed (-want +got):\n%s", diff)
	}
}

func TestDocument_Save(t *testing.T) {
	mem := vfs.NewMemFS()
	doc := NewDocument(mem)

	if _, err := doc.Save(); !errors.Is(err, ErrNoFilename) {
		t.Fatalf("expected ErrNoFilename, got %v", err)
	}

	_ = doc.Store().InsertRow(0, []byte("one"))
	_ = doc.Store().InsertRow(1, []byte("two"))
	doc.SetFilename("/out.txt")

	n, err := doc.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if n != 8 {
		t.Errorf("expected 8 bytes, got %d", n)
	}
	if got, _ := mem.Content("/out.txt"); got != "one\ntwo\n" {
		t.Errorf("expected %q on disk, got %q", "one\ntwo\n", got)
	}
	if doc.IsDirty() {
		t.Error("document should be clean after save")
	}
}

func TestDocument_SaveFailureKeepsDirty(t *testing.T) {
	mem := vfs.NewMemFS()
	diskFull := errors.New("no space left on device")
	mem.FailWrites("/out.txt", diskFull)

	doc := NewDocument(mem)
	doc.SetFilename("/out.txt")
	_ = doc.Store().InsertRow(0, []byte("data"))

	if _, err := doc.Save(); !errors.Is(err, diskFull) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if !doc.IsDirty() {
		t.Error("failed save must leave the document dirty")
	}
	if mem.Exists("/out.txt") {
		t.Error("failed save must not create the file")
	}
}
