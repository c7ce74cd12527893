package backend

import (
	"errors"
	"io"
	"testing"
)

func TestNullBackendRawMode(t *testing.T) {
	b := NewNullBackend(24, 80)

	if err := b.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode: %v", err)
	}
	if !b.IsRaw() {
		t.Error("expected raw mode")
	}
	if err := b.RestoreMode(); err != nil {
		t.Fatalf("RestoreMode: %v", err)
	}
	if b.IsRaw() {
		t.Error("expected cooked mode")
	}
}

func TestNullBackendWindowSize(t *testing.T) {
	b := NewNullBackend(24, 80)

	rows, cols, err := b.WindowSize()
	if err != nil || rows != 24 || cols != 80 {
		t.Errorf("WindowSize = (%d, %d, %v), want (24, 80, nil)", rows, cols, err)
	}

	b.FailWindowSize(ErrWindowSize)
	if _, _, err := b.WindowSize(); !errors.Is(err, ErrWindowSize) {
		t.Errorf("expected ErrWindowSize, got %v", err)
	}
}

func TestNullBackendReadScript(t *testing.T) {
	b := NewNullBackend(24, 80)
	b.Type("ab")
	b.Timeout()
	b.Type("c")

	var got []string
	buf := make([]byte, 8)
	for {
		n, err := b.Read(buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		got = append(got, string(buf[:n]))
	}

	want := []string{"a", "b", "", "c"}
	if len(got) != len(want) {
		t.Fatalf("reads = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("read %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNullBackendWrite(t *testing.T) {
	b := NewNullBackend(24, 80)
	_, _ = b.Write([]byte(ClearScreen))

	if string(b.Output()) != ClearScreen {
		t.Errorf("Output = %q", b.Output())
	}
	b.ResetOutput()
	if len(b.Output()) != 0 {
		t.Error("ResetOutput did not clear output")
	}
}

func TestMoveCursor(t *testing.T) {
	if got := MoveCursor(0, 0); got != "\x1b[1;1H" {
		t.Errorf("MoveCursor(0,0) = %q", got)
	}
	if got := MoveCursor(9, 41); got != "\x1b[10;42H" {
		t.Errorf("MoveCursor(9,41) = %q", got)
	}
}

func TestParseCursorReport(t *testing.T) {
	tests := []struct {
		in         string
		rows, cols int
		wantErr    bool
	}{
		{"\x1b[24;80R", 24, 80, false},
		{"\x1b[50;132", 50, 132, false},
		{"[24;80R", 0, 0, true},
		{"\x1b[;R", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		rows, cols, err := ParseCursorReport([]byte(tt.in))
		if tt.wantErr {
			if !errors.Is(err, ErrCursorResponse) {
				t.Errorf("ParseCursorReport(%q) error = %v, want ErrCursorResponse", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCursorReport(%q): %v", tt.in, err)
			continue
		}
		if rows != tt.rows || cols != tt.cols {
			t.Errorf("ParseCursorReport(%q) = (%d, %d), want (%d, %d)", tt.in, rows, cols, tt.rows, tt.cols)
		}
	}
}
