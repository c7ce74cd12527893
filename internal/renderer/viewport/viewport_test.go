package viewport

import (
	"testing"
)

func TestNew(t *testing.T) {
	v := New(22, 80)

	if v.Rows() != 22 {
		t.Errorf("expected 22 rows, got %d", v.Rows())
	}
	if v.Cols() != 80 {
		t.Errorf("expected 80 cols, got %d", v.Cols())
	}
	if v.RowOffset() != 0 || v.ColOffset() != 0 {
		t.Errorf("expected zero offsets, got %d,%d", v.RowOffset(), v.ColOffset())
	}
}

func TestResizeClamps(t *testing.T) {
	v := New(0, -4)

	if v.Rows() != 1 || v.Cols() != 1 {
		t.Errorf("expected 1x1, got %dx%d", v.Rows(), v.Cols())
	}
}

func TestRecompute(t *testing.T) {
	tests := []struct {
		name             string
		cy, cx           int
		rowOff, colOff   int
		wantRow, wantCol int
	}{
		{"inside", 5, 5, 0, 0, 0, 0},
		{"above", 2, 0, 10, 0, 2, 0},
		{"below", 30, 0, 0, 0, 21, 0},
		{"last visible row", 9, 0, 0, 0, 0, 0},
		{"first hidden row", 10, 0, 0, 0, 1, 0},
		{"left of view", 0, 3, 0, 8, 0, 3},
		{"right of view", 0, 25, 0, 0, 0, 6},
		{"virtual row", 40, 0, 35, 0, 35, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotRow, gotCol := Recompute(tt.cy, tt.cx, 10, 20, tt.rowOff, tt.colOff)
			if gotRow != tt.wantRow || gotCol != tt.wantCol {
				t.Errorf("Recompute = (%d,%d), want (%d,%d)", gotRow, gotCol, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	v := New(4, 10)

	for cy := 0; cy < 50; cy += 3 {
		for _, cx := range []int{0, 9, 10, 37, 2} {
			v.Scroll(cy, cx)
			if !v.IsRowVisible(cy) {
				t.Fatalf("row %d not visible with offset %d", cy, v.RowOffset())
			}
			row, col := v.ScreenPosition(cy, cx)
			if row < 0 || row >= v.Rows() || col < 0 || col >= v.Cols() {
				t.Fatalf("cursor (%d,%d) maps to screen (%d,%d)", cy, cx, row, col)
			}
		}
	}
}

func TestScrollIsMinimal(t *testing.T) {
	v := New(5, 10)
	v.Scroll(7, 0)
	if v.RowOffset() != 3 {
		t.Fatalf("expected offset 3, got %d", v.RowOffset())
	}

	// Moving within the visible rows must not scroll.
	v.Scroll(4, 0)
	if v.RowOffset() != 3 {
		t.Errorf("offset moved to %d while cursor stayed visible", v.RowOffset())
	}
}

func TestReset(t *testing.T) {
	v := New(5, 5)
	v.Scroll(20, 20)
	v.Reset()

	if v.RowOffset() != 0 || v.ColOffset() != 0 {
		t.Errorf("Reset left offsets %d,%d", v.RowOffset(), v.ColOffset())
	}
}

func TestSetOffsets(t *testing.T) {
	v := New(5, 5)
	v.SetOffsets(-3, 7)
	if v.RowOffset() != 0 || v.ColOffset() != 7 {
		t.Fatalf("expected offsets 0,7, got %d,%d", v.RowOffset(), v.ColOffset())
	}

	// A match placed past the cursor scrolls back so the cursor row is on top.
	v.SetOffsets(100, 0)
	v.Scroll(12, 0)
	if v.RowOffset() != 12 {
		t.Errorf("expected cursor row at top (offset 12), got %d", v.RowOffset())
	}
}
