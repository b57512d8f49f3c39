package hexview

import "testing"

func TestScrollToRowAligned(t *testing.T) {
	var s ScrollWindow
	s.MaxRow = 100

	s.ScrollTo(0x40, 16)
	if s.Row != 4 || s.Origin != 0 {
		t.Errorf("row/origin = %d/%d, want 4/0", s.Row, s.Origin)
	}
	if got := s.NormalizedOffset(16); got != 0x40 {
		t.Errorf("NormalizedOffset = %#x, want 0x40", got)
	}
}

func TestScrollToUnaligned(t *testing.T) {
	var s ScrollWindow
	s.MaxRow = 100

	// the requested byte becomes the first visible byte, so the row is
	// bumped past it and the origin holds the remainder
	s.ScrollTo(0x45, 16)
	if s.Row != 5 || s.Origin != 5 {
		t.Errorf("row/origin = %d/%d, want 5/5", s.Row, s.Origin)
	}
	if got := s.NormalizedOffset(16); got != 0x45 {
		t.Errorf("NormalizedOffset = %#x, want 0x45", got)
	}
}

func TestNormalizedOffsetAtTop(t *testing.T) {
	s := ScrollWindow{Row: 0, Origin: 5}
	if got := s.NormalizedOffset(16); got != 0 {
		t.Errorf("NormalizedOffset at top = %d, want 0", got)
	}
}

func TestUpdateBoundsEmptyData(t *testing.T) {
	var s ScrollWindow
	s.UpdateBounds(0, 16, 25, 660, 640, 8)
	if s.MaxRow != 0 {
		t.Errorf("MaxRow for empty data = %d, want 0", s.MaxRow)
	}
	if s.MaxHScroll != 2 {
		t.Errorf("MaxHScroll = %d, want 2", s.MaxHScroll)
	}
}

func TestUpdateBoundsPartialLastRow(t *testing.T) {
	var s ScrollWindow

	// 100 bytes at 16 per row is 7 rows; 5 visible leaves 2 to scroll
	s.UpdateBounds(100, 16, 5, 0, 800, 8)
	if s.MaxRow != 2 {
		t.Errorf("MaxRow = %d, want 2", s.MaxRow)
	}
	if s.MaxHScroll != 0 {
		t.Errorf("MaxHScroll = %d, want 0", s.MaxHScroll)
	}
}

func TestUpdateBoundsClampsPosition(t *testing.T) {
	s := ScrollWindow{Row: 50, HScroll: 10}
	s.UpdateBounds(100, 16, 5, 0, 800, 8)
	if s.Row != 2 {
		t.Errorf("Row = %d, want clamp to 2", s.Row)
	}
	if s.HScroll != 0 {
		t.Errorf("HScroll = %d, want clamp to 0", s.HScroll)
	}
}

func TestUpdateBoundsTallViewport(t *testing.T) {
	var s ScrollWindow
	s.UpdateBounds(100, 16, 50, 0, 800, 8)
	if s.MaxRow != 0 {
		t.Errorf("MaxRow = %d, want 0 when everything fits", s.MaxRow)
	}
}
