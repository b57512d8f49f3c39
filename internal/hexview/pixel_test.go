package hexview

import "testing"

func TestPixelToWordDataZone(t *testing.T) {
	l := defaultLayout()
	var s ScrollWindow

	tests := []struct {
		name string
		x, y int
		want int64
	}{
		{"first word", l.HexDumpLeft() + 4, 0, 0},
		{"word 3 center", l.HexDumpLeft() + 3*3*8 + 8, 0, 3},
		{"last word of row", l.HexDumpLeft() + 15*3*8 + 8, 0, 15},
		{"second row", l.HexDumpLeft() + 4, 16, 16},
		{"third row word 2", l.HexDumpLeft() + 2*3*8 + 8, 35, 34},
		{"left of hex clamps to word 0", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.PixelToWord(tt.x, tt.y, ZoneData, s); got != tt.want {
				t.Errorf("PixelToWord(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPixelToWordRightEdgeSlack(t *testing.T) {
	l := defaultLayout()
	var s ScrollWindow

	// far right of the hex column clamps one character past line2 and can
	// land one past the last word; callers bound-check the result
	got := l.PixelToWord(10000, 0, ZoneData, s)
	if got != 16 {
		t.Errorf("PixelToWord far right = %d, want 16", got)
	}
}

func TestPixelToWordAsciiZone(t *testing.T) {
	l := defaultLayout()
	var s ScrollWindow

	tests := []struct {
		name string
		x, y int
		want int64
	}{
		{"first byte", l.AsciiDumpLeft() + 2, 0, 0},
		{"byte 5", l.AsciiDumpLeft() + 5*8 + 3, 0, 5},
		{"second row byte 1", l.AsciiDumpLeft() + 8 + 3, 20, 17},
		{"right of column clamps", 10000, 0, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.PixelToWord(tt.x, tt.y, ZoneAscii, s); got != tt.want {
				t.Errorf("PixelToWord(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPixelToWordAsciiMultiByteWords(t *testing.T) {
	l := defaultLayout()
	l.WordWidth = 4
	l.RowWidth = 4
	var s ScrollWindow

	// four characters of ascii map to one word
	if got := l.PixelToWord(l.AsciiDumpLeft()+6*8, 0, ZoneAscii, s); got != 1 {
		t.Errorf("ascii byte 6 = word %d, want 1", got)
	}
}

func TestPixelToWordScrolled(t *testing.T) {
	l := defaultLayout()
	s := ScrollWindow{Row: 4}

	// 4 rows down, 16 words per row
	if got := l.PixelToWord(l.HexDumpLeft()+4, 0, ZoneData, s); got != 64 {
		t.Errorf("scrolled word = %d, want 64", got)
	}
}

func TestPixelToWordSkipsPartialLeadingWord(t *testing.T) {
	l := defaultLayout()
	l.WordWidth = 4
	l.RowWidth = 4

	// origin 2 is not word aligned, so the top row starts mid-word and
	// the first full word is one further in
	s := ScrollWindow{Row: 1, Origin: 2}
	if got := l.PixelToWord(l.HexDumpLeft()+4, 0, ZoneData, s); got != 1 {
		t.Errorf("word with partial lead = %d, want 1", got)
	}

	// word-aligned origin keeps the direct mapping
	s = ScrollWindow{Row: 1, Origin: 4}
	if got := l.PixelToWord(l.HexDumpLeft()+4, 0, ZoneData, s); got != 1 {
		t.Errorf("word with aligned origin = %d, want 1", got)
	}
}

func TestPixelToWordRoundTrip(t *testing.T) {
	l := defaultLayout()
	var s ScrollWindow

	// the center of every drawn word rectangle must map back to that word
	for i := 0; i < l.RowWidth; i++ {
		left := l.HexDumpLeft() + i*(l.CharsPerWord()+1)*l.Cell.Width
		width := l.CharsPerWord() * l.Cell.Width
		x := left + width/2
		if got := l.PixelToWord(x, 0, ZoneData, s); got != int64(i) {
			t.Errorf("center of word %d maps to %d", i, got)
		}
	}
}

func TestPixelToWordUnknownZone(t *testing.T) {
	l := defaultLayout()
	if got := l.PixelToWord(100, 0, ZoneNone, ScrollWindow{}); got != -1 {
		t.Errorf("ZoneNone = %d, want -1", got)
	}
}
