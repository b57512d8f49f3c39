package hexview

// Zone identifies which column a pointer gesture is operating in.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneData
	ZoneAscii
)

// PixelToWord converts pointer coordinates into a logical word index.
// x and y are viewport pixels (horizontal scroll already applied by the
// caller). The result is not bounds-checked; callers compare it against
// the data size before acting on it.
func (l Layout) PixelToWord(x, y int, zone Zone, scroll ScrollWindow) int64 {
	cw := l.Cell.Width

	switch zone {
	case ZoneData:
		// the right edge of a box is kinda quirky, so we pretend there is
		// one extra character there
		x = clamp(x, l.Line1(), l.Line2()+cw)
		x -= l.Line1()

		// pixels to characters, rounding to the nearest boundary
		col := x / cw
		if 2*(x%cw) >= cw {
			col++
		}
		x = col / (l.CharsPerWord() + 1)
	case ZoneAscii:
		x = clamp(x, l.AsciiDumpLeft(), l.Line3())
		x -= l.AsciiDumpLeft()
		x /= cw
		x /= l.WordWidth
	default:
		return -1
	}

	y /= l.Cell.Height

	// word index of the first fully visible word; a partial leading word
	// at the top of the viewport is skipped
	startWord := scroll.NormalizedOffset(int64(l.BytesPerRow())) / int64(l.WordWidth)
	if scroll.Origin%int64(l.WordWidth) != 0 {
		startWord++
	}

	return int64(y)*int64(l.RowWidth) + int64(x) + startWord
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
