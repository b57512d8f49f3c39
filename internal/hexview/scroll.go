package hexview

// ScrollWindow tracks the vertical scroll position at byte granularity.
// Row is the scrollbar's unit (one row = bytesPerRow bytes); Origin is the
// sub-row remainder that lets the view start at a non-row-aligned byte.
type ScrollWindow struct {
	Row    int64
	Origin int64

	MaxRow     int64
	MaxHScroll int
	HScroll    int
}

// ScrollTo positions the window so that offset is the first visible byte.
// A non-zero remainder bumps the row by one; NormalizedOffset undoes the
// bump when reporting the visible offset.
func (s *ScrollWindow) ScrollTo(offset, bytesPerRow int64) {
	s.Origin = offset % bytesPerRow
	row := offset / bytesPerRow
	if s.Origin != 0 {
		row++
	}
	s.Row = row
}

// NormalizedOffset returns the byte offset of the first visible byte.
func (s ScrollWindow) NormalizedOffset(bytesPerRow int64) int64 {
	offset := s.Row * bytesPerRow
	if s.Origin != 0 && offset > 0 {
		offset += s.Origin
		offset -= bytesPerRow
	}
	return offset
}

// UpdateBounds recomputes the scroll maxima from the data size and the
// viewport dimensions. viewWidthPx and line3 are in pixels.
func (s *ScrollWindow) UpdateBounds(dataSize, bytesPerRow int64, viewRows, line3, viewWidthPx, cellWidth int) {
	rows := dataSize / bytesPerRow
	if dataSize%bytesPerRow != 0 {
		rows++
	}
	maxRow := rows - int64(viewRows)
	if maxRow < 0 {
		maxRow = 0
	}
	s.MaxRow = maxRow
	s.Row = s.clampRow(s.Row)

	maxH := 0
	if cellWidth > 0 {
		maxH = (line3 - viewWidthPx) / cellWidth
	}
	if maxH < 0 {
		maxH = 0
	}
	s.MaxHScroll = maxH
	if s.HScroll > maxH {
		s.HScroll = maxH
	}
	if s.HScroll < 0 {
		s.HScroll = 0
	}
}

func (s ScrollWindow) clampRow(row int64) int64 {
	if row < 0 {
		return 0
	}
	if row > s.MaxRow {
		return s.MaxRow
	}
	return row
}
