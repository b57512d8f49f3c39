package hexview

// CellMetrics is the size of one character cell in pixels. A GUI host
// feeds font metrics in; a terminal host picks a fixed cell size and
// converts cell coordinates to pixels before calling the engine.
type CellMetrics struct {
	Width  int
	Height int
}

// Layout computes the horizontal geometry of the view: the left edge of
// each column and the three divider lines between them. It is a pure
// value; derive a fresh one whenever the configuration or metrics change
// and do not cache it across such changes.
type Layout struct {
	Cell                    CellMetrics
	RowWidth                int // words per row
	WordWidth               int // bytes per word
	AddressSize             AddressSize
	ShowAddress             bool
	ShowHex                 bool
	ShowAscii               bool
	ShowAddressSeparator    bool
	HideLeadingAddressZeros bool
}

func (l Layout) BytesPerRow() int {
	return l.RowWidth * l.WordWidth
}

// CharsPerWord returns how many characters one word occupies in the hex
// column, excluding the separating space.
func (l Layout) CharsPerWord() int {
	return l.WordWidth * 2
}

func (l Layout) AddressLen() int {
	return AddressLen(l.AddressSize, l.ShowAddressSeparator, l.HideLeadingAddressZeros)
}

// Line1 is the divider between the address and hex columns.
func (l Layout) Line1() int {
	if !l.ShowAddress {
		return 0
	}
	return l.AddressLen()*l.Cell.Width + l.Cell.Width/2
}

func (l Layout) HexDumpLeft() int {
	return l.Line1() + l.Cell.Width/2
}

// Line2 is the divider between the hex and ascii columns.
func (l Layout) Line2() int {
	if !l.ShowHex {
		return l.Line1()
	}
	chars := l.RowWidth*(l.CharsPerWord()+1) - 1
	return l.HexDumpLeft() + chars*l.Cell.Width + l.Cell.Width/2
}

func (l Layout) AsciiDumpLeft() int {
	return l.Line2() + l.Cell.Width/2
}

// Line3 is the divider between the ascii and comment columns.
func (l Layout) Line3() int {
	if !l.ShowAscii {
		return l.Line2()
	}
	return l.AsciiDumpLeft() + l.BytesPerRow()*l.Cell.Width + l.Cell.Width/2
}

func (l Layout) CommentLeft() int {
	return l.Line3() + l.Cell.Width/2
}
