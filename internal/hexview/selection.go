package hexview

// Selection is a half-open byte range [Start, End). Start may exceed End
// during a backward drag; the selected interval is always
// [min(Start,End), max(Start,End)). Both fields are -1 together when
// nothing is selected, never independently.
type Selection struct {
	Start int64
	End   int64
}

func NewSelection() Selection {
	return Selection{Start: -1, End: -1}
}

func (s Selection) Active() bool {
	return !(s.Start == -1 || s.End == -1)
}

// Bounds returns the normalized interval [lo, hi).
func (s Selection) Bounds() (lo, hi int64) {
	if s.Start <= s.End {
		return s.Start, s.End
	}
	return s.End, s.Start
}

// Contains reports whether the byte at index is selected. Indexes at or
// past the data size are never selected, and an empty range selects
// nothing.
func (s Selection) Contains(index, dataSize int64) bool {
	if index >= dataSize || s.Start == s.End {
		return false
	}
	lo, hi := s.Bounds()
	return index >= lo && index < hi
}

func (s *Selection) SelectAll(dataSize int64) {
	s.Start = 0
	s.End = dataSize
}

func (s *Selection) Clear() {
	s.Start = -1
	s.End = -1
}

// The keyboard extension rules below mirror common text editors only
// approximately: extending left or up keeps the first byte highlighted
// while retracting the end, and a selection exactly one word wide flips
// direction instead of collapsing to nothing.

func (s *Selection) KeyRight(wordWidth, dataSize int64) {
	if s.Start == s.End {
		s.Start -= wordWidth
	}
	if s.End/wordWidth < dataSize {
		s.End += wordWidth
	}
}

func (s *Selection) KeyLeft(wordWidth int64) {
	if s.End-wordWidth == s.Start {
		s.Start += wordWidth
		s.End -= wordWidth
	}
	if s.End/wordWidth > 0 {
		s.End -= wordWidth
	}
}

func (s *Selection) KeyDown(rowWidth, wordWidth, dataSize int64) {
	s.End += rowWidth
	if s.End > dataSize*wordWidth {
		s.End = dataSize * wordWidth
	}
}

func (s *Selection) KeyUp(rowWidth, wordWidth int64) {
	if s.End-wordWidth == s.Start {
		s.Start += wordWidth
	}
	s.End -= rowWidth
	if s.End < 0 {
		s.End = 0
	}
}
