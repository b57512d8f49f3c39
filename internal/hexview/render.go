package hexview

import (
	"fmt"
	"strings"

	"hexview/internal/document"
)

// SpanKind is a color hint attached to rendered text. The host decides
// what each hint looks like.
type SpanKind int

const (
	SpanNormal SpanKind = iota
	SpanSelected
	SpanAlternate
	SpanCold
	SpanNonPrintable
)

// Span is a run of characters sharing one style hint.
type Span struct {
	Text string
	Kind SpanKind
}

// RenderedRow is everything a host needs to paint one visible row.
type RenderedRow struct {
	Offset      int64
	Address     string
	AddressCold bool
	Hex         []Span
	Ascii       []Span
	Comment     string
}

// isPrintable reports whether a byte has a printable symbol. Standard
// ascii follows isprint/isspace; for the rest we go with observation.
func isPrintable(ch byte) bool {
	if ch < 0x80 {
		switch ch {
		case '\t', '\n', '\v', '\f', '\r':
			return true
		}
		return ch >= 0x20 && ch <= 0x7e
	}
	return ch >= 0xa0
}

// inColdZone reports whether a row offset falls below the configured
// cold-zone end address.
func (v *View) inColdZone(offset int64) bool {
	return v.coldZoneEnd > v.addressOffset && uint64(offset) < v.coldZoneEnd-v.addressOffset
}

// RenderRows produces the currently visible rows. A scroll origin that
// resolves to the very top of the document is reset here rather than
// treated as an error.
func (v *View) RenderRows() ([]RenderedRow, error) {
	bpr := int64(v.BytesPerRow())

	offset := v.scroll.Row * bpr
	if v.scroll.Origin != 0 {
		if offset > 0 {
			offset += v.scroll.Origin
			offset -= bpr
		} else {
			v.scroll.Origin = 0
			v.updateBounds()
		}
	}

	size := v.DataSize()
	wordCount := 0

	var rows []RenderedRow
	for n := 0; n < v.viewRows && offset < size; n++ {
		window, err := document.ReadWindow(v.doc, offset, int(bpr))
		if err != nil {
			return nil, err
		}

		if len(window) > 0 {
			row := RenderedRow{Offset: offset}
			cold := v.inColdZone(offset)

			if v.showAddress {
				row.Address = FormatAddress(v.addressOffset+uint64(offset), v.addressSize, v.showAddressSeparator, v.hideLeadingZeros)
				row.AddressCold = cold
			}
			if v.showHex {
				row.Hex = v.hexSpans(offset, size, window, &wordCount, cold)
			}
			if v.showAscii {
				row.Ascii = v.asciiSpans(offset, size, window, cold)
			}
			if v.showComments && v.comments != nil {
				row.Comment = v.comments.Comment(v.addressOffset+uint64(offset), v.wordWidth)
			}
			rows = append(rows, row)
		}

		offset += bpr
	}
	return rows, nil
}

func (v *View) hexSpans(offset, size int64, window []byte, wordCount *int, cold bool) []Span {
	ww := int64(v.wordWidth)
	var spans []Span

	for i := 0; i < v.rowWidth; i++ {
		index := offset + int64(i)*ww

		// test the end of the word, not the start; it may end at the very
		// last byte
		if index+ww > size {
			break
		}

		text := FormatWord(window[int64(i)*ww : (int64(i)+1)*ww])

		kind := SpanNormal
		selected := v.IsSelected(index)
		switch {
		case selected:
			kind = SpanSelected
		case cold:
			kind = SpanCold
		case *wordCount&1 == 1:
			kind = SpanAlternate
		}
		spans = append(spans, Span{Text: text, Kind: kind})
		*wordCount++

		if i != v.rowWidth-1 {
			gap := SpanNormal
			if selected && v.IsSelected(index+1) {
				gap = SpanSelected
			}
			spans = append(spans, Span{Text: " ", Kind: gap})
		}
	}
	return spans
}

func (v *View) asciiSpans(offset, size int64, window []byte, cold bool) []Span {
	var spans []Span

	for i := 0; i < v.BytesPerRow(); i++ {
		index := offset + int64(i)
		if index >= size || i >= len(window) {
			break
		}

		ch := window[i]
		printable := isPrintable(ch)
		text := string(ch)
		if !printable {
			text = string(v.unprintableChar)
		}

		kind := SpanNormal
		switch {
		case v.IsSelected(index):
			kind = SpanSelected
		case cold:
			kind = SpanCold
		case !printable:
			kind = SpanNonPrintable
		}
		spans = append(spans, Span{Text: text, Kind: kind})
	}
	return spans
}

// CopyText flattens the rows intersecting the selection into
// pipe-delimited lines: address|hex|ascii|comment. Unselected positions
// inside a partially selected row come out as spaces so columns stay
// aligned when pasted.
func (v *View) CopyText() (string, error) {
	if !v.HasSelection() {
		return "", nil
	}

	bpr := int64(v.BytesPerRow())
	start, end := v.sel.Bounds()
	size := v.DataSize()

	var b strings.Builder
	offset := v.NormalizedOffset()

	for offset < end {
		if offset+bpr > start {
			window, err := document.ReadWindow(v.doc, offset, int(bpr))
			if err != nil {
				return "", err
			}

			if len(window) > 0 {
				if v.showAddress {
					b.WriteString(FormatAddress(v.addressOffset+uint64(offset), v.addressSize, v.showAddressSeparator, v.hideLeadingZeros))
					b.WriteByte('|')
				}
				if v.showHex {
					v.hexDumpToBuffer(&b, offset, size, window)
					b.WriteByte('|')
				}
				if v.showAscii {
					v.asciiDumpToBuffer(&b, offset, size, window)
					b.WriteByte('|')
				}
				if v.showComments && v.comments != nil {
					b.WriteString(v.comments.Comment(v.addressOffset+uint64(offset), v.wordWidth))
				}
			}
			b.WriteByte('\n')
		}
		offset += bpr
	}
	return b.String(), nil
}

func (v *View) hexDumpToBuffer(b *strings.Builder, offset, size int64, window []byte) {
	ww := int64(v.wordWidth)
	for i := 0; i < v.rowWidth; i++ {
		index := offset + int64(i)*ww
		if index+ww > size {
			break
		}

		text := FormatWord(window[int64(i)*ww : (int64(i)+1)*ww])
		if v.IsSelected(index) {
			b.WriteString(text)
		} else {
			b.WriteString(strings.Repeat(" ", len(text)))
		}
		if i != v.rowWidth-1 {
			b.WriteByte(' ')
		}
	}
}

func (v *View) asciiDumpToBuffer(b *strings.Builder, offset, size int64, window []byte) {
	for i := 0; i < v.BytesPerRow(); i++ {
		index := offset + int64(i)
		if index >= size || i >= len(window) {
			break
		}

		if v.IsSelected(index) {
			ch := window[i]
			printable := ch < 0x80 && ch >= 0x20 && ch <= 0x7e
			if printable {
				b.WriteByte(ch)
			} else {
				b.WriteByte(v.unprintableChar)
			}
		} else {
			b.WriteByte(' ')
		}
	}
}

// CopyAddressText renders the starting address of the selection for
// clipboard export.
func (v *View) CopyAddressText() string {
	if !v.HasSelection() {
		return ""
	}
	return fmt.Sprintf("0x%x", v.SelectedBytesAddress())
}
