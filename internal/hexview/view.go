package hexview

import (
	"fmt"

	"hexview/internal/document"
)

// View is the inspection engine for one document: it owns the display
// configuration, scroll state and selection, and turns pointer and key
// events into selection changes. It never draws; RenderRows and CopyText
// produce the strings and style hints a host renders or exports.
//
// All operations are synchronous and single-threaded; geometry derived
// from the configuration is recomputed on every change, never cached
// across one.
type View struct {
	doc      document.Document
	comments CommentProvider

	cell CellMetrics

	rowWidth    int
	wordWidth   int
	addressSize AddressSize

	showAddress          bool
	showHex              bool
	showAscii            bool
	showComments         bool
	showAddressSeparator bool
	hideLeadingZeros     bool
	unprintableChar      byte

	addressOffset uint64
	coldZoneEnd   uint64

	scroll ScrollWindow
	sel    Selection
	zone   Zone

	viewRows    int
	viewWidthPx int
}

func New(cell CellMetrics) *View {
	return &View{
		cell:                 cell,
		rowWidth:             16,
		wordWidth:            1,
		addressSize:          Address64,
		showAddress:          true,
		showHex:              true,
		showAscii:            true,
		showComments:         true,
		showAddressSeparator: true,
		unprintableChar:      '.',
		sel:                  NewSelection(),
	}
}

// Layout derives the current column geometry. The value is only good
// until the next configuration or metrics change.
func (v *View) Layout() Layout {
	return Layout{
		Cell:                    v.cell,
		RowWidth:                v.rowWidth,
		WordWidth:               v.wordWidth,
		AddressSize:             v.addressSize,
		ShowAddress:             v.showAddress,
		ShowHex:                 v.showHex,
		ShowAscii:               v.showAscii,
		ShowAddressSeparator:    v.showAddressSeparator,
		HideLeadingAddressZeros: v.hideLeadingZeros,
	}
}

func (v *View) DataSize() int64 {
	if v.doc == nil {
		return 0
	}
	return v.doc.Size()
}

// SetData replaces the document. The old selection would reference bytes
// of a different document, so it is always reset. Documents too large for
// 32-bit addresses force the 64-bit format.
func (v *View) SetData(doc document.Document) {
	v.doc = doc
	if doc != nil && doc.Size() > 0xffffffff {
		v.addressSize = Address64
	}
	v.sel.Clear()
	v.updateBounds()
}

// Clear drops the document reference and all selection state.
func (v *View) Clear() {
	v.doc = nil
	v.sel.Clear()
	v.updateBounds()
}

func (v *View) SetRowWidth(words int) error {
	switch words {
	case 1, 2, 4, 8, 16:
	default:
		return fmt.Errorf("invalid row width %d: must be 1, 2, 4, 8 or 16 words", words)
	}
	v.rowWidth = words
	v.updateBounds()
	return nil
}

func (v *View) SetWordWidth(bytes int) error {
	switch bytes {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("invalid word width %d: must be 1, 2, 4 or 8 bytes", bytes)
	}
	v.wordWidth = bytes
	v.updateBounds()
	return nil
}

func (v *View) RowWidth() int  { return v.rowWidth }
func (v *View) WordWidth() int { return v.wordWidth }

func (v *View) BytesPerRow() int { return v.rowWidth * v.wordWidth }

func (v *View) AddressSize() AddressSize { return v.addressSize }

func (v *View) SetAddressSize(size AddressSize) {
	v.addressSize = size
	v.updateBounds()
}

func (v *View) SetMetrics(cell CellMetrics) {
	v.cell = cell
	v.updateBounds()
}

// SetViewport records the viewport dimensions: visible rows and width in
// pixels. Scroll bounds follow from them.
func (v *View) SetViewport(rows, widthPx int) {
	v.viewRows = rows
	v.viewWidthPx = widthPx
	v.updateBounds()
}

func (v *View) SetShowAddress(show bool) { v.showAddress = show; v.updateBounds() }

func (v *View) SetShowHexDump(show bool) { v.showHex = show; v.updateBounds() }

func (v *View) SetShowAsciiDump(show bool) { v.showAscii = show; v.updateBounds() }

func (v *View) SetShowComments(show bool) { v.showComments = show; v.updateBounds() }

func (v *View) SetShowAddressSeparator(show bool) {
	v.showAddressSeparator = show
	v.updateBounds()
}

func (v *View) SetHideLeadingAddressZeros(hide bool) {
	v.hideLeadingZeros = hide
	v.updateBounds()
}

func (v *View) ShowAddress() bool { return v.showAddress }

func (v *View) ShowHexDump() bool { return v.showHex }

func (v *View) ShowAsciiDump() bool { return v.showAscii }

func (v *View) ShowComments() bool { return v.showComments }

func (v *View) ShowAddressSeparator() bool { return v.showAddressSeparator }

func (v *View) HideLeadingAddressZeros() bool { return v.hideLeadingZeros }

func (v *View) SetUnprintableChar(ch byte) { v.unprintableChar = ch }

func (v *View) SetAddressOffset(offset uint64) { v.addressOffset = offset }

func (v *View) AddressOffset() uint64 { return v.addressOffset }

// SetColdZoneEnd marks addresses below offset as the cold zone; they
// render muted to denote bytes before the meaningful data start.
func (v *View) SetColdZoneEnd(offset uint64) { v.coldZoneEnd = offset }

func (v *View) SetCommentProvider(p CommentProvider) { v.comments = p }

func (v *View) Scroll() ScrollWindow { return v.scroll }

// ScrollTo makes offset the first visible byte.
func (v *View) ScrollTo(offset int64) {
	if offset < 0 {
		offset = 0
	}
	v.updateBounds()
	v.scroll.ScrollTo(offset, int64(v.BytesPerRow()))
	if v.scroll.Row > v.scroll.MaxRow {
		v.scroll.Row = v.scroll.MaxRow
	}
}

// ScrollRows moves the window by whole rows, clearing any sub-row origin.
func (v *View) ScrollRows(delta int64) {
	row := v.scroll.Row + delta
	if row < 0 {
		row = 0
	}
	if row > v.scroll.MaxRow {
		row = v.scroll.MaxRow
	}
	v.scroll.Row = row
	v.scroll.Origin = 0
}

func (v *View) NormalizedOffset() int64 {
	return v.scroll.NormalizedOffset(int64(v.BytesPerRow()))
}

// FirstVisibleAddress is the rendered address of the first visible byte.
func (v *View) FirstVisibleAddress() uint64 {
	return uint64(v.NormalizedOffset()) + v.addressOffset
}

func (v *View) updateBounds() {
	l := v.Layout()
	v.scroll.UpdateBounds(v.DataSize(), int64(l.BytesPerRow()), v.viewRows, l.Line3(), v.viewWidthPx, v.cell.Width)
}

// wordToByteOffset converts a word index from PixelToWord back into a
// byte offset, accounting for the partial leading word a non-word-aligned
// origin puts at the top of the viewport.
func (v *View) wordToByteOffset(word int64) int64 {
	ww := int64(v.wordWidth)
	offset := word * ww
	if v.scroll.Origin != 0 && v.scroll.Origin%ww != 0 {
		offset -= ww - v.scroll.Origin%ww
	}
	return offset
}

// MousePress starts or extends a selection. x and y are viewport pixels.
// A press past the end of the data deselects.
func (v *View) MousePress(x, y int, shift bool) {
	l := v.Layout()
	x += v.scroll.HScroll * v.cell.Width

	if x < l.Line2() {
		v.zone = ZoneData
	} else {
		v.zone = ZoneAscii
	}

	word := l.PixelToWord(x, y, v.zone, v.scroll)
	offset := v.wordToByteOffset(word)

	if word < v.DataSize() {
		if v.sel.Active() && shift {
			v.sel.End = offset
		} else {
			v.sel.Start = offset
			v.sel.End = offset + int64(v.wordWidth)
		}
	} else {
		v.sel.Clear()
	}
}

// MouseMove recomputes the selection end while a drag is active. The end
// is nudged one word forward when the drag returns to its anchor so the
// range never collapses to empty mid-drag.
func (v *View) MouseMove(x, y int) {
	if v.zone == ZoneNone {
		return
	}
	l := v.Layout()
	x += v.scroll.HScroll * v.cell.Width

	word := l.PixelToWord(x, y, v.zone, v.scroll)

	if v.sel.Start != -1 {
		if word == -1 {
			v.sel.End = int64(v.rowWidth)
		} else {
			offset := v.wordToByteOffset(word)
			v.sel.End = offset
			if v.sel.End == v.sel.Start {
				v.sel.End += int64(v.wordWidth)
			}
		}
		if v.sel.End < 0 {
			v.sel.End = 0
		}
	}
}

func (v *View) MouseRelease() {
	v.zone = ZoneNone
}

// MouseDoubleClick selects the word under the pointer, or the whole row
// when the pointer is over the address column.
func (v *View) MouseDoubleClick(x, y int) {
	l := v.Layout()
	x += v.scroll.HScroll * v.cell.Width

	switch {
	case x >= l.Line1() && x < l.Line2():
		v.zone = ZoneData
		offset := v.wordToByteOffset(l.PixelToWord(x, y, ZoneData, v.scroll))
		v.sel.Start = offset
		v.sel.End = offset + int64(v.wordWidth)
	case x < l.Line1():
		v.zone = ZoneData
		offset := v.wordToByteOffset(l.PixelToWord(l.Line1(), y, ZoneData, v.scroll))
		v.sel.Start = offset
		v.sel.End = offset + int64(v.BytesPerRow())
	}
}

// Direction is a keyboard selection-extension direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// ExtendSelection grows or retracts the selection by one word (left or
// right) or one row (up or down). It does nothing without an active
// selection.
func (v *View) ExtendSelection(dir Direction) {
	if !v.sel.Active() {
		return
	}
	ww := int64(v.wordWidth)
	switch dir {
	case DirRight:
		v.sel.KeyRight(ww, v.DataSize())
	case DirLeft:
		v.sel.KeyLeft(ww)
	case DirDown:
		v.sel.KeyDown(int64(v.rowWidth), ww, v.DataSize())
	case DirUp:
		v.sel.KeyUp(int64(v.rowWidth), ww)
	}
}

func (v *View) SelectAll() {
	v.sel.SelectAll(v.DataSize())
}

func (v *View) Deselect() {
	v.sel.Clear()
}

func (v *View) HasSelection() bool {
	return v.sel.Active()
}

func (v *View) IsSelected(index int64) bool {
	return v.sel.Contains(index, v.DataSize())
}

func (v *View) Selection() Selection { return v.sel }

// SelectedBytes reads the selected range out of the document.
func (v *View) SelectedBytes() ([]byte, error) {
	if !v.sel.Active() {
		return nil, nil
	}
	lo, hi := v.sel.Bounds()
	return document.ReadWindow(v.doc, lo, int(hi-lo))
}

// SelectedBytesAddress is the rendered address of the selection start.
func (v *View) SelectedBytesAddress() uint64 {
	lo, _ := v.sel.Bounds()
	return uint64(lo) + v.addressOffset
}

func (v *View) SelectedBytesSize() int64 {
	lo, hi := v.sel.Bounds()
	return hi - lo
}
