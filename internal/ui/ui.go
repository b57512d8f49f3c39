package ui

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hexview/internal/config"
	"hexview/internal/document"
	"hexview/internal/hexview"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The engine thinks in pixels; a terminal cell is 2x1 of them, which
// leaves a one-cell gap between columns for the divider glyphs.
var cell = hexview.CellMetrics{Width: 2, Height: 1}

// Rows above the byte grid: legend and tab bar.
const topRows = 2

const doubleClickWindow = 400 * time.Millisecond

type ViewMode int

const (
	ModeMain ViewMode = iota
	ModeHelp
	ModeGoto
)

type Tab struct {
	Doc  *document.File
	View *hexview.View
}

type Model struct {
	tabs      []*Tab
	activeTab int
	mode      ViewMode
	width     int
	height    int
	config    *config.Config
	styles    *config.Styles

	// Goto dialog state
	gotoInput string

	// Double-click detection
	lastClick  time.Time
	lastClickX int
	lastClickY int

	statusMsg string
}

func NewModel(files []string) (*Model, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		config: cfg,
		styles: config.NewStyles(&cfg.Theme),
	}

	for _, f := range files {
		if err := m.openFile(f); err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", f, err)
		}
	}

	return m, nil
}

func (m *Model) openFile(filename string) error {
	doc, err := document.OpenFile(filename)
	if err != nil {
		return err
	}

	v := hexview.New(cell)
	v.SetData(doc)
	m.tabs = append(m.tabs, &Tab{Doc: doc, View: v})
	m.activeTab = len(m.tabs) - 1
	return nil
}

func (m *Model) currentTab() *Tab {
	if len(m.tabs) == 0 || m.activeTab < 0 || m.activeTab >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, tab := range m.tabs {
			tab.View.SetViewport(m.visibleRows(), m.width*cell.Width)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) visibleRows() int {
	// Legend, tabs, inspector panel and status line
	rows := m.height - 8
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch m.mode {
	case ModeHelp:
		return m.handleHelpKey(msg)
	case ModeGoto:
		return m.handleGotoKey(msg)
	default:
		return m.handleMainKey(msg)
	}
}

func (m *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tab := m.currentTab()
	if tab == nil {
		return m, tea.Quit
	}
	v := tab.View

	switch msg.String() {
	// Navigation
	case "up":
		v.ScrollRows(-1)
	case "down":
		v.ScrollRows(1)
	case "ctrl+up":
		v.ScrollTo(v.NormalizedOffset() - 1)
	case "ctrl+down":
		v.ScrollTo(v.NormalizedOffset() + 1)
	case "pgup":
		v.ScrollRows(-int64(m.visibleRows()))
	case "pgdown":
		v.ScrollRows(int64(m.visibleRows()))
	case "home":
		v.ScrollTo(0)
	case "end":
		v.ScrollTo(v.DataSize() - int64(v.BytesPerRow()))

	// Selection
	case "shift+up":
		v.ExtendSelection(hexview.DirUp)
	case "shift+down":
		v.ExtendSelection(hexview.DirDown)
	case "shift+left":
		v.ExtendSelection(hexview.DirLeft)
	case "shift+right":
		v.ExtendSelection(hexview.DirRight)
	case "ctrl+a":
		v.SelectAll()
	case "esc":
		v.Deselect()
	case "c":
		m.copySelection()
	case "C":
		m.copyAddress()

	// Display toggles
	case "a", "A":
		v.SetShowAddress(!v.ShowAddress())
	case "x", "X":
		v.SetShowHexDump(!v.ShowHexDump())
	case "s", "S":
		v.SetShowAsciiDump(!v.ShowAsciiDump())
	case "m", "M":
		v.SetShowComments(!v.ShowComments())
	case "e", "E":
		v.SetShowAddressSeparator(!v.ShowAddressSeparator())
	case "z", "Z":
		v.SetHideLeadingAddressZeros(!v.HideLeadingAddressZeros())
	case "w", "W":
		m.cycleWordWidth()
	case "r", "R":
		m.cycleRowWidth()

	// Commands
	case "q", "Q":
		return m, tea.Quit
	case "h", "H":
		m.mode = ModeHelp
	case "g", "G":
		m.mode = ModeGoto
		m.gotoInput = ""
	case "tab":
		m.nextTab()
	case "shift+tab":
		m.prevTab()
	case "ctrl+w":
		return m.closeCurrentTab()
	}

	return m, nil
}

func (m *Model) cycleWordWidth() {
	tab := m.currentTab()
	next := map[int]int{1: 2, 2: 4, 4: 8, 8: 1}
	tab.View.SetWordWidth(next[tab.View.WordWidth()])
}

func (m *Model) cycleRowWidth() {
	tab := m.currentTab()
	next := map[int]int{1: 2, 2: 4, 4: 8, 8: 16, 16: 1}
	tab.View.SetRowWidth(next[tab.View.RowWidth()])
}

func (m *Model) copySelection() {
	tab := m.currentTab()
	if !tab.View.HasSelection() {
		m.statusMsg = "Nothing selected"
		return
	}

	text, err := tab.View.CopyText()
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.statusMsg = fmt.Sprintf("Clipboard error: %v", err)
		return
	}
	m.statusMsg = fmt.Sprintf("Copied %d bytes", tab.View.SelectedBytesSize())
}

func (m *Model) copyAddress() {
	tab := m.currentTab()
	text := tab.View.CopyAddressText()
	if text == "" {
		m.statusMsg = "Nothing selected"
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.statusMsg = fmt.Sprintf("Clipboard error: %v", err)
		return
	}
	m.statusMsg = fmt.Sprintf("Copied address %s", text)
}

func (m *Model) nextTab() {
	if len(m.tabs) > 1 {
		m.activeTab = (m.activeTab + 1) % len(m.tabs)
	}
}

func (m *Model) prevTab() {
	if len(m.tabs) > 1 {
		m.activeTab = (m.activeTab - 1 + len(m.tabs)) % len(m.tabs)
	}
}

func (m *Model) closeCurrentTab() (tea.Model, tea.Cmd) {
	tab := m.currentTab()
	if tab == nil {
		return m, tea.Quit
	}

	tab.Doc.Close()
	m.tabs = append(m.tabs[:m.activeTab], m.tabs[m.activeTab+1:]...)
	if m.activeTab >= len(m.tabs) {
		m.activeTab = len(m.tabs) - 1
	}

	if len(m.tabs) == 0 {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	tab := m.currentTab()
	if tab == nil {
		return m, nil
	}
	v := tab.View

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.ScrollRows(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		v.ScrollRows(3)
		return m, nil
	}

	x := msg.X * cell.Width
	y := (msg.Y - topRows) * cell.Height

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y < topRows {
			return m, nil
		}
		now := time.Now()
		if now.Sub(m.lastClick) < doubleClickWindow && msg.X == m.lastClickX && msg.Y == m.lastClickY {
			v.MouseDoubleClick(x, y)
		} else {
			v.MousePress(x, y, msg.Shift)
		}
		m.lastClick = now
		m.lastClickX = msg.X
		m.lastClickY = msg.Y

	case tea.MouseActionMotion:
		v.MouseMove(x, y)

	case tea.MouseActionRelease:
		v.MouseRelease()
	}

	return m, nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape || msg.String() == "h" || msg.String() == "H" {
		m.mode = ModeMain
	}
	return m, nil
}

func (m *Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeMain
	case tea.KeyEnter:
		m.doGoto()
		m.mode = ModeMain
	case tea.KeyBackspace:
		if len(m.gotoInput) > 0 {
			m.gotoInput = m.gotoInput[:len(m.gotoInput)-1]
		}
	default:
		char := msg.String()
		if len(char) == 1 && (isHexChar(char) || char == "x" || char == "X") {
			m.gotoInput += char
		}
	}
	return m, nil
}

func (m *Model) doGoto() {
	tab := m.currentTab()
	if tab == nil || m.gotoInput == "" {
		return
	}

	var offset int64
	input := strings.ToLower(m.gotoInput)
	if strings.HasPrefix(input, "0x") {
		offset, _ = strconv.ParseInt(input[2:], 16, 64)
	} else {
		offset, _ = strconv.ParseInt(input, 10, 64)
	}

	tab.View.ScrollTo(offset)
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderLegend())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.mode {
	case ModeHelp:
		b.WriteString(m.renderHelp())
	default:
		b.WriteString(m.renderRows())
		b.WriteString("\n")
		b.WriteString(m.renderInspector())
	}

	if m.mode == ModeGoto {
		b.WriteString("\nGoto offset (0x prefix for hex): ")
		b.WriteString(m.gotoInput)
		b.WriteString("_")
	} else if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.statusMsg)
	}

	return b.String()
}

func (m *Model) renderLegend() string {
	hl := func(text string, highlightIdx int) string {
		var result strings.Builder
		for i, ch := range text {
			if i == highlightIdx {
				result.WriteString(m.styles.LegendHighlight.Render(string(ch)))
			} else {
				result.WriteString(m.styles.Legend.Render(string(ch)))
			}
		}
		return result.String()
	}

	var items []string
	items = append(items, hl("Quit", 0))
	items = append(items, hl("Help", 0))
	items = append(items, hl("Goto", 0))
	items = append(items, hl("Copy", 0))
	items = append(items, hl("Word", 0))
	items = append(items, hl("Row", 0))
	items = append(items, m.styles.LegendHighlight.Render("TAB"))

	legend := strings.Join(items, m.styles.Legend.Render(" | "))
	return m.styles.Legend.Width(m.width).Render(legend)
}

func (m *Model) renderTabs() string {
	var tabs []string
	for i, tab := range m.tabs {
		name := filepath.Base(tab.Doc.Name())

		style := m.styles.InactiveTab
		if i == m.activeTab {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(name))
	}
	return strings.Join(tabs, " | ")
}

func (m *Model) spanStyle(kind hexview.SpanKind) lipgloss.Style {
	switch kind {
	case hexview.SpanSelected:
		return m.styles.Selection
	case hexview.SpanAlternate:
		return m.styles.Alternate
	case hexview.SpanCold:
		return m.styles.Cold
	case hexview.SpanNonPrintable:
		return m.styles.NonPrintable
	default:
		return m.styles.Normal
	}
}

func (m *Model) renderRows() string {
	tab := m.currentTab()
	if tab == nil {
		return ""
	}
	v := tab.View

	rows, err := v.RenderRows()
	if err != nil {
		return fmt.Sprintf("Error reading %s: %v", tab.Doc.Name(), err)
	}

	l := v.Layout()
	hexChars := l.RowWidth*(l.CharsPerWord()+1) - 1
	divider := m.styles.Divider.Render("│")

	var lines []string
	for _, row := range rows {
		var b strings.Builder

		if v.ShowAddress() {
			style := m.styles.Address
			if row.AddressCold {
				style = m.styles.Cold
			}
			b.WriteString(style.Render(row.Address))
			b.WriteString(divider)
		}
		if v.ShowHexDump() {
			b.WriteString(m.renderSpans(row.Hex, hexChars))
			b.WriteString(divider)
		}
		if v.ShowAsciiDump() {
			b.WriteString(m.renderSpans(row.Ascii, v.BytesPerRow()))
			b.WriteString(divider)
		}
		if v.ShowComments() && row.Comment != "" {
			b.WriteString(m.styles.Comment.Render(row.Comment))
		}

		lines = append(lines, b.String())
	}

	// Pad so the inspector stays put when the last rows run out of data
	for len(lines) < m.visibleRows() {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// renderSpans styles a span run and pads it to the column width so the
// dividers line up on partial rows.
func (m *Model) renderSpans(spans []hexview.Span, width int) string {
	var b strings.Builder
	n := 0
	for _, s := range spans {
		b.WriteString(m.spanStyle(s.Kind).Render(s.Text))
		n += len([]rune(s.Text))
	}
	if n < width {
		b.WriteString(strings.Repeat(" ", width-n))
	}
	return b.String()
}

func (m *Model) renderInspector() string {
	tab := m.currentTab()
	if tab == nil {
		return ""
	}
	v := tab.View

	var b strings.Builder

	if !v.HasSelection() {
		b.WriteString(m.styles.Disabled.Render("No selection"))
		b.WriteString("\n\n\n")
		return b.String()
	}

	sel, err := v.SelectedBytes()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	b.WriteString(m.styles.InspectorLabel.Render("Selection: "))
	b.WriteString(m.styles.InspectorValue.Render(fmt.Sprintf("0x%x", v.SelectedBytesAddress())))
	b.WriteString(m.styles.InspectorLabel.Render("  length: "))
	b.WriteString(m.styles.InspectorValue.Render(fmt.Sprintf("%d", v.SelectedBytesSize())))
	b.WriteString("\n")

	b.WriteString(m.styles.InspectorLabel.Render("Bytes: "))
	preview := sel
	truncated := false
	if len(preview) > 16 {
		preview = preview[:16]
		truncated = true
	}
	b.WriteString(m.styles.InspectorValue.Render(fmt.Sprintf("% x", preview)))
	if truncated {
		b.WriteString(m.styles.InspectorLabel.Render(" …"))
	}
	b.WriteString("\n")

	vals := []struct {
		label  string
		size   int
		signed bool
	}{
		{"u8", 1, false}, {"i8", 1, true},
		{"u16", 2, false}, {"i16", 2, true},
		{"u32", 4, false}, {"i32", 4, true},
		{"u64", 8, false}, {"i64", 8, true},
	}
	for _, val := range vals {
		b.WriteString(m.styles.InspectorLabel.Render(val.label + ": "))
		if len(sel) >= val.size {
			b.WriteString(m.styles.InspectorValue.Render(formatLE(sel[:val.size], val.signed)))
		} else {
			b.WriteString(m.styles.Disabled.Render("-"))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")

	return b.String()
}

// formatLE renders the little-endian value of 1, 2, 4 or 8 bytes.
func formatLE(b []byte, signed bool) string {
	switch len(b) {
	case 1:
		if signed {
			return fmt.Sprintf("%d", int8(b[0]))
		}
		return fmt.Sprintf("%d", b[0])
	case 2:
		v := binary.LittleEndian.Uint16(b)
		if signed {
			return fmt.Sprintf("%d", int16(v))
		}
		return fmt.Sprintf("%d", v)
	case 4:
		v := binary.LittleEndian.Uint32(b)
		if signed {
			return fmt.Sprintf("%d", int32(v))
		}
		return fmt.Sprintf("%d", v)
	case 8:
		v := binary.LittleEndian.Uint64(b)
		if signed {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%d", v)
	}
	return "-"
}

func (m *Model) renderHelp() string {
	help := `
HELP - hexview

NAVIGATION
  Up/Down         Scroll by row
  Ctrl+Up/Down    Scroll by byte
  PgUp/PgDown     Scroll by page
  Home/End        Start/end of file
  G               Goto offset
  Mouse wheel     Scroll

SELECTION
  Click/Drag      Select bytes (hex or ascii column)
  Double-click    Select word; on the address column, the whole row
  Shift+Click     Extend selection
  Shift+Arrows    Extend selection by word or row
  Ctrl+A          Select all
  ESC             Deselect
  C               Copy selection to clipboard
  Shift+C         Copy selection address

DISPLAY
  A               Toggle address column
  X               Toggle hex column
  S               Toggle ascii column
  M               Toggle comment column
  E               Toggle address separator
  Z               Hide leading address zeros
  W               Cycle word width (1/2/4/8)
  R               Cycle row width (1/2/4/8/16)

TABS
  TAB/Shift+TAB   Next/previous tab
  Ctrl+W          Close tab

Press ESC or H to close this help screen.
`
	return help
}

func isHexChar(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
