package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer holds text, cursor, selection and undo history.
//
// Version changes on any observable state change, cursor moves included.
// TextVersion changes only when the text does, which is what async results
// computed against a text snapshot should compare to.
type Buffer struct {
	lines       [][]rune
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Line returns row's text, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns anchor/end without normalization so callers can keep
// the selection direction.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) {
		return
	}
	b.sel = next
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	wasVisible := b.sel.anchor != b.sel.end
	b.sel = selectionState{}
	if wasVisible {
		b.version++
	}
}

// SelectAll selects the whole document and puts the cursor at its end.
func (b *Buffer) SelectAll() {
	last := len(b.lines) - 1
	end := Pos{Row: last, Col: len(b.lines[last])}
	b.SetSelection(Range{Start: Pos{}, End: end})
	b.SetCursor(end)
}

// SelectedText returns the selected text, or "" without a selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForLinesRange(b.lines, r)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}
