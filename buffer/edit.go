package buffer

import (
	"strings"

	"github.com/iw2rmb/lintmark/span"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(ChangeSourceLocal, r, s)
}

func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case row == 0 && col == 0:
		return
	case col > 0:
		b.edit(ChangeSourceLocal, Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	default:
		// Join with the previous line.
		prev := row - 1
		b.edit(ChangeSourceLocal, Range{Start: Pos{Row: prev, Col: len(b.lines[prev])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	last := len(b.lines) - 1
	switch {
	case row == last && col == len(b.lines[last]):
		return
	case col < len(b.lines[row]):
		b.edit(ChangeSourceLocal, Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	default:
		// Join with the next line.
		b.edit(ChangeSourceLocal, Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(ChangeSourceLocal, r, "")
}

// ReplaceOffsets replaces the runes in [from, to) with text as a single
// undoable edit made on behalf of a fix. The cursor lands at the end of the
// inserted text.
func (b *Buffer) ReplaceOffsets(from, to int, text string) bool {
	return b.edit(ChangeSourceFix, Range{Start: b.PosAt(from), End: b.PosAt(to)}, text)
}

func (b *Buffer) edit(source ChangeSource, r Range, text string) bool {
	prev := b.snapshot()
	change := b.beginChange(source)

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return false
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}
	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}
	from, to := b.OffsetOf(r.Start), b.OffsetOf(r.End)

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]rune(nil), b.lines[startRow][:startCol]...)
	suffix := append([]rune(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	inserted := 0
	repl := make([][]rune, 0, len(parts))
	for i, p := range parts {
		runes := []rune(p)
		inserted += len(runes)
		if i > 0 {
			inserted++
		}
		line := runes
		if i == 0 {
			line = append(prefix, runes...)
		}
		if i == len(parts)-1 {
			nextCursor = Pos{Row: startRow + i, Col: len(line)}
			line = append(line, suffix...)
		}
		repl = append(repl, line)
	}

	out := make([][]rune, 0, len(b.lines)-(endRow-startRow)+len(repl)-1)
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)
	b.lines = out

	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
		Delta:       span.Delta{From: from, To: to, Inserted: inserted},
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]rune, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return string(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(string(lines[row][from:to]))
	}
	return sb.String()
}
