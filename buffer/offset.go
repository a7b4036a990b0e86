package buffer

// Len is the document length in runes, newlines included.
func (b *Buffer) Len() int {
	total := 0
	for _, line := range b.lines {
		total += len(line)
	}
	return total + len(b.lines) - 1
}

// OffsetOf converts p to a rune offset. p is clamped first.
func (b *Buffer) OffsetOf(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + p.Col
}

// PosAt converts a rune offset to a position. Offsets outside the document
// are clamped.
func (b *Buffer) PosAt(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}
		}
		off -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

// CursorOffset is the cursor as a rune offset.
func (b *Buffer) CursorOffset() int { return b.OffsetOf(b.cursor) }

// SetCursorOffset moves the cursor to a rune offset and clears the
// selection.
func (b *Buffer) SetCursorOffset(off int) {
	b.ClearSelection()
	b.SetCursor(b.PosAt(off))
}

// SelectOffsets selects [from, to) by rune offset.
func (b *Buffer) SelectOffsets(from, to int) {
	b.SetSelection(Range{Start: b.PosAt(from), End: b.PosAt(to)})
}
