package buffer

import "unicode"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // extend the selection instead of clearing it
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.moveCursor(prevCursor, m)
	nextCursor = b.clampPos(nextCursor)

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveRune:
		return b.moveRune(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveRune(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		prevRow := row - 1
		return Pos{Row: prevRow, Col: len(b.lines[prevRow])}
	case DirRight:
		if row == lastRow && col == len(b.lines[lastRow]) {
			return p
		}
		if col < len(b.lines[row]) {
			return Pos{Row: row, Col: col + 1}
		}
		return Pos{Row: row + 1, Col: 0}
	case DirUp:
		if row == 0 {
			return p
		}
		nr := row - 1
		return Pos{Row: nr, Col: min(col, len(b.lines[nr]))}
	case DirDown:
		if row == lastRow {
			return p
		}
		nr := row + 1
		return Pos{Row: nr, Col: min(col, len(b.lines[nr]))}
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	default:
		return p
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	line := b.lines[row]

	switch dir {
	case DirLeft:
		return Pos{Row: row, Col: prevWordBoundary(line, col)}
	case DirRight:
		return Pos{Row: row, Col: nextWordBoundary(line, col)}
	case DirHome, DirEnd:
		return b.moveRune(p, dir)
	default:
		return p
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirEnd, DirUp, DirDown:
		return b.moveRune(p, dir)
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1
	lastCol := len(b.lines[lastRow])

	switch dir {
	case DirHome, DirUp:
		return Pos{Row: 0, Col: 0}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, Col: lastCol}
	default:
		return p
	}
}

// Word moves skip whitespace, then non-whitespace. They stop at line ends.
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && unicode.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !unicode.IsSpace(line[i]) {
		i++
	}
	return i
}

