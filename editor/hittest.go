package editor

import "github.com/iw2rmb/lintmark/buffer"

// ScreenToDoc maps viewport-local cell coordinates to a document position.
// (0,0) is the top-left of the visible content. Gutter clicks map to the
// start of the row's segment; coordinates outside the text are clamped.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	return (&m).screenToDocPos(x, y)
}

// DocToScreen maps a document position to viewport-local coordinates. ok
// is false when the position is scrolled out of view.
func (m Model) DocToScreen(p buffer.Pos) (x, y int, ok bool) {
	return (&m).docToScreenPos(p)
}

func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}
	l := m.ensureLayout()
	vr := clampInt(m.viewport.YOffset+y, 0, len(l.rows)-1)
	seg := l.rows[vr]

	tx := x - m.gutterWidth()
	if tx < 0 {
		return buffer.Pos{Row: seg.row, Col: seg.start}
	}
	if m.cfg.WrapMode == WrapNone {
		tx += m.xOffset
	}
	return buffer.Pos{Row: seg.row, Col: l.colAtCell(seg, tx)}
}

func (m *Model) docToScreenPos(p buffer.Pos) (int, int, bool) {
	if m.buf == nil {
		return 0, 0, false
	}
	l := m.ensureLayout()
	row := clampInt(p.Row, 0, len(l.lines)-1)
	col := clampInt(p.Col, 0, len(l.lines[row]))
	vr := l.segmentFor(row, col)
	seg := l.rows[vr]

	x := l.cellsBefore(seg, col) + m.gutterWidth()
	if m.cfg.WrapMode == WrapNone {
		x -= m.xOffset
	}
	y := vr - m.viewport.YOffset
	if y < 0 || y >= m.visibleRowCount() || x < m.gutterWidth() || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
