package editor

import (
	"fmt"

	"github.com/iw2rmb/lintmark/buffer"
)

func gutterDigits(lineCount int) int {
	return len(fmt.Sprint(max(lineCount, 1)))
}

// gutterWidth is the cells taken by line numbers and their separator.
func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

// textWidth is the cells available to text. One cell stays free for the
// end-of-line cursor so no rendered row is wider than the viewport.
func (m *Model) textWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth() - 1
	return max(w, 0)
}

func (m *Model) visibleRowCount() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}

func (m *Model) ensureLayout() layout {
	key := layoutKey{
		textVersion: m.buf.TextVersion(),
		width:       m.textWidth(),
		wrap:        m.cfg.WrapMode,
		tabWidth:    m.cfg.tabWidth(),
	}
	// TextVersion is per buffer; SetText swaps buffers and clears layoutOK.
	if m.layoutOK && m.layoutKey == key {
		return m.layout
	}
	lines := make([][]rune, m.buf.LineCount())
	for row := range lines {
		lines[row] = []rune(m.buf.Line(row))
	}
	m.layout = buildLayout(lines, key.wrap, key.width, key.tabWidth)
	m.layoutKey = key
	m.layoutOK = true
	return m.layout
}

func (m *Model) followCursor() {
	m.scrollTo(m.buf.Cursor())
}

// scrollTo moves the viewport the least needed to show p.
func (m *Model) scrollTo(p buffer.Pos) {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	l := m.ensureLayout()
	vr := l.segmentFor(p.Row, p.Col)
	y := m.viewport.YOffset
	switch {
	case vr < y:
		m.viewport.SetYOffset(vr)
	case vr >= y+h:
		m.viewport.SetYOffset(vr - h + 1)
	}

	if m.cfg.WrapMode != WrapNone {
		m.xOffset = 0
		return
	}
	w := m.textWidth()
	if w <= 0 {
		return
	}
	cell := l.cellsBefore(l.rows[vr], p.Col)
	prev := m.xOffset
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
	if m.xOffset != prev {
		m.rebuildContent()
	}
}
