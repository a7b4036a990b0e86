package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lintmark/buffer"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}
	l := m.ensureLayout()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := gutterDigits(len(l.lines))

	highlights := m.visibleHighlights(l, cursor)

	out := make([]string, 0, len(l.rows))
	for _, seg := range l.rows {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && seg.row == cursor.Row && seg.start == 0 {
				numStyle = m.cfg.Style.LineNumActive
			}
			num := fmt.Sprintf("%*s", digits, "")
			if seg.start == 0 {
				num = fmt.Sprintf("%*d", digits, seg.row+1)
			}
			sb.WriteString(numStyle.Render(num))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderSegment(l, seg, cursor, sel, selOK, highlights[seg.row]))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// visibleHighlights asks the highlighter about lines on screen only.
func (m *Model) visibleHighlights(l layout, cursor buffer.Pos) map[int][]HighlightSpan {
	out := make(map[int][]HighlightSpan)
	if m.cfg.Highlighter == nil {
		return out
	}
	h := m.visibleRowCount()
	start := clampInt(m.viewport.YOffset, 0, len(l.rows))
	end := min(start+h, len(l.rows))
	for vr := start; vr < end; vr++ {
		row := l.rows[vr].row
		if _, done := out[row]; done {
			continue
		}
		line := l.lines[row]
		ctx := LineContext{
			Row:       row,
			Text:      string(line),
			Offset:    m.buf.OffsetOf(buffer.Pos{Row: row}),
			CursorCol: -1,
		}
		if cursor.Row == row {
			ctx.HasCursor = true
			ctx.CursorCol = cursor.Col
		}
		spans, err := m.cfg.Highlighter.HighlightLine(ctx)
		if err != nil {
			spans = nil
		}
		out[row] = normalizeHighlightSpans(spans, len(line))
	}
	return out
}

func (m *Model) renderSegment(l layout, seg segment, cursor buffer.Pos, sel buffer.Range, selOK bool, highlights []HighlightSpan) string {
	st := m.cfg.Style
	line := l.lines[seg.row]

	hasCursor := m.focused && cursor.Row == seg.row
	cursorCol := -1
	if hasCursor {
		cursorCol = cursor.Col
	}

	selStart, selEnd := -1, -1
	if selOK {
		selStart, selEnd = selectionColsForRow(sel, seg.row, len(line))
	}

	left, right := 0, int(^uint(0)>>1)
	if m.cfg.WrapMode == WrapNone {
		left = m.xOffset
		right = left + m.textWidth()
	}

	var sb strings.Builder
	cell := 0
	for col := seg.start; col < seg.end; col++ {
		r := line[col]
		w := runeCells(r, l.tabWidth)
		text := string(r)
		if r == '\t' {
			text = strings.Repeat(" ", w)
		}
		visible := cell >= left && cell+w <= right
		cell += w
		if !visible {
			continue
		}

		var style lipgloss.Style
		switch {
		case col == cursorCol:
			style = st.Cursor
		case col >= selStart && col < selEnd:
			style = st.Selection
		default:
			style = st.Text
			if hl, ok := styleAt(highlights, col); ok {
				style = hl.Inherit(st.Text)
			}
		}
		sb.WriteString(style.Render(text))
	}
	if hasCursor && cursorCol == seg.end && seg.last && cell >= left && cell < right+1 {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// selectionColsForRow returns the selected rune columns of row. The
// newline of a fully covered line is not drawn.
func selectionColsForRow(sel buffer.Range, row, lineLen int) (int, int) {
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return -1, -1
	}
	start, end := 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	return start, end
}
