package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lintmark/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused || m.buf == nil {
		return m
	}

	// Pasted text is inserted literally and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m
	}

	km := m.cfg.KeyMap
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
		m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
	}

	switch {
	case key.Matches(msg, km.Left):
		move(buffer.MoveRune, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(buffer.MoveRune, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		m.moveVisual(-1, false)
	case key.Matches(msg, km.Down):
		m.moveVisual(1, false)

	case key.Matches(msg, km.ShiftLeft):
		move(buffer.MoveRune, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(buffer.MoveRune, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		m.moveVisual(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveVisual(1, true)

	case key.Matches(msg, km.WordLeft):
		move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(buffer.MoveWord, buffer.DirRight, false)

	case key.Matches(msg, km.Home):
		move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(buffer.MoveDoc, buffer.DirEnd, false)
	case key.Matches(msg, km.PageUp):
		m.moveVisual(-max(m.visibleRowCount(), 1), false)
	case key.Matches(msg, km.PageDown):
		m.moveVisual(max(m.visibleRowCount(), 1), false)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.buf.InsertNewline()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.copySelection()
		if !m.cfg.ReadOnly {
			m.buf.DeleteSelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if m.cfg.ReadOnly {
			return m
		}
		switch {
		case msg.Type == tea.KeyTab:
			m.buf.InsertText("\t")
		case msg.Type == tea.KeySpace:
			m.buf.InsertText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.buf.InsertText(string(msg.Runes))
		}
	}
	return m
}

// moveVisual moves the cursor by n visual rows, keeping its cell column.
// Unwrapped this is the buffer's line move.
func (m *Model) moveVisual(n int, extend bool) {
	l := m.ensureLayout()
	cur := m.buf.Cursor()
	vr := l.segmentFor(cur.Row, cur.Col)
	target := clampInt(vr+n, 0, len(l.rows)-1)
	if target == vr {
		dir := buffer.DirHome
		if n > 0 {
			dir = buffer.DirEnd
		}
		if cur.Row == 0 && n < 0 || cur.Row == len(l.lines)-1 && n > 0 {
			m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: dir, Extend: extend})
		}
		return
	}
	cell := l.cellsBefore(l.rows[vr], cur.Col)
	seg := l.rows[target]
	next := buffer.Pos{Row: seg.row, Col: l.colAtCell(seg, cell)}
	if !extend {
		m.buf.SetCursor(next)
		m.buf.ClearSelection()
		return
	}
	anchor := cur
	if raw, ok := m.buf.SelectionRaw(); ok {
		anchor = raw.Start
	}
	m.buf.SetCursor(next)
	m.buf.SetSelection(buffer.Range{Start: anchor, End: next})
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	if s := m.buf.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
