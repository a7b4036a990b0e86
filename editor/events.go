package editor

import (
	"github.com/iw2rmb/lintmark/buffer"
	"github.com/iw2rmb/lintmark/span"
)

// Cause says what produced a ChangeEvent.
type Cause uint8

const (
	CauseKey Cause = iota
	CauseMouse
	// CauseHost covers changes made through Model methods or directly on
	// the buffer.
	CauseHost
)

func (c Cause) String() string {
	switch c {
	case CauseKey:
		return "key"
	case CauseMouse:
		return "mouse"
	default:
		return "host"
	}
}

type ChangeEvent struct {
	Cause        Cause
	Version      uint64
	TextVersion  uint64
	Cursor       buffer.Pos
	CursorOffset int
	Selection    buffer.SelectionState

	// TextChanged is false for cursor and selection moves.
	TextChanged bool
	// Deltas turn the previously reported text into Text, in order.
	Deltas []span.Delta
	Source buffer.ChangeSource
	Text   string
}

// changeEvent describes everything since the last event. When exactly one
// text change happened its recorded deltas are used; otherwise the texts
// are diffed.
func (m *Model) changeEvent(cause Cause) ChangeEvent {
	b := m.buf
	ev := ChangeEvent{
		Cause:        cause,
		Version:      b.Version(),
		TextVersion:  b.TextVersion(),
		Cursor:       b.Cursor(),
		CursorOffset: b.CursorOffset(),
		Text:         b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	if ev.TextVersion == m.lastTextVersion {
		return ev
	}
	ev.TextChanged = true
	ev.Source = buffer.ChangeSourceLocal
	if ch, ok := b.LastChange(); ok {
		ev.Source = ch.Source
		if ev.TextVersion == m.lastTextVersion+1 {
			ev.Deltas = ch.Deltas()
		}
	}
	if ev.Deltas == nil {
		if d, _, changed := span.Diff(m.lastText, ev.Text); changed {
			ev.Deltas = []span.Delta{d}
		}
	}
	return ev
}
