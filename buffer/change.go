package buffer

import "github.com/iw2rmb/lintmark/span"

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceFix marks edits made on behalf of an applied suggestion.
	ChangeSourceFix
	ChangeSourceHistory
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceFix:
		return "fix"
	case ChangeSourceHistory:
		return "history"
	default:
		return "unknown"
	}
}

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective edit in a change transaction. Delta
// is expressed against the document as it was right before this edit.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
	Delta       span.Delta
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// Deltas returns the offset deltas of c in application order.
func (c Change) Deltas() []span.Delta {
	out := make([]span.Delta, 0, len(c.AppliedEdits))
	for _, e := range c.AppliedEdits {
		out = append(out, e.Delta)
	}
	return out
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	cursorBefore    Pos
	selectionBefore SelectionState
	appliedEdits    []AppliedEdit
}

// LastChange returns the most recent text change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	out := b.lastChange
	out.AppliedEdits = append([]AppliedEdit(nil), b.lastChange.AppliedEdits...)
	return out, true
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	if !sel.active {
		return SelectionState{}
	}
	r := NormalizeRange(Range{Start: sel.anchor, End: sel.end})
	if r.IsEmpty() {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: selectionStateFromInternal(b.sel),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore || len(cb.appliedEdits) == 0 {
		return
	}
	b.textVersion++
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  selectionStateFromInternal(b.sel),
		AppliedEdits:    append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}

// diffAppliedEdit describes the move from before to after as the smallest
// single edit, so history steps remap overlays instead of resetting them.
func diffAppliedEdit(before, after string) (AppliedEdit, bool) {
	d, ins, ok := span.Diff(before, after)
	if !ok {
		return AppliedEdit{}, false
	}
	prev := splitLines(before)
	deleted := []rune(before)[d.From:d.To]
	start := posInLines(prev, d.From)
	return AppliedEdit{
		RangeBefore: Range{Start: start, End: posInLines(prev, d.To)},
		RangeAfter:  Range{Start: start, End: posInLines(splitLines(after), d.From+d.Inserted)},
		InsertText:  ins,
		DeletedText: string(deleted),
		Delta:       d,
	}, true
}

func posInLines(lines [][]rune, off int) Pos {
	for row, line := range lines {
		if off <= len(line) {
			return Pos{Row: row, Col: max(off, 0)}
		}
		off -= len(line) + 1
	}
	last := len(lines) - 1
	return Pos{Row: last, Col: len(lines[last])}
}
