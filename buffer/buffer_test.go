package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != 1 {
		t.Fatalf("version=%d, want 1", got)
	}
	if got := b.TextVersion(); got != 0 {
		t.Fatalf("text version=%d, want 0", got)
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if got := b.Version(); got != 1 {
		t.Fatalf("version=%d, want unchanged", got)
	}
}

func TestBuffer_Selection_NormalizesAndClears(t *testing.T) {
	b := New("a\nbc", Options{})
	b.SetSelection(Range{Start: Pos{Row: 1, Col: 99}, End: Pos{Row: 0, Col: -1}})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if got, want := r, (Range{Start: Pos{}, End: Pos{Row: 1, Col: 2}}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	if got, want := b.SelectedText(), "a\nbc"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
	raw, _ := b.SelectionRaw()
	if got, want := raw.Start, (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("raw start=%v, want %v", got, want)
	}

	v := b.Version()
	b.ClearSelection()
	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestBuffer_TextVersionTracksOnlyText(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})
	b.SelectOffsets(0, 1)
	if got := b.TextVersion(); got != 0 {
		t.Fatalf("text version=%d, want 0", got)
	}

	b.InsertText("X")
	if got := b.TextVersion(); got != 1 {
		t.Fatalf("text version after insert=%d, want 1", got)
	}
	b.Undo()
	b.Redo()
	if got := b.TextVersion(); got != 3 {
		t.Fatalf("text version after undo/redo=%d, want 3", got)
	}
}

func TestBuffer_SelectAll(t *testing.T) {
	b := New("one\ntwo", Options{})
	b.SelectAll()
	if got, want := b.SelectedText(), "one\ntwo"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}
