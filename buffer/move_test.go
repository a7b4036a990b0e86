package buffer

import "testing"

func TestBuffer_MoveRune_CrossesLines(t *testing.T) {
	b := New("ab\nc", Options{})
	b.SetCursor(Pos{Row: 0, Col: 2})

	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveRune, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_MoveWord(t *testing.T) {
	b := New("  foo bar", Options{})
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor().Col, 5; got != want {
		t.Fatalf("col=%d, want %d", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor().Col, 9; got != want {
		t.Fatalf("col=%d, want %d", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got, want := b.Cursor().Col, 6; got != want {
		t.Fatalf("col=%d, want %d", got, want)
	}
}

func TestBuffer_MoveExtendSelects(t *testing.T) {
	b := New("hello", Options{})
	b.Move(Move{Unit: MoveRune, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveRune, Dir: DirRight, Extend: true})
	if got, want := b.SelectedText(), "he"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if _, ok := b.Selection(); ok {
		t.Fatalf("plain move must clear selection")
	}
	if got, want := b.Cursor().Col, 5; got != want {
		t.Fatalf("col=%d, want %d", got, want)
	}
}

func TestBuffer_MoveDoc_ClampsColumnOnVerticalMove(t *testing.T) {
	b := New("long line\nab\nlonger line", Options{})
	b.SetCursor(Pos{Row: 0, Col: 8})
	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 2, Col: 11}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}
