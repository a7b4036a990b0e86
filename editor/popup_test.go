package editor

import "testing"

func popupModel() Model {
	m := New(Config{Text: "abc\ndef\nghi\njkl"})
	return m.Blur().SetSize(10, 4)
}

func TestPopup_BelowAnchor(t *testing.T) {
	m := popupModel().SetPopup(Popup{Anchor: 1, View: "XY"})

	x, y, ok := m.PopupOrigin()
	if !ok || x != 1 || y != 1 {
		t.Fatalf("origin=(%d,%d,%v), want (1,1,true)", x, y, ok)
	}
	lines := viewLines(m)
	if got, want := lines[1], "dXY"; got != want {
		t.Fatalf("line 1=%q, want %q", got, want)
	}
	if got, want := lines[0], "abc"; got != want {
		t.Fatalf("line 0=%q, want %q", got, want)
	}
}

func TestPopup_AboveWhenNoRoomBelow(t *testing.T) {
	m := popupModel().SetPopup(Popup{Anchor: 13, View: "XY"})

	x, y, ok := m.PopupOrigin()
	if !ok || x != 1 || y != 2 {
		t.Fatalf("origin=(%d,%d,%v), want (1,2,true)", x, y, ok)
	}
	if got, want := viewLines(m)[2], "gXY"; got != want {
		t.Fatalf("line 2=%q, want %q", got, want)
	}
}

func TestPopup_ClearAndOffscreen(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd"}).Blur().SetSize(10, 2)
	m = m.SetPopup(Popup{Anchor: 6, View: "XY"})
	if !m.PopupVisible() {
		t.Fatalf("expected popup visible")
	}
	if _, _, ok := m.PopupOrigin(); ok {
		t.Fatalf("anchor below viewport should not place popup")
	}
	if got, want := viewLines(m)[0], "a"; got != want {
		t.Fatalf("line 0=%q, want %q", got, want)
	}

	m = m.ClearPopup()
	if m.PopupVisible() {
		t.Fatalf("expected popup cleared")
	}
	if m = m.SetPopup(Popup{Anchor: 0}); m.PopupVisible() {
		t.Fatalf("empty view should not show a popup")
	}
}
