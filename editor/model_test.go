package editor

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func viewLines(m Model) []string {
	got := strings.Split(m.View(), "\n")
	for i := range got {
		got[i] = strings.TrimRight(stripANSI(got[i]), " ")
	}
	return got
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	got := viewLines(m)
	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_WordWrap(t *testing.T) {
	m := New(Config{Text: "hello world foo", WrapMode: WrapWord})
	m = m.Blur()
	m = m.SetSize(9, 4)

	got := viewLines(m)
	want := []string{"hello", "world", "foo", ""}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_SetTextResets(t *testing.T) {
	m := New(Config{Text: "old"})
	m.Buffer().InsertText("x")
	m = m.SetText("new text")
	if got := m.Text(); got != "new text" {
		t.Fatalf("text=%q", got)
	}
	if m.Buffer().CanUndo() {
		t.Fatalf("SetText should clear history")
	}
}

func TestModel_ScrollIntoView(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7"})
	m = m.SetSize(10, 3)
	m = m.ScrollIntoView(m.Buffer().OffsetOf(bufPos(6, 0)))
	if got := m.viewport.YOffset; got != 4 {
		t.Fatalf("yoffset=%d, want 4", got)
	}
	if got := m.Buffer().Cursor(); got != bufPos(0, 0) {
		t.Fatalf("cursor moved to %v", got)
	}
}
