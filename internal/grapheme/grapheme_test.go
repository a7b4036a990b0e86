package grapheme

import (
	"testing"

	"github.com/iw2rmb/lintmark/span"
)

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "\U0001F44D\U0001F3FD" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count(empty)=%d", c)
	}
}

func TestWords_RuneSpans(t *testing.T) {
	text := "Héllo, wörld! 42"
	got := Words(text)
	want := []Segment{
		{Text: "Héllo", Span: span.Span{Start: 0, End: 5}},
		{Text: "wörld", Span: span.Span{Start: 7, End: 12}},
		{Text: "42", Span: span.Span{Start: 14, End: 16}},
	}
	if len(got) != len(want) {
		t.Fatalf("words=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("words[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestWords_Contraction(t *testing.T) {
	got := Words("don't stop")
	if len(got) != 2 || got[0].Text != "don't" {
		t.Fatalf("words=%v, want [don't stop]", got)
	}
}

func TestSentences_TrimsWhitespace(t *testing.T) {
	text := "One two. Three four?  Five"
	got := Sentences(text)
	want := []Segment{
		{Text: "One two.", Span: span.Span{Start: 0, End: 8}},
		{Text: "Three four?", Span: span.Span{Start: 9, End: 20}},
		{Text: "Five", Span: span.Span{Start: 22, End: 26}},
	}
	if len(got) != len(want) {
		t.Fatalf("sentences=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sentences[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t ") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("") || IsSpace("a") {
		t.Fatalf("empty and letters are not space")
	}
	if IsWord("!?") || !IsWord("a!") {
		t.Fatalf("IsWord misclassified")
	}
	if got := Width("ab"); got != 2 {
		t.Fatalf("width=%d, want 2", got)
	}
}
