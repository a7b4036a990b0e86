package textstats

import "testing"

func TestOf(t *testing.T) {
	text := "Hello there. How are you?\n\nFine, thanks.\n"
	got := Of(text)
	want := Stats{Words: 7, Characters: 41, Sentences: 3, Lines: 4, Paragraphs: 2}
	if got != want {
		t.Fatalf("stats=%+v, want %+v", got, want)
	}
}

func TestOf_Empty(t *testing.T) {
	if got, want := Of(""), (Stats{Lines: 1}); got != want {
		t.Fatalf("stats=%+v, want %+v", got, want)
	}
}

func TestString(t *testing.T) {
	s := Stats{Words: 1, Characters: 2, Sentences: 1, Lines: 1, Paragraphs: 1}
	if got, want := s.String(), "1 words  2 chars  1 sentences  1 lines  1 paragraphs"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
}
