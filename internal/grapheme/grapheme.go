// Package grapheme segments text into graphemes, words and sentences.
// Every offset it reports is a rune offset into the input.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/iw2rmb/lintmark/span"
)

// Segment is a piece of text and where it sits.
type Segment struct {
	Text string
	Span span.Span
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Split returns grapheme clusters in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, utf8.RuneCountInString(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width is the terminal cell width of text.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Words returns the UAX #29 word segments of text that contain a letter or
// a digit. Spaces and punctuation are skipped.
func Words(text string) []Segment {
	var out []Segment
	state := -1
	pos := 0
	rest := text
	for len(rest) > 0 {
		var w string
		w, rest, state = uniseg.FirstWordInString(rest, state)
		n := utf8.RuneCountInString(w)
		if IsWord(w) {
			out = append(out, Segment{Text: w, Span: span.Span{Start: pos, End: pos + n}})
		}
		pos += n
	}
	return out
}

// Sentences returns the UAX #29 sentence segments of text with trailing
// whitespace trimmed. Blank segments are dropped.
func Sentences(text string) []Segment {
	var out []Segment
	state := -1
	pos := 0
	rest := text
	for len(rest) > 0 {
		var s string
		s, rest, state = uniseg.FirstSentenceInString(rest, state)
		n := utf8.RuneCountInString(s)
		runes := []rune(s)
		lead, end := 0, len(runes)
		for lead < end && unicode.IsSpace(runes[lead]) {
			lead++
		}
		for end > lead && unicode.IsSpace(runes[end-1]) {
			end--
		}
		if end > lead {
			out = append(out, Segment{
				Text: string(runes[lead:end]),
				Span: span.Span{Start: pos + lead, End: pos + end},
			})
		}
		pos += n
	}
	return out
}

// IsWord reports whether s holds at least one letter or digit.
func IsWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsSpace reports whether s is non-empty and all whitespace.
func IsSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
