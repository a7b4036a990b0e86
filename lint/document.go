package lint

import (
	"strings"

	"github.com/iw2rmb/lintmark/internal/grapheme"
	"github.com/iw2rmb/lintmark/settings"
	"github.com/iw2rmb/lintmark/span"
)

// Document is the tokenized text every rule reads. It is shared between
// rules running in parallel and must not be modified.
type Document struct {
	Text      string
	Runes     []rune
	Words     []grapheme.Segment
	Sentences []grapheme.Segment
	Dialect   settings.Dialect

	words  *wordList
	custom map[string]struct{}
	strict bool
}

func newDocument(text string, words *wordList, custom map[string]struct{}, d settings.Dialect, strict bool) *Document {
	return &Document{
		Text:      text,
		Runes:     []rune(text),
		Words:     grapheme.Words(text),
		Sentences: grapheme.Sentences(text),
		Dialect:   d,
		words:     words,
		custom:    custom,
		strict:    strict,
	}
}

// Slice returns the text under s.
func (d *Document) Slice(s span.Span) string {
	s = s.Clamp(len(d.Runes))
	return string(d.Runes[s.Start:s.End])
}

// Known reports whether w (any case) is in the word lists.
func (d *Document) Known(w string) bool {
	lw := strings.ToLower(w)
	if _, ok := d.custom[lw]; ok {
		return true
	}
	return d.words.has(lw)
}

// onlySpaceBetween reports whether runes in [from,to) are all horizontal
// whitespace. An empty range counts.
func (d *Document) onlySpaceBetween(from, to int) bool {
	for _, r := range d.Runes[from:to] {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

// sentenceStarts reports for each word whether it opens a sentence.
func (d *Document) sentenceStarts() []bool {
	out := make([]bool, len(d.Words))
	si := 0
	for i, w := range d.Words {
		for si < len(d.Sentences) && d.Sentences[si].Span.End <= w.Span.Start {
			si++
		}
		if si == len(d.Sentences) {
			break
		}
		if i == 0 || d.Words[i-1].Span.End <= d.Sentences[si].Span.Start {
			out[i] = w.Span.Start >= d.Sentences[si].Span.Start
		}
	}
	return out
}
