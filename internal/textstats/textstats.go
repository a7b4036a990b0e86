// Package textstats counts the things a writer cares about.
package textstats

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/lintmark/internal/grapheme"
)

type Stats struct {
	Words      int
	Characters int // grapheme clusters
	Sentences  int
	Lines      int
	Paragraphs int
}

func Of(text string) Stats {
	if text == "" {
		return Stats{Lines: 1}
	}
	return Stats{
		Words:      len(grapheme.Words(text)),
		Characters: grapheme.Count(text),
		Sentences:  len(grapheme.Sentences(text)),
		Lines:      strings.Count(text, "\n") + 1,
		Paragraphs: paragraphs(text),
	}
}

// paragraphs counts runs of non-blank lines.
func paragraphs(text string) int {
	n := 0
	in := false
	for _, line := range strings.Split(text, "\n") {
		blank := strings.TrimSpace(line) == ""
		if !blank && !in {
			n++
		}
		in = !blank
	}
	return n
}

func (s Stats) String() string {
	return fmt.Sprintf("%d words  %d chars  %d sentences  %d lines  %d paragraphs",
		s.Words, s.Characters, s.Sentences, s.Lines, s.Paragraphs)
}
