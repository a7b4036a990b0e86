package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type HighlightSpan struct {
	// StartCol and EndCol are rune columns in the line, half-open.
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string
	// Offset is the document rune offset of the line start.
	Offset int

	// CursorCol is the cursor's rune column if it is on this row, else -1.
	CursorCol int
	HasCursor bool
}

// Highlighter styles parts of a line. It is asked only about visible lines.
// An error renders the line plain.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) { return f(ctx) }

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	// Overlaps are resolved by dropping the later span.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if n := len(merged); n > 0 && sp.StartCol < merged[n-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func styleAt(spans []HighlightSpan, col int) (lipgloss.Style, bool) {
	for _, sp := range spans {
		if col < sp.StartCol {
			break
		}
		if col < sp.EndCol {
			return sp.Style, true
		}
	}
	return lipgloss.Style{}, false
}
