package app

import (
	"github.com/iw2rmb/lintmark/decoration"
	"github.com/iw2rmb/lintmark/editor"
)

// issueHighlighter feeds the decoration set to the editor. The per-line
// projection is computed once per set and text, not per rendered line.
type issueHighlighter struct {
	theme decoration.Theme
	set   decoration.Set
	items []decoration.Decoration
	lines [][]decoration.LineSpan
}

func (h *issueHighlighter) SetDecorations(set decoration.Set, text string) {
	h.set = set
	h.items = set.Items()
	h.lines = decoration.Lines(set, text)
}

func (h *issueHighlighter) Decorations() decoration.Set { return h.set }

func (h *issueHighlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if ctx.Row < 0 || ctx.Row >= len(h.lines) {
		return nil, nil
	}
	spans := make([]editor.HighlightSpan, 0, len(h.lines[ctx.Row]))
	for _, ls := range h.lines[ctx.Row] {
		spans = append(spans, editor.HighlightSpan{
			StartCol: ls.StartCol,
			EndCol:   ls.EndCol,
			Style:    h.theme.StyleFor(h.items[ls.Index]),
		})
	}
	return spans, nil
}
