package apply

import (
	"fmt"

	"github.com/iw2rmb/lintmark/issue"
	"github.com/iw2rmb/lintmark/span"
)

// Realize applies s to text at raw's span without any knowledge of the
// surrounding context. Analyzers with nothing smarter to do can use it.
func Realize(text string, raw issue.Raw, s issue.Suggestion) (string, error) {
	n := len([]rune(text))
	if !raw.Span.Valid(n) {
		return "", fmt.Errorf("span %v outside text of length %d", raw.Span, n)
	}
	switch s.Kind {
	case issue.SuggestReplace:
		return span.Apply(text, span.Delta{From: raw.Span.Start, To: raw.Span.End}, s.Text), nil
	case issue.SuggestRemove:
		return span.Apply(text, span.Delta{From: raw.Span.Start, To: raw.Span.End}, ""), nil
	case issue.SuggestInsertAfter:
		return span.Apply(text, span.Delta{From: raw.Span.End, To: raw.Span.End}, s.Text), nil
	default:
		return "", fmt.Errorf("unknown suggestion kind %d", s.Kind)
	}
}
