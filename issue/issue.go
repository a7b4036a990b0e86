package issue

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iw2rmb/lintmark/span"
)

// Severity is derived from an issue kind.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return fmt.Sprintf("SEVERITY(%d)", s)
	}
}

// SeverityOf maps a kind label to a severity: spelling and grammar kinds are
// errors, punctuation is a warning, everything else is informational. The
// match is a case-insensitive substring test.
func SeverityOf(kind string) Severity {
	k := strings.ToLower(kind)
	switch {
	case strings.Contains(k, "spelling"), strings.Contains(k, "grammar"):
		return SevError
	case strings.Contains(k, "punctuation"):
		return SevWarning
	default:
		return SevInfo
	}
}

// SuggestionKind selects how a suggestion rewrites the issue span.
type SuggestionKind uint8

const (
	// SuggestReplace replaces the span with Text.
	SuggestReplace SuggestionKind = iota
	// SuggestRemove deletes the span.
	SuggestRemove
	// SuggestInsertAfter keeps the span and inserts Text after it.
	SuggestInsertAfter
)

type Suggestion struct {
	Kind SuggestionKind
	Text string
}

func Replace(text string) Suggestion     { return Suggestion{Kind: SuggestReplace, Text: text} }
func Remove() Suggestion                 { return Suggestion{Kind: SuggestRemove} }
func InsertAfter(text string) Suggestion { return Suggestion{Kind: SuggestInsertAfter, Text: text} }

// Label is the menu text for s.
func (s Suggestion) Label() string {
	switch s.Kind {
	case SuggestRemove:
		return "(Remove)"
	case SuggestInsertAfter:
		return fmt.Sprintf("Insert %q", s.Text)
	default:
		return s.Text
	}
}

// Raw is a diagnostic as reported by an analyzer, before it gets an id.
type Raw struct {
	Span        span.Span
	Kind        string
	Message     string
	Suggestions []Suggestion
	ProblemText string
	Rule        string
}

// Issue is an immutable diagnostic. Only Span changes after creation, and
// only through Store.Remap.
type Issue struct {
	ID          string
	Span        span.Span
	Kind        string
	Severity    Severity
	Message     string
	Suggestions []Suggestion
	ProblemText string
	Rule        string
}

// IsSpelling reports whether the issue can be fixed by adding a word to the
// dictionary.
func (i Issue) IsSpelling() bool {
	return strings.Contains(strings.ToLower(i.Kind), "spelling")
}

// Actionable reports whether a menu for i would offer more than "Ignore".
func (i Issue) Actionable() bool {
	return len(i.Suggestions) > 0 || i.IsSpelling()
}

// Stale reports whether the issue's text has been deleted since analysis.
func (i Issue) Stale() bool { return i.Span.Empty() }

// NewID returns a fresh issue id.
func NewID() string { return uuid.NewString() }

// FromRaw turns analyzer output into issues with fresh ids. newID may be nil,
// in which case NewID is used.
func FromRaw(raws []Raw, newID func() string) []Issue {
	if newID == nil {
		newID = NewID
	}
	out := make([]Issue, 0, len(raws))
	for _, r := range raws {
		out = append(out, Issue{
			ID:          newID(),
			Span:        r.Span,
			Kind:        r.Kind,
			Severity:    SeverityOf(r.Kind),
			Message:     r.Message,
			Suggestions: append([]Suggestion(nil), r.Suggestions...),
			ProblemText: r.ProblemText,
			Rule:        r.Rule,
		})
	}
	return out
}

// Raw returns the analyzer-facing form of i at its current span.
func (i Issue) Raw() Raw {
	return Raw{
		Span:        i.Span,
		Kind:        i.Kind,
		Message:     i.Message,
		Suggestions: append([]Suggestion(nil), i.Suggestions...),
		ProblemText: i.ProblemText,
		Rule:        i.Rule,
	}
}
