// Package apply realizes suggestions and dictionary additions through the
// analyzer and hands the host the smallest edit that gets the buffer there.
package apply

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lintmark/analysis"
	"github.com/iw2rmb/lintmark/issue"
	"github.com/iw2rmb/lintmark/span"
)

// Result is one applied suggestion. Delta and Inserted describe the edit
// against the text the suggestion was applied to; Cursor is where the
// inserted text ends.
type Result struct {
	Text     string
	Delta    span.Delta
	Inserted string
	Cursor   int
	Changed  bool
}

// AppliedMsg reports an asynchronous Apply. Version is the buffer text
// version the request was made against.
type AppliedMsg struct {
	IssueID string
	Version uint64
	Result  Result
	Err     error
}

// Stale reports whether the buffer moved on since the request was made.
func (m AppliedMsg) Stale(current uint64) bool { return m.Version != current }

// WordAddedMsg reports an asynchronous AddWord.
type WordAddedMsg struct {
	Word string
	Err  error
}

type Applier struct {
	analyzer analysis.Analyzer
}

func New(a analysis.Analyzer) *Applier {
	return &Applier{analyzer: a}
}

// Apply asks the analyzer to apply s to is within text.
func (a *Applier) Apply(ctx context.Context, text string, is issue.Issue, s issue.Suggestion) (Result, error) {
	if a.analyzer == nil {
		return Result{}, analysis.ErrNoAnalyzer
	}
	next, err := a.analyzer.ApplySuggestion(ctx, text, is.Raw(), s)
	if err != nil {
		return Result{}, fmt.Errorf("apply suggestion: %w", err)
	}
	d, ins, ok := span.Diff(text, next)
	if !ok {
		return Result{Text: next, Cursor: is.Span.End}, nil
	}
	return Result{
		Text:     next,
		Delta:    d,
		Inserted: ins,
		Cursor:   d.From + d.Inserted,
		Changed:  true,
	}, nil
}

// Cmd runs Apply off the update loop.
func (a *Applier) Cmd(text string, version uint64, is issue.Issue, s issue.Suggestion) tea.Cmd {
	return func() tea.Msg {
		res, err := a.Apply(context.Background(), text, is, s)
		return AppliedMsg{IssueID: is.ID, Version: version, Result: res, Err: err}
	}
}

// AddWordCmd persists word through the analyzer off the update loop.
func (a *Applier) AddWordCmd(word string) tea.Cmd {
	return func() tea.Msg {
		if a.analyzer == nil {
			return WordAddedMsg{Word: word, Err: analysis.ErrNoAnalyzer}
		}
		if err := a.analyzer.AddWord(context.Background(), word); err != nil {
			return WordAddedMsg{Word: word, Err: fmt.Errorf("add word %q: %w", word, err)}
		}
		return WordAddedMsg{Word: word}
	}
}
