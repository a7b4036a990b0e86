// Package decoration derives the highlight overlay for the editor from the
// issue store and the selected issue.
//
// A Set is an immutable value. Build makes a new one when the issues change,
// Select re-derives only the selected flags, and Map moves ranges through
// edits; each returns a fresh Set and leaves its input alone.
package decoration

import (
	"sort"

	"github.com/iw2rmb/lintmark/issue"
	"github.com/iw2rmb/lintmark/span"
)

// Decoration is one highlighted range tagged with the issue it came from.
type Decoration struct {
	Span     span.Span
	IssueID  string
	Kind     string
	Severity issue.Severity
	Selected bool
}

type Set struct {
	items []Decoration
}

// Build creates a set for issues, sorted by start with ties in input order.
func Build(issues []issue.Issue, selectedID string) Set {
	items := make([]Decoration, 0, len(issues))
	for _, it := range issues {
		items = append(items, Decoration{
			Span:     it.Span,
			IssueID:  it.ID,
			Kind:     it.Kind,
			Severity: it.Severity,
			Selected: selectedID != "" && it.ID == selectedID,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Span.Start < items[j].Span.Start
	})
	return Set{items: items}
}

// Select returns s with only the decoration tagged id marked selected.
// Ranges are untouched. An empty id clears the selection.
func Select(s Set, id string) Set {
	if len(s.items) == 0 {
		return s
	}
	items := make([]Decoration, len(s.items))
	for i, d := range s.items {
		d.Selected = id != "" && d.IssueID == id
		items[i] = d
	}
	return Set{items: items}
}

// Map returns s with every range moved through deltas in order.
func Map(s Set, deltas ...span.Delta) Set {
	if len(s.items) == 0 || len(deltas) == 0 {
		return s
	}
	spans := make([]span.Span, len(s.items))
	for i, d := range s.items {
		spans[i] = d.Span
	}
	spans = span.MapAll(spans, deltas...)

	items := make([]Decoration, len(s.items))
	copy(items, s.items)
	for i := range items {
		items[i].Span = spans[i]
	}
	return Set{items: items}
}

func (s Set) Len() int { return len(s.items) }

// Items returns a copy of the decorations in order.
func (s Set) Items() []Decoration {
	return append([]Decoration(nil), s.items...)
}

// At returns the first non-empty decoration touching pos.
func (s Set) At(pos int) (Decoration, bool) {
	for _, d := range s.items {
		if d.Span.Start > pos {
			break
		}
		if !d.Span.Empty() && d.Span.Contains(pos) {
			return d, true
		}
	}
	return Decoration{}, false
}

// Selected returns the selected decoration, if any.
func (s Set) Selected() (Decoration, bool) {
	for _, d := range s.items {
		if d.Selected {
			return d, true
		}
	}
	return Decoration{}, false
}
