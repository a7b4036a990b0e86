package decoration

import (
	"testing"

	"github.com/iw2rmb/lintmark/issue"
	"github.com/iw2rmb/lintmark/span"
)

func issues() []issue.Issue {
	return []issue.Issue{
		{ID: "b", Span: span.Span{Start: 4, End: 7}, Kind: "Style"},
		{ID: "a", Span: span.Span{Start: 0, End: 3}, Kind: "Spelling"},
		{ID: "c", Span: span.Span{Start: 5, End: 9}, Kind: "Grammar"},
	}
}

func TestBuild_SortsAndMarksSelection(t *testing.T) {
	s := Build(issues(), "b")
	items := s.Items()
	if got, want := len(items), 3; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	for i, want := range []string{"a", "b", "c"} {
		if items[i].IssueID != want {
			t.Fatalf("items[%d]=%q, want %q", i, items[i].IssueID, want)
		}
	}
	sel, ok := s.Selected()
	if !ok || sel.IssueID != "b" {
		t.Fatalf("selected=%q,%v, want b", sel.IssueID, ok)
	}
}

func TestSelect_PatchesFlagsOnly(t *testing.T) {
	base := Map(Build(issues(), "a"), span.Delta{From: 0, To: 0, Inserted: 2})
	next := Select(base, "c")

	a, b := base.Items(), next.Items()
	for i := range a {
		if a[i].Span != b[i].Span || a[i].IssueID != b[i].IssueID {
			t.Fatalf("select changed ranges: %+v vs %+v", a[i], b[i])
		}
	}
	if sel, _ := base.Selected(); sel.IssueID != "a" {
		t.Fatalf("input set mutated: selected %q", sel.IssueID)
	}
	if sel, _ := next.Selected(); sel.IssueID != "c" {
		t.Fatalf("selected=%q, want c", sel.IssueID)
	}
	if _, ok := Select(next, "").Selected(); ok {
		t.Fatalf("empty id should clear selection")
	}
	if _, ok := Select(next, "missing").Selected(); ok {
		t.Fatalf("unknown id should select nothing")
	}
}

func TestMap_RemapsWithoutTouchingInput(t *testing.T) {
	s := Build(issues(), "")
	m := Map(s, span.Delta{From: 0, To: 3})

	if got, want := m.Items()[0].Span, (span.Span{Start: 0, End: 0}); got != want {
		t.Fatalf("a=%v, want %v", got, want)
	}
	if got, want := m.Items()[1].Span, (span.Span{Start: 1, End: 4}); got != want {
		t.Fatalf("b=%v, want %v", got, want)
	}
	if got, want := s.Items()[0].Span, (span.Span{Start: 0, End: 3}); got != want {
		t.Fatalf("input changed: %v", got)
	}
}

func TestAt_SkipsEmptyAndHandlesOverlap(t *testing.T) {
	s := Map(Build(issues(), ""), span.Delta{From: 0, To: 3})
	if _, ok := s.At(0); ok {
		t.Fatalf("collapsed decoration must not be hit")
	}
	d, ok := s.At(3)
	if !ok || d.IssueID != "b" {
		t.Fatalf("At(3)=%q,%v, want b", d.IssueID, ok)
	}
	d, ok = s.At(5)
	if !ok || d.IssueID != "c" {
		t.Fatalf("At(5)=%q,%v, want c", d.IssueID, ok)
	}
}

func TestLines_SplitsAcrossNewlines(t *testing.T) {
	text := "ab\ncdef\ng"
	s := Build([]issue.Issue{
		{ID: "x", Span: span.Span{Start: 1, End: 5}},
		{ID: "y", Span: span.Span{Start: 8, End: 20}},
		{ID: "z", Span: span.Span{Start: 4, End: 4}},
	}, "")

	lines := Lines(s, text)
	if got, want := len(lines), 3; got != want {
		t.Fatalf("lines=%d, want %d", got, want)
	}
	if got, want := lines[0], []LineSpan{{StartCol: 1, EndCol: 2, Index: 0}}; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("line0=%v, want %v", got, want)
	}
	if got, want := lines[1], []LineSpan{{StartCol: 0, EndCol: 2, Index: 0}}; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("line1=%v, want %v", got, want)
	}
	if got, want := lines[2], []LineSpan{{StartCol: 0, EndCol: 1, Index: 2}}; len(got) != 1 || got[0] != want[0] {
		t.Fatalf("line2=%v, want %v", got, want)
	}
}
