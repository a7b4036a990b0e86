package issue

import (
	"fmt"
	"testing"

	"github.com/iw2rmb/lintmark/span"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func TestSeverityOf(t *testing.T) {
	cases := map[string]Severity{
		"Spelling":          SevError,
		"grammar":           SevError,
		"WordChoiceGrammar": SevError,
		"Punctuation":       SevWarning,
		"Repetition":        SevInfo,
		"":                  SevInfo,
	}
	for kind, want := range cases {
		if got := SeverityOf(kind); got != want {
			t.Fatalf("SeverityOf(%q)=%v, want %v", kind, got, want)
		}
	}
}

func TestFromRaw_AssignsFreshIDs(t *testing.T) {
	raws := []Raw{
		{Span: span.Span{Start: 0, End: 3}, Kind: "Spelling", Suggestions: []Suggestion{Replace("The")}},
		{Span: span.Span{Start: 4, End: 7}, Kind: "Style"},
	}
	got := FromRaw(raws, seqIDs())
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if got[0].ID != "id1" || got[1].ID != "id2" {
		t.Fatalf("ids=%q,%q", got[0].ID, got[1].ID)
	}
	if got[0].Severity != SevError || got[1].Severity != SevInfo {
		t.Fatalf("severities=%v,%v", got[0].Severity, got[1].Severity)
	}

	// Default generator yields distinct uuids.
	a := FromRaw(raws[:1], nil)
	b := FromRaw(raws[:1], nil)
	if a[0].ID == "" || a[0].ID == b[0].ID {
		t.Fatalf("expected distinct ids, got %q and %q", a[0].ID, b[0].ID)
	}

	raws[0].Suggestions[0].Text = "mutated"
	if got[0].Suggestions[0].Text != "The" {
		t.Fatalf("suggestions aliased raw input")
	}
}

func TestIssue_Actionable(t *testing.T) {
	cases := []struct {
		is   Issue
		want bool
	}{
		{Issue{Kind: "Style"}, false},
		{Issue{Kind: "Spelling"}, true},
		{Issue{Kind: "Style", Suggestions: []Suggestion{Remove()}}, true},
	}
	for _, tc := range cases {
		if got := tc.is.Actionable(); got != tc.want {
			t.Fatalf("Actionable(%+v)=%v, want %v", tc.is, got, tc.want)
		}
	}
}

func TestSuggestion_Label(t *testing.T) {
	if got, want := Replace("The").Label(), "The"; got != want {
		t.Fatalf("label=%q, want %q", got, want)
	}
	if got, want := Remove().Label(), "(Remove)"; got != want {
		t.Fatalf("label=%q, want %q", got, want)
	}
	if got, want := InsertAfter(",").Label(), `Insert ","`; got != want {
		t.Fatalf("label=%q, want %q", got, want)
	}
}
