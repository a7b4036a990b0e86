package decoration

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lintmark/issue"
)

func TestTheme_StyleIsPureFunctionOfKindAndSelection(t *testing.T) {
	th := DefaultTheme()

	a := th.Style("Spelling", false)
	b := th.Style("spelling", false)
	if a.GetForeground() != b.GetForeground() {
		t.Fatalf("kind lookup should be case-insensitive")
	}
	if !a.GetUnderline() {
		t.Fatalf("expected underline")
	}
	if _, ok := a.GetBackground().(lipgloss.NoColor); !ok {
		t.Fatalf("unselected style should have no background, got %v", a.GetBackground())
	}

	sel := th.Style("Spelling", true)
	if got, want := sel.GetBackground(), lipgloss.TerminalColor(th.Selected); got != want {
		t.Fatalf("background=%v, want %v", got, want)
	}
}

func TestTheme_UnknownKindFallsBackToSeverity(t *testing.T) {
	th := DefaultTheme()
	if got, want := th.Color("WordChoicePunctuation"), th.Severity[issue.SevWarning]; got != want {
		t.Fatalf("color=%v, want %v", got, want)
	}
	if got, want := th.Color("SomethingElse"), th.Color("readability"); got != want {
		t.Fatalf("color=%v, want %v", got, want)
	}
}
