package interact

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lintmark/issue"
	"github.com/iw2rmb/lintmark/span"
)

type fakeWidget struct {
	cursor   int
	scrolled []int
}

func (w *fakeWidget) SetCursorOffset(off int) { w.cursor = off }
func (w *fakeWidget) ScrollIntoView(off int)  { w.scrolled = append(w.scrolled, off) }

type recorder struct {
	applied []string
	ignored []string
	words   []string
}

func (r *recorder) actions(store *issue.Store) Actions {
	return Actions{
		ApplySuggestion: func(is issue.Issue, s issue.Suggestion) tea.Cmd {
			r.applied = append(r.applied, is.ID+":"+s.Text)
			store.RemoveLocal(is.ID)
			return nil
		},
		Ignore: func(is issue.Issue) tea.Cmd {
			r.ignored = append(r.ignored, is.ID)
			store.RemoveLocal(is.ID)
			return nil
		},
		AddToDictionary: func(is issue.Issue) tea.Cmd {
			r.words = append(r.words, is.ProblemText)
			return nil
		},
	}
}

// Text: "Teh cat sat on teh mat ."
//
//	spell  [0,3)   Spelling, suggestion "The"
//	style  [8,11)  Style, no suggestions
//	fix    [15,18) Grammar, suggestion "the"
func fixture(t *testing.T) (*Controller, *issue.Store, *fakeWidget, *recorder) {
	t.Helper()
	store := issue.NewStore()
	store.Replace([]issue.Issue{
		{ID: "spell", Span: span.Span{Start: 0, End: 3}, Kind: "Spelling", ProblemText: "Teh", Suggestions: []issue.Suggestion{issue.Replace("The")}},
		{ID: "style", Span: span.Span{Start: 8, End: 11}, Kind: "Style", ProblemText: "sat"},
		{ID: "fix", Span: span.Span{Start: 15, End: 18}, Kind: "Grammar", ProblemText: "teh", Suggestions: []issue.Suggestion{issue.Replace("the"), issue.Remove()}},
	}, nil)
	w := &fakeWidget{}
	r := &recorder{}
	return New(store, w, r.actions(store), Options{}), store, w, r
}

func mustHandle(t *testing.T, c *Controller, ev Event) {
	t.Helper()
	if ok, _ := c.Handle(ev); !ok {
		t.Fatalf("Handle(%v) not handled", ev.Kind)
	}
}

func wantState(t *testing.T, c *Controller, st State, id string) {
	t.Helper()
	if c.State() != st || c.SelectedID() != id {
		t.Fatalf("state=%v id=%q, want %v %q", c.State(), c.SelectedID(), st, id)
	}
}

func TestCursorMoved_FocusesWithoutMenu(t *testing.T) {
	c, _, _, _ := fixture(t)
	mustHandle(t, c, Event{Kind: CursorMoved, Pos: 1})
	wantState(t, c, IssueFocused, "spell")
	if !c.TooltipVisible() {
		t.Fatalf("tooltip should show")
	}

	mustHandle(t, c, Event{Kind: CursorMoved, Pos: 5})
	wantState(t, c, Idle, "")
}

func TestMenuSuppressionLaw(t *testing.T) {
	for _, kind := range []EventKind{ClickedInEditor, SidebarClicked, TabPressed, NavigateNext, Programmatic} {
		c, _, _, _ := fixture(t)
		switch kind {
		case ClickedInEditor:
			mustHandle(t, c, Event{Kind: kind, Pos: 9})
		case SidebarClicked, Programmatic:
			mustHandle(t, c, Event{Kind: kind, IssueID: "style"})
		case TabPressed:
			mustHandle(t, c, Event{Kind: CursorMoved, Pos: 9})
			mustHandle(t, c, Event{Kind: kind})
		case NavigateNext:
			mustHandle(t, c, Event{Kind: CursorMoved, Pos: 5})
			mustHandle(t, c, Event{Kind: kind})
		}
		if c.State() == MenuOpen {
			t.Fatalf("%v opened a menu that would only show Ignore", kind)
		}
		wantState(t, c, IssueFocused, "style")
	}

	c, _, _, _ := fixture(t)
	mustHandle(t, c, Event{Kind: CursorMoved, Pos: 9})
	mustHandle(t, c, Event{Kind: ExplicitAutocomplete})
	wantState(t, c, MenuOpen, "style")
	items, _, _ := c.Menu()
	if len(items) != 1 || items[0].Kind != ItemIgnore {
		t.Fatalf("items=%+v, want only Ignore", items)
	}
}

func TestClickOnActionableIssueOpensMenu(t *testing.T) {
	c, _, _, _ := fixture(t)
	mustHandle(t, c, Event{Kind: ClickedInEditor, Pos: 16})
	wantState(t, c, MenuOpen, "fix")

	if ok, _ := c.Handle(Event{Kind: ClickedInEditor, Pos: 6}); ok {
		t.Fatalf("click off any issue should not be handled")
	}
	wantState(t, c, MenuOpen, "fix")
}

func TestSidebarMovesCursorTabDoesNot(t *testing.T) {
	c, _, w, _ := fixture(t)
	mustHandle(t, c, Event{Kind: SidebarClicked, IssueID: "fix"})
	if w.cursor != 15 || len(w.scrolled) != 1 || w.scrolled[0] != 15 {
		t.Fatalf("widget cursor=%d scrolled=%v", w.cursor, w.scrolled)
	}
	wantState(t, c, MenuOpen, "fix")

	w.cursor = -1
	mustHandle(t, c, Event{Kind: CursorMoved, Pos: 2})
	mustHandle(t, c, Event{Kind: TabPressed})
	if w.cursor != -1 {
		t.Fatalf("tab moved the cursor to %d", w.cursor)
	}
	wantState(t, c, MenuOpen, "spell")
}

func TestNavigateWraps(t *testing.T) {
	c, _, w, _ := fixture(t)
	mustHandle(t, c, Event{Kind: NavigateNext})
	wantState(t, c, IssueFocused, "style")
	mustHandle(t, c, Event{Kind: NavigateNext})
	wantState(t, c, MenuOpen, "fix")
	mustHandle(t, c, Event{Kind: NavigateNext})
	wantState(t, c, MenuOpen, "spell")
	if w.cursor != 0 {
		t.Fatalf("cursor=%d, want 0", w.cursor)
	}
	mustHandle(t, c, Event{Kind: NavigatePrevious})
	wantState(t, c, MenuOpen, "fix")
}

func TestApplySuggestion(t *testing.T) {
	c, store, _, r := fixture(t)
	if ok, _ := c.Handle(Event{Kind: ApplySuggestion}); ok {
		t.Fatalf("apply without menu should be a no-op")
	}

	mustHandle(t, c, Event{Kind: ClickedInEditor, Pos: 1})
	mustHandle(t, c, Event{Kind: ApplySuggestion, Suggestion: 0})
	wantState(t, c, Idle, "")
	if len(r.applied) != 1 || r.applied[0] != "spell:The" {
		t.Fatalf("applied=%v", r.applied)
	}
	if _, ok := store.FindByID("spell"); ok {
		t.Fatalf("issue should be removed optimistically")
	}
}

func TestMenuNavigationAndAccept(t *testing.T) {
	c, _, _, r := fixture(t)
	mustHandle(t, c, Event{Kind: ClickedInEditor, Pos: 16})

	items, idx, ok := c.Menu()
	if !ok || len(items) != 3 || idx != 0 {
		t.Fatalf("menu=%+v idx=%d ok=%v", items, idx, ok)
	}
	mustHandle(t, c, Event{Kind: MenuPrev})
	if _, idx, _ := c.Menu(); idx != 2 {
		t.Fatalf("idx=%d, want wrap to 2", idx)
	}
	mustHandle(t, c, Event{Kind: MenuNext})
	mustHandle(t, c, Event{Kind: MenuNext})
	mustHandle(t, c, Event{Kind: MenuAccept})
	if len(r.applied) != 1 || r.applied[0] != "fix:" {
		t.Fatalf("applied=%v, want the Remove suggestion", r.applied)
	}
}

func TestIgnoreAndEscape(t *testing.T) {
	c, store, _, r := fixture(t)
	if ok, _ := c.Handle(Event{Kind: Ignore}); ok {
		t.Fatalf("ignore while idle should be a no-op")
	}

	mustHandle(t, c, Event{Kind: ClickedInEditor, Pos: 16})
	mustHandle(t, c, Event{Kind: Escape})
	wantState(t, c, IssueFocused, "fix")

	mustHandle(t, c, Event{Kind: Ignore})
	wantState(t, c, Idle, "")
	if len(r.ignored) != 1 || store.Len() != 2 {
		t.Fatalf("ignored=%v len=%d", r.ignored, store.Len())
	}
}

func TestAddToDictionaryKeepsIssue(t *testing.T) {
	c, store, _, r := fixture(t)
	mustHandle(t, c, Event{Kind: ClickedInEditor, Pos: 0})

	items, _, _ := c.Menu()
	if got := items[1].Kind; got != ItemAddToDictionary {
		t.Fatalf("items[1]=%v, want add to dictionary", got)
	}
	mustHandle(t, c, Event{Kind: AddToDictionary})
	if len(r.words) != 1 || r.words[0] != "Teh" {
		t.Fatalf("words=%v", r.words)
	}
	if _, ok := store.FindByID("spell"); !ok {
		t.Fatalf("issue must stay until re-analysis")
	}
	wantState(t, c, IssueFocused, "spell")

	mustHandle(t, c, Event{Kind: CursorMoved, Pos: 16})
	if ok, _ := c.Handle(Event{Kind: AddToDictionary}); ok {
		t.Fatalf("add word on a grammar issue should be a no-op")
	}
}

func TestStaleReferencesAreNoOps(t *testing.T) {
	c, store, _, _ := fixture(t)
	if ok, _ := c.Handle(Event{Kind: SidebarClicked, IssueID: "gone"}); ok {
		t.Fatalf("unknown id should not be handled")
	}

	mustHandle(t, c, Event{Kind: ClickedInEditor, Pos: 16})
	store.RemoveLocal("fix")
	if ok, _ := c.Handle(Event{Kind: MenuAccept}); ok {
		t.Fatalf("accept on a vanished issue should be a no-op")
	}
	if ok, _ := c.Handle(Event{Kind: ApplySuggestion}); ok {
		t.Fatalf("apply on a vanished issue should be a no-op")
	}
}

func TestRevalidate(t *testing.T) {
	c, store, _, _ := fixture(t)
	mustHandle(t, c, Event{Kind: ClickedInEditor, Pos: 16})

	next := []issue.Issue{
		{ID: "n1", Span: span.Span{Start: 15, End: 18}, Kind: "Grammar", ProblemText: "teh"},
	}
	store.Replace(next, nil)
	c.Revalidate()
	// The cursor still sits on the new issue, so it gets plain focus.
	wantState(t, c, IssueFocused, "n1")

	store.Replace(nil, nil)
	c.Revalidate()
	wantState(t, c, Idle, "")
}

func TestRevalidate_KeepSelection(t *testing.T) {
	c, store, _, _ := fixture(t)
	c.opt.KeepSelection = true
	mustHandle(t, c, Event{Kind: SidebarClicked, IssueID: "fix"})
	mustHandle(t, c, Event{Kind: CursorMoved, Pos: 16})

	store.Replace([]issue.Issue{
		{ID: "n2", Span: span.Span{Start: 16, End: 19}, Kind: "Grammar", ProblemText: "teh", Suggestions: []issue.Suggestion{issue.Replace("the")}},
	}, nil)
	c.Revalidate()
	wantState(t, c, MenuOpen, "n2")
}

func TestNavigate_SkipsDeletedIssue(t *testing.T) {
	c, store, w, _ := fixture(t)
	store.Remap(span.Delta{From: 0, To: 3})

	mustHandle(t, c, Event{Kind: NavigateNext})
	mustHandle(t, c, Event{Kind: NavigatePrevious})
	if c.SelectedID() == "spell" {
		t.Fatalf("navigation selected a deleted issue")
	}
	wantState(t, c, MenuOpen, "fix")
	if got, want := w.cursor, 12; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestSidebarClicked_DeletedIssueIsNoOp(t *testing.T) {
	c, store, _, _ := fixture(t)
	store.Remap(span.Delta{From: 0, To: 3})

	for _, kind := range []EventKind{SidebarClicked, Programmatic} {
		if ok, _ := c.Handle(Event{Kind: kind, IssueID: "spell"}); ok {
			t.Fatalf("%v on a deleted issue was handled", kind)
		}
		wantState(t, c, Idle, "")
	}
}

func TestApply_RefusesIssueDeletedWhileMenuOpen(t *testing.T) {
	c, store, _, r := fixture(t)
	mustHandle(t, c, Event{Kind: SidebarClicked, IssueID: "spell"})
	wantState(t, c, MenuOpen, "spell")

	store.Remap(span.Delta{From: 0, To: 3})
	if ok, _ := c.Handle(Event{Kind: ApplySuggestion, Suggestion: 0}); ok {
		t.Fatalf("apply on a deleted issue was handled")
	}
	if ok, _ := c.Handle(Event{Kind: AddToDictionary}); ok {
		t.Fatalf("add word on a deleted issue was handled")
	}
	if len(r.applied) != 0 || len(r.words) != 0 {
		t.Fatalf("applied=%v words=%v, want none", r.applied, r.words)
	}
}

func TestSetCursor_RecordsWithoutSummoning(t *testing.T) {
	c, _, _, _ := fixture(t)
	c.SetCursor(16)
	wantState(t, c, Idle, "")
	if got, want := c.Cursor(), 16; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	mustHandle(t, c, Event{Kind: TabPressed})
	wantState(t, c, MenuOpen, "fix")
}
