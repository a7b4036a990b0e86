package interact

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lintmark/issue"
)

// Lookup is the read side of the issue store. *issue.Store implements it.
type Lookup interface {
	FindAt(pos int) (issue.Issue, bool)
	FindByID(id string) (issue.Issue, bool)
	Next(fromID string, cursor int) (issue.Issue, bool)
	Prev(fromID string, cursor int) (issue.Issue, bool)
	Issues() []issue.Issue
}

// Widget is the part of the text widget the controller drives.
type Widget interface {
	SetCursorOffset(off int)
	ScrollIntoView(off int)
}

// Actions are the side effects the controller may trigger. Each returns a
// command for the host to run; a nil func is a no-op.
type Actions struct {
	ApplySuggestion func(is issue.Issue, s issue.Suggestion) tea.Cmd
	Ignore          func(is issue.Issue) tea.Cmd
	AddToDictionary func(is issue.Issue) tea.Cmd
}

type Options struct {
	// KeepSelection carries the selected issue across analyses by matching
	// kind, problem text and nearest start instead of dropping it.
	KeepSelection bool
}

type Controller struct {
	store   Lookup
	widget  Widget
	actions Actions
	opt     Options

	state  State
	id     string
	last   issue.Issue
	cursor int
	menu   int
}

func New(store Lookup, w Widget, actions Actions, opt Options) *Controller {
	return &Controller{store: store, widget: w, actions: actions, opt: opt}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) SelectedID() string { return c.id }

func (c *Controller) Cursor() int { return c.cursor }

// SetCursor records where the widget cursor is without summoning anything.
// Hosts call it for cursor moves they caused themselves.
func (c *Controller) SetCursor(off int) { c.cursor = off }

// TooltipVisible reports whether the active issue's tooltip should show.
func (c *Controller) TooltipVisible() bool { return c.state != Idle }

// Active returns the selected issue as currently stored.
func (c *Controller) Active() (issue.Issue, bool) {
	if c.id == "" {
		return issue.Issue{}, false
	}
	return c.store.FindByID(c.id)
}

// Menu returns the open menu's items and highlighted row.
func (c *Controller) Menu() ([]MenuItem, int, bool) {
	if c.state != MenuOpen {
		return nil, 0, false
	}
	is, ok := c.Active()
	if !ok {
		return nil, 0, false
	}
	return MenuItems(is), c.menu, true
}

// Handle applies ev. It reports false when the event had nothing to act on,
// such as an issue that no longer exists; the state is left unchanged then.
func (c *Controller) Handle(ev Event) (bool, tea.Cmd) {
	switch ev.Kind {
	case CursorMoved:
		c.cursor = ev.Pos
		is, ok := c.store.FindAt(ev.Pos)
		switch {
		case !ok:
			c.reset()
		case c.state == MenuOpen && is.ID == c.id:
			// still inside the issue the menu is for
		default:
			c.focus(is, IssueFocused)
		}
		return true, nil

	case ClickedInEditor:
		c.cursor = ev.Pos
		is, ok := c.store.FindAt(ev.Pos)
		if !ok {
			return false, nil
		}
		c.summon(is, false)
		return true, nil

	case SidebarClicked, Programmatic:
		is, ok := c.store.FindByID(ev.IssueID)
		if !ok || is.Stale() {
			return false, nil
		}
		c.moveTo(is)
		c.summon(is, false)
		return true, nil

	case ExplicitAutocomplete:
		is, ok := c.store.FindAt(c.cursor)
		if !ok {
			return false, nil
		}
		c.summon(is, true)
		return true, nil

	case TabPressed:
		is, ok := c.store.FindAt(c.cursor)
		if !ok {
			return false, nil
		}
		c.summon(is, false)
		return true, nil

	case NavigateNext, NavigatePrevious:
		find := c.store.Next
		if ev.Kind == NavigatePrevious {
			find = c.store.Prev
		}
		is, ok := find(c.id, c.cursor)
		if !ok {
			return false, nil
		}
		c.moveTo(is)
		c.summon(is, false)
		return true, nil

	case ApplySuggestion:
		if c.state != MenuOpen {
			return false, nil
		}
		return c.apply(ev.Suggestion)

	case Ignore:
		return c.ignore()

	case AddToDictionary:
		return c.addWord()

	case Escape:
		switch c.state {
		case MenuOpen:
			c.state = IssueFocused
			return true, nil
		case IssueFocused:
			c.reset()
			return true, nil
		}
		return false, nil

	case MenuNext, MenuPrev:
		items, _, ok := c.Menu()
		if !ok {
			return false, nil
		}
		step := 1
		if ev.Kind == MenuPrev {
			step = -1
		}
		c.menu = (c.menu + step + len(items)) % len(items)
		return true, nil

	case MenuAccept:
		items, idx, ok := c.Menu()
		if !ok {
			return false, nil
		}
		switch it := items[idx]; it.Kind {
		case ItemSuggestion:
			return c.apply(it.Index)
		case ItemAddToDictionary:
			return c.addWord()
		default:
			return c.ignore()
		}
	}
	return false, nil
}

// Revalidate re-reads the selection after the store was replaced. A
// selection whose issue disappeared is dropped, or carried to its best match
// with KeepSelection. With nothing selected, an issue under the cursor gets
// focus.
func (c *Controller) Revalidate() {
	if c.id != "" {
		if is, ok := c.store.FindByID(c.id); ok {
			c.last = is
			return
		}
		if c.opt.KeepSelection {
			if is, ok := issue.Reidentify(c.last, c.store.Issues()); ok {
				c.id, c.last = is.ID, is
				if items := MenuItems(is); c.menu >= len(items) {
					c.menu = 0
				}
				return
			}
		}
		c.reset()
	}
	if is, ok := c.store.FindAt(c.cursor); ok {
		c.focus(is, IssueFocused)
	}
}

// summon focuses is and opens the menu unless the menu would offer nothing
// but "Ignore". force skips that check.
func (c *Controller) summon(is issue.Issue, force bool) {
	if force || is.Actionable() {
		c.focus(is, MenuOpen)
		return
	}
	c.focus(is, IssueFocused)
}

func (c *Controller) focus(is issue.Issue, st State) {
	if is.ID != c.id || st != MenuOpen {
		c.menu = 0
	}
	c.id, c.last, c.state = is.ID, is, st
}

func (c *Controller) moveTo(is issue.Issue) {
	c.cursor = is.Span.Start
	if c.widget != nil {
		c.widget.SetCursorOffset(is.Span.Start)
		c.widget.ScrollIntoView(is.Span.Start)
	}
}

func (c *Controller) reset() {
	c.state, c.id, c.last, c.menu = Idle, "", issue.Issue{}, 0
}

func (c *Controller) apply(idx int) (bool, tea.Cmd) {
	is, ok := c.Active()
	if !ok || is.Stale() || idx < 0 || idx >= len(is.Suggestions) {
		return false, nil
	}
	c.reset()
	if c.actions.ApplySuggestion == nil {
		return true, nil
	}
	return true, c.actions.ApplySuggestion(is, is.Suggestions[idx])
}

func (c *Controller) ignore() (bool, tea.Cmd) {
	if c.state == Idle {
		return false, nil
	}
	is, ok := c.Active()
	if !ok {
		return false, nil
	}
	c.reset()
	if c.actions.Ignore == nil {
		return true, nil
	}
	return true, c.actions.Ignore(is)
}

// addWord leaves the issue in place. Re-analysis removes it together with
// every other occurrence of the word.
func (c *Controller) addWord() (bool, tea.Cmd) {
	is, ok := c.Active()
	if !ok || is.Stale() || c.state == Idle || !is.IsSpelling() || is.ProblemText == "" {
		return false, nil
	}
	c.state = IssueFocused
	c.menu = 0
	if c.actions.AddToDictionary == nil {
		return true, nil
	}
	return true, c.actions.AddToDictionary(is)
}
