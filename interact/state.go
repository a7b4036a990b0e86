// Package interact is the state machine behind issue selection, the tooltip
// and the suggestion menu.
//
// A Controller is in one of three states: Idle, IssueFocused (tooltip shown)
// or MenuOpen (tooltip and menu shown). Events carry their cause, and the
// cause decides whether a menu may open on its own. A menu whose only entry
// would be "Ignore" is not opened automatically; only an explicit request
// (the autocomplete shortcut or Tab) opens it anyway.
package interact

import "fmt"

type State uint8

const (
	Idle State = iota
	IssueFocused
	MenuOpen
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case IssueFocused:
		return "focused"
	case MenuOpen:
		return "menu"
	default:
		return fmt.Sprintf("state(%d)", s)
	}
}

// EventKind is the cause of an interaction.
type EventKind uint8

const (
	CursorMoved EventKind = iota
	ClickedInEditor
	SidebarClicked
	ExplicitAutocomplete
	TabPressed
	NavigateNext
	NavigatePrevious
	Programmatic
	ApplySuggestion
	Ignore
	AddToDictionary
	Escape
	MenuNext
	MenuPrev
	MenuAccept
)

var eventNames = [...]string{
	CursorMoved:          "cursor-moved",
	ClickedInEditor:      "clicked",
	SidebarClicked:       "sidebar",
	ExplicitAutocomplete: "autocomplete",
	TabPressed:           "tab",
	NavigateNext:         "next",
	NavigatePrevious:     "previous",
	Programmatic:         "programmatic",
	ApplySuggestion:      "apply",
	Ignore:               "ignore",
	AddToDictionary:      "add-word",
	Escape:               "escape",
	MenuNext:             "menu-next",
	MenuPrev:             "menu-prev",
	MenuAccept:           "menu-accept",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", k)
}

// Event is one interaction.
//
//   - Pos is the rune offset for CursorMoved and ClickedInEditor.
//   - IssueID names the target for SidebarClicked and Programmatic.
//   - Suggestion indexes the active issue's suggestions for ApplySuggestion.
type Event struct {
	Kind       EventKind
	Pos        int
	IssueID    string
	Suggestion int
}
