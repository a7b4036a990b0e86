package interact

import (
	"fmt"

	"github.com/iw2rmb/lintmark/issue"
)

type ItemKind uint8

const (
	ItemSuggestion ItemKind = iota
	ItemAddToDictionary
	ItemIgnore
)

type MenuItem struct {
	Kind       ItemKind
	Label      string
	Suggestion issue.Suggestion
	// Index is the suggestion index for ItemSuggestion.
	Index int
}

// MenuItems lists the entries shown for is: its suggestions in order, then
// "Add to dictionary" for spelling issues, then "Ignore".
func MenuItems(is issue.Issue) []MenuItem {
	items := make([]MenuItem, 0, len(is.Suggestions)+2)
	for i, s := range is.Suggestions {
		items = append(items, MenuItem{Kind: ItemSuggestion, Label: s.Label(), Suggestion: s, Index: i})
	}
	if is.IsSpelling() {
		items = append(items, MenuItem{
			Kind:  ItemAddToDictionary,
			Label: fmt.Sprintf("Add %q to dictionary", is.ProblemText),
		})
	}
	return append(items, MenuItem{Kind: ItemIgnore, Label: "Ignore"})
}
