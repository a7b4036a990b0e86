package decoration

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lintmark/issue"
)

// Theme colours decorations by kind. Kinds not listed fall back to the
// severity colour.
type Theme struct {
	Kinds    map[string]lipgloss.Color
	Severity map[issue.Severity]lipgloss.Color
	Selected lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Kinds: map[string]lipgloss.Color{
			"spelling":       lipgloss.Color("203"),
			"grammar":        lipgloss.Color("208"),
			"punctuation":    lipgloss.Color("220"),
			"repetition":     lipgloss.Color("141"),
			"capitalization": lipgloss.Color("75"),
			"formatting":     lipgloss.Color("244"),
			"readability":    lipgloss.Color("110"),
		},
		Severity: map[issue.Severity]lipgloss.Color{
			issue.SevError:   lipgloss.Color("203"),
			issue.SevWarning: lipgloss.Color("220"),
			issue.SevInfo:    lipgloss.Color("110"),
		},
		Selected: lipgloss.Color("237"),
	}
}

// Color is the colour for kind.
func (t Theme) Color(kind string) lipgloss.Color {
	if c, ok := t.Kinds[strings.ToLower(kind)]; ok {
		return c
	}
	if c, ok := t.Severity[issue.SeverityOf(kind)]; ok {
		return c
	}
	return lipgloss.Color("7")
}

// Style is the text style for a decoration of kind. It depends on nothing
// but its arguments.
func (t Theme) Style(kind string, selected bool) lipgloss.Style {
	st := lipgloss.NewStyle().Underline(true).Foreground(t.Color(kind))
	if selected {
		st = st.Background(t.Selected)
	}
	return st
}

// StyleFor is Style for d.
func (t Theme) StyleFor(d Decoration) lipgloss.Style {
	return t.Style(d.Kind, d.Selected)
}
