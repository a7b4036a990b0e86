package app

import "github.com/charmbracelet/lipgloss"

type styles struct {
	TopBar      lipgloss.Style
	Title       lipgloss.Style
	Dirty       lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Sidebar     lipgloss.Style
	SidebarHead lipgloss.Style
	Item        lipgloss.Style
	ItemActive  lipgloss.Style
	Popup       lipgloss.Style
	PopupTitle  lipgloss.Style
	Code        lipgloss.Style
	MenuItem    lipgloss.Style
	MenuActive  lipgloss.Style
	Muted       lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		TopBar:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		Title:       lipgloss.NewStyle().Bold(true),
		Dirty:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Sidebar:     lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(lipgloss.Color("238")),
		SidebarHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("237")),
		Popup:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		PopupTitle:  lipgloss.NewStyle().Bold(true),
		Code:        lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		MenuItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		MenuActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
}
