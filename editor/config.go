package editor

import tea "github.com/charmbracelet/bubbletea"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ShowLineNums bool
	Style        Style
	KeyMap       KeyMap
	WrapMode     WrapMode
	// TabWidth is the number of cells a tab takes. Default 4.
	TabWidth     int
	ScrollPolicy ScrollPolicy

	ReadOnly  bool
	Clipboard Clipboard

	Highlighter Highlighter

	// OnChange runs synchronously inside Update after every observable
	// change. The returned command is batched into Update's result.
	OnChange func(ChangeEvent) tea.Cmd

	// Forwarded to buffer.Options.
	HistoryLimit int
}

const defaultTabWidth = 4

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return defaultTabWidth
	}
	return c.TabWidth
}
