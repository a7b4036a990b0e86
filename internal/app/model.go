// Package app is the interactive shell around the editor: it runs analysis
// as the text changes, draws the issue overlay and routes keys and clicks to
// the interaction controller.
package app

import (
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lintmark/analysis"
	"github.com/iw2rmb/lintmark/apply"
	"github.com/iw2rmb/lintmark/decoration"
	"github.com/iw2rmb/lintmark/editor"
	"github.com/iw2rmb/lintmark/interact"
	"github.com/iw2rmb/lintmark/internal/config"
	"github.com/iw2rmb/lintmark/internal/textstats"
	"github.com/iw2rmb/lintmark/lint"
	"github.com/iw2rmb/lintmark/settings"
)

// RuleLister is implemented by analyzers with toggleable rules, such as
// *lint.Engine.
type RuleLister interface {
	Rules() []lint.RuleInfo
}

type Options struct {
	// Path is where ctrl+s writes the text. Empty disables saving.
	Path string
	Text string

	Analyzer analysis.Analyzer
	// Settings stores rule toggles. The rules panel is read-only without it.
	Settings *settings.Settings
	Config   config.Config
	Logger   *log.Logger

	// Clipboard defaults to the system clipboard.
	Clipboard editor.Clipboard
	// Tick replaces tea.Tick for the analysis timer.
	Tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

const (
	sidebarWidth    = 30
	minSidebarWidth = 70 // below this terminal width the sidebar is hidden
	chromeHeight    = 3  // top bar, status line, help
)

type Model struct {
	opt    Options
	logger *log.Logger
	keys   keyMap
	styles styles

	help     help.Model
	spinner  spinner.Model
	spinning bool

	editor  editor.Model
	coord   *analysis.Coordinator
	ctrl    *interact.Controller
	applier *apply.Applier
	hl      *issueHighlighter

	width, height int
	sidebarTop    int

	stats        textstats.Stats
	savedVersion uint64
	status       string
	statusErr    bool

	rulesOpen   bool
	rulesCursor int

	// queued holds commands produced by controller side effects.
	queued []tea.Cmd
}

// widget lets the controller move the editor cursor and viewport.
type widget struct{ m *Model }

func (w widget) SetCursorOffset(off int) {
	var cmd tea.Cmd
	w.m.editor, cmd = w.m.editor.SetCursorOffset(off)
	w.m.queue(cmd)
}

func (w widget) ScrollIntoView(off int) {
	w.m.editor = w.m.editor.ScrollIntoView(off)
}

func New(opt Options) *Model {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if opt.Clipboard == nil {
		opt.Clipboard = editor.SystemClipboard{}
	}
	cfg := opt.Config

	m := &Model{
		opt:     opt,
		logger:  logger,
		keys:    defaultKeyMap(),
		styles:  defaultStyles(),
		help:    help.New(),
		applier: apply.New(opt.Analyzer),
		hl:      &issueHighlighter{theme: decoration.DefaultTheme()},
		stats:   textstats.Of(opt.Text),
	}
	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	m.coord = analysis.New(opt.Analyzer, analysis.Options{
		Policy: cfg.Policy(),
		Delay:  cfg.Delay(),
		Logger: logger,
		Trace:  cfg.Trace,
		Tick:   opt.Tick,
	})
	m.ctrl = interact.New(m.coord.Store(), widget{m}, interact.Actions{
		ApplySuggestion: m.applySuggestion,
		Ignore:          m.ignore,
		AddToDictionary: m.addToDictionary,
	}, interact.Options{KeepSelection: cfg.Interaction.KeepSelection})

	m.editor = editor.New(editor.Config{
		Text:         opt.Text,
		ShowLineNums: cfg.Editor.LineNumbers,
		Style:        editor.DefaultStyle(),
		WrapMode:     editor.WrapWord,
		Clipboard:    opt.Clipboard,
		Highlighter:  m.hl,
		OnChange:     m.onEditorChange,
	})
	m.hl.SetDecorations(decoration.Set{}, opt.Text)
	return m
}

// Text is the current document.
func (m *Model) Text() string { return m.editor.Text() }

// Dirty reports whether the text changed since it was loaded or saved.
func (m *Model) Dirty() bool {
	return m.editor.Buffer().TextVersion() != m.savedVersion
}

func (m *Model) Init() tea.Cmd {
	_, cmd := m.coord.OnBufferChanged(m.editor.Text())
	return tea.Batch(cmd, m.startSpinner())
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.queued = append(m.queued, cmd)
	}
}

func (m *Model) busy() bool {
	return m.coord.Pending() || m.coord.IsAnalyzing()
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.busy() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
}

func (m *Model) showSidebar() bool { return m.width >= minSidebarWidth }

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	ew := width
	if m.showSidebar() {
		ew -= sidebarWidth
	}
	m.editor = m.editor.SetSize(ew, max(height-chromeHeight, 0))
}
