package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lintmark/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
//
// A zero Config.Style renders plain text with an invisible cursor; hosts
// usually start from DefaultStyle.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	popup    Popup
	hasPopup bool

	mouseDragging bool
	mouseAnchor   buffer.Pos

	lastVersion     uint64
	lastTextVersion uint64
	lastText        string
	lastCursor      buffer.Pos

	layout    layout
	layoutKey layoutKey
	layoutOK  bool
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.markSynced()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Text() string { return m.buf.Text() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetText replaces the whole document and clears history. No ChangeEvent
// is emitted; the host knows what it loaded.
func (m Model) SetText(text string) Model {
	m.buf = buffer.New(text, buffer.Options{HistoryLimit: m.cfg.HistoryLimit})
	m.layoutOK = false
	m.xOffset = 0
	m.viewport.SetYOffset(0)
	m.markSynced()
	m.rebuildContent()
	return m
}

// SetCursorOffset moves the cursor to a document rune offset.
func (m Model) SetCursorOffset(off int) (Model, tea.Cmd) {
	m.buf.SetCursorOffset(off)
	cmd := m.sync(CauseHost)
	return m, cmd
}

// ReplaceOffsets replaces [from,to) with text as one undoable fix edit.
func (m Model) ReplaceOffsets(from, to int, text string) (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}
	m.buf.ReplaceOffsets(from, to, text)
	cmd := m.sync(CauseHost)
	return m, cmd
}

// ScrollIntoView scrolls so the rune offset is on screen without moving the
// cursor.
func (m Model) ScrollIntoView(off int) Model {
	m.scrollTo(m.buf.PosAt(off))
	return m
}

// Redraw re-renders the content. Hosts call it after changing state their
// Highlighter reads.
func (m Model) Redraw() Model {
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	cause := CauseHost
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
		cause = CauseKey
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		cause = CauseMouse
	}
	changed := m.sync(cause)
	return m, tea.Batch(cmd, changed)
}

func (m Model) View() string {
	base := m.viewport.View()
	if !m.hasPopup {
		return base
	}
	return m.renderPopup(base)
}

// sync reacts to buffer changes made since the last call: it reports the
// change, re-renders and follows the cursor. OnChange runs first so state it
// updates for the highlighter is what gets drawn.
func (m *Model) sync(cause Cause) tea.Cmd {
	if m.buf == nil || m.buf.Version() == m.lastVersion {
		return nil
	}
	ev := m.changeEvent(cause)
	cursorMoved := m.buf.Cursor() != m.lastCursor
	m.markSynced()
	var cmd tea.Cmd
	if m.cfg.OnChange != nil {
		cmd = m.cfg.OnChange(ev)
	}
	m.rebuildContent()
	if cursorMoved || ev.TextChanged {
		m.followCursor()
	}
	return cmd
}

func (m *Model) markSynced() {
	m.lastVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastText = m.buf.Text()
	m.lastCursor = m.buf.Cursor()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
