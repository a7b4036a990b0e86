package app

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lintmark/analysis"
	"github.com/iw2rmb/lintmark/apply"
	"github.com/iw2rmb/lintmark/decoration"
	"github.com/iw2rmb/lintmark/editor"
	"github.com/iw2rmb/lintmark/interact"
	"github.com/iw2rmb/lintmark/internal/textstats"
	"github.com/iw2rmb/lintmark/issue"
)

type savedMsg struct {
	Version uint64
	Err     error
}

type copiedMsg struct{ Err error }

type ruleToggledMsg struct {
	Name string
	On   bool
	Err  error
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmds = append(cmds, m.updateKey(msg))
	case tea.MouseMsg:
		cmds = append(cmds, m.updateMouse(msg))
	case analysis.TickMsg, analysis.ResultMsg:
		ev, cmd := m.coord.Update(msg)
		if ev.Kind == analysis.EventReplaced {
			m.ctrl.Revalidate()
			m.rebuildDecorations()
		}
		cmds = append(cmds, cmd)
	case apply.AppliedMsg:
		cmds = append(cmds, m.applied(msg))
	case apply.WordAddedMsg:
		cmds = append(cmds, m.wordAdded(msg))
	case ruleToggledMsg:
		if msg.Err != nil {
			m.setStatus(msg.Err.Error(), true)
			break
		}
		state := "off"
		if msg.On {
			state = "on"
		}
		m.setStatus(fmt.Sprintf("%s %s", issue.RuleTitle(msg.Name), state), false)
		_, cmd := m.coord.Refresh()
		cmds = append(cmds, cmd)
	case savedMsg:
		if msg.Err != nil {
			m.setStatus(msg.Err.Error(), true)
			break
		}
		m.savedVersion = msg.Version
		m.setStatus("Saved "+m.opt.Path, false)
	case copiedMsg:
		if msg.Err != nil {
			m.setStatus("copy: "+msg.Err.Error(), true)
			break
		}
		m.setStatus("Copied to clipboard", false)
	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			break
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.queued...)
	m.queued = nil
	m.syncOverlay()
	m.syncHelp()
	cmds = append(cmds, m.startSpinner())
	return m, tea.Batch(cmds...)
}

func (m *Model) updateKey(msg tea.KeyMsg) tea.Cmd {
	if m.rulesOpen {
		return m.updateRulesKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.coord.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.CopyAll):
		return m.copyAll()
	case key.Matches(msg, m.keys.Rules):
		m.openRules()
		return nil
	case key.Matches(msg, m.keys.Next):
		return m.handle(interact.Event{Kind: interact.NavigateNext})
	case key.Matches(msg, m.keys.Prev):
		return m.handle(interact.Event{Kind: interact.NavigatePrevious})
	case key.Matches(msg, m.keys.Autocomplete):
		return m.handle(interact.Event{Kind: interact.ExplicitAutocomplete})
	case key.Matches(msg, m.keys.Ignore):
		return m.handle(interact.Event{Kind: interact.Ignore})
	case key.Matches(msg, m.keys.AddWord):
		return m.handle(interact.Event{Kind: interact.AddToDictionary})
	}

	if m.ctrl.State() == interact.MenuOpen {
		switch {
		case key.Matches(msg, m.keys.MenuUp):
			return m.handle(interact.Event{Kind: interact.MenuPrev})
		case key.Matches(msg, m.keys.MenuDown):
			return m.handle(interact.Event{Kind: interact.MenuNext})
		case key.Matches(msg, m.keys.Accept):
			return m.handle(interact.Event{Kind: interact.MenuAccept})
		}
	}
	if key.Matches(msg, m.keys.Close) {
		return m.handle(interact.Event{Kind: interact.Escape})
	}
	if key.Matches(msg, m.keys.Menu) {
		// Without an issue under the cursor tab is typed.
		if ok, cmd := m.ctrl.Handle(interact.Event{Kind: interact.TabPressed}); ok {
			return cmd
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	sw := 0
	if m.showSidebar() {
		sw = sidebarWidth
	}
	if msg.X < sw {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		// One line for the top bar and one for the sidebar header.
		row := msg.Y - 2 + m.sidebarTop
		issues := m.coord.Store().Issues()
		if row < 0 || row >= len(issues) {
			return nil
		}
		return m.handle(interact.Event{Kind: interact.SidebarClicked, IssueID: issues[row].ID})
	}

	msg.X -= sw
	msg.Y--
	if msg.Action != tea.MouseActionRelease && (msg.Y < 0 || msg.Y >= m.editor.Height()) {
		return nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

func (m *Model) handle(ev interact.Event) tea.Cmd {
	_, cmd := m.ctrl.Handle(ev)
	return cmd
}

// onEditorChange runs inside editor updates, so it must not touch m.editor.
// It keeps the store and the overlay aligned with the text and schedules
// analysis.
func (m *Model) onEditorChange(ev editor.ChangeEvent) tea.Cmd {
	if ev.Cause == editor.CauseHost {
		// Moves we made ourselves summon nothing, but the controller
		// still has to know where the cursor is.
		m.ctrl.SetCursor(ev.CursorOffset)
	}

	var cmd tea.Cmd
	if ev.TextChanged {
		m.stats = textstats.Of(ev.Text)
		m.coord.Remap(ev.Deltas...)
		set := decoration.Map(m.hl.Decorations(), ev.Deltas...)

		var aev analysis.Event
		aev, cmd = m.coord.OnBufferChanged(ev.Text)
		if aev.Kind == analysis.EventReplaced {
			m.ctrl.Revalidate()
			set = decoration.Build(m.coord.Store().Issues(), m.ctrl.SelectedID())
		}
		m.hl.SetDecorations(set, ev.Text)
	}

	switch ev.Cause {
	case editor.CauseKey:
		m.ctrl.Handle(interact.Event{Kind: interact.CursorMoved, Pos: ev.CursorOffset})
	case editor.CauseMouse:
		if ev.Selection.Active {
			m.ctrl.Handle(interact.Event{Kind: interact.CursorMoved, Pos: ev.CursorOffset})
			break
		}
		if ok, _ := m.ctrl.Handle(interact.Event{Kind: interact.ClickedInEditor, Pos: ev.CursorOffset}); !ok {
			m.ctrl.Handle(interact.Event{Kind: interact.CursorMoved, Pos: ev.CursorOffset})
		}
	}
	return cmd
}

func (m *Model) applySuggestion(is issue.Issue, s issue.Suggestion) tea.Cmd {
	buf := m.editor.Buffer()
	return m.applier.Cmd(buf.Text(), buf.TextVersion(), is, s)
}

func (m *Model) ignore(is issue.Issue) tea.Cmd {
	m.coord.Ignore(is.ID)
	m.rebuildDecorations()
	m.setStatus("Ignored "+describe(is), false)
	return nil
}

func (m *Model) addToDictionary(is issue.Issue) tea.Cmd {
	return m.applier.AddWordCmd(is.ProblemText)
}

func (m *Model) applied(msg apply.AppliedMsg) tea.Cmd {
	if msg.Err != nil {
		m.logger.Printf("app: %v", msg.Err)
		m.setStatus(msg.Err.Error(), true)
		return nil
	}
	if msg.Stale(m.editor.Buffer().TextVersion()) {
		if m.opt.Config.Trace {
			m.logger.Printf("app: discard stale fix for %s at v=%d", msg.IssueID, msg.Version)
		}
		return nil
	}
	m.coord.Store().RemoveLocal(msg.IssueID)
	var cmd tea.Cmd
	if res := msg.Result; res.Changed {
		m.editor, cmd = m.editor.ReplaceOffsets(res.Delta.From, res.Delta.To, res.Inserted)
	}
	m.rebuildDecorations()
	_, refresh := m.coord.Refresh()
	return tea.Batch(cmd, refresh)
}

func (m *Model) wordAdded(msg apply.WordAddedMsg) tea.Cmd {
	if msg.Err != nil {
		m.logger.Printf("app: %v", msg.Err)
		m.setStatus(msg.Err.Error(), true)
		return nil
	}
	m.setStatus(fmt.Sprintf("Added %q to dictionary", msg.Word), false)
	_, cmd := m.coord.Refresh()
	return cmd
}

func (m *Model) save() tea.Cmd {
	if m.opt.Path == "" {
		m.setStatus("No file to save to", true)
		return nil
	}
	path := m.opt.Path
	text := m.editor.Text()
	version := m.editor.Buffer().TextVersion()
	return func() tea.Msg {
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return savedMsg{Err: fmt.Errorf("save %s: %w", path, err)}
		}
		return savedMsg{Version: version}
	}
}

func (m *Model) copyAll() tea.Cmd {
	clip := m.opt.Clipboard
	text := m.editor.Text()
	return func() tea.Msg {
		return copiedMsg{Err: clip.WriteText(text)}
	}
}

func (m *Model) openRules() {
	if _, ok := m.opt.Analyzer.(RuleLister); !ok {
		m.setStatus("This analyzer has no rules to configure", true)
		return
	}
	m.rulesOpen = true
	m.rulesCursor = 0
}

func (m *Model) updateRulesKey(msg tea.KeyMsg) tea.Cmd {
	rules := m.opt.Analyzer.(RuleLister).Rules()
	if len(rules) == 0 {
		m.rulesOpen = false
		return nil
	}
	switch msg.String() {
	case "esc", "ctrl+r", "ctrl+q":
		m.rulesOpen = false
	case "up", "ctrl+k":
		m.rulesCursor = (m.rulesCursor - 1 + len(rules)) % len(rules)
	case "down", "ctrl+j":
		m.rulesCursor = (m.rulesCursor + 1) % len(rules)
	case "enter", " ":
		if m.opt.Settings == nil {
			m.setStatus("Rules are read-only without a settings store", true)
			return nil
		}
		r := rules[m.rulesCursor]
		s := m.opt.Settings
		return func() tea.Msg {
			err := s.SetRule(context.Background(), r.Name, !r.Enabled)
			if err != nil {
				err = fmt.Errorf("toggle %s: %w", r.Name, err)
			}
			return ruleToggledMsg{Name: r.Name, On: !r.Enabled, Err: err}
		}
	}
	return nil
}

// syncHelp lists undo and redo only when the history has a step to take.
func (m *Model) syncHelp() {
	buf := m.editor.Buffer()
	m.keys.Undo.SetEnabled(buf.CanUndo())
	m.keys.Redo.SetEnabled(buf.CanRedo())
}

func (m *Model) rebuildDecorations() {
	text := m.editor.Text()
	m.hl.SetDecorations(decoration.Build(m.coord.Store().Issues(), m.ctrl.SelectedID()), text)
	m.editor = m.editor.Redraw()
}

// syncOverlay brings the selected decoration and the popup in line with the
// controller.
func (m *Model) syncOverlay() {
	id := m.ctrl.SelectedID()
	set := m.hl.Decorations()
	sel, ok := set.Selected()
	if (ok && sel.IssueID != id) || (!ok && id != "") {
		m.hl.SetDecorations(decoration.Select(set, id), m.editor.Text())
		m.editor = m.editor.Redraw()
	}

	is, ok := m.ctrl.Active()
	if !ok || !m.ctrl.TooltipVisible() || m.rulesOpen {
		m.editor = m.editor.ClearPopup()
		return
	}
	m.editor = m.editor.SetPopup(editor.Popup{Anchor: is.Span.Start, View: m.renderPopup(is)})
}

func describe(is issue.Issue) string {
	if is.ProblemText == "" {
		return is.Kind
	}
	return fmt.Sprintf("%s %q", is.Kind, is.ProblemText)
}
