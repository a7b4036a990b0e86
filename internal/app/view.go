package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/lintmark/interact"
	"github.com/iw2rmb/lintmark/issue"
)

const maxPopupWidth = 48

func (m *Model) View() string {
	body := m.editor.View()
	if m.showSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), body)
	}
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		body,
		m.renderStatus(),
		m.help.View(m.keys),
	)
	if m.rulesOpen {
		view = overlay.Composite(m.renderRules(), view, overlay.Center, overlay.Center, 0, 0)
	}
	return view
}

func (m *Model) renderTopBar() string {
	name := "untitled"
	if m.opt.Path != "" {
		name = filepath.Base(m.opt.Path)
	}
	left := m.styles.Title.Render("lintmark") + "  " + name
	if m.Dirty() {
		left += m.styles.Dirty.Render(" *")
	}

	right := fmt.Sprintf("%d issues", m.coord.Store().Len())
	if m.busy() {
		right = m.spinner.View() + " checking"
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return m.styles.TopBar.Width(max(m.width, 0)).Render(" " + left + strings.Repeat(" ", gap) + right + " ")
}

func (m *Model) renderStatus() string {
	left := m.styles.Status.Render(m.stats.String())
	var right string
	switch {
	case m.coord.LastError() != nil:
		right = m.styles.Error.Render("analysis failed: " + m.coord.LastError().Error())
	case m.statusErr:
		right = m.styles.Error.Render(m.status)
	default:
		right = m.styles.Status.Render(m.status)
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderSidebar() string {
	inner := sidebarWidth - 1 // right border
	rows := max(m.editor.Height()-1, 0)
	issues := m.coord.Store().Issues()

	sel := -1
	for i, is := range issues {
		if is.ID == m.ctrl.SelectedID() {
			sel = i
			break
		}
	}
	if sel >= 0 {
		if sel < m.sidebarTop {
			m.sidebarTop = sel
		} else if sel >= m.sidebarTop+rows {
			m.sidebarTop = sel - rows + 1
		}
	}
	m.sidebarTop = clamp(m.sidebarTop, 0, max(len(issues)-rows, 0))

	lines := []string{m.styles.SidebarHead.Render(fmt.Sprintf("Issues (%d)", len(issues)))}
	for i := m.sidebarTop; i < len(issues) && i < m.sidebarTop+rows; i++ {
		is := issues[i]
		dot := lipgloss.NewStyle().Foreground(m.hl.theme.Color(is.Kind)).Render("●")
		label := runewidth.Truncate(describe(is), inner-3, "…")
		st := m.styles.Item
		if i == sel {
			st = m.styles.ItemActive
		}
		lines = append(lines, dot+" "+st.Width(inner-2).Render(label))
	}
	return m.styles.Sidebar.
		Width(inner).
		Height(max(m.editor.Height(), 1)).
		Render(strings.Join(lines, "\n"))
}

// renderPopup draws the tooltip for is, with the menu below it when open.
func (m *Model) renderPopup(is issue.Issue) string {
	width := clamp(m.editor.Width()-4, 16, maxPopupWidth)

	title := is.Kind
	if is.Rule != "" {
		title = issue.RuleTitle(is.Rule)
	}
	lines := []string{
		m.styles.PopupTitle.Foreground(m.hl.theme.Color(is.Kind)).Render(title),
		wordwrap.String(m.renderMessage(is.Message), width),
	}

	if items, idx, ok := m.ctrl.Menu(); ok {
		lines = append(lines, "")
		for i, it := range items {
			st := m.styles.MenuItem
			if i == idx {
				st = m.styles.MenuActive
			}
			lines = append(lines, st.Render(runewidth.Truncate(menuLabel(it), width, "…")))
		}
	} else if is.Actionable() {
		lines = append(lines, m.styles.Muted.Render("tab for suggestions"))
	}
	return m.styles.Popup.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderMessage(msg string) string {
	var b strings.Builder
	for _, seg := range issue.ParseMessage(msg) {
		if seg.Code {
			b.WriteString(m.styles.Code.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

func menuLabel(it interact.MenuItem) string {
	if it.Kind == interact.ItemSuggestion {
		return "→ " + it.Label
	}
	return "  " + it.Label
}

func (m *Model) renderRules() string {
	rules := m.opt.Analyzer.(RuleLister).Rules()
	lines := []string{m.styles.PopupTitle.Render("Rules"), ""}
	for i, r := range rules {
		mark := "[ ]"
		if r.Enabled {
			mark = "[x]"
		}
		st := m.styles.MenuItem
		if i == m.rulesCursor {
			st = m.styles.MenuActive
		}
		lines = append(lines, st.Render(fmt.Sprintf("%s %s", mark, r.Title)))
		lines = append(lines, m.styles.Muted.Render("    "+r.Description))
	}
	lines = append(lines, "", m.styles.Muted.Render("enter toggle  esc close"))
	return m.styles.Popup.Render(strings.Join(lines, "\n"))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
