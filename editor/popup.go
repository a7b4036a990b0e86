package editor

import (
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// Popup is pre-rendered content floated over the text next to a document
// offset: below the anchor row when it fits, otherwise above.
type Popup struct {
	Anchor int
	View   string
}

func (m Model) SetPopup(p Popup) Model {
	m.popup = p
	m.hasPopup = p.View != ""
	return m
}

func (m Model) ClearPopup() Model {
	m.popup = Popup{}
	m.hasPopup = false
	return m
}

func (m Model) PopupVisible() bool { return m.hasPopup }

// PopupOrigin returns where the popup's top-left cell lands, relative to
// the viewport. ok is false if the anchor is off screen.
func (m Model) PopupOrigin() (x, y int, ok bool) {
	return (&m).popupOrigin()
}

func (m *Model) popupOrigin() (int, int, bool) {
	if !m.hasPopup || m.buf == nil {
		return 0, 0, false
	}
	ax, ay, ok := m.docToScreenPos(m.buf.PosAt(m.popup.Anchor))
	if !ok {
		return 0, 0, false
	}
	w, h := lipgloss.Width(m.popup.View), lipgloss.Height(m.popup.View)
	rows := m.visibleRowCount()

	y := ay + 1
	if y+h > rows && ay-h >= 0 {
		y = ay - h
	}
	y = clampInt(y, 0, max(rows-h, 0))
	x := clampInt(ax, 0, max(m.viewport.Width-w, 0))
	return x, y, true
}

func (m *Model) renderPopup(base string) string {
	x, y, ok := m.popupOrigin()
	if !ok {
		return base
	}
	st := m.viewport.Style
	left := st.GetMarginLeft() + st.GetBorderLeftSize() + st.GetPaddingLeft()
	top := st.GetMarginTop() + st.GetBorderTopSize() + st.GetPaddingTop()
	return overlay.Composite(m.popup.View, base, overlay.Left, overlay.Top, left+x, top+y)
}
