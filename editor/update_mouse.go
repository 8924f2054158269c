package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/furl/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused {
		return m, cmd
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}

		h := m.screenToDoc(msg.X, msg.Y)
		if h.marker {
			if spec, ok := m.gutter.Click(m.sess.st, h.row.block.From); ok {
				spec.UserEvent = "fold.pointer"
				_ = m.Dispatch(spec)
				return m, cmd
			}
		}
		if h.onToken && h.token.placeholder && !msg.Shift {
			if h.token.onClick != nil && h.token.onClick() {
				return m, cmd
			}
		}

		if msg.Shift {
			anchor := m.sess.st.Selection().Primary().Anchor
			m.mouseAnchor = anchor
			m.setSelection(buffer.NewSelection(0, buffer.SelRange{Anchor: anchor, Head: h.pos}), "select.pointer")
		} else {
			m.mouseAnchor = h.pos
			m.setSelection(buffer.Cursor(h.pos), "select.pointer")
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		h := m.screenToDoc(x, y)
		m.setSelection(buffer.NewSelection(0, buffer.SelRange{Anchor: m.mouseAnchor, Head: h.pos}), "select.pointer")

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
