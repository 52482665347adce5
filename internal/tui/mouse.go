package tui

import tea "github.com/charmbracelet/bubbletea"

// updateMouse drives the selection gesture from left-button drags over the
// grid. A release anywhere finishes a drag that started on a cell.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || m.commandOpen {
		return m, nil
	}
	pos := positionAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || pos < 0 {
			return m, nil
		}
		m.focusGrid()
		m.cursor = pos
		m.gesture.Press(pos)
		m.dragging = true
	case tea.MouseActionMotion:
		if !m.dragging || pos < 0 {
			return m, nil
		}
		m.cursor = pos
		m.gesture.Extend(pos)
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if pos >= 0 {
			m.cursor = pos
			m.gesture.Extend(pos)
		}
		m.commitSelection()
	}
	return m, nil
}
