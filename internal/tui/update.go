package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/bitbuddy/internal/bits"
	"github.com/jask/bitbuddy/internal/ranges"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.commandOpen {
		return m.updateCommandPalette(msg)
	}
	scope := m.activeScope()
	if b := m.keys.Lookup(msg.String(), scope); b != nil {
		return m.dispatch(b, scope)
	}
	if m.focus != focusInput {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.ctrl.SetInput(v)
	}
	return m, cmd
}

func (m Model) dispatch(b *Binding, scope string) (tea.Model, tea.Cmd) {
	if b.CommandID != "" {
		return m.executeCommand(b.CommandID, scope)
	}
	switch b.Action {
	case actionQuit:
		return m, tea.Quit
	case actionCommandPalette:
		return m.openCommandPalette(scope), nil
	case actionFocusNext:
		if m.focus == focusInput {
			m.focusGrid()
			return m, nil
		}
		m.gesture.Cancel()
		return m, m.focusInput()
	case actionFocusGrid:
		m.focusGrid()
		return m, nil
	case actionCursorLeft:
		return m.moveCursor(1), nil
	case actionCursorRight:
		return m.moveCursor(-1), nil
	case actionNibbleLeft:
		return m.moveCursor(4), nil
	case actionNibbleRight:
		return m.moveCursor(-4), nil
	case actionCursorStart:
		return m.moveCursor(bits.Width), nil
	case actionCursorEnd:
		return m.moveCursor(-bits.Width), nil
	case actionSelect:
		return m.selectAtCursor(), nil
	case actionCancel:
		if m.gesture.Selecting {
			return m.executeCommand("select:cancel", scope)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) executeCommand(id, scope string) (Model, tea.Cmd) {
	next, cmd, err := m.commands.ExecuteByID(id, scope, m)
	if err != nil {
		if errors.Is(err, errCommandDisabled) {
			reason := strings.TrimPrefix(err.Error(), errCommandDisabled.Error())
			reason = strings.TrimSpace(strings.TrimPrefix(reason, ":"))
			if reason == "" {
				reason = "Command unavailable."
			}
			m.setStatus(reason)
			return m, nil
		}
		m.setError(err.Error())
		return m, nil
	}
	next.lastCommandID = id
	return next, cmd
}

// moveCursor shifts the keyboard cursor by delta display positions,
// clamped to the grid. Positive deltas move left on screen.
func (m Model) moveCursor(delta int) Model {
	m.cursor = min(max(m.cursor+delta, 0), bits.Width-1)
	if m.gesture.Selecting {
		m.gesture.Extend(m.cursor)
	}
	return m
}

// selectAtCursor anchors a selection at the cursor, or commits the one in
// progress.
func (m Model) selectAtCursor() Model {
	if !m.gesture.Selecting {
		m.gesture.Press(m.cursor)
		m.setStatus(fmt.Sprintf("Selecting from bit %d. %s to finish, %s to cancel.",
			m.cursor,
			m.keys.KeyFor(scopeGrid, actionSelect, "space"),
			m.keys.KeyFor(scopeGrid, actionCancel, "esc")))
		return m
	}
	m.gesture.Extend(m.cursor)
	if !m.commitSelection() {
		m.setStatus("Select at least two bits.")
	}
	return m
}

// commitSelection releases the gesture and adds the resulting range. It
// reports false when the gesture covered a single position.
func (m *Model) commitSelection() bool {
	start, end, ok := m.gesture.Release()
	if !ok {
		return false
	}
	r, err := m.ctrl.AddRange(start, end)
	switch {
	case errors.Is(err, ranges.ErrOverlap):
		m.setError(fmt.Sprintf("Overlaps existing range (%d-%d).", start, end))
	case errors.Is(err, ranges.ErrNoBinary):
		m.setError("Enter a value before selecting bits.")
	case err != nil:
		m.setError(err.Error())
	default:
		m.setStatus(fmt.Sprintf("Range %s = %s", r.Label(), r.Hex))
	}
	return true
}
