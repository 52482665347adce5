package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) openCommandPalette(scope string) Model {
	m.commandOpen = true
	m.commandQuery = ""
	m.commandCursor = 0
	m.commandSourceScope = scope
	m.commandMatches = m.commands.Search("", scope, m, m.lastCommandID)
	return m
}

func (m Model) closeCommandPalette() Model {
	m.commandOpen = false
	m.commandQuery = ""
	m.commandCursor = 0
	m.commandMatches = nil
	return m
}

func (m Model) refreshCommandMatches() Model {
	m.commandMatches = m.commands.Search(m.commandQuery, m.commandSourceScope, m, m.lastCommandID)
	if m.commandCursor >= len(m.commandMatches) {
		m.commandCursor = max(len(m.commandMatches)-1, 0)
	}
	return m
}

func (m Model) updateCommandPalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if b := m.keys.Lookup(msg.String(), scopeCommandPalette); b != nil {
		switch b.Action {
		case actionQuit:
			return m, tea.Quit
		case actionClose, actionCommandPalette:
			return m.closeCommandPalette(), nil
		case actionNavigateUp:
			if m.commandCursor > 0 {
				m.commandCursor--
			}
			return m, nil
		case actionNavigateDown:
			if m.commandCursor < len(m.commandMatches)-1 {
				m.commandCursor++
			}
			return m, nil
		case actionSelect:
			return m.runSelectedCommand()
		}
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if q := []rune(m.commandQuery); len(q) > 0 {
			m.commandQuery = string(q[:len(q)-1])
			m.commandCursor = 0
			return m.refreshCommandMatches(), nil
		}
	case tea.KeyRunes:
		m.commandQuery += string(msg.Runes)
		m.commandCursor = 0
		return m.refreshCommandMatches(), nil
	case tea.KeySpace:
		m.commandQuery += " "
		m.commandCursor = 0
		return m.refreshCommandMatches(), nil
	}
	return m, nil
}

func (m Model) runSelectedCommand() (tea.Model, tea.Cmd) {
	if len(m.commandMatches) == 0 {
		return m.closeCommandPalette(), nil
	}
	match := m.commandMatches[m.commandCursor]
	scope := m.commandSourceScope
	m = m.closeCommandPalette()
	if !match.Enabled {
		m.setStatus(match.DisabledReason)
		return m, nil
	}
	return m.executeCommand(match.Command.ID, scope)
}

func (m Model) renderCommandPalette() string {
	width := min(max(m.viewWidth()-10, 40), 64)
	inner := width - 4

	var b strings.Builder
	b.WriteString(paletteTitleStyle.Render("Commands"))
	b.WriteString("\n")
	b.WriteString(paletteCursorStyle.Render("> ") + m.commandQuery + cursorStyle.Render(" "))
	b.WriteString("\n\n")

	if len(m.commandMatches) == 0 {
		b.WriteString(paletteDisabledStyle.Render("No matching commands."))
	}
	first := 0
	if m.commandCursor >= commandPageSize {
		first = m.commandCursor - commandPageSize + 1
	}
	last := min(first+commandPageSize, len(m.commandMatches))
	for i := first; i < last; i++ {
		match := m.commandMatches[i]
		prefix := "  "
		if i == m.commandCursor {
			prefix = paletteCursorStyle.Render("> ")
		}
		label := padRight(match.Command.Label, 18)
		detail := paletteCategoryStyle.Render(match.Command.Category) + "  " + paletteDescStyle.Render(match.Command.Description)
		if !match.Enabled {
			label = paletteDisabledStyle.Render(label)
			detail = paletteWarnStyle.Render(match.DisabledReason)
		}
		line := fmt.Sprintf("%s%s %s", prefix, label, detail)
		b.WriteString(truncate(line, inner))
		if i < last-1 {
			b.WriteString("\n")
		}
	}
	return modalStyle.Width(width - 2).Render(b.String())
}
