package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/bitbuddy/internal/ranges"
)

type Command struct {
	ID          string
	Label       string
	Description string
	Category    string
	Scopes      []string
	Enabled     func(m Model) (bool, string)
	Execute     func(m Model) (Model, tea.Cmd, error)
}

type CommandMatch struct {
	Command        Command
	Score          int
	Enabled        bool
	DisabledReason string
}

type CommandRegistry struct {
	commands []Command
	byID     map[string]Command
}

func NewCommandRegistry() *CommandRegistry {
	r := &CommandRegistry{}
	r.commands = []Command{
		{
			ID:          "input:clear",
			Label:       "Clear Value",
			Description: "Empty the value field",
			Category:    "Value",
			Enabled: func(m Model) (bool, string) {
				if m.ctrl.State().Input == "" {
					return false, "Value is already empty."
				}
				return true, ""
			},
			Execute: func(m Model) (Model, tea.Cmd, error) {
				m.ctrl.ClearInput()
				m.input.SetValue("")
				m.setStatus("Value cleared.")
				return m, nil, nil
			},
		},
		{
			ID:          "focus:input",
			Label:       "Edit Value",
			Description: "Move focus to the value field",
			Category:    "Navigation",
			Enabled:     commandAlwaysEnabled,
			Execute: func(m Model) (Model, tea.Cmd, error) {
				return m, m.focusInput(), nil
			},
		},
		{
			ID:          "focus:grid",
			Label:       "Select Bits",
			Description: "Move focus to the bit grid",
			Category:    "Navigation",
			Enabled:     commandAlwaysEnabled,
			Execute: func(m Model) (Model, tea.Cmd, error) {
				m.focusGrid()
				return m, nil, nil
			},
		},
		{
			ID:          "ranges:undo",
			Label:       "Undo Last Range",
			Description: "Remove the most recently added range",
			Category:    "Ranges",
			Enabled:     commandAlwaysEnabled,
			Execute: func(m Model) (Model, tea.Cmd, error) {
				r, ok := m.ctrl.UndoLastRange()
				if !ok {
					m.setStatus("Nothing to undo.")
					return m, nil, nil
				}
				m.setStatus(fmt.Sprintf("Removed range %s.", r.Label()))
				return m, nil, nil
			},
		},
		{
			ID:          "ranges:reset",
			Label:       "Reset Ranges",
			Description: "Remove every range",
			Category:    "Ranges",
			Enabled:     commandAlwaysEnabled,
			Execute: func(m Model) (Model, tea.Cmd, error) {
				m.ctrl.ResetRanges()
				m.gesture.Cancel()
				m.setStatus("Ranges reset.")
				return m, nil, nil
			},
		},
		{
			ID:          "ranges:copy",
			Label:       "Copy Ranges",
			Description: "Copy every range and its hex value to the clipboard",
			Category:    "Ranges",
			Enabled:     commandNeedsRanges,
			Execute: func(m Model) (Model, tea.Cmd, error) {
				rs := m.ctrl.State().Ranges
				if err := m.copyText(formatRangesForClipboard(rs)); err != nil {
					return m, nil, fmt.Errorf("copy to clipboard: %w", err)
				}
				m.setStatus(fmt.Sprintf("Copied %d range(s).", len(rs)))
				return m, nil, nil
			},
		},
		{
			ID:          "select:cancel",
			Label:       "Cancel Selection",
			Description: "Drop the selection in progress",
			Category:    "Ranges",
			Scopes:      []string{scopeGrid},
			Enabled: func(m Model) (bool, string) {
				if !m.gesture.Selecting {
					return false, "No selection in progress."
				}
				return true, ""
			},
			Execute: func(m Model) (Model, tea.Cmd, error) {
				m.gesture.Cancel()
				m.setStatus("Selection cancelled.")
				return m, nil, nil
			},
		},
		{
			ID:          "app:quit",
			Label:       "Quit",
			Description: "Exit bitbuddy",
			Category:    "App",
			Enabled:     commandAlwaysEnabled,
			Execute: func(m Model) (Model, tea.Cmd, error) {
				return m, tea.Quit, nil
			},
		},
	}
	r.byID = make(map[string]Command, len(r.commands))
	for _, c := range r.commands {
		r.byID[c.ID] = c
	}
	return r
}

func commandAlwaysEnabled(Model) (bool, string) {
	return true, ""
}

func commandNeedsRanges(m Model) (bool, string) {
	if len(m.ctrl.State().Ranges) == 0 {
		return false, "No ranges yet."
	}
	return true, ""
}

// Search ranks commands available in scope against query. Disabled
// commands sort last, the most recently run one first among equals.
func (r *CommandRegistry) Search(query, scope string, m Model, lastCommandID string) []CommandMatch {
	if r == nil {
		return nil
	}
	q := strings.TrimSpace(query)
	out := make([]CommandMatch, 0, len(r.commands))
	for _, cmd := range r.commands {
		if !commandInScope(cmd, scope) {
			continue
		}
		matched, score := commandMatchScore(cmd, q)
		if !matched {
			continue
		}
		enabled := true
		reason := ""
		if cmd.Enabled != nil {
			enabled, reason = cmd.Enabled(m)
		}
		out = append(out, CommandMatch{
			Command:        cmd,
			Score:          score,
			Enabled:        enabled,
			DisabledReason: reason,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Enabled != out[j].Enabled {
			return out[i].Enabled
		}
		iMRU := lastCommandID != "" && out[i].Command.ID == lastCommandID
		jMRU := lastCommandID != "" && out[j].Command.ID == lastCommandID
		if iMRU != jMRU {
			return iMRU
		}
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		li := strings.ToLower(out[i].Command.Label)
		lj := strings.ToLower(out[j].Command.Label)
		if li != lj {
			return li < lj
		}
		return out[i].Command.ID < out[j].Command.ID
	})
	return out
}

var errCommandDisabled = errors.New("command is disabled")

func (r *CommandRegistry) ExecuteByID(id, scope string, m Model) (Model, tea.Cmd, error) {
	if r == nil {
		return m, nil, fmt.Errorf("command registry is not initialized")
	}
	cmd, ok := r.byID[id]
	if !ok {
		return m, nil, fmt.Errorf("unknown command %q", id)
	}
	if !commandInScope(cmd, scope) {
		return m, nil, fmt.Errorf("command %q unavailable in scope %q", id, scope)
	}
	if cmd.Enabled != nil {
		enabled, reason := cmd.Enabled(m)
		if !enabled {
			if strings.TrimSpace(reason) == "" {
				return m, nil, errCommandDisabled
			}
			return m, nil, fmt.Errorf("%w: %s", errCommandDisabled, reason)
		}
	}
	if cmd.Execute == nil {
		return m, nil, fmt.Errorf("command %q has no executor", id)
	}
	return cmd.Execute(m)
}

func commandInScope(cmd Command, scope string) bool {
	if len(cmd.Scopes) == 0 {
		return true
	}
	for _, s := range cmd.Scopes {
		s = strings.TrimSpace(s)
		if strings.EqualFold(s, scopeGlobal) || strings.EqualFold(s, strings.TrimSpace(scope)) {
			return true
		}
	}
	return false
}

func commandMatchScore(cmd Command, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	best := -1
	for _, field := range []string{cmd.Label, cmd.ID, cmd.Description} {
		matched, score := fuzzyMatchScore(field, query)
		if !matched {
			continue
		}
		if strings.EqualFold(field, query) {
			score += 15
		}
		best = max(best, score)
	}
	if best >= 0 {
		return true, best
	}
	if score, ok := typoMatchScore(cmd.Label, query); ok {
		return true, score
	}
	return false, 0
}

// fuzzyMatchScore matches query as an in-order subsequence of label,
// rewarding a match at the start and runs of adjacent characters.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

// typoMatchScore accepts a query within a small edit distance of one of
// the label's words ("undp" finds "Undo"). It scores below any
// subsequence match.
func typoMatchScore(label, query string) (int, bool) {
	q := strings.ToLower(query)
	if len(q) < 3 {
		return 0, false
	}
	allowed := 1
	if len(q) >= 6 {
		allowed = 2
	}
	best := -1
	for _, word := range strings.Fields(strings.ToLower(label)) {
		d := levenshtein.ComputeDistance(word, q)
		if d <= allowed && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return allowed - best, true
}

// formatRangesForClipboard renders one "start-end hex" line per range.
func formatRangesForClipboard(rs []ranges.Range) string {
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		lines = append(lines, fmt.Sprintf("%s %s", r.Label(), r.Hex))
	}
	return strings.Join(lines, "\n")
}
