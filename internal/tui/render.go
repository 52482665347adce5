package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/bitbuddy/internal/bits"
	"github.com/jask/bitbuddy/internal/ranges"
)

const minViewWidth = gridLeft + gridWidth + 1

func (m Model) viewWidth() int {
	return max(m.width, minViewWidth)
}

func (m Model) View() string {
	width := m.viewWidth()
	state := m.ctrl.State()

	lines := []string{
		m.renderHeader(width),
		"",
		m.renderLabel("Value", "decimal or 0x hex", m.focus == focusInput),
		" " + m.input.View(),
		"",
		m.renderLabel("Bits", "drag or space to select", m.focus == focusGrid),
	}
	lines = append(lines, m.renderGrid(state)...)
	lines = append(lines, "")
	lines = append(lines, renderChips(state.Ranges)...)

	footer := []string{m.renderStatus(width), m.renderFooter(width)}
	for len(lines)+len(footer) < m.height {
		lines = append(lines, "")
	}
	lines = append(lines, footer...)
	view := strings.Join(lines, "\n")

	if m.commandOpen {
		view = placeModal(view, m.renderCommandPalette(), 2, width)
	}
	return view
}

func (m Model) renderHeader(width int) string {
	title := headerAppStyle.Render(appName)
	hint := headerHintStyle.Render("  64-bit range explorer · " + m.ctrl.Policy().String() + " overlap")
	return headerBarStyle.Width(width).Render(truncate(title+hint, width-4))
}

func (m Model) renderLabel(title, hint string, focused bool) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	return " " + style.Render(title) + "  " + indexStyle.Render(hint)
}

// renderGrid draws the tens, ones, bit, and cursor rows. Rows line up with
// positionAt so mouse hits land on the drawn cell.
func (m Model) renderGrid(state ranges.State) []string {
	var tens, ones, bitRow, marker strings.Builder
	pad := strings.Repeat(" ", gridLeft)
	for _, b := range []*strings.Builder{&tens, &ones, &bitRow, &marker} {
		b.WriteString(pad)
	}

	for truePos := range bits.Width {
		if truePos > 0 && truePos%4 == 0 {
			for _, b := range []*strings.Builder{&tens, &ones, &bitRow, &marker} {
				b.WriteByte(' ')
			}
		}
		pos := bits.InvertPosition(truePos)

		tensDigit := " "
		if pos >= 10 {
			tensDigit = string(rune('0' + pos/10))
		}
		tens.WriteString(indexStyle.Render(tensDigit))
		ones.WriteString(indexStyle.Render(string(rune('0' + pos%10))))

		cell := "·"
		style := blankStyle
		if state.Binary != "" {
			cell = state.Binary[truePos : truePos+1]
			style = bitZeroStyle
			if cell == "1" {
				style = bitOneStyle
			}
		}
		if r, ok := rangeAt(state.Ranges, truePos); ok {
			style = rangeStyle(r.Color)
		}
		if m.gesture.Highlighted(pos) {
			style = selectedStyle
		}
		bitRow.WriteString(style.Render(cell))

		if m.focus == focusGrid && pos == m.cursor {
			marker.WriteString(cursorStyle.Render("^"))
		} else {
			marker.WriteByte(' ')
		}
	}
	return []string{tens.String(), ones.String(), bitRow.String(), marker.String()}
}

// rangeAt returns the most recently added range covering truePos.
func rangeAt(rs []ranges.Range, truePos int) (ranges.Range, bool) {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i].TrueStart <= truePos && truePos <= rs[i].TrueEnd {
			return rs[i], true
		}
	}
	return ranges.Range{}, false
}

// renderChips draws two lines per chip row: the hex chip in the range's
// colour, then its start-end label.
func renderChips(rs []ranges.Range) []string {
	placements := layoutChips(rs)
	rows := chipRowCount(placements)
	out := make([]string, 0, rows*2)
	for row := range rows {
		var inRow []chipPlacement
		for _, p := range placements {
			if p.Row == row {
				inRow = append(inRow, p)
			}
		}
		sort.Slice(inRow, func(i, j int) bool { return inRow[i].X < inRow[j].X })

		var hex, label strings.Builder
		col := 0
		for _, p := range inRow {
			gap := strings.Repeat(" ", p.X-col)
			hex.WriteString(gap + rangeStyle(p.Range.Color).Render(center(p.Range.Hex, p.Width)))
			label.WriteString(gap + chipLabelStyle.Render(center(p.Range.Label(), p.Width)))
			col = p.X + p.Width
		}
		out = append(out, hex.String(), label.String())
	}
	return out
}

func (m Model) renderStatus(width int) string {
	style := statusBarStyle
	msg := m.status
	switch {
	case msg == "":
		msg = "Ready."
	case m.statusErr:
		style = statusErrStyle
	default:
		style = statusOKStyle
	}
	return style.Width(width).Render(truncate(msg, width-4))
}

func (m Model) renderFooter(width int) string {
	scope := m.activeScope()
	bindings := m.keys.HelpBindings(scope)
	if scope != scopeCommandPalette {
		bindings = append(bindings, m.keys.HelpBindings(scopeGlobal)...)
	}
	return footerStyle.Width(width).Render(truncate(renderHelp(bindings), width-4))
}

// renderHelp joins bindings as "key desc" pairs, skipping repeated help
// text so global fallbacks don't duplicate scope entries.
func renderHelp(bindings []key.Binding) string {
	seen := make(map[string]bool)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if seen[h.Desc] {
			continue
		}
		seen[h.Desc] = true
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
