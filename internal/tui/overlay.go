package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// placeModal draws modal over view, centred horizontally with its first
// line on row top. Modal rows past the end of view are dropped.
func placeModal(view, modal string, top, width int) string {
	rows := strings.Split(view, "\n")
	box := strings.Split(modal, "\n")
	boxWidth := 0
	for _, line := range box {
		boxWidth = max(boxWidth, ansi.StringWidth(line))
	}
	x := max((width-boxWidth)/2, 0)
	for i, line := range box {
		y := top + i
		if y < 0 || y >= len(rows) {
			continue
		}
		row := padRight(rows[y], width)
		rows[y] = ansi.Truncate(row, x, "") + padRight(line, boxWidth) + ansi.TruncateLeft(row, x+boxWidth, "")
	}
	return strings.Join(rows, "\n")
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// center pads s on both sides to width, biased left.
func center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// truncate shortens s to width cells, appending "…" if truncated.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
