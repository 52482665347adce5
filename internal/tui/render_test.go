package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func viewLines(m Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

func TestViewGridRows(t *testing.T) {
	lines := viewLines(newTestModel(t, "255"))
	if len(lines) < gridTop+gridRows {
		t.Fatalf("view has %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[gridTop], " 6666 5555 5555") {
		t.Fatalf("tens row = %q", lines[gridTop])
	}
	if !strings.HasPrefix(lines[gridTop+1], " 3210 9876 5432") {
		t.Fatalf("ones row = %q", lines[gridTop+1])
	}
	bitsRow := strings.TrimRight(lines[gridTop+2], " ")
	if !strings.HasSuffix(bitsRow, "0000 1111 1111") {
		t.Fatalf("bits row = %q", bitsRow)
	}
	if got := len([]rune(bitsRow)); got != gridLeft+gridWidth {
		t.Fatalf("bits row width = %d, want %d", got, gridLeft+gridWidth)
	}
}

func TestViewBlankGridForInvalidInput(t *testing.T) {
	lines := viewLines(newTestModel(t, "abc"))
	if !strings.HasPrefix(lines[gridTop+2], " ···· ····") {
		t.Fatalf("bits row = %q, want blank cells", lines[gridTop+2])
	}
}

func TestViewShowsChipsAndStatus(t *testing.T) {
	m := newTestModel(t, "255")
	m = step(t, m, mouseAt(tea.MouseActionPress, xFor(7), bitRowY()))
	m = step(t, m, mouseAt(tea.MouseActionRelease, xFor(0), bitRowY()))
	lines := viewLines(m)

	hexRow, labelRow := lines[chipTop], lines[chipTop+1]
	x := cellX(56)
	if got := strings.TrimSpace(hexRow[x:]); got != "0xFF" {
		t.Fatalf("chip row = %q", hexRow)
	}
	if got := strings.TrimSpace(labelRow[x:]); got != "7-0" {
		t.Fatalf("label row = %q", labelRow)
	}

	view := strings.Join(lines, "\n")
	if !strings.Contains(view, "Range 7-0 = 0xFF") {
		t.Fatal("expected status bar to report the new range")
	}
	if len(lines) != m.height {
		t.Fatalf("view lines = %d, want height %d", len(lines), m.height)
	}
}

func TestViewCursorMarkerInGridFocus(t *testing.T) {
	m := newTestModel(t, "255")
	if strings.Contains(viewLines(m)[gridTop+3], "^") {
		t.Fatal("cursor marker should be hidden while editing the value")
	}
	m = press(t, m, "tab")
	marker := viewLines(m)[gridTop+3]
	if idx := strings.Index(marker, "^"); idx != cellX(0) {
		t.Fatalf("cursor marker at %d, want %d", idx, cellX(0))
	}
}

func TestViewFooterFollowsScope(t *testing.T) {
	m := newTestModel(t, "255")
	lines := viewLines(m)
	footer := lines[len(lines)-1]
	if !strings.Contains(footer, "commands") || strings.Contains(footer, "undo") {
		t.Fatalf("input footer = %q", footer)
	}
	m = press(t, m, "tab")
	lines = viewLines(m)
	if footer := lines[len(lines)-1]; !strings.Contains(footer, "u undo") {
		t.Fatalf("grid footer = %q", footer)
	}
}

func TestViewCommandPaletteOverlay(t *testing.T) {
	m := newTestModel(t, "255")
	m = press(t, m, "ctrl+k")
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Commands") || !strings.Contains(view, "Undo Last Range") {
		t.Fatal("expected palette overlay in view")
	}
	if got := len(strings.Split(view, "\n")); got != m.height {
		t.Fatalf("overlay changed line count to %d", got)
	}
}

func TestPlaceModalKeepsBaseOutsideModal(t *testing.T) {
	base := "aaaaaaaaaa\nbbbbbbbbbb\ncccccccccc"
	got := placeModal(base, "XX\nYY", 1, 10)
	want := "aaaaaaaaaa\nbbbbXXbbbb\nccccYYcccc"
	if got != want {
		t.Fatalf("placeModal = %q, want %q", got, want)
	}
	got = placeModal(base, "X\nY\nZ", 2, 10)
	if want := "aaaaaaaaaa\nbbbbbbbbbb\nccccXccccc"; got != want {
		t.Fatalf("placeModal past bottom = %q, want %q", got, want)
	}
}

func TestCenterAndTruncate(t *testing.T) {
	if got := center("ab", 5); got != " ab  " {
		t.Fatalf("center = %q", got)
	}
	if got := center("abcdef", 3); got != "abcdef" {
		t.Fatalf("center wide = %q", got)
	}
	if got := truncate("abcdef", 4); ansi.StringWidth(got) > 4 {
		t.Fatalf("truncate = %q", got)
	}
}
