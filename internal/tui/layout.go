package tui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/bitbuddy/internal/bits"
	"github.com/jask/bitbuddy/internal/ranges"
)

// Screen geometry. The grid draws true position 0 (display 63) leftmost
// with a blank column after every nibble: 64 cells + 15 gaps = 79 columns.
const (
	gridLeft     = 1
	gridTop      = 6 // tens row; ones, bits and marker rows follow
	gridRows     = 4
	nibbleStride = 5
	chipTop      = gridTop + gridRows + 1
	gridWidth    = bits.Width + bits.Width/4 - 1
)

// cellX returns the screen column of a true position.
func cellX(truePos int) int {
	return gridLeft + truePos + truePos/4
}

// positionAt maps a screen cell to a display position, or -1 when the
// cell is outside the grid or on a nibble gap.
func positionAt(x, y int) int {
	if y < gridTop || y >= gridTop+gridRows {
		return -1
	}
	rel := x - gridLeft
	if rel < 0 {
		return -1
	}
	group, within := rel/nibbleStride, rel%nibbleStride
	if within == nibbleStride-1 {
		return -1
	}
	truePos := group*4 + within
	if truePos >= bits.Width {
		return -1
	}
	return bits.InvertPosition(truePos)
}

// chipPlacement locates one range's hex chip below the grid.
type chipPlacement struct {
	Range ranges.Range
	Row   int
	X     int
	Width int
}

// layoutChips places each range's chip under its span, wide enough for its
// hex and position labels. A chip that would collide with an earlier one
// drops to the next free row.
func layoutChips(rs []ranges.Range) []chipPlacement {
	type interval struct{ lo, hi int }
	var rows [][]interval

	out := make([]chipPlacement, 0, len(rs))
	for _, r := range rs {
		x0 := cellX(r.TrueStart)
		span := cellX(r.TrueEnd) - x0 + 1
		w := max(span, ansi.StringWidth(r.Hex), ansi.StringWidth(r.Label()))
		iv := interval{x0, x0 + w} // one blank column after each chip

		row := -1
		for i, taken := range rows {
			free := true
			for _, t := range taken {
				if iv.lo <= t.hi && t.lo <= iv.hi {
					free = false
					break
				}
			}
			if free {
				row = i
				break
			}
		}
		if row < 0 {
			rows = append(rows, nil)
			row = len(rows) - 1
		}
		rows[row] = append(rows[row], iv)
		out = append(out, chipPlacement{Range: r, Row: row, X: x0, Width: w})
	}
	return out
}

// chipRowCount is the number of chip rows layoutChips used.
func chipRowCount(ps []chipPlacement) int {
	n := 0
	for _, p := range ps {
		n = max(n, p.Row+1)
	}
	return n
}
