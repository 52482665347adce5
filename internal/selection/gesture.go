// Package selection tracks an in-progress drag over the bit grid. Nothing
// here is committed until Release hands back a normalised span.
package selection

// Gesture is the transient drag state. The zero value is idle.
type Gesture struct {
	Selecting bool
	Start     int
	End       int
}

// Press anchors a new selection at pos.
func (g *Gesture) Press(pos int) {
	g.Selecting = true
	g.Start = pos
	g.End = pos
}

// Extend moves the live end while a selection is in progress.
func (g *Gesture) Extend(pos int) {
	if !g.Selecting {
		return
	}
	g.End = pos
}

// Release ends the gesture and returns the span with the larger position
// as start. ok is false for a click that never left its cell. The anchors
// are reset either way.
func (g *Gesture) Release() (start, end int, ok bool) {
	wasSelecting := g.Selecting
	a, b := g.Start, g.End
	g.Cancel()
	if !wasSelecting || a == b {
		return 0, 0, false
	}
	if a < b {
		a, b = b, a
	}
	return a, b, true
}

// Cancel abandons the gesture.
func (g *Gesture) Cancel() {
	g.Selecting = false
	g.Start = 0
	g.End = 0
}

// Highlighted reports whether pos lies inside the live selection.
func (g Gesture) Highlighted(pos int) bool {
	if !g.Selecting {
		return false
	}
	lo, hi := min(g.Start, g.End), max(g.Start, g.End)
	return pos >= lo && pos <= hi
}
