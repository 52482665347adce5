package ranges

import (
	mathbits "math/bits"

	"github.com/jask/bitbuddy/internal/bits"
)

// Occupied is the set of display positions claimed by committed ranges,
// one bit per position.
type Occupied uint64

// Has reports whether pos is claimed. Positions outside [0,63] never are.
func (o Occupied) Has(pos int) bool {
	if pos < 0 || pos >= bits.Width {
		return false
	}
	return o&(1<<uint(pos)) != 0
}

// Len returns the number of claimed positions.
func (o Occupied) Len() int {
	return mathbits.OnesCount64(uint64(o))
}

// Positions lists claimed positions in ascending order.
func (o Occupied) Positions() []int {
	out := make([]int, 0, o.Len())
	for v := uint64(o); v != 0; v &= v - 1 {
		out = append(out, mathbits.TrailingZeros64(v))
	}
	return out
}

// Intersects reports whether any position in [end,start] is claimed.
func (o Occupied) Intersects(start, end int) bool {
	return o&spanMask(start, end) != 0
}

func (o Occupied) with(start, end int) Occupied {
	return o | spanMask(start, end)
}

func (o Occupied) without(start, end int) Occupied {
	return o &^ spanMask(start, end)
}

// spanMask has bits end..start set. Callers keep 0 <= end <= start <= 63.
func spanMask(start, end int) Occupied {
	width := uint(start - end + 1)
	if width >= bits.Width {
		return ^Occupied(0)
	}
	return Occupied((uint64(1)<<width - 1) << uint(end))
}
