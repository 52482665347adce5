package ranges

import "math/rand/v2"

// Palette holds the colours a new range can be drawn in.
var Palette = [10]string{
	"#4B004B", // dark magenta
	"#746100", // dark yellow
	"#002366", // dark blue
	"#0F4C0F", // dark green
	"#7D0A0A", // dark red
	"#660033", // dark pink
	"#005B5B", // dark cyan
	"#3D0C5E", // dark purple
	"#1A1A40", // dark grayish indigo
	"#9B4503", // dark orange
}

// ColorPicker chooses a colour for a newly committed range.
type ColorPicker interface {
	Pick(palette []string) string
}

// RandomPicker draws uniformly from the palette.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker returns a picker seeded with seed, or an unseeded one
// when seed is zero.
func NewRandomPicker(seed int64) *RandomPicker {
	if seed == 0 {
		return &RandomPicker{}
	}
	return &RandomPicker{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))}
}

func (p *RandomPicker) Pick(palette []string) string {
	if len(palette) == 0 {
		return ""
	}
	if p == nil || p.rng == nil {
		return palette[rand.IntN(len(palette))]
	}
	return palette[p.rng.IntN(len(palette))]
}

// FixedPicker always returns the same colour.
type FixedPicker string

func (f FixedPicker) Pick([]string) string { return string(f) }
