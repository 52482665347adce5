package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReleaseNormalisesLeftToRightDrag(t *testing.T) {
	var g Gesture
	g.Press(7)
	g.Extend(5)
	g.Extend(0)

	start, end, ok := g.Release()
	require.True(t, ok)
	require.Equal(t, 7, start)
	require.Equal(t, 0, end)
	require.Equal(t, Gesture{}, g)
}

func TestReleaseNormalisesRightToLeftDrag(t *testing.T) {
	var g Gesture
	g.Press(2)
	g.Extend(40)

	start, end, ok := g.Release()
	require.True(t, ok)
	require.Equal(t, 40, start)
	require.Equal(t, 2, end)
}

func TestClickWithoutDragCommitsNothing(t *testing.T) {
	var g Gesture
	g.Press(9)
	_, _, ok := g.Release()
	require.False(t, ok)

	g.Press(9)
	g.Extend(12)
	g.Extend(9)
	_, _, ok = g.Release()
	require.False(t, ok)
}

func TestExtendIgnoredWhenIdle(t *testing.T) {
	var g Gesture
	g.Extend(30)
	require.Equal(t, Gesture{}, g)

	_, _, ok := g.Release()
	require.False(t, ok)
}

func TestHighlighted(t *testing.T) {
	var g Gesture
	require.False(t, g.Highlighted(0))

	g.Press(3)
	g.Extend(6)
	for pos := 3; pos <= 6; pos++ {
		require.True(t, g.Highlighted(pos), "pos %d", pos)
	}
	require.False(t, g.Highlighted(2))
	require.False(t, g.Highlighted(7))

	g.Cancel()
	require.False(t, g.Highlighted(4))
}
