package bits

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseToBinary64Decimal(t *testing.T) {
	cases := []uint64{0, 1, 2, 255, 256, 1 << 53, 1<<53 + 1, math.MaxInt64, math.MaxUint64 - 1, math.MaxUint64}
	for _, v := range cases {
		got := ParseToBinary64(strconv.FormatUint(v, 10))
		require.Len(t, got, Width, "value %d", v)
		back, err := strconv.ParseUint(got, 2, 64)
		require.NoError(t, err)
		require.Equal(t, v, back)
	}
}

func TestParseToBinary64Hex(t *testing.T) {
	cases := map[string]uint64{
		"0xFF":               0xFF,
		"0Xff":               0xFF,
		"0x0":                0,
		"0xDEADBEEF":         0xDEADBEEF,
		"0xffffffffffffffff": math.MaxUint64,
		"0x8000000000000000": 1 << 63,
	}
	for in, want := range cases {
		require.Equal(t, FormatBinary(want), ParseToBinary64(in), in)
	}
}

func TestParseToBinary64Unparseable(t *testing.T) {
	for _, in := range []string{"", "abc", "0x", "0xZZ", "-5", "  ", "x12"} {
		require.Empty(t, ParseToBinary64(in), "input %q", in)
	}
}

func TestParseToBinary64StopsAtFirstNonDigit(t *testing.T) {
	require.Equal(t, FormatBinary(12), ParseToBinary64("12abc"))
	require.Equal(t, FormatBinary(0x1A), ParseToBinary64("0x1AG7"))
	require.Equal(t, FormatBinary(42), ParseToBinary64("  +42"))
	require.Equal(t, FormatBinary(3), ParseToBinary64("3.9"))
}

func TestParseToBinary64RejectsOverflow(t *testing.T) {
	require.Empty(t, ParseToBinary64("18446744073709551616"))
	require.Empty(t, ParseToBinary64("0x10000000000000000"))
}

func TestParseToBinary64Padding(t *testing.T) {
	got := ParseToBinary64("255")
	require.True(t, strings.HasSuffix(got, "11111111"))
	require.Equal(t, strings.Repeat("0", 56), got[:56])
}

func TestBinaryToHex(t *testing.T) {
	bin := "1111" + strings.Repeat("0", 60)
	got, err := BinaryToHex(bin, 0, 3)
	require.NoError(t, err)
	require.Equal(t, "0xF", got)

	got, err = BinaryToHex(bin, 4, 63)
	require.NoError(t, err)
	require.Equal(t, "0x0", got)

	got, err = BinaryToHex(ParseToBinary64("0xABCD"), 48, 63)
	require.NoError(t, err)
	require.Equal(t, "0xABCD", got)

	got, err = BinaryToHex(ParseToBinary64("0x0F"), 56, 63)
	require.NoError(t, err)
	require.Equal(t, "0xF", got, "no leading zero padding")
}

func TestBinaryToHexInvalid(t *testing.T) {
	bin := FormatBinary(1)
	_, err := BinaryToHex(bin, 5, 4)
	require.ErrorIs(t, err, ErrInvalidSpan)
	_, err = BinaryToHex(bin, -1, 4)
	require.ErrorIs(t, err, ErrInvalidSpan)
	_, err = BinaryToHex(bin, 0, 64)
	require.ErrorIs(t, err, ErrInvalidSpan)
	_, err = BinaryToHex("", 0, 0)
	require.ErrorIs(t, err, ErrInvalidSpan)
	_, err = BinaryToHex("10x1", 0, 3)
	require.ErrorIs(t, err, ErrNotBinary)
}

func TestInvertPositionInvolution(t *testing.T) {
	for p := -100; p <= 200; p++ {
		require.Equal(t, p, InvertPosition(InvertPosition(p)))
	}
	require.Equal(t, 63, InvertPosition(0))
	require.Equal(t, 0, InvertPosition(63))
}

func TestNibbles(t *testing.T) {
	groups := Nibbles(ParseToBinary64("0xF00F"))
	require.Len(t, groups, 16)
	require.Equal(t, []string{"1111", "0000", "0000", "1111"}, groups[12:])
	require.Equal(t, []string{"1010", "1"}, Nibbles("10101"))
}
