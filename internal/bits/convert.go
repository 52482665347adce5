// Package bits converts between typed numeric input, its fixed 64-bit
// binary expansion, and hexadecimal labels for sub-spans of that expansion.
package bits

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Width is the number of bits in every expansion.
const Width = 64

var (
	ErrInvalidSpan = errors.New("invalid bit span")
	ErrNotBinary   = errors.New("not a binary string")
)

// ParseValue parses input the way a lenient integer parser does. A 0x/0X
// prefix on the raw input selects base 16, otherwise base 10. Leading
// whitespace and a '+' sign are skipped and parsing stops at the first
// character that is not a digit of the base. It reports false when there
// are no digits, the value is negative, or the value does not fit in 64 bits.
func ParseValue(input string) (uint64, bool) {
	base := 10
	s := input
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}

	s = strings.TrimLeft(s, " \t\n\r\v\f")
	if strings.HasPrefix(s, "-") {
		return 0, false
	}
	s = strings.TrimPrefix(s, "+")

	digits := leadingDigits(s, base)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, base, Width)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseToBinary64 returns the zero-padded 64-character binary expansion
// of input, or "" when input holds no usable value.
func ParseToBinary64(input string) string {
	v, ok := ParseValue(input)
	if !ok {
		return ""
	}
	return FormatBinary(v)
}

// FormatBinary renders v as exactly Width binary digits, most significant first.
func FormatBinary(v uint64) string {
	return fmt.Sprintf("%0*b", Width, v)
}

// BinaryToHex interprets binary[start..end] (inclusive) as an unsigned
// base-2 number and returns it as "0x" followed by uppercase hex digits.
func BinaryToHex(binary string, start, end int) (string, error) {
	if start < 0 || start > end || end > len(binary)-1 {
		return "", fmt.Errorf("%w: [%d,%d] of %d bits", ErrInvalidSpan, start, end, len(binary))
	}
	v, err := strconv.ParseUint(binary[start:end+1], 2, Width)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrNotBinary, binary[start:end+1])
	}
	return "0x" + strings.ToUpper(strconv.FormatUint(v, 16)), nil
}

// InvertPosition maps a display position to a true position and back.
func InvertPosition(pos int) int {
	return Width - 1 - pos
}

// Nibbles splits binary into groups of four characters from the left.
// A trailing short group is kept as is.
func Nibbles(binary string) []string {
	out := make([]string, 0, (len(binary)+3)/4)
	for i := 0; i < len(binary); i += 4 {
		out = append(out, binary[i:min(i+4, len(binary))])
	}
	return out
}

func leadingDigits(s string, base int) string {
	n := 0
	for n < len(s) && isDigit(s[n], base) {
		n++
	}
	return s[:n]
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
