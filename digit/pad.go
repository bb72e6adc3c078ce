package digit

import "strings"

// Side selects where padding is inserted.
type Side int

// Padding sides.
const (
	// Left right-justifies the digits (fill is prepended).
	Left Side = iota
	// Right left-justifies the digits (fill is appended).
	Right
)

// Pad pads value to width characters with fill. A leading '-' is kept in
// front and does not count toward width. Values already width characters or
// longer are returned unchanged.
func Pad(value string, width int, side Side, fill byte) string {
	sign := ""
	if strings.HasPrefix(value, "-") {
		sign, value = "-", value[1:]
	}

	n := width - len(value)
	if n <= 0 {
		return sign + value
	}

	fills := strings.Repeat(string(fill), n)

	if side == Right {
		return sign + value + fills
	}

	return sign + fills + value
}
