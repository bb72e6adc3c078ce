// Package radix converts signed real numbers to and from radix strings of
// the form
//
//  [-]<integer digits>[.<fractional digits>]
//
// in radix 2 through 16. Encoding spends a shared digit budget on the
// integer part first and gives whatever remains to the fractional part:
//
//  | Value  | Budget | Radix | Text        |
//  |--------|--------|-------|-------------|
//  | 0.5    | 32     | 2     | 0.1         |
//  | 0.5    | 32     | 16    | 0.8         |
//  | -5     | 32     | 2     | -101        |
//  | 5.375  | 4      | 2     | 101         | (fraction truncated to 0)
//  | 5.375  | 5      | 2     | 101.01      |
//  | 0.1    | 6      | 2     | 0.00011     | (truncated, not rounded)
//  |--------|--------|-------|-------------|
package radix

import (
	"math"
	"strings"

	"github.com/calebcase/numconv/digit"
)

// Decode parses text as a radix string. A missing integer or fractional
// part is zero.
func Decode(text string, radix int) (v float64, err error) {
	err = digit.CheckRadix(radix)
	if err != nil {
		return 0, err
	}

	negative := strings.HasPrefix(text, "-")
	if negative {
		text = text[1:]
	}

	integer, fractional, _ := strings.Cut(text, ".")
	if integer == "" {
		integer = "0"
	}

	i, err := digit.DecodeInteger(integer, radix)
	if err != nil {
		return 0, err
	}

	f, err := digit.DecodeFraction(fractional, radix)
	if err != nil {
		return 0, err
	}

	v = i + f
	if negative && v != 0 {
		v = -v
	}

	return v, nil
}

// Encode renders value as a radix string using at most maxDigits digits.
func Encode(value float64, maxDigits, radix int) (string, error) {
	sign := ""
	if value < 0 {
		sign = "-"
	}

	i, f := math.Modf(math.Abs(value))

	integer, err := digit.EncodeInteger(i, maxDigits, radix)
	if err != nil {
		return "", err
	}

	remaining := maxDigits - len(integer)
	if remaining < 0 {
		remaining = 0
	}

	fractional, err := digit.EncodeFraction(f, remaining, radix)
	if err != nil {
		return "", err
	}

	if integer == "" {
		integer = "0"
	}

	if fractional == "" || fractional == "0" {
		return sign + integer, nil
	}

	return sign + integer + "." + fractional, nil
}

// EncodePadded is Encode with the digits left padded with zeros to width.
func EncodePadded(value float64, width, radix int) (string, error) {
	text, err := Encode(value, width, radix)
	if err != nil {
		return "", err
	}

	return digit.Pad(text, width, digit.Left, '0'), nil
}
