// Package digit converts between non-negative numbers and their digit
// strings in radix 2 through 16.
//
// Encoding is bounded by a digit budget. When a value needs more digits than
// the budget allows the encoder stops early and the result is truncated. It
// is never rounded.
//
// Digits are lower case in both directions. 'A' through 'F' are not digits.
package digit

import (
	"math"
	"strings"
)

// Radix limits.
const (
	MinRadix = 2
	MaxRadix = 16
)

const alphabet = "0123456789abcdef"

// CheckRadix returns an error if radix is outside [MinRadix, MaxRadix].
func CheckRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return RadixOutOfRange.New("%d not in [%d,%d]", radix, MinRadix, MaxRadix)
	}

	return nil
}

// value returns the numeric value of the digit c or -1 if c is not a digit
// of the given radix.
func value(c byte, radix int) int {
	var v int

	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'f':
		v = int(c-'a') + 10
	default:
		return -1
	}

	if v >= radix {
		return -1
	}

	return v
}

// DecodeInteger interprets digits as an unsigned integer in radix.
func DecodeInteger(digits string, radix int) (v float64, err error) {
	err = CheckRadix(radix)
	if err != nil {
		return 0, err
	}

	if digits == "" {
		return 0, InvalidDigit.New("empty digit string")
	}

	r := float64(radix)

	for i := 0; i < len(digits); i++ {
		d := value(digits[i], radix)
		if d < 0 {
			return 0, InvalidDigit.New("%q at %d in radix %d", digits[i], i, radix)
		}

		v = v*r + float64(d)
	}

	return v, nil
}

// DecodeFraction interprets digits as the fractional digits following a
// radix point. The result is in [0,1).
func DecodeFraction(digits string, radix int) (v float64, err error) {
	err = CheckRadix(radix)
	if err != nil {
		return 0, err
	}

	r := float64(radix)

	for i := 0; i < len(digits); i++ {
		d := value(digits[i], radix)
		if d < 0 {
			return 0, InvalidDigit.New("%q at %d in radix %d", digits[i], i, radix)
		}

		v += float64(d) * math.Pow(r, -float64(i+1))
	}

	return v, nil
}

// EncodeInteger encodes the non-negative integer value in radix using at
// most maxDigits digits.
//
// Digits are produced least significant first, so a value that needs more
// than maxDigits digits keeps only its low maxDigits digits.
func EncodeInteger(value float64, maxDigits, radix int) (string, error) {
	err := CheckRadix(radix)
	if err != nil {
		return "", err
	}

	switch {
	case maxDigits < 0:
		return "", Domain.New("negative digit budget %d", maxDigits)
	case math.IsNaN(value) || math.IsInf(value, 0):
		return "", Domain.New("%v is not finite", value)
	case value < 0:
		return "", Domain.New("%v is negative", value)
	case value != math.Trunc(value):
		return "", Domain.New("%v is not an integer", value)
	case value == 0:
		return "0", nil
	}

	r := float64(radix)
	// A float64 never needs more than 1024 binary digits so the budget is
	// only an upper bound on the loop, not a size to allocate.
	buf := make([]byte, 0, min(maxDigits, 64))

	for value > 0 && len(buf) < maxDigits {
		d := math.Mod(value, r)
		value = (value - d) / r

		buf = append(buf, alphabet[int(d)])
	}

	// Reverse into most significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}

// EncodeFraction encodes value, which must be in [0,1), as the digits
// following a radix point. At most maxDigits digits are produced.
func EncodeFraction(value float64, maxDigits, radix int) (string, error) {
	err := CheckRadix(radix)
	if err != nil {
		return "", err
	}

	switch {
	case maxDigits < 0:
		return "", Domain.New("negative digit budget %d", maxDigits)
	case math.IsNaN(value) || value < 0 || value >= 1:
		return "", Domain.New("%v not in [0,1)", value)
	case value == 0:
		return "0", nil
	}

	r := float64(radix)
	sb := &strings.Builder{}

	for value > 0 && sb.Len() < maxDigits {
		d, f := math.Modf(value * r)
		value = f

		sb.WriteByte(alphabet[int(d)])
	}

	return sb.String(), nil
}
