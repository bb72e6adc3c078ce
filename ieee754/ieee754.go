package ieee754

import (
	"math"
	"strings"

	"github.com/calebcase/numconv/digit"
)

// Encode returns the bit pattern of value in the given total width.
func Encode(value float64, width int) (string, error) {
	p, err := Lookup(width)
	if err != nil {
		return "", err
	}

	return p.Encode(value)
}

// Decode returns the value of the bit pattern bits in the given total width.
func Decode(bits string, width int) (float64, error) {
	p, err := Lookup(width)
	if err != nil {
		return 0, err
	}

	return p.Decode(bits)
}

// Encode returns the bit pattern of value.
func (p Precision) Encode(value float64) (string, error) {
	switch {
	case value == 0:
		return strings.Repeat("0", p.Width), nil
	case math.IsNaN(value) || math.IsInf(value, 0):
		return "", Unsupported.New("%v is not finite", value)
	}

	sign := "0"
	if value < 0 {
		sign = "1"
	}

	value = math.Abs(value)

	// Frexp gives value = frac * 2^exp with frac in [0.5,1), so the
	// normalized exponent is exp-1 exactly (log2 may round up just below a
	// power of two).
	_, exp := math.Frexp(value)
	exponent := exp - 1

	characteristic := exponent + p.Bias
	switch {
	case characteristic <= 0:
		return "", Unsupported.New("%v is subnormal in %d bits", value, p.Width)
	case characteristic >= p.maxCharacteristic():
		return "", Unsupported.New("%v overflows %d bits", value, p.Width)
	}

	mantissa := math.Ldexp(value, -exponent) - 1

	char, err := digit.EncodeInteger(float64(characteristic), p.ExponentBits, 2)
	if err != nil {
		return "", err
	}

	mant, err := digit.EncodeFraction(mantissa, p.SignificandBits, 2)
	if err != nil {
		return "", err
	}

	return sign +
		digit.Pad(char, p.ExponentBits, digit.Left, '0') +
		digit.Pad(mant, p.SignificandBits, digit.Right, '0'), nil
}

// Decode returns the value of the bit pattern bits.
func (p Precision) Decode(bits string) (float64, error) {
	if len(bits) != p.Width {
		return 0, LengthMismatch.New("got %d bits, want %d", len(bits), p.Width)
	}

	sign := bits[0]
	char := bits[1 : p.ExponentBits+1]
	mant := bits[p.ExponentBits+1:]

	if sign != '0' && sign != '1' {
		return 0, digit.InvalidDigit.New("%q at 0 in radix 2", sign)
	}

	characteristic, err := digit.DecodeInteger(char, 2)
	if err != nil {
		return 0, err
	}

	mantissa, err := digit.DecodeFraction(mant, 2)
	if err != nil {
		return 0, err
	}

	switch {
	case characteristic == 0 && mantissa == 0:
		return 0, nil
	case characteristic == 0:
		return 0, Unsupported.New("subnormal pattern %s", bits)
	case int(characteristic) == p.maxCharacteristic():
		return 0, Unsupported.New("infinity or NaN pattern %s", bits)
	}

	exponent := int(characteristic) - p.Bias

	value := math.Ldexp(1+mantissa, exponent)
	if math.IsInf(value, 0) || value == 0 {
		return 0, Unsupported.New("pattern %s is outside float64 range", bits)
	}

	if sign == '1' {
		value = -value
	}

	return value, nil
}
