// Package complement encodes signed integers as fixed width one's and two's
// complement bit patterns.
//
// Magnitudes are kept in a big.Int so the width is not limited to a native
// integer size. A value whose magnitude needs more than width bits keeps
// only its low width bits:
//
//  | Value | Width | Ones     | Twos     |
//  |-------|-------|----------|----------|
//  | 5     | 8     | 00000101 | 00000101 |
//  | -5    | 8     | 11111010 | 11111011 |
//  | 0     | 4     | 0000     | 0000     |
//  | 300   | 8     | 00101100 | 00101100 | (low 8 bits of 100101100)
//  |-------|-------|----------|----------|
package complement

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/numconv/digit"
)

// Error classes.
var (
	InvalidBit   = errs.Class("invalid bit")
	InvalidWidth = errs.Class("invalid width")
)

var one = big.NewInt(1)

// Scheme is a complement scheme.
type Scheme int

// Schemes
const (
	Ones Scheme = 1
	Twos Scheme = 2
)

// Encode encodes value in width bits using the scheme.
func (s Scheme) Encode(value *big.Int, width int) (string, error) {
	if s == Twos {
		return EncodeTwos(value, width)
	}

	return EncodeOnes(value, width)
}

// Decode decodes bits using the scheme.
func (s Scheme) Decode(bits string) (*big.Int, error) {
	if s == Twos {
		return DecodeTwos(bits)
	}

	return DecodeOnes(bits)
}

// unsigned returns the low width bits of i as a binary string without
// padding.
func unsigned(i *big.Int, width int) string {
	text := new(big.Int).Abs(i).Text(2)
	if len(text) > width {
		text = text[len(text)-width:]
	}

	return text
}

// invert flips every bit in bits.
func invert(bits string) string {
	return strings.Map(func(r rune) rune {
		if r == '0' {
			return '1'
		}

		return '0'
	}, bits)
}

// EncodeOnes returns the one's complement of value in width bits.
func EncodeOnes(value *big.Int, width int) (string, error) {
	if width < 1 {
		return "", InvalidWidth.New("%d", width)
	}

	bits := unsigned(value, width)

	if value.Sign() < 0 {
		// Inverting the unpadded magnitude and then padding with ones is
		// the same as inverting the zero padded magnitude.
		return digit.Pad(invert(bits), width, digit.Left, '1'), nil
	}

	return digit.Pad(bits, width, digit.Left, '0'), nil
}

// EncodeTwos returns the two's complement of value in width bits.
func EncodeTwos(value *big.Int, width int) (string, error) {
	bits, err := EncodeOnes(value, width)
	if err != nil {
		return "", err
	}

	if bits[0] != '1' {
		return bits, nil
	}

	u, ok := new(big.Int).SetString(bits, 2)
	if !ok {
		return "", InvalidBit.New("%s", bits)
	}

	u.Add(u, one)

	return digit.Pad(unsigned(u, width), width, digit.Left, '0'), nil
}

// check returns an error if bits is empty or contains anything other than
// '0' and '1'.
func check(bits string) error {
	if bits == "" {
		return InvalidBit.New("empty bit pattern")
	}

	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return InvalidBit.New("%q at %d", bits[i], i)
		}
	}

	return nil
}

// DecodeOnes returns the integer for the one's complement pattern bits.
func DecodeOnes(bits string) (*big.Int, error) {
	err := check(bits)
	if err != nil {
		return nil, err
	}

	negative := bits[0] == '1'
	if negative {
		bits = invert(bits)
	}

	i, _ := new(big.Int).SetString(bits, 2)
	if negative {
		i.Neg(i)
	}

	return i, nil
}

// DecodeTwos returns the integer for the two's complement pattern bits.
func DecodeTwos(bits string) (*big.Int, error) {
	i, err := DecodeOnes(bits)
	if err != nil {
		return nil, err
	}

	if bits[0] == '1' {
		i.Sub(i, one)
	}

	return i, nil
}
