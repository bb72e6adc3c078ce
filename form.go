package numconv

import (
	"math"
	"math/big"
	"strings"

	"github.com/calebcase/numconv/complement"
	"github.com/calebcase/numconv/decimal"
	"github.com/calebcase/numconv/ieee754"
	"github.com/calebcase/numconv/radix"
)

// Form is a representation of a number.
type Form int

// Forms
const (
	Binary Form = iota
	Decimal
	Hex
	S754
	D754
	Comp1
	Comp2
)

// Forms returns every form in display order.
func Forms() []Form {
	return []Form{Binary, Decimal, Hex, S754, D754, Comp1, Comp2}
}

// ParseForm returns the form with the given tag.
func ParseForm(tag string) (Form, error) {
	for _, f := range Forms() {
		if strings.EqualFold(tag, f.String()) {
			return f, nil
		}
	}

	return 0, InvalidForm.New("%q", tag)
}

// String returns the form's tag.
func (f Form) String() string {
	switch f {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	case S754:
		return "s754"
	case D754:
		return "d754"
	case Comp1:
		return "comp1"
	case Comp2:
		return "comp2"
	}

	return "invalid"
}

// permitted returns the characters allowed in text input for the form.
func (f Form) permitted() (string, error) {
	switch f {
	case Binary:
		return "01.-", nil
	case Hex:
		return "0123456789abcdef.-", nil
	case S754, D754, Comp1, Comp2:
		return "01", nil
	case Decimal:
		return "", nil
	}

	return "", InvalidForm.New("%d", int(f))
}

// validate checks the shape of v against the form.
func (f Form) validate(v Value) error {
	permitted, err := f.permitted()
	if err != nil {
		return err
	}

	if f == Decimal {
		return nil
	}

	if v.IsNumber() {
		return TypeMismatch.New("%s wants text, got number %s", f, v)
	}

	if v.text == "" {
		return InvalidCharacter.New("empty %s", f)
	}

	for i, r := range v.text {
		if !strings.ContainsRune(permitted, r) {
			return InvalidCharacter.New("%q at %d not permitted in %s", r, i, f)
		}
	}

	return nil
}

// scheme returns the complement scheme of a complement form.
func (f Form) scheme() complement.Scheme {
	if f == Comp2 {
		return complement.Twos
	}

	return complement.Ones
}

// decode normalizes a validated v to its canonical value.
func (f Form) decode(v Value) (float64, error) {
	switch f {
	case Decimal:
		if v.IsNumber() {
			return v.number, nil
		}

		x, err := decimal.Parse(v.text)
		if err != nil {
			return 0, TypeMismatch.New("decimal wants a number, got %q", v.text)
		}

		return x, nil
	case Binary:
		return radix.Decode(v.text, 2)
	case Hex:
		return radix.Decode(v.text, 16)
	case S754:
		return ieee754.Decode(v.text, ieee754.Single().Width)
	case D754:
		return ieee754.Decode(v.text, ieee754.Double().Width)
	case Comp1, Comp2:
		i, err := f.scheme().Decode(v.text)
		if err != nil {
			return 0, err
		}

		x, _ := new(big.Float).SetInt(i).Float64()

		return x, nil
	}

	return 0, InvalidForm.New("%d", int(f))
}

// encode renders the finite canonical value x in the form. ok is false when
// the form has no representation of x.
func (f Form) encode(x float64, digits int) (text string, ok bool, err error) {
	switch f {
	case Decimal:
		return decimal.Format(x), true, nil
	case Binary:
		text, err = radix.Encode(x, digits, 2)
	case Hex:
		text, err = radix.Encode(x, digits, 16)
	case S754:
		text, err = ieee754.Single().Encode(x)
	case D754:
		text, err = ieee754.Double().Encode(x)
	case Comp1, Comp2:
		if x != math.Trunc(x) {
			return "", false, nil
		}

		i, _ := big.NewFloat(x).Int(nil)
		text, err = f.scheme().Encode(i, digits)
	default:
		return "", false, InvalidForm.New("%d", int(f))
	}

	if err != nil {
		return "", false, err
	}

	return text, true, nil
}
