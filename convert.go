package numconv

import (
	"math"

	"github.com/calebcase/numconv/digit"
	"github.com/calebcase/numconv/radix"
)

// Digit budgets.
const (
	// DefaultDigits is the digit budget used when none is given.
	DefaultDigits = 32

	// MaxDigits bounds the budget. Complement patterns and the padded
	// binary string are always exactly this wide, and no float64 needs
	// more than 2098 binary digits.
	MaxDigits = 1 << 12
)

// Result holds a value in every form. The complement forms are nil for
// non-integers.
type Result struct {
	// Val is the input as given.
	Val string `json:"val" msgpack:"val"`

	// Value is the canonical value.
	Value float64 `json:"-" msgpack:"-"`

	Decimal string  `json:"decimal" msgpack:"decimal"`
	Hex     string  `json:"hex" msgpack:"hex"`
	Binary  string  `json:"binary" msgpack:"binary"`
	BinaryP string  `json:"binaryP" msgpack:"binaryP"`
	S754    string  `json:"s754" msgpack:"s754"`
	D754    string  `json:"d754" msgpack:"d754"`
	Comp1   *string `json:"comp1" msgpack:"comp1"`
	Comp2   *string `json:"comp2" msgpack:"comp2"`
}

// Get returns the representation in form f. ok is false if there is none.
func (r *Result) Get(f Form) (text string, ok bool) {
	switch f {
	case Binary:
		return r.Binary, true
	case Decimal:
		return r.Decimal, true
	case Hex:
		return r.Hex, true
	case S754:
		return r.S754, true
	case D754:
		return r.D754, true
	case Comp1:
		return deref(r.Comp1)
	case Comp2:
		return deref(r.Comp2)
	}

	return "", false
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}

	return *p, true
}

func (r *Result) set(f Form, text string, ok bool) {
	var p *string
	if ok {
		p = &text
	}

	switch f {
	case Binary:
		r.Binary = text
	case Decimal:
		r.Decimal = text
	case Hex:
		r.Hex = text
	case S754:
		r.S754 = text
	case D754:
		r.D754 = text
	case Comp1:
		r.Comp1 = p
	case Comp2:
		r.Comp2 = p
	}
}

// Convert normalizes v given in form f and renders it in every form using
// at most digits digits for radix strings and complement patterns.
func Convert(v Value, f Form, digits int) (r *Result, err error) {
	if digits < 1 || digits > MaxDigits {
		return nil, digit.Domain.New("digit budget %d not in [1,%d]", digits, MaxDigits)
	}

	err = f.validate(v)
	if err != nil {
		return nil, err
	}

	x, err := f.decode(v)
	if err != nil {
		return nil, err
	}

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, digit.Domain.New("%s is not finite", v)
	}

	r = &Result{
		Val:   v.String(),
		Value: x,
	}

	for _, form := range Forms() {
		text, ok, err := form.encode(x, digits)
		if err != nil {
			return nil, err
		}

		r.set(form, text, ok)
	}

	r.BinaryP, err = radix.EncodePadded(x, digits, 2)
	if err != nil {
		return nil, err
	}

	return r, nil
}
