package numconv

import "strconv"

// Value is an input to Convert. It is either a number or text.
type Value struct {
	text    string
	number  float64
	numeric bool
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{number: f, numeric: true}
}

// Int returns a numeric value for an integer.
func Int(i int64) Value {
	return Number(float64(i))
}

// Text returns a text value.
func Text(s string) Value {
	return Value{text: s}
}

// IsNumber returns true if the value was created with Number or Int.
func (v Value) IsNumber() bool {
	return v.numeric
}

// String returns the value as it was given.
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	}

	return v.text
}
