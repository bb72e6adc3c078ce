package decimal

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

// Format returns the canonical text of value. NaN and infinities, which
// never reach a conversion, are written in strconv's 'g' form for direct
// callers.
func Format(value float64) string {
	switch {
	case value == 0:
		return "0"
	case math.IsNaN(value) || math.IsInf(value, 0):
		return strconv.FormatFloat(value, 'g', -1, 64)
	}

	return decimal.NewFromFloat(value).String()
}

// Parse returns the float64 nearest to the decimal number in text.
func Parse(text string) (float64, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, Error.Wrap(err)
	}

	v, _ := d.Float64()
	if math.IsInf(v, 0) {
		return 0, Error.New("%s is out of range", text)
	}

	return v, nil
}
