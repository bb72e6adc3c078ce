package digit

import "github.com/zeebo/errs"

// Error classes.
var (
	RadixOutOfRange = errs.Class("radix out of range")
	InvalidDigit    = errs.Class("invalid digit")
	Domain          = errs.Class("domain")
)
