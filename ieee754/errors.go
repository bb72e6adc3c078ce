package ieee754

import "github.com/zeebo/errs"

// Error classes.
var (
	UnknownPrecision = errs.Class("unknown precision")
	LengthMismatch   = errs.Class("length mismatch")
	Unsupported      = errs.Class("unsupported")
)
