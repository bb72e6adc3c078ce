package numconv

import "github.com/zeebo/errs"

// Error classes.
var (
	InvalidForm      = errs.Class("invalid form")
	InvalidCharacter = errs.Class("invalid character")
	TypeMismatch     = errs.Class("type mismatch")
)
