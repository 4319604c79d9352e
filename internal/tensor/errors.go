package tensor

import "errors"

// Common errors. Every fallible operation in the engine returns one of
// these sentinels (possibly wrapped with context); callers match with
// errors.Is.
var (
	ErrInvalidShape     = errors.New("tensor: invalid shape")
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")
	ErrShapeMismatch    = errors.New("tensor: shape mismatch")
	ErrDivisionByZero   = errors.New("tensor: division by zero")
)
