package kernels

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrDivisionByZero is returned by Apply when the scalar operand of Div or
// Mod is zero. The check runs before the pass starts, so nothing has been
// written to the output buffer.
var ErrDivisionByZero = errors.New("division by zero")

// OverflowError is returned by Apply when a quotient is not representable
// in the element width, which happens only when the dividend is the minimum
// value of the width and the divisor is -1.
type OverflowError struct {
	// Index of the offending element. Output positions before Index hold
	// valid results; positions from Index on are untouched.
	Index int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow at index %d", e.Index)
}

// LengthMismatchError is returned by Apply when the input and output
// buffers have different lengths. Nothing has been written to the output
// buffer.
type LengthMismatchError struct {
	Input  int
	Output int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("input length %d does not match output length %d", e.Input, e.Output)
}

// IsDivisionByZero reports whether err is ErrDivisionByZero.
func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}

// IsOverflow reports whether err is an *OverflowError.
func IsOverflow(err error) bool {
	var e *OverflowError
	return errors.As(err, &e)
}

// IsLengthMismatch reports whether err is a *LengthMismatchError.
func IsLengthMismatch(err error) bool {
	var e *LengthMismatchError
	return errors.As(err, &e)
}
