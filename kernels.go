package kernels

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Integer is the set of element widths the kernels operate on. Column
// chunks store 32-bit or 64-bit signed integers; the type parameter of
// Apply selects the width at compile time.
type Integer interface {
	int32 | int64
}

// Op identifies the operation applied between each element and the scalar.
type Op uint8

// List of supported operations.
const (
	// Add computes a[i] + b with two's-complement wraparound.
	Add Op = iota
	// Sub computes a[i] - b with two's-complement wraparound.
	Sub
	// Mul computes a[i] * b with two's-complement wraparound.
	Mul
	// Div computes a[i] / b, truncating the quotient toward zero.
	Div
	// Mod computes the remainder of a[i] / b. The result has the sign of
	// the dividend or is zero.
	Mod
	// And computes a[i] & b.
	And
	// Or computes a[i] | b.
	Or
	// Xor computes a[i] ^ b.
	Xor
)

func (op Op) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case Mod:
		return "mod"
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	}

	panic(fmt.Sprintf("unsupported operation %#v", uint8(op)))
}

// ParseOp returns the operation named by s.
func ParseOp(s string) (Op, error) {
	switch s {
	case "add":
		return Add, nil
	case "sub":
		return Sub, nil
	case "mul":
		return Mul, nil
	case "div":
		return Div, nil
	case "mod":
		return Mod, nil
	case "and":
		return And, nil
	case "or":
		return Or, nil
	case "xor":
		return Xor, nil
	}

	return 0, errors.Newf("unknown operation %q", s)
}

// Apply computes dst[i] = a[i] op b for every element of a.
//
// dst must be pre-allocated by the caller with the same length as a. It may
// alias a, in which case the operation happens in place; each output
// position depends only on the corresponding input position, so aliased and
// disjoint calls produce identical results. Apply never allocates and
// mutates nothing but dst.
//
// Add, Sub and Mul wrap around on overflow; wraparound is not an error.
// Div and Mod fail with ErrDivisionByZero before anything is written when b
// is zero. When b is -1 and an element equals the minimum value of T, the
// quotient is not representable: the call stops at the first such element
// and returns an *OverflowError carrying its index. dst positions before
// that index hold valid results, positions from it on are left untouched.
//
// Apply holds no state and performs no synchronization. Concurrent calls
// are safe as long as each call's dst region is written by that call alone
// for the duration of the call.
func Apply[T Integer](op Op, a []T, b T, dst []T) error {
	if len(a) != len(dst) {
		return &LengthMismatchError{Input: len(a), Output: len(dst)}
	}

	switch op {
	case Add:
		addScalar(dst, a, b)
	case Sub:
		subScalar(dst, a, b)
	case Mul:
		mulScalar(dst, a, b)
	case Div:
		return divScalar(dst, a, b)
	case Mod:
		return modScalar(dst, a, b)
	case And:
		andScalar(dst, a, b)
	case Or:
		orScalar(dst, a, b)
	case Xor:
		xorScalar(dst, a, b)
	default:
		return errors.Newf("unsupported operation %d", uint8(op))
	}

	return nil
}
