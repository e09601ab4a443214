package kernels

import "math"

// minOf returns the smallest representable value of T.
func minOf[T Integer]() T {
	var zero T
	if _, ok := any(zero).(int32); ok {
		var m int32 = math.MinInt32
		return T(m)
	}
	var m int64 = math.MinInt64
	return T(m)
}

// divScalar divides every element of a by b, truncating toward zero.
//
// The scalar is loop-invariant, so b == 0 is rejected once before the pass.
// The only non-representable quotient is minOf(T) / -1, which makes the
// per-element probe necessary only when b is -1; every other divisor runs
// the branch-free loop.
func divScalar[T Integer](dst, a []T, b T) error {
	if b == 0 {
		return ErrDivisionByZero
	}

	if b == -1 {
		minv := minOf[T]()
		for i, v := range a {
			if v == minv {
				return &OverflowError{Index: i}
			}
			dst[i] = -v
		}
		return nil
	}

	for i, v := range a {
		dst[i] = v / b
	}
	return nil
}

// modScalar computes the remainder of the truncating division of every
// element of a by b. The remainder has the sign of the dividend or is zero.
//
// The remainder of division by -1 is always zero, but the division
// minOf(T) / -1 it derives from is not representable, so the same overflow
// probe as divScalar applies.
func modScalar[T Integer](dst, a []T, b T) error {
	if b == 0 {
		return ErrDivisionByZero
	}

	if b == -1 {
		minv := minOf[T]()
		for i, v := range a {
			if v == minv {
				return &OverflowError{Index: i}
			}
			dst[i] = 0
		}
		return nil
	}

	for i, v := range a {
		dst[i] = v % b
	}
	return nil
}
