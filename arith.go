package kernels

// The loops below are the total kernels: they cannot fail and every element
// is independent of the others. The bodies are 4-way unrolled and
// branch-free so that an auto-vectorizing backend can lower them to vector
// instructions. That is a performance hint only; the unrolled and tail
// loops compute exactly the same thing.
//
// Overflow in addScalar, subScalar and mulScalar wraps around. Go defines
// signed integer arithmetic as two's-complement modular arithmetic, so the
// native operators are the wraparound semantics, not a shortcut for them.

func addScalar[T Integer](dst, a []T, b T) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] + b
		dst[i+1] = a[i+1] + b
		dst[i+2] = a[i+2] + b
		dst[i+3] = a[i+3] + b
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b
	}
}

func subScalar[T Integer](dst, a []T, b T) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] - b
		dst[i+1] = a[i+1] - b
		dst[i+2] = a[i+2] - b
		dst[i+3] = a[i+3] - b
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b
	}
}

func mulScalar[T Integer](dst, a []T, b T) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] * b
		dst[i+1] = a[i+1] * b
		dst[i+2] = a[i+2] * b
		dst[i+3] = a[i+3] * b
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b
	}
}

func andScalar[T Integer](dst, a []T, b T) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] & b
		dst[i+1] = a[i+1] & b
		dst[i+2] = a[i+2] & b
		dst[i+3] = a[i+3] & b
	}
	for ; i < n; i++ {
		dst[i] = a[i] & b
	}
}

func orScalar[T Integer](dst, a []T, b T) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] | b
		dst[i+1] = a[i+1] | b
		dst[i+2] = a[i+2] | b
		dst[i+3] = a[i+3] | b
	}
	for ; i < n; i++ {
		dst[i] = a[i] | b
	}
}

func xorScalar[T Integer](dst, a []T, b T) {
	n := len(a)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] ^ b
		dst[i+1] = a[i+1] ^ b
		dst[i+2] = a[i+2] ^ b
		dst[i+3] = a[i+3] ^ b
	}
	for ; i < n; i++ {
		dst[i] = a[i] ^ b
	}
}
