/*
Package kernels implements the scalar broadcast arithmetic kernels of a
columnar execution engine.

A kernel applies a single scalar operand to every element of a column chunk,
a contiguous run of 32-bit or 64-bit signed integers, and writes the results
to an equal-length output buffer:

	result[i] = a[i] OP b

The package exposes one generic entry point, Apply, parameterized by the
element width through its type parameter and by the operation through the Op
enumeration. Buffers are plain slices owned by the caller; the kernels never
allocate, never retain references, and hold no state between calls.

Arithmetic semantics

Add, Sub and Mul use two's-complement modular arithmetic: results that
exceed the representable range wrap around silently. In Go this is the
defined behavior of the native operators, so wraparound is a guarantee here,
not an accident of the platform. Div truncates the quotient toward zero and
Mod returns the remainder of that division, so the remainder carries the
sign of the dividend (or is zero). And, Or and Xor apply the corresponding
bitwise operator elementwise.

Div and Mod are the only operations that can fail: a zero scalar is rejected
before the pass starts, and dividing the minimum value of the width by -1 is
reported as an overflow because the mathematical result is not representable.

Concurrency

The kernels are pure CPU loops with no synchronization. Callers may run any
number of invocations concurrently over disjoint output regions, which is how
an execution engine fans a query out across column chunks. The output buffer
of a call must be written by that call alone for the call's duration.
*/
package kernels
