// Package testutil provides helpers shared by the kernel tests.
package testutil

import (
	"math/rand"
	"testing"

	"golang.org/x/exp/constraints"
)

// RandBuffer returns a column chunk of n pseudo-random elements. The
// generator is seeded with seed so failing cases reproduce deterministically.
func RandBuffer[T constraints.Signed](t testing.TB, n int, seed int64) []T {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	buf := make([]T, n)
	for i := range buf {
		buf[i] = T(rng.Uint64())
	}
	return buf
}

// Fill returns a column chunk of n copies of v.
func Fill[T constraints.Signed](t testing.TB, n int, v T) []T {
	t.Helper()

	buf := make([]T, n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}
