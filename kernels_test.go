package kernels_test

import (
	"runtime"
	"testing"

	"github.com/chaisql/kernels"
	"github.com/chaisql/kernels/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var allOps = []kernels.Op{
	kernels.Add, kernels.Sub, kernels.Mul, kernels.Div,
	kernels.Mod, kernels.And, kernels.Or, kernels.Xor,
}

func TestApplyLengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		a    []int64
		dst  []int64
	}{
		{"output shorter", []int64{1, 2, 3}, []int64{99, 99}},
		{"output longer", []int64{1, 2}, []int64{99, 99, 99}},
		{"nil output", []int64{1}, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := append([]int64(nil), test.dst...)

			err := kernels.Apply(kernels.Add, test.a, 1, test.dst)
			var lerr *kernels.LengthMismatchError
			require.ErrorAs(t, err, &lerr)
			require.Equal(t, len(test.a), lerr.Input)
			require.Equal(t, len(test.dst), lerr.Output)
			require.True(t, kernels.IsLengthMismatch(err))
			require.Equal(t, before, test.dst)
		})
	}
}

func TestApplyEmptyBuffers(t *testing.T) {
	for _, op := range allOps {
		t.Run(op.String(), func(t *testing.T) {
			err := kernels.Apply(op, []int64{}, 3, []int64{})
			require.NoError(t, err)

			err = kernels.Apply(op, nil, int32(3), nil)
			require.NoError(t, err)
		})
	}
}

// TestApplyInPlace checks that aliasing the output buffer with the input
// produces the same results as a disjoint call.
func TestApplyInPlace(t *testing.T) {
	for _, op := range allOps {
		t.Run(op.String(), func(t *testing.T) {
			a := testutil.RandBuffer[int64](t, 257, 11)
			const b = 5

			want := make([]int64, len(a))
			err := kernels.Apply(op, a, b, want)
			require.NoError(t, err)

			err = kernels.Apply(op, a, b, a)
			require.NoError(t, err)
			require.Equal(t, want, a)
		})
	}
}

// TestApplyParallelChunks fans one buffer out across disjoint chunks, one
// goroutine each, and checks the result equals a single whole-buffer call.
// This is the concurrency contract the execution engine above relies on.
func TestApplyParallelChunks(t *testing.T) {
	a := testutil.RandBuffer[int64](t, 100003, 23)
	const b = 17

	want := make([]int64, len(a))
	err := kernels.Apply(kernels.Mul, a, b, want)
	require.NoError(t, err)

	got := make([]int64, len(a))
	var g errgroup.Group
	workers := runtime.GOMAXPROCS(0) * 2
	chunk := (len(a) + workers - 1) / workers

	for start := 0; start < len(a); start += chunk {
		start := start
		end := min(start+chunk, len(a))
		g.Go(func() error {
			return kernels.Apply(kernels.Mul, a[start:end], b, got[start:end])
		})
	}
	require.NoError(t, g.Wait())

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chunked result mismatch (-want +got):\n%s", diff)
	}
}

func TestOpString(t *testing.T) {
	want := map[kernels.Op]string{
		kernels.Add: "add",
		kernels.Sub: "sub",
		kernels.Mul: "mul",
		kernels.Div: "div",
		kernels.Mod: "mod",
		kernels.And: "and",
		kernels.Or:  "or",
		kernels.Xor: "xor",
	}

	for op, name := range want {
		require.Equal(t, name, op.String())
	}
}

func TestParseOp(t *testing.T) {
	for _, op := range allOps {
		got, err := kernels.ParseOp(op.String())
		require.NoError(t, err)
		require.Equal(t, op, got)
	}

	_, err := kernels.ParseOp("pow")
	require.Error(t, err)
}

func TestApplyUnknownOp(t *testing.T) {
	err := kernels.Apply(kernels.Op(42), []int64{1}, 1, []int64{0})
	require.Error(t, err)
}
