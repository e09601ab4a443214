package benchutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chaisql/kernels"
	"github.com/stretchr/testify/require"
)

func TestBenchJSON(t *testing.T) {
	var buf bytes.Buffer

	err := Bench(&buf, Options{
		Op:         kernels.Add,
		Width:      64,
		Len:        128,
		N:          4,
		SampleSize: 2,
		Scalar:     3,
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"totalRuns": 2`)
	require.Contains(t, buf.String(), `"totalRuns": 4`)
}

func TestBenchCSV(t *testing.T) {
	var buf bytes.Buffer

	err := Bench(&buf, Options{
		Op:         kernels.Mul,
		Width:      32,
		Len:        64,
		N:          2,
		SampleSize: 2,
		Scalar:     -1,
		Parallel:   true,
		CSV:        true,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "totalRuns;averageDuration;elementsPerSecond;totalDuration", lines[0])
}

func TestBenchUnsupportedWidth(t *testing.T) {
	var buf bytes.Buffer

	err := Bench(&buf, Options{Op: kernels.Add, Width: 16, Len: 8, N: 1, SampleSize: 1})
	require.Error(t, err)
}

func TestBenchDivisionByZero(t *testing.T) {
	var buf bytes.Buffer

	err := Bench(&buf, Options{
		Op:         kernels.Div,
		Width:      64,
		Len:        8,
		N:          1,
		SampleSize: 1,
		Scalar:     0,
	})
	require.True(t, kernels.IsDivisionByZero(err))
}

func TestApplyChunksMatchesApply(t *testing.T) {
	a := make([]int64, 10007)
	for i := range a {
		a[i] = int64(i * 31)
	}

	want := make([]int64, len(a))
	err := kernels.Apply(kernels.Xor, a, 99, want)
	require.NoError(t, err)

	got := make([]int64, len(a))
	err = applyChunks(kernels.Xor, a, 99, got)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
