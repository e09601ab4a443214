// Package benchutil runs kernel micro-benchmarks for the kernels CLI.
package benchutil

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math/rand"
	"runtime"
	"strconv"
	"time"

	"github.com/chaisql/kernels"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Op         kernels.Op
	Width      int
	Len        int
	N          int
	SampleSize int
	Scalar     int64
	Parallel   bool
	CSV        bool
}

// Bench runs the selected kernel repeatedly over a pseudo-random buffer and
// writes one result per sample of runs to w.
func Bench(w io.Writer, opt Options) error {
	switch opt.Width {
	case 32:
		return bench[int32](w, opt)
	case 64:
		return bench[int64](w, opt)
	}

	return errors.Newf("unsupported width %d, must be 32 or 64", opt.Width)
}

func bench[T kernels.Integer](w io.Writer, opt Options) error {
	rng := rand.New(rand.NewSource(1))
	a := make([]T, opt.Len)
	for i := range a {
		a[i] = T(rng.Uint64())
	}
	dst := make([]T, opt.Len)
	b := T(opt.Scalar)

	run := func() error {
		return kernels.Apply(opt.Op, a, b, dst)
	}
	if opt.Parallel {
		run = func() error {
			return applyChunks(opt.Op, a, b, dst)
		}
	}

	var enc encoder
	if opt.CSV {
		enc = newCSVWriter(w)
	} else {
		enc = newJSONWriter(w)
	}

	var totalDuration time.Duration
	for i := 0; i < opt.N; i += opt.SampleSize {
		var total time.Duration

		for j := 0; j < opt.SampleSize; j++ {
			start := time.Now()

			err := run()
			total += time.Since(start)
			if err != nil {
				return err
			}
		}

		totalDuration += total
		avg := total / time.Duration(opt.SampleSize)
		if avg <= 0 {
			avg = time.Nanosecond
		}
		eps := int(float64(opt.Len) / avg.Seconds())

		err := enc(map[string]interface{}{
			"totalRuns":         i + opt.SampleSize,
			"averageDuration":   avg,
			"elementsPerSecond": eps,
			"totalDuration":     totalDuration,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// applyChunks splits the buffers into one disjoint chunk per CPU and runs
// the kernel on each chunk concurrently. Every chunk writes its own region
// of dst only, which is the aliasing contract the kernels require.
func applyChunks[T kernels.Integer](op kernels.Op, a []T, b T, dst []T) error {
	var g errgroup.Group

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(a) + workers - 1) / workers

	for start := 0; start < len(a); start += chunk {
		start := start
		end := min(start+chunk, len(a))
		g.Go(func() error {
			return kernels.Apply(op, a[start:end], b, dst[start:end])
		})
	}

	return g.Wait()
}

type encoder func(map[string]interface{}) error

func newJSONWriter(w io.Writer) encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return func(m map[string]interface{}) error {
		return enc.Encode(m)
	}
}

func newCSVWriter(w io.Writer) encoder {
	enc := csv.NewWriter(w)
	enc.Comma = ';'
	header := []string{"totalRuns", "averageDuration", "elementsPerSecond", "totalDuration"}
	var headerWritten bool

	return func(m map[string]interface{}) error {
		if !headerWritten {
			err := enc.Write(header)
			if err != nil {
				return err
			}
			headerWritten = true
		}

		record := make([]string, len(header))
		for i, k := range header {
			switch v := m[k].(type) {
			case time.Duration:
				record[i] = v.String()
			case int:
				record[i] = strconv.Itoa(v)
			}
		}

		err := enc.Write(record)
		if err != nil {
			return err
		}

		enc.Flush()
		return enc.Error()
	}
}
