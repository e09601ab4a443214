package commands

import (
	"context"
	"errors"
	"os"

	"github.com/chaisql/kernels"
	"github.com/chaisql/kernels/cmd/kernels/benchutil"
	"github.com/urfave/cli/v3"
)

// NewBenchCommand returns a cli.Command for "kernels bench".
func NewBenchCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "bench",
		Usage:     "Measure kernel throughput on this machine",
		UsageText: `kernels bench [options] operation`,
		Description: `The bench command fills a column buffer with pseudo-random integers, applies the given
operation with a constant scalar repeatedly (100 times by default, -n option) and outputs a
series of results. Each result represents the average time for a given sample of runs
(10 by default, -s/--sample option).

$ kernels bench -n 200 -s 5 add

Each sample reports the number of runs so far, the average duration of one run within the
sample, the derived elements-per-second rate and the total time spent so far.

Operations: add, sub, mul, div, mod, and, or, xor.

To measure the parallel fan-out the execution engine uses, -p/--parallel splits the buffer
into one disjoint chunk per CPU and applies the kernel to every chunk concurrently:

$ kernels bench -w 32 -l 1048576 -p mul`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Value:   64,
				Usage:   "Element width in bits, 32 or 64.",
			},
			&cli.IntFlag{
				Name:    "len",
				Aliases: []string{"l"},
				Value:   1 << 16,
				Usage:   "Number of elements per buffer.",
			},
			&cli.IntFlag{
				Name:    "number",
				Aliases: []string{"n"},
				Value:   100,
				Usage:   "Total number of kernel runs.",
			},
			&cli.IntFlag{
				Name:    "sample",
				Aliases: []string{"s"},
				Value:   10,
				Usage:   "Number of runs to use to determine the average speed of the kernel.",
			},
			&cli.IntFlag{
				Name:    "scalar",
				Aliases: []string{"b"},
				Value:   7,
				Usage:   "Scalar operand broadcast across the buffer.",
			},
			&cli.BoolFlag{
				Name:    "parallel",
				Aliases: []string{"p"},
				Usage:   "Split the buffer into one chunk per CPU and run chunks concurrently.",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Output the results in csv",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		name := cmd.Args().First()
		if name == "" {
			return errors.New(cmd.UsageText)
		}

		op, err := kernels.ParseOp(name)
		if err != nil {
			return err
		}

		return benchutil.Bench(os.Stdout, benchutil.Options{
			Op:         op,
			Width:      int(cmd.Int("width")),
			Len:        int(cmd.Int("len")),
			N:          int(cmd.Int("number")),
			SampleSize: int(cmd.Int("sample")),
			Scalar:     int64(cmd.Int("scalar")),
			Parallel:   cmd.Bool("parallel"),
			CSV:        cmd.Bool("csv"),
		})
	}

	return &cmd
}
