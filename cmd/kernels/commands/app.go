package commands

import (
	"github.com/urfave/cli/v3"
)

// NewApp creates the kernels CLI app.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:                  "kernels",
		Usage:                 "Micro-benchmarks for the scalar broadcast arithmetic kernels",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			NewBenchCommand(),
		},
	}
}
