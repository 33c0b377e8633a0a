package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mountainkid/nutriscore/pkg/benchmark"
	"github.com/mountainkid/nutriscore/pkg/defaults"
)

func benchmarkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "benchmark",
		EnableShellCompletion: true,
		Usage:                 "Time batch scoring over generated meals",
		Description: `Generates random meals and scores them twice, once on a single goroutine
and once with the parallel engine, then reports timings and resource use.

Without --output or --format a summary is printed; otherwise the full report
is written in the requested format.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   defaults.BenchmarkMealCount,
				Usage:   "number of meals to generate",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "random seed for reproducible meals (default: random)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "goroutines for the parallel run (default: GOMAXPROCS)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Int("count") <= 0 {
				return fmt.Errorf("count must be positive, got %d", cmd.Int("count"))
			}

			r, err := benchmark.Run(ctx, benchmark.Options{
				Count:   cmd.Int("count"),
				Seed:    cmd.Uint64("seed"),
				Workers: cmd.Int("workers"),
				Version: version,
			})
			if err != nil {
				return fmt.Errorf("benchmark failed: %w", err)
			}

			if !cmd.IsSet("output") && !cmd.IsSet("format") {
				_, err = fmt.Fprint(cmd.Root().Writer, r.Summary())
				return err
			}
			return writeDocument(ctx, cmd, r)
		},
	}
}
