package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mountainkid/nutriscore/pkg/scoring"
	"github.com/mountainkid/nutriscore/pkg/serializer"
)

var mealFlagNames = []string{"calories", "protein", "fiber", "scale-factor"}

func scoreCmd() *cli.Command {
	return &cli.Command{
		Name:                  "score",
		EnableShellCompletion: true,
		Usage:                 "Score a meal or a batch of meals",
		Description: `Computes (calories + protein + fiber) * scale_factor.

A single meal is given with the --calories, --protein, --fiber and
--scale-factor flags. A batch is read with --input from a JSON or YAML file
(or "-" for stdin) shaped like the calculate-batch request:

  meals:
    - {calories: 200, protein: 15, fiber: 5, scale_factor: 1.5}`,
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "calories", Usage: "calories in the meal"},
			&cli.FloatFlag{Name: "protein", Usage: "protein in the meal"},
			&cli.FloatFlag{Name: "fiber", Usage: "fiber in the meal"},
			&cli.FloatFlag{Name: "scale-factor", Usage: "multiplier applied to the nutrient sum"},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   `batch file path, or "-" for stdin; excludes the meal flags`,
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "goroutines used to score a batch (default: GOMAXPROCS)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			engine := scoring.NewEngine(scoring.WithWorkers(cmd.Int("workers")))

			if in := cmd.String("input"); in != "" {
				if set := setMealFlags(cmd); len(set) > 0 {
					return fmt.Errorf("--input cannot be combined with --%s", strings.Join(set, ", --"))
				}
				return scoreBatch(ctx, cmd, engine, in)
			}
			return scoreMeal(ctx, cmd, engine)
		},
	}
}

func setMealFlags(cmd *cli.Command) []string {
	var set []string
	for _, n := range mealFlagNames {
		if cmd.IsSet(n) {
			set = append(set, n)
		}
	}
	return set
}

func scoreMeal(ctx context.Context, cmd *cli.Command, engine *scoring.Engine) error {
	var missing []string
	for _, n := range mealFlagNames {
		if !cmd.IsSet(n) {
			missing = append(missing, "--"+n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required flag(s): %s (or use --input)", strings.Join(missing, ", "))
	}

	m := scoring.Meal{
		Calories:    cmd.Float("calories"),
		Protein:     cmd.Float("protein"),
		Fiber:       cmd.Float("fiber"),
		ScaleFactor: cmd.Float("scale-factor"),
	}

	return writeDocument(ctx, cmd, scoring.NewScoreResult(m, engine.Score(m), version))
}

func scoreBatch(ctx context.Context, cmd *cli.Command, engine *scoring.Engine, path string) error {
	req, err := serializer.FromFile[scoring.BatchRequest](path)
	if err != nil {
		return fmt.Errorf("failed to load meals: %w", err)
	}

	slog.Debug("scoring batch", "path", path, "meals", len(req.Meals))

	scores, err := engine.ScoreBatchContext(ctx, req.Meals)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("scoring interrupted: %w", err)
		}
		return fmt.Errorf("failed to score meals: %w", err)
	}
	return writeDocument(ctx, cmd, scoring.NewBatchScoreResult(scores, version))
}
