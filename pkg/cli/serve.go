package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/mountainkid/nutriscore/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the nutritional score API server",
		Description: `Serves the scoring API until interrupted:
  - POST /api/calculate        score one meal
  - POST /api/calculate-batch  score a list of meals
  - GET  /health, /ready       probes
  - GET  /metrics              Prometheus metrics (JSON with ?format=json)

Settings come from flags, then the optional config file, then environment.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "port to listen on (default: 8080, env: PORT)",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "address to bind (default: all interfaces)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML config file; rate limit changes are applied on save",
				Sources: cli.EnvVars(api.EnvConfigPath),
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "goroutines used to score one batch (default: GOMAXPROCS)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, api.Options{
				Version:    version,
				Address:    cmd.String("address"),
				Port:       cmd.Int("port"),
				ConfigPath: cmd.String("config"),
				Workers:    cmd.Int("workers"),
			})
		},
	}
}
