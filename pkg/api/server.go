// Copyright (c) 2025, The MountainKid Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mountainkid/nutriscore/pkg/defaults"
	"github.com/mountainkid/nutriscore/pkg/scoring"
	"github.com/mountainkid/nutriscore/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	name           = "nutriscored"
	versionDefault = "dev"

	rootMessage = "MountainKid Nutritional Score Calculator API"

	// Route paths.
	PathCalculate      = "/api/calculate"
	PathCalculateBatch = "/api/calculate-batch"

	// PathMetricsJSON returns {"requests_processed": N}; plain /metrics is
	// Prometheus exposition text.
	PathMetricsJSON = "/metrics?format=json"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mountainkid/nutriscore/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the build version of the server.
func Version() string {
	return version
}

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "NUTRISCORE_CONFIG"

// Options overrides server settings. Zero values keep the config file,
// environment or built-in defaults, in that order of precedence.
type Options struct {
	// Version reported by the server; defaults to the build version.
	Version string

	// Address and Port override the listen address.
	Address string
	Port    int

	// ConfigPath is an optional YAML config file, watched for changes.
	ConfigPath string

	// Workers caps the goroutines scoring one batch.
	Workers int
}

// Routes returns the scoring routes served by engine.
func Routes(engine *scoring.Engine) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathCalculate:      engine.HandleCalculate,
		PathCalculateBatch: engine.HandleCalculateBatch,
	}
}

// NewServer builds the API server without starting it.
func NewServer(opts Options) (*server.Server, error) {
	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = version
	if opts.Version != "" {
		cfg.Version = opts.Version
	}
	cfg.Message = rootMessage
	// /metrics serves Prometheus text unless JSON is requested.
	cfg.Endpoints = map[string]string{
		"calculate":       PathCalculate,
		"calculate_batch": PathCalculateBatch,
		"metrics":         "/metrics",
		"metrics_json":    PathMetricsJSON,
	}

	engineOpts := []scoring.Option{
		scoring.WithMaxBatchSize(defaults.MaxBatchSize),
	}

	if opts.ConfigPath != "" {
		fc, err := server.LoadFile(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		fc.Apply(cfg)
		engineOpts = append(engineOpts,
			scoring.WithWorkers(fc.BatchWorkers),
			scoring.WithMaxBodyBytes(fc.MaxBodyBytes),
		)
	}

	if opts.Address != "" {
		cfg.Address = opts.Address
	}
	if opts.Port != 0 {
		if opts.Port < 0 || opts.Port > 65535 {
			return nil, fmt.Errorf("port %d out of range", opts.Port)
		}
		cfg.Port = opts.Port
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	engineOpts = append(engineOpts,
		scoring.WithWorkers(opts.Workers),
		scoring.WithRegisterer(reg),
	)
	engine := scoring.NewEngine(engineOpts...)

	slog.Debug("scoring engine configured", "workers", engine.Workers())

	return server.New(
		server.WithConfig(cfg),
		server.WithRegistry(reg),
		server.WithHandler(Routes(engine)),
	), nil
}

// Serve starts the API server and blocks until ctx is cancelled or a
// termination signal arrives. When opts.ConfigPath is set, rate limit
// changes in the file are applied without a restart.
func Serve(ctx context.Context, opts Options) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := NewServer(opts)
	if err != nil {
		return fmt.Errorf("failed to configure server: %w", err)
	}

	if opts.ConfigPath == "" {
		return runServer(ctx, s)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return runServer(gctx, s)
	})
	g.Go(func() error {
		return server.WatchFile(gctx, opts.ConfigPath, reloadHandler(s))
	})
	return g.Wait()
}

func runServer(ctx context.Context, s *server.Server) error {
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// reloadHandler applies the live-tunable settings of a reloaded file.
func reloadHandler(s *server.Server) func(*server.FileConfig) {
	return func(fc *server.FileConfig) {
		s.UpdateRateLimit(rate.Limit(fc.RateLimit), fc.RateLimitBurst)
	}
}
