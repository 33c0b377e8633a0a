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

package scoring

import (
	"context"
	"runtime"
	"time"

	"github.com/mountainkid/nutriscore/pkg/defaults"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

var defaultEngine = NewEngine()

// Engine scores batches of meals, optionally in parallel.
// An Engine is safe for concurrent use.
type Engine struct {
	workers           int
	chunkSize         int
	parallelThreshold int
	maxBodyBytes      int64
	maxBatchSize      int
	registerer        prometheus.Registerer
	metrics           *engineMetrics
}

// Option is a functional option for configuring Engine instances.
type Option func(*Engine)

// WithWorkers sets the maximum number of goroutines scoring one batch.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithChunkSize sets the number of meals scored by one worker task.
// Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.chunkSize = n
		}
	}
}

// WithParallelThreshold sets the batch length below which meals are scored
// sequentially. Zero makes every non-empty batch eligible for fan-out.
func WithParallelThreshold(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.parallelThreshold = n
		}
	}
}

// WithMaxBodyBytes caps request bodies accepted by the HTTP handlers.
func WithMaxBodyBytes(n int64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxBodyBytes = n
		}
	}
}

// WithMaxBatchSize caps the number of meals accepted by HandleCalculateBatch.
func WithMaxBatchSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxBatchSize = n
		}
	}
}

// WithRegisterer registers the engine's batch metrics with reg.
// Metrics are not collected when no registerer is set.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registerer = reg
	}
}

// NewEngine creates an Engine. By default it uses GOMAXPROCS workers and
// the chunk size and threshold from the defaults package.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		workers:           runtime.GOMAXPROCS(0),
		chunkSize:         defaults.BatchChunkSize,
		parallelThreshold: defaults.BatchParallelThreshold,
		maxBodyBytes:      defaults.MaxRequestBodyBytes,
		maxBatchSize:      defaults.MaxBatchSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registerer != nil {
		e.metrics = newEngineMetrics(e.registerer)
	}
	return e
}

// Workers returns the configured worker limit.
func (e *Engine) Workers() int {
	return e.workers
}

// Score scores a single meal.
func (e *Engine) Score(m Meal) float64 {
	s := Score(m)
	e.metrics.observeSingle()
	return s
}

// ScoreBatch scores meals and returns the scores in input order.
func (e *Engine) ScoreBatch(meals []Meal) []float64 {
	// Background is never cancelled.
	scores, _ := e.ScoreBatchContext(context.Background(), meals)
	return scores
}

// ScoreBatchContext scores meals and returns the scores in input order.
// If ctx ends first, it returns ctx.Err() and a nil slice.
func (e *Engine) ScoreBatchContext(ctx context.Context, meals []Meal) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		e.metrics.observeAbandoned()
		return nil, err
	}

	start := time.Now()
	scores := make([]float64, len(meals))

	var err error
	if e.workers <= 1 || len(meals) < e.parallelThreshold || len(meals) <= e.chunkSize {
		err = e.scoreSequential(ctx, scores, meals)
	} else {
		err = e.scoreParallel(ctx, scores, meals)
	}
	if err != nil {
		e.metrics.observeAbandoned()
		return nil, err
	}

	e.metrics.observeBatch(len(meals), time.Since(start))
	return scores, nil
}

func (e *Engine) scoreSequential(ctx context.Context, scores []float64, meals []Meal) error {
	for lo := 0; lo < len(meals); lo += e.chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		hi := min(lo+e.chunkSize, len(meals))
		scoreInto(scores[lo:hi], meals[lo:hi])
	}
	return nil
}

func (e *Engine) scoreParallel(ctx context.Context, scores []float64, meals []Meal) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for lo := 0; lo < len(meals); lo += e.chunkSize {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+e.chunkSize, len(meals))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scoreInto(scores[lo:hi], meals[lo:hi])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
