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

package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"strconv"
	"time"

	"github.com/mountainkid/nutriscore/pkg/defaults"
	"github.com/mountainkid/nutriscore/pkg/header"
	"github.com/mountainkid/nutriscore/pkg/scoring"
)

// Options configures a benchmark run.
type Options struct {
	// Count is the number of meals to score. Defaults to defaults.BenchmarkMealCount.
	Count int

	// Seed makes the generated meals reproducible. Zero picks a random seed,
	// which is recorded in the report.
	Seed uint64

	// Workers caps the goroutines of the parallel run. Zero uses GOMAXPROCS.
	Workers int

	// Version is recorded in the report metadata.
	Version string
}

// Report is the result of a benchmark run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Count   int    `json:"count" yaml:"count"`
	Seed    uint64 `json:"seed" yaml:"seed"`
	Workers int    `json:"workers" yaml:"workers"`

	// ElapsedMs is the wall time of the parallel batch in milliseconds.
	ElapsedMs float64 `json:"elapsedMs" yaml:"elapsedMs"`
	// SequentialMs is the wall time of a single-goroutine pass over the same meals.
	SequentialMs float64 `json:"sequentialMs" yaml:"sequentialMs"`
	Speedup      float64 `json:"speedup" yaml:"speedup"`

	AverageScore float64 `json:"averageScore" yaml:"averageScore"`

	// HeapAllocBytes is the number of bytes allocated during the parallel run.
	HeapAllocBytes uint64 `json:"heapAllocBytes" yaml:"heapAllocBytes"`

	Process *ProcessStats `json:"process,omitempty" yaml:"process,omitempty"`
}

// Run generates opts.Count meals and times their scoring. It returns
// ctx.Err() if ctx ends before the parallel run completes.
func Run(ctx context.Context, opts Options) (*Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.BenchmarkTimeout)
	defer cancel()

	count := opts.Count
	if count <= 0 {
		count = defaults.BenchmarkMealCount
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	meals := Generate(count, NewRand(seed))
	engine := scoring.NewEngine(
		scoring.WithWorkers(opts.Workers),
		scoring.WithParallelThreshold(0),
	)

	slog.Debug("benchmark starting", "count", count, "seed", seed, "workers", engine.Workers())

	procBefore, procErr := sampleProcess()
	var memBefore, memAfter runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	start := time.Now()
	scores, err := engine.ScoreBatchContext(ctx, meals)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("benchmark aborted: %w", err)
	}

	runtime.ReadMemStats(&memAfter)
	procAfter, procAfterErr := sampleProcess()

	seqStart := time.Now()
	sequential := scoring.ScoreBatchSequential(meals)
	seqElapsed := time.Since(seqStart)

	for i := range scores {
		if scores[i] != sequential[i] {
			return nil, fmt.Errorf("parallel and sequential scores differ at index %d: %v != %v",
				i, scores[i], sequential[i])
		}
	}

	r := &Report{
		Count:          count,
		Seed:           seed,
		Workers:        engine.Workers(),
		ElapsedMs:      durationMs(elapsed),
		SequentialMs:   durationMs(seqElapsed),
		AverageScore:   average(scores),
		HeapAllocBytes: memAfter.TotalAlloc - memBefore.TotalAlloc,
	}
	if elapsed > 0 {
		r.Speedup = float64(seqElapsed) / float64(elapsed)
	}
	r.Init(header.KindBenchmarkReport, header.APIVersionV1, opts.Version)
	r.Metadata["seed"] = strconv.FormatUint(seed, 10)

	if procErr == nil && procAfterErr == nil {
		r.Process = procBefore.delta(procAfter)
	} else {
		slog.Debug("process stats unavailable", "error", firstErr(procErr, procAfterErr))
	}

	slog.Debug("benchmark completed", "elapsedMs", r.ElapsedMs, "averageScore", r.AverageScore)
	return r, nil
}

func durationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

func average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
