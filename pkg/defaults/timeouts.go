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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// BatchHandlerTimeout is the timeout for batch score requests.
	// An expired batch is abandoned without partial results.
	BatchHandlerTimeout = 20 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server identity and rate limiting.
const (
	// ServerPort is the default listening port.
	ServerPort = 8080

	// RateLimitBurst is the token bucket size used once a rate limit is
	// configured. Requests are not limited by default.
	RateLimitBurst = 200
)

// Request limits.
const (
	// MaxRequestBodyBytes caps request bodies on scoring endpoints.
	MaxRequestBodyBytes int64 = 4 << 20

	// MaxBatchSize caps the number of meals accepted in one batch request.
	MaxBatchSize = 10000
)

// Batch engine tuning.
const (
	// BatchChunkSize is the number of meals scored by one worker task.
	BatchChunkSize = 1024

	// BatchParallelThreshold is the batch length below which meals are
	// scored sequentially on the calling goroutine.
	BatchParallelThreshold = 2048
)

// Benchmark sizing.
const (
	// BenchmarkMealCount is the number of synthetic meals scored by a benchmark run.
	BenchmarkMealCount = 10000

	// BenchmarkTimeout bounds a whole benchmark run.
	BenchmarkTimeout = 2 * time.Minute
)
