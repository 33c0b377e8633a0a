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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Handler timeouts
		{"BatchHandlerTimeout", BatchHandlerTimeout, 5 * time.Second, 60 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, 15 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// Benchmark
		{"BenchmarkTimeout", BenchmarkTimeout, 10 * time.Second, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestHandlerTimeoutsFitWriteTimeout(t *testing.T) {
	if BatchHandlerTimeout >= ServerWriteTimeout {
		t.Errorf("BatchHandlerTimeout (%v) should be less than ServerWriteTimeout (%v)",
			BatchHandlerTimeout, ServerWriteTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	if ServerReadHeaderTimeout > ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should not exceed ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}

	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	if ServerIdleTimeout < ServerWriteTimeout {
		t.Errorf("ServerIdleTimeout (%v) should be at least ServerWriteTimeout (%v)",
			ServerIdleTimeout, ServerWriteTimeout)
	}
}

func TestRequestLimits(t *testing.T) {
	// a meal in JSON is well under 128 bytes
	const mealBytes = 128
	if MaxRequestBodyBytes < int64(MaxBatchSize*mealBytes) {
		t.Errorf("MaxRequestBodyBytes (%d) cannot carry MaxBatchSize (%d) meals",
			MaxRequestBodyBytes, MaxBatchSize)
	}

	if BenchmarkMealCount > MaxBatchSize {
		t.Errorf("BenchmarkMealCount (%d) should fit in a single batch (%d)",
			BenchmarkMealCount, MaxBatchSize)
	}
}

func TestBatchTuning(t *testing.T) {
	if BatchChunkSize <= 0 {
		t.Fatalf("BatchChunkSize must be positive, got %d", BatchChunkSize)
	}
	if BatchParallelThreshold < BatchChunkSize {
		t.Errorf("BatchParallelThreshold (%d) should be at least one chunk (%d)",
			BatchParallelThreshold, BatchChunkSize)
	}
	if RateLimitBurst <= 0 {
		t.Errorf("RateLimitBurst must be positive, got %d", RateLimitBurst)
	}
}
