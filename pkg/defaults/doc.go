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

// Package defaults provides centralized configuration constants for the
// nutritional score service.
//
// Timeouts, request limits and benchmark sizing live here so the server, the
// HTTP handlers, the CLI and the benchmark harness agree on the same values.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.BatchHandlerTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - Handler timeouts must be shorter than ServerWriteTimeout so the handler
//     can still write a structured error before the connection is cut.
//   - MaxRequestBodyBytes must be large enough to carry MaxBatchSize meals.
package defaults
