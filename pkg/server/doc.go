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

// Package server provides the HTTP server shared by the nutriscore API and
// CLI.
//
// The server is stateless apart from its readiness flag and Prometheus
// registry. Every route registered through Config.Handlers runs behind the
// same middleware chain:
//
//   - Metrics: request count, latency and in-flight gauge (RED metrics)
//   - API version negotiation via the Accept header
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery
//   - CORS headers and preflight handling
//   - Optional rate limiting with a token bucket (golang.org/x/time/rate);
//     off unless RATE_LIMIT or the config file sets a limit
//   - Request logging
//
// System endpoints bypass the chain:
//
//   - GET /health: liveness probe
//   - GET /ready: readiness probe
//   - GET /metrics: Prometheus exposition, or {"requests_processed": N}
//     when the client asks for JSON
//
// # Usage
//
//	s := server.New(
//		server.WithName("nutriscored"),
//		server.WithVersion(version),
//		server.WithRegistry(registry),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"/api/calculate": engine.HandleCalculate,
//		}),
//	)
//	if err := s.Run(ctx); err != nil {
//		return err
//	}
//
// A default root handler describing the service is added unless the caller
// registers "/" itself.
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT and
// RATE_LIMIT_BURST from the environment. A YAML file loaded with LoadFile
// can be overlaid with FileConfig.Apply and watched with WatchFile; rate
// limits are re-applied to a running server with UpdateRateLimit.
//
// # Errors
//
// Error responses share one body shape:
//
//	{
//	  "code": "MALFORMED_INPUT",
//	  "message": "Invalid meal",
//	  "details": {"error": "missing required field(s): fiber"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-15T10:30:00Z",
//	  "retryable": false
//	}
package server
