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

// Package api wires the nutriscore scoring engine into the HTTP server.
//
// # Usage
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/mountainkid/nutriscore/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(context.Background(), api.Options{}); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Building the scoring engine and a Prometheus registry shared with the server
//   - Applying the optional YAML config file and flag overrides
//   - Registering the scoring routes
//   - Re-applying rate limits when the config file changes
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// Application Endpoints (rate limited only when a limit is configured):
//   - GET /                      - Service information
//   - POST /api/calculate        - Score one meal
//   - POST /api/calculate-batch  - Score a list of meals, results in input order
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics; {"requests_processed": N} with
//     ?format=json or Accept: application/json
//
// # Request Bodies
//
// Both endpoints accept JSON (default) or YAML (application/x-yaml).
//
//	curl -X POST http://localhost:8080/api/calculate \
//	  -H 'Content-Type: application/json' \
//	  -d '{"calories":200,"protein":15,"fiber":5,"scale_factor":1.5}'
//
// Scores that overflow to infinity, or are NaN, are returned as null.
//
//	{"input":{"calories":200,"protein":15,"fiber":5,"scale_factor":1.5},"score":330}
//
//	curl -X POST http://localhost:8080/api/calculate-batch \
//	  -d '{"meals":[{"calories":200,"protein":15,"fiber":5,"scale_factor":1.5},
//	               {"calories":100,"protein":10,"fiber":5,"scale_factor":1.0}]}'
//
//	{"scores":[330,115]}
package api
