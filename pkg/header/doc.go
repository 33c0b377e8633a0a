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

// Package header provides the common document header for nutriscore output.
//
// Documents written by the CLI (score results and benchmark reports) start
// with a Kubernetes-style header so downstream tooling can tell them apart
// without inspecting the body:
//
//	kind: BenchmarkReport
//	apiVersion: nutriscore.mountainkid.io/v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// # Usage
//
//	var r Report
//	r.Init(header.KindBenchmarkReport, header.APIVersionV1, version)
//
// or with options:
//
//	h := header.New(
//	    header.WithKind(header.KindScoreResult),
//	    header.WithAPIVersion(header.APIVersionV1),
//	    header.WithMetadata("source", "meals.yaml"),
//	)
package header
