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

/*
Package scoring computes nutritional scores for meals.

A score is the sum of a meal's calories, protein and fiber multiplied by its
scale factor:

	score = (calories + protein + fiber) * scale_factor

The formula is total over float64 input. Zero, negative, NaN and infinite
values are not rejected and follow IEEE-754 arithmetic.

# Batches

ScoreBatch maps the formula over a slice of meals and returns scores in
input order. An Engine fans large batches out to a bounded set of
goroutines, one chunk of meals per task; small batches are scored on the
calling goroutine. Each task writes only its own output range, so results
never depend on scheduling:

	engine := scoring.NewEngine(
		scoring.WithWorkers(8),
		scoring.WithRegisterer(registry),
	)
	scores, err := engine.ScoreBatchContext(ctx, meals)

ScoreBatchContext returns ctx.Err() and no partial results when the context
ends before the batch completes.

# HTTP

Engine.HandleCalculate serves POST /api/calculate and
Engine.HandleCalculateBatch serves POST /api/calculate-batch. Both accept
JSON or YAML bodies (selected by Content-Type) and respond with JSON.
Bodies that do not decode into the four numeric fields are rejected with
MALFORMED_INPUT. Any well-typed meal is scored; NaN and infinite scores
have no JSON literal and are written as null.
*/
package scoring
