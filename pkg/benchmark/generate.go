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
	"math/rand/v2"

	"github.com/mountainkid/nutriscore/pkg/scoring"
)

// Synthetic meal ranges. Each field is drawn uniformly from [min, min+span).
const (
	caloriesMin  = 200.0
	caloriesSpan = 300.0
	proteinMin   = 10.0
	proteinSpan  = 20.0
	fiberMin     = 2.0
	fiberSpan    = 8.0
	scaleMin     = 1.0
	scaleSpan    = 1.0
)

// Generate returns n synthetic meals drawn from rng: calories in 200-500,
// protein in 10-30, fiber in 2-10 and scale factor in 1-2.
func Generate(n int, rng *rand.Rand) []scoring.Meal {
	if n <= 0 {
		return []scoring.Meal{}
	}
	meals := make([]scoring.Meal, n)
	for i := range meals {
		meals[i] = scoring.Meal{
			Calories:    caloriesMin + rng.Float64()*caloriesSpan,
			Protein:     proteinMin + rng.Float64()*proteinSpan,
			Fiber:       fiberMin + rng.Float64()*fiberSpan,
			ScaleFactor: scaleMin + rng.Float64()*scaleSpan,
		}
	}
	return meals
}

// NewRand returns the generator Run uses for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
