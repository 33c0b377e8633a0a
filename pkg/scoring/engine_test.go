package scoring

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomMeals(n int, seed uint64) []Meal {
	rng := rand.New(rand.NewPCG(seed, seed))
	meals := make([]Meal, n)
	for i := range meals {
		meals[i] = Meal{
			Calories:    200 + rng.Float64()*300,
			Protein:     10 + rng.Float64()*20,
			Fiber:       2 + rng.Float64()*8,
			ScaleFactor: 1 + rng.Float64(),
		}
	}
	return meals
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine()
	assert.Positive(t, e.Workers())
	assert.Positive(t, e.chunkSize)
	assert.Nil(t, e.metrics)
}

func TestNewEngine_IgnoresInvalidOptions(t *testing.T) {
	e := NewEngine(WithWorkers(0), WithChunkSize(-1), WithParallelThreshold(-5),
		WithMaxBodyBytes(0), WithMaxBatchSize(0))
	d := NewEngine()
	assert.Equal(t, d.workers, e.workers)
	assert.Equal(t, d.chunkSize, e.chunkSize)
	assert.Equal(t, d.parallelThreshold, e.parallelThreshold)
	assert.Equal(t, d.maxBodyBytes, e.maxBodyBytes)
	assert.Equal(t, d.maxBatchSize, e.maxBatchSize)
}

func TestEngine_ScoreBatchPreservesOrder(t *testing.T) {
	meals := randomMeals(5000, 7)
	want := ScoreBatchSequential(meals)

	tests := []struct {
		name string
		opts []Option
	}{
		{"sequential", []Option{WithWorkers(1)}},
		{"parallel small chunks", []Option{WithWorkers(8), WithChunkSize(7), WithParallelThreshold(0)}},
		{"parallel uneven tail", []Option{WithWorkers(3), WithChunkSize(999), WithParallelThreshold(1)}},
		{"below threshold", []Option{WithWorkers(8), WithParallelThreshold(10000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewEngine(tt.opts...).ScoreBatch(meals)
			require.Len(t, got, len(meals))
			for i := range meals {
				if got[i] != Score(meals[i]) {
					t.Fatalf("index %d: got %v, want %v", i, got[i], Score(meals[i]))
				}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestEngine_ScoreBatchIdempotent(t *testing.T) {
	meals := randomMeals(3000, 11)
	e := NewEngine(WithWorkers(4), WithChunkSize(100), WithParallelThreshold(0))

	first := e.ScoreBatch(meals)
	second := e.ScoreBatch(meals)
	for i := range first {
		if math.Float64bits(first[i]) != math.Float64bits(second[i]) {
			t.Fatalf("index %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestEngine_ScoreBatchDoesNotMutateInput(t *testing.T) {
	meals := randomMeals(100, 3)
	snapshot := append([]Meal(nil), meals...)
	NewEngine(WithWorkers(4), WithChunkSize(10), WithParallelThreshold(0)).ScoreBatch(meals)
	assert.Equal(t, snapshot, meals)
}

func TestEngine_ScoreBatchContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	reg := prometheus.NewRegistry()
	e := NewEngine(WithWorkers(4), WithChunkSize(10), WithParallelThreshold(0), WithRegisterer(reg))

	scores, err := e.ScoreBatchContext(ctx, randomMeals(1000, 1))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, scores)
	assert.InDelta(t, 1, testutil.ToFloat64(e.metrics.batchesAborted), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(e.metrics.mealsScored), 0)
}

func TestEngine_ScoreBatchContextEmpty(t *testing.T) {
	scores, err := NewEngine().ScoreBatchContext(t.Context(), nil)
	require.NoError(t, err)
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}

func TestEngine_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := NewEngine(WithRegisterer(reg), WithWorkers(2), WithChunkSize(16), WithParallelThreshold(0))

	e.ScoreBatch(randomMeals(100, 5))
	e.Score(Meal{Calories: 1, ScaleFactor: 1})

	assert.InDelta(t, 101, testutil.ToFloat64(e.metrics.mealsScored), 0)
	count, err := testutil.GatherAndCount(reg, "nutriscore_batch_size_meals", "nutriscore_batch_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func BenchmarkScoreBatch(b *testing.B) {
	meals := randomMeals(10000, 42)

	b.Run("sequential", func(b *testing.B) {
		for b.Loop() {
			ScoreBatchSequential(meals)
		}
	})

	b.Run("engine", func(b *testing.B) {
		e := NewEngine()
		for b.Loop() {
			e.ScoreBatch(meals)
		}
	})
}
