package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		meal Meal
		want float64
	}{
		{"typical", Meal{Calories: 200, Protein: 15, Fiber: 5, ScaleFactor: 1.5}, 330},
		{"all zero", Meal{Calories: 0, Protein: 0, Fiber: 0, ScaleFactor: 1}, 0},
		{"negative", Meal{Calories: -100, Protein: -10, Fiber: -5, ScaleFactor: 1}, -115},
		{"fractional", Meal{Calories: 200.5, Protein: 15.5, Fiber: 5.5, ScaleFactor: 1.5}, 332.25},
		{"doubled", Meal{Calories: 150, Protein: 30, Fiber: 18, ScaleFactor: 2}, 396},
		{"zero scale", Meal{Calories: 500, Protein: 30, Fiber: 10, ScaleFactor: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.meal))
		})
	}
}

func TestScore_NonFinitePropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Score(Meal{Calories: math.NaN(), ScaleFactor: 1})))
	assert.True(t, math.IsInf(Score(Meal{Calories: math.Inf(1), ScaleFactor: 1}), 1))
	assert.True(t, math.IsInf(Score(Meal{Calories: 1, ScaleFactor: math.Inf(-1)}), -1))
	assert.True(t, math.IsNaN(Score(Meal{Calories: math.Inf(1), Protein: math.Inf(-1), ScaleFactor: 1})))
}

func TestScore_LeftToRightSum(t *testing.T) {
	// 1 + 1e16 rounds to 1e16; summing right to left would give 1.
	m := Meal{Calories: 1, Protein: 1e16, Fiber: -1e16, ScaleFactor: 1}
	assert.Equal(t, float64(0), Score(m))
}

func TestScoreBatch(t *testing.T) {
	meals := []Meal{
		{Calories: 200, Protein: 15, Fiber: 5, ScaleFactor: 1.5},
		{Calories: 100, Protein: 10, Fiber: 5, ScaleFactor: 1.0},
	}
	assert.Equal(t, []float64{330, 115}, ScoreBatch(meals))
	assert.Equal(t, []float64{330, 115}, ScoreBatchSequential(meals))
}

func TestScoreBatch_Empty(t *testing.T) {
	got := ScoreBatch([]Meal{})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, ScoreBatch(nil))
	assert.Empty(t, ScoreBatchSequential(nil))
}

func FuzzScore(f *testing.F) {
	f.Add(200.0, 15.0, 5.0, 1.5)
	f.Add(0.0, 0.0, 0.0, 1.0)
	f.Add(-100.0, -10.0, -5.0, 1.0)
	f.Add(200.5, 15.5, 5.5, 1.5)

	f.Fuzz(func(t *testing.T, c, p, fb, s float64) {
		m := Meal{Calories: c, Protein: p, Fiber: fb, ScaleFactor: s}
		got := Score(m)

		sum := c + p
		sum += fb
		want := sum * s

		if math.IsNaN(want) {
			if !math.IsNaN(got) {
				t.Fatalf("Score(%+v) = %v, want NaN", m, got)
			}
			return
		}
		if got != want {
			t.Fatalf("Score(%+v) = %v, want %v", m, got, want)
		}

		batch := ScoreBatch([]Meal{m, m})
		if batch[0] != got || batch[1] != got {
			t.Fatalf("ScoreBatch disagrees with Score: %v vs %v", batch, got)
		}
	})
}
