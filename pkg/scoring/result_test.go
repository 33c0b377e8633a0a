package scoring

import (
	"testing"

	"github.com/mountainkid/nutriscore/pkg/header"
	"github.com/stretchr/testify/assert"
)

func TestNewScoreResult(t *testing.T) {
	m := Meal{Calories: 200, Protein: 15, Fiber: 5, ScaleFactor: 1.5}
	r := NewScoreResult(m, Score(m), "v1.0.0")

	assert.Equal(t, header.KindScoreResult, r.Kind)
	assert.Equal(t, header.APIVersionV1, r.APIVersion)
	assert.Equal(t, "v1.0.0", r.Metadata["version"])
	assert.NotEmpty(t, r.Metadata["timestamp"])
	assert.InDelta(t, 330, float64(r.Score), 0)
}

func TestNewBatchScoreResult(t *testing.T) {
	r := NewBatchScoreResult([]float64{330, 115}, "")

	assert.Equal(t, header.KindBatchScoreResult, r.Kind)
	assert.Equal(t, 2, r.Count)
	assert.NotContains(t, r.Metadata, "version")
}
