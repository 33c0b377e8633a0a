package scoring

import "github.com/mountainkid/nutriscore/pkg/header"

// ScoreResult is the CLI document for a single scored meal.
type ScoreResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Input Meal  `json:"input" yaml:"input"`
	Score Value `json:"score" yaml:"score"`
}

// NewScoreResult builds a ScoreResult document.
func NewScoreResult(m Meal, score float64, version string) *ScoreResult {
	r := &ScoreResult{Input: m, Score: Value(score)}
	r.Init(header.KindScoreResult, header.APIVersionV1, version)
	return r
}

// BatchScoreResult is the CLI document for a scored batch.
type BatchScoreResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Count  int    `json:"count" yaml:"count"`
	Scores Scores `json:"scores" yaml:"scores"`
}

// NewBatchScoreResult builds a BatchScoreResult document.
func NewBatchScoreResult(scores []float64, version string) *BatchScoreResult {
	r := &BatchScoreResult{Count: len(scores), Scores: scores}
	r.Init(header.KindBatchScoreResult, header.APIVersionV1, version)
	return r
}
