package scoring

// Score applies the scoring formula to m. The three addends are summed left
// to right before the multiply so results are bit-reproducible.
func Score(m Meal) float64 {
	sum := float64(m.Calories + m.Protein + m.Fiber)
	return sum * m.ScaleFactor
}

// ScoreBatchSequential scores meals one after another on the calling
// goroutine.
func ScoreBatchSequential(meals []Meal) []float64 {
	scores := make([]float64, len(meals))
	scoreInto(scores, meals)
	return scores
}

// ScoreBatch scores meals with the default engine. The result is
// index-aligned with meals.
func ScoreBatch(meals []Meal) []float64 {
	return defaultEngine.ScoreBatch(meals)
}

func scoreInto(dst []float64, meals []Meal) {
	for i := range meals {
		dst[i] = Score(meals[i])
	}
}
