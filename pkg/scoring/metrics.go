package scoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type engineMetrics struct {
	batchSize      prometheus.Histogram
	batchDuration  prometheus.Histogram
	mealsScored    prometheus.Counter
	batchesAborted prometheus.Counter
}

func newEngineMetrics(reg prometheus.Registerer) *engineMetrics {
	factory := promauto.With(reg)
	return &engineMetrics{
		batchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nutriscore_batch_size_meals",
				Help:    "Number of meals per scored batch",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		batchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "nutriscore_batch_duration_seconds",
				Help:    "Duration of batch scoring in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		mealsScored: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "nutriscore_meals_scored_total",
				Help: "Total number of meals scored",
			},
		),
		batchesAborted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "nutriscore_batches_abandoned_total",
				Help: "Total number of batches abandoned because their context ended",
			},
		),
	}
}

func (m *engineMetrics) observeBatch(n int, d time.Duration) {
	if m == nil {
		return
	}
	m.batchSize.Observe(float64(n))
	m.batchDuration.Observe(d.Seconds())
	m.mealsScored.Add(float64(n))
}

func (m *engineMetrics) observeSingle() {
	if m == nil {
		return
	}
	m.mealsScored.Inc()
}

func (m *engineMetrics) observeAbandoned() {
	if m == nil {
		return
	}
	m.batchesAborted.Inc()
}
