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

package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mountainkid/nutriscore/pkg/serializer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// RequestsProcessedMetric counts API requests that completed without a
// client or server error.
const RequestsProcessedMetric = "nutriscore_requests_processed_total"

// serverMetrics holds the collectors of one Server. A nil *serverMetrics
// records nothing.
type serverMetrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge
	rateLimitRejects     prometheus.Counter
	panicRecoveries      prometheus.Counter
	requestsProcessed    prometheus.Counter
}

func newServerMetrics(reg prometheus.Registerer) *serverMetrics {
	factory := promauto.With(reg)
	return &serverMetrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nutriscore_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nutriscore_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "nutriscore_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
		rateLimitRejects: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "nutriscore_rate_limit_rejects_total",
				Help: "Total number of requests rejected due to rate limiting",
			},
		),
		panicRecoveries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "nutriscore_panic_recoveries_total",
				Help: "Total number of panics recovered in HTTP handlers",
			},
		),
		requestsProcessed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: RequestsProcessedMetric,
				Help: "Total number of API requests processed successfully",
			},
		),
	}
}

func (m *serverMetrics) rateLimitRejected() {
	if m != nil {
		m.rateLimitRejects.Inc()
	}
}

func (m *serverMetrics) panicRecovered() {
	if m != nil {
		m.panicRecoveries.Inc()
	}
}

// metricsMiddleware instruments HTTP requests with Prometheus metrics.
// It tracks request rate, errors, and duration (RED metrics) for observability.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		s.metrics.httpRequestsInFlight.Inc()
		defer s.metrics.httpRequestsInFlight.Dec()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		path := s.routeLabel(r.URL.Path)
		s.metrics.httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.Status())).Inc()
		s.metrics.httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	}
}

// processedMiddleware counts requests that finish with a status below 400.
func (s *Server) processedMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)
		if s.metrics != nil && wrapped.Status() < http.StatusBadRequest {
			s.metrics.requestsProcessed.Inc()
		}
	}
}

// routeLabel bounds label cardinality: unknown paths share the "other" label.
func (s *Server) routeLabel(path string) string {
	if _, ok := s.config.Handlers[path]; ok {
		return path
	}
	return "other"
}

// MetricsResponse is the JSON form of GET /metrics.
type MetricsResponse struct {
	RequestsProcessed uint64 `json:"requests_processed" yaml:"requests_processed"`
}

// handleMetrics serves the registry in Prometheus text format, or the
// processed-request count as JSON when the client asks for it.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	if !wantsJSON(r) {
		s.promHandler.ServeHTTP(w, r)
		return
	}

	families, err := s.registry.Gather()
	if err != nil {
		WriteErrorFromErr(w, r, err, "Failed to gather metrics", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, MetricsResponse{
		RequestsProcessed: uint64(counterValue(families, RequestsProcessedMetric)),
	})
}

func wantsJSON(r *http.Request) bool {
	if strings.EqualFold(r.URL.Query().Get("format"), "json") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// counterValue sums every series of the named counter family.
func counterValue(families []*dto.MetricFamily, name string) float64 {
	for _, mf := range families {
		if mf.GetName() != name || mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func newPromHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		Registry:          reg,
		EnableOpenMetrics: true,
	})
}
