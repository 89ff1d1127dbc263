// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

// Package metrics provides Prometheus instrumentation for Bookrec:
// API request latency and throughput, recommendation query outcomes, and
// catalog load state. Metrics are exposed on /metrics via promhttp.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookrec_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookrec_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookrec_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation metrics
	RecommendQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookrec_recommend_queries_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"outcome"}, // "served", "no_match", "not_ready"
	)

	RecommendResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bookrec_recommend_results_returned",
			Help:    "Number of results returned per recommendation query",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	// Catalog load state
	CatalogLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookrec_catalog_loaded",
			Help: "Whether the catalog artifacts loaded successfully (1) or not (0)",
		},
	)

	CatalogTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookrec_catalog_titles",
			Help: "Number of titles in the loaded title index",
		},
	)

	CatalogTopBooks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookrec_catalog_top_books",
			Help: "Number of entries in the curated top set",
		},
	)
)

// Recommendation query outcomes.
const (
	OutcomeServed   = "served"
	OutcomeNoMatch  = "no_match"
	OutcomeNotReady = "not_ready"
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the active request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a recommendation query outcome. The result
// count histogram is only observed for served queries.
func RecordRecommendation(outcome string, results int) {
	RecommendQueriesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeServed {
		RecommendResultsReturned.Observe(float64(results))
	}
}

// SetCatalogState publishes the catalog load state gauges once at startup.
func SetCatalogState(loaded bool, titles, topBooks int) {
	if loaded {
		CatalogLoaded.Set(1)
	} else {
		CatalogLoaded.Set(0)
	}
	CatalogTitles.Set(float64(titles))
	CatalogTopBooks.Set(float64(topBooks))
}
