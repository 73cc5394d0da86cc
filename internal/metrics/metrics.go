// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of completion provider calls",
		},
		[]string{"operation", "model", "status"},
	)
	AIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "Completion provider call duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
		},
		[]string{"operation", "model"},
	)

	RecipesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_generated_total",
			Help: "Total number of recipe generations",
		},
		[]string{"mode"},
	)
	IngredientSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingredient_searches_total",
			Help: "Total number of ingredient searches by result source",
		},
		[]string{"source"},
	)
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of ingredient cache lookups",
		},
		[]string{"result"},
	)
	UsersRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of created accounts",
		},
		[]string{"method"},
	)
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
