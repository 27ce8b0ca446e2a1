// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	RequisitionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requisitions_created_total",
			Help: "Total number of purchase requisitions created",
		},
		[]string{"backend_system", "intent_type"},
	)

	CatalogSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog searches",
		},
		[]string{"item_type"},
	)

	CatalogSearchResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_search_results",
			Help:    "Number of results returned per catalog search",
			Buckets: []float64{0, 1, 2, 4, 8},
		},
		[]string{"item_type"},
	)
)
