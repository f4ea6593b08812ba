package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobport_http_requests_total",
			Help: "Toplam HTTP istek sayısı",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobport_http_request_duration_seconds",
			Help:    "HTTP istek süresi (saniye)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	JobsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobport_jobs_created_total",
			Help: "Oluşturulan iş ilanı sayısı",
		},
		[]string{"job_type"},
	)

	ApplicationsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobport_applications_submitted_total",
			Help: "Alınan başvuru sayısı",
		},
	)

	ApplicationStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobport_application_status_changes_total",
			Help: "Başvuru durumu değişikliği sayısı",
		},
		[]string{"status"},
	)

	WorkerPoolQueueSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "jobport_worker_pool_queue_size",
			Help: "Worker pool kuyruğundaki iş sayısı",
		},
	)

	WorkerPoolActiveWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "jobport_worker_pool_active_workers",
			Help: "Aktif worker sayısı",
		},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobport_cache_hits_total",
			Help: "Önbellek isabet sayısı",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobport_cache_misses_total",
			Help: "Önbellek isabet etmeme sayısı",
		},
	)
)

func RecordHttpRequest(method, endpoint, status string, duration time.Duration) {
	HttpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HttpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordJobCreated(jobType string) {
	JobsCreated.WithLabelValues(jobType).Inc()
}

func RecordApplicationSubmitted() {
	ApplicationsSubmitted.Inc()
}

func RecordApplicationStatusChange(status string) {
	ApplicationStatusChanges.WithLabelValues(status).Inc()
}

func UpdateWorkerPoolStats(queueSize, activeWorkers int) {
	WorkerPoolQueueSize.Set(float64(queueSize))
	WorkerPoolActiveWorkers.Set(float64(activeWorkers))
}

func RecordCacheHit() {
	CacheHits.Inc()
}

func RecordCacheMiss() {
	CacheMisses.Inc()
}
