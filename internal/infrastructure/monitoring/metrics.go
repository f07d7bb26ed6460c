package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method", "status_code"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status_code"},
	)
)

var (
	SessionsOpenedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_opened_total",
			Help: "Total number of browsing sessions opened",
		},
	)

	CartAddsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_adds_total",
			Help: "Total number of add-to-cart operations",
		},
		[]string{"outcome"},
	)

	CheckoutAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_attempts_total",
			Help: "Total number of checkout attempts",
		},
	)

	CheckoutSuccessTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_success_total",
			Help: "Total number of successful checkouts",
		},
	)

	CheckoutFailureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_failure_total",
			Help: "Total number of failed checkouts",
		},
		[]string{"reason"},
	)

	ItemCreationAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "item_creation_attempts_total",
			Help: "Total number of item creation attempts",
		},
	)

	ItemCreationSuccessTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "item_creation_success_total",
			Help: "Total number of items created",
		},
	)

	ItemCreationFailureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "item_creation_failure_total",
			Help: "Total number of failed item creations",
		},
		[]string{"reason"},
	)

	ImageLookupFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_lookup_failures_total",
			Help: "Total number of failed image lookups",
		},
	)

	CatalogCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Total number of catalog cache hits",
		},
	)

	CatalogCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Total number of catalog cache misses",
		},
	)
)

var (
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"query_type", "table"},
	)

	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	RedisCommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_command_duration_seconds",
			Help:    "Duration of Redis commands in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"command"},
	)
)

func TimeDBQuery(queryType, table string) func() {
	start := time.Now()
	return func() {
		duration := time.Since(start).Seconds()
		DBQueryDuration.WithLabelValues(queryType, table).Observe(duration)
	}
}

func RecordSessionOpened() {
	SessionsOpenedTotal.Inc()
}

func RecordCartAdd(updated bool) {
	outcome := "added"
	if updated {
		outcome = "quantity_updated"
	}
	CartAddsTotal.WithLabelValues(outcome).Inc()
}

func RecordCheckoutAttempt() {
	CheckoutAttemptsTotal.Inc()
}

func RecordCheckoutSuccess() {
	CheckoutSuccessTotal.Inc()
}

func RecordCheckoutFailure(reason string) {
	CheckoutFailureTotal.WithLabelValues(reason).Inc()
}

func RecordItemCreationAttempt() {
	ItemCreationAttemptsTotal.Inc()
}

func RecordItemCreationSuccess() {
	ItemCreationSuccessTotal.Inc()
}

func RecordItemCreationFailure(reason string) {
	ItemCreationFailureTotal.WithLabelValues(reason).Inc()
}

func RecordImageLookupFailure() {
	ImageLookupFailuresTotal.Inc()
}

func RecordCatalogCacheHit() {
	CatalogCacheHitsTotal.Inc()
}

func RecordCatalogCacheMiss() {
	CatalogCacheMissesTotal.Inc()
}
