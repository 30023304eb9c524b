// Package metrics provides the Prometheus collectors of the digest backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "allaboutxrp"

var (
	// DigestLoadTotal counts terminal outcomes of digest loads.
	DigestLoadTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "digest_load_total",
			Help:      "Digest loads by terminal outcome",
		},
		[]string{"outcome"},
	)

	DigestLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "digest_load_duration_seconds",
			Help:      "Duration of digest loads in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	// NavigationDegradedTotal counts loads served without navigation.
	NavigationDegradedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "digest_navigation_degraded_total",
			Help:      "Digest loads whose index retrieval failed",
		},
	)

	AccessDecisionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_decision_total",
			Help:      "Access decisions by kind",
		},
		[]string{"kind"},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Cache lookups by cache and result",
		},
		[]string{"cache", "result"},
	)

	BillingPortalTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "billing_portal_requests_total",
			Help:      "Billing portal session requests by status",
		},
		[]string{"status"},
	)

	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of errors",
		},
		[]string{"operation", "error_type"},
	)
)

func RecordDigestLoad(outcome string, seconds float64) {
	DigestLoadTotal.WithLabelValues(outcome).Inc()
	DigestLoadDuration.WithLabelValues(outcome).Observe(seconds)
}

func RecordNavigationDegraded() {
	NavigationDegradedTotal.Inc()
}

func RecordAccessDecision(kind string) {
	AccessDecisionTotal.WithLabelValues(kind).Inc()
}

func RecordCacheHit(cache string) {
	CacheRequestsTotal.WithLabelValues(cache, "hit").Inc()
}

func RecordCacheMiss(cache string) {
	CacheRequestsTotal.WithLabelValues(cache, "miss").Inc()
}

func RecordCacheError(cache string) {
	CacheRequestsTotal.WithLabelValues(cache, "error").Inc()
}

func RecordBillingPortal(status string) {
	BillingPortalTotal.WithLabelValues(status).Inc()
}

func RecordError(operation, errorType string) {
	ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
