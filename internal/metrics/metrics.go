package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	RecordMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordMutations,
			Help: HelpTextRecordMutations,
		},
		[]string{LabelEntity, LabelOperation},
	)

	SignInAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSignInAttempts,
			Help: HelpTextSignInAttempts,
		},
		[]string{LabelResult},
	)

	SignUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSignUps,
			Help: HelpTextSignUps,
		},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheHits,
			Help: HelpTextCatalogCacheLookups,
		},
		[]string{LabelResult},
	)

	GatewayFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGatewayFailures,
			Help: HelpTextGatewayFailures,
		},
		[]string{LabelEntity, LabelOperation},
	)
)
