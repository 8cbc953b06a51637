package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameRecordMutations  = "record_mutations_total"
	MetricNameSignInAttempts   = "sign_in_attempts_total"
	MetricNameSignUps          = "sign_ups_total"
	MetricNameCatalogCacheHits = "catalog_cache_lookups_total"
	MetricNameGatewayFailures  = "gateway_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextEventsPublished      = "Total number of events published"
	HelpTextRecordMutations      = "Total number of ingredient and recipe mutations"
	HelpTextSignInAttempts       = "Total number of sign in attempts by result"
	HelpTextSignUps              = "Total number of accounts created"
	HelpTextCatalogCacheLookups  = "Public catalog cache lookups by result"
	HelpTextGatewayFailures      = "Storage failures mapped to generic gateway errors"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelEntity    = "entity"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// Label values
const (
	EntityIngredient = "ingredient"
	EntityRecipe     = "recipe"

	ResultSuccess     = "success"
	ResultFailure     = "failure"
	ResultRateLimited = "rate_limited"
	ResultHit         = "hit"
	ResultMiss        = "miss"

	// PathUnmatched labels requests that hit no route
	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
