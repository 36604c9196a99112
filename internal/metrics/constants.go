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

// Business metric names
const (
	MetricNameCasesOpened    = "cases_opened_total"
	MetricNameScoreEarned    = "score_earned_total"
	MetricNameOfflineClaims  = "offline_claims_total"
	MetricNameOfflineDraws   = "offline_draws_total"
	MetricNameUpgradesBought = "upgrades_bought_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextCasesOpened    = "Total number of cases opened, interactive and offline"
	HelpTextScoreEarned    = "Total score credited to players"
	HelpTextOfflineClaims  = "Total number of offline progression claims"
	HelpTextOfflineDraws   = "Total number of draws replayed by offline claims"
	HelpTextUpgradesBought = "Total number of upgrade levels purchased"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
