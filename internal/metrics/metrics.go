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

// Business Metrics
var (
	CasesOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
	)

	ScoreEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScoreEarned,
			Help: HelpTextScoreEarned,
		},
	)

	OfflineClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOfflineClaims,
			Help: HelpTextOfflineClaims,
		},
	)

	OfflineDraws = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOfflineDraws,
			Help: HelpTextOfflineDraws,
		},
	)

	UpgradesBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesBought,
			Help: HelpTextUpgradesBought,
		},
		[]string{LabelKind},
	)
)
