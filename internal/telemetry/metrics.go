package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feed refresh outcomes.
const (
	ResultApplied = "applied"
	ResultStale   = "stale"
	ResultFailed  = "failed"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	analysisRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analysis_request_duration_seconds",
			Help:    "Duration of calls to the analysis service",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	feedRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_feed_refresh_total",
			Help: "Dashboard feed refreshes by feed and outcome",
		},
		[]string{"feed", "result"},
	)

	sessionState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_session_state",
			Help: "1 for the current dashboard session state, 0 otherwise",
		},
		[]string{"state"},
	)
)

// ObserveAnalysisRequest records one outbound call. status is 0 when the
// request never got a response.
func ObserveAnalysisRequest(operation string, status int, d time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	analysisRequestDuration.WithLabelValues(operation, label).Observe(d.Seconds())
}

func FeedRefreshed(feed, result string) {
	feedRefreshTotal.WithLabelValues(feed, result).Inc()
}

// SessionStateChanged flips the state gauge so exactly one state reads 1.
func SessionStateChanged(states []string, current string) {
	for _, s := range states {
		v := 0.0
		if s == current {
			v = 1
		}
		sessionState.WithLabelValues(s).Set(v)
	}
}
