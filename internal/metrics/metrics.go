// Package metrics exposes ledger, location and reward counters to Prometheus.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tour_points"

const (
	OutcomeVerified = "verified"
	OutcomeRejected = "rejected"

	RewardResultCredited = "credited"
	RewardResultUnknown  = "unknown_event"
	RewardResultFailed   = "failed"
)

type Metrics struct {
	gatherer          prometheus.Gatherer
	postings          *prometheus.CounterVec
	insufficientFunds prometheus.Counter
	verifications     *prometheus.CounterVec
	rewards           *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New registers all collectors in reg. Pass prometheus.NewRegistry() in
// tests to keep them isolated.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		postings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "postings_total",
			Help:      "Ledger entries written, by kind and reason.",
		}, []string{"kind", "reason"}),
		insufficientFunds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "insufficient_funds_total",
			Help:      "Debits rejected because the balance was too low.",
		}),
		verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "location",
			Name:      "verifications_total",
			Help:      "Location checks, by outcome.",
		}, []string{"outcome"}),
		rewards: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reward",
			Name:      "events_total",
			Help:      "Reward events handled, by event and result.",
		}, []string{"event", "result"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by route pattern, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

func (m *Metrics) RecordPosting(kind, reason string) {
	if m == nil {
		return
	}
	m.postings.WithLabelValues(kind, reason).Inc()
}

func (m *Metrics) RecordInsufficientFunds() {
	if m == nil {
		return
	}
	m.insufficientFunds.Inc()
}

func (m *Metrics) RecordVerification(verified bool) {
	if m == nil {
		return
	}
	outcome := OutcomeRejected
	if verified {
		outcome = OutcomeVerified
	}
	m.verifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordReward(event, result string) {
	if m == nil {
		return
	}
	m.rewards.WithLabelValues(event, result).Inc()
}

// Middleware observes request duration labelled with the chi route pattern,
// so path parameters do not blow up label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
