package msf

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/mysportsfeeds/pkg/feeds"
)

// Metrics records request and stored-copy counters. A nil *Metrics
// records nothing.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheReads      *prometheus.CounterVec
}

// NewMetrics registers the client metrics on reg. It returns nil when reg
// is nil. Clients sharing one registerer share the same collectors, so
// building several clients on prometheus.DefaultRegisterer is fine.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	return &Metrics{
		requestsTotal: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "msf_requests_total",
				Help: "Total number of feed requests by feed and HTTP status",
			},
			[]string{"feed", "status"},
		)),
		requestDuration: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "msf_request_duration_seconds",
				Help:    "Duration of feed requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"feed"},
		)),
		cacheReads: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "msf_cache_reads_total",
				Help: "Stored-copy reads after 304 responses by result",
			},
			[]string{"feed", "result"},
		)),
	}
}

// register adds c to reg, or returns the collector already registered
// under the same descriptor. If a different collector owns the name, c is
// returned unregistered and its samples are not exported.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

// observeRequest records one request. A status of 0 means the request
// never got a response.
func (m *Metrics) observeRequest(feed feeds.Feed, status int, d time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requestsTotal.WithLabelValues(string(feed), label).Inc()
	m.requestDuration.WithLabelValues(string(feed)).Observe(d.Seconds())
}

func (m *Metrics) observeCacheRead(feed feeds.Feed, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheReads.WithLabelValues(string(feed), result).Inc()
}
