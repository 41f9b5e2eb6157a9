package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewPublishRetriesTotal returns a Prometheus counter for the number of retry attempts performed by event publishers
func NewPublishRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "publish_retries_total",
		Help: "Total number of retry attempts performed by event publishers",
	})
}

// NewOrderEventsTotal returns a counter of consumed upstream order events by type and result.
func NewOrderEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_events_total",
		Help: "Total number of consumed upstream order events",
	}, []string{"type", "result"})
}

// Handover groups the reconciliation workflow metrics.
type Handover struct {
	Scans    *prometheus.CounterVec
	Commits  *prometheus.CounterVec
	Sessions prometheus.Gauge
}

// NewHandover creates unregistered handover metrics.
func NewHandover() *Handover {
	return &Handover{
		Scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "handover_scans_total",
			Help: "Total number of scanned barcodes by feedback code",
		}, []string{"result"}),
		Commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "handover_commits_total",
			Help: "Total number of handover commits by result",
		}, []string{"result"}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "handover_sessions_active",
			Help: "Number of open reconciliation sessions",
		}),
	}
}

// Collectors lists every collector for registration.
func (h *Handover) Collectors() []prometheus.Collector {
	return []prometheus.Collector{h.Scans, h.Commits, h.Sessions}
}

// HTTP groups the request metrics recorded by the observability middleware.
type HTTP struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTP creates unregistered HTTP metrics labelled by method, route pattern and status.
func NewHTTP() *HTTP {
	return &HTTP{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// Collectors lists every collector for registration.
func (h *HTTP) Collectors() []prometheus.Collector {
	return []prometheus.Collector{h.Requests, h.Duration}
}
