package dashrpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/erc7824/dashrpc/pkg/rpc"
)

// Metrics holds the client's Prometheus collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates metrics registered on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates metrics registered on the given registry.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashrpc_requests_total",
			Help: "Total number of RPC calls issued, by method.",
		}, []string{"method"}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashrpc_errors_total",
			Help: "Total number of failed RPC calls, by method and error kind.",
		}, []string{"method", "kind"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashrpc_request_duration_seconds",
			Help:    "RPC call round-trip duration in seconds, by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

// Observer adapts the metrics into a dispatcher call observer.
func (m *Metrics) Observer() rpc.CallObserver {
	return func(method string, duration time.Duration, kind string) {
		m.RequestsTotal.WithLabelValues(method).Inc()
		m.RequestDuration.WithLabelValues(method).Observe(duration.Seconds())
		if kind != "ok" {
			m.ErrorsTotal.WithLabelValues(method, kind).Inc()
		}
	}
}
