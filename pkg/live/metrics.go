package live

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/graft-dev/graft/pkg/bind"
)

// namespace is the metrics namespace for all live view metrics.
const namespace = "graft"

// metrics holds the prometheus metrics for a live view server.
type metrics struct {
	updatesTotal      prometheus.Counter
	mutationsTotal    prometheus.Counter
	framesSentTotal   prometheus.Counter
	frameBytesTotal   prometheus.Counter
	activeConnections prometheus.Gauge
}

// newMetrics registers the server metrics, plus gauges exposing binding
// lifecycle counters, on the given registry.
func newMetrics(reg *prometheus.Registry) *metrics {
	factory := promauto.With(reg)

	m := &metrics{
		updatesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Total number of tree updates applied",
		}),

		mutationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Total number of tree mutations observed",
		}),

		framesSentTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_sent_total",
			Help:      "Total number of patch frames sent to clients",
		}),

		frameBytesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frame_bytes_total",
			Help:      "Total patch frame bytes sent to clients",
		}),

		activeConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_connections",
			Help:      "Number of connected live view clients",
		}),
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bindings_active",
		Help:      "Child bindings currently registered, including stale ones",
	}, func() float64 {
		return float64(bind.Stats().Active)
	})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bindings_torn_down_total",
		Help:      "Child bindings that have detached their subscriptions",
	}, func() float64 {
		return float64(bind.Stats().TornDown)
	})

	return m
}
