package prefixlog

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/leosykes117/prefixlog/pkg/sink"
)

// Metrics groups the counters of calls made through prefixed loggers.
type Metrics struct {
	Emitted    *prometheus.CounterVec
	Suppressed *prometheus.CounterVec
}

// NewMetrics returns pointer to a new metrics instance ready to use.
func NewMetrics() *Metrics {
	const namespace = "prefixlog"

	return &Metrics{
		Emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emitted_total",
			Help:      "Number of calls forwarded to a sink, by operation.",
		}, []string{"op"}),
		Suppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suppressed_total",
			Help:      "Number of calls dropped by the level threshold, by operation.",
		}, []string{"op"}),
	}
}

// Collectors returns the collectors to register.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Emitted, m.Suppressed}
}

// instrument wraps the bindings of t so that every call is counted.
func (m *Metrics) instrument(t *Table) {
	for i := range t {
		b := &t[i]
		op := sink.Op(i).String()
		call := b.Call

		switch {
		case b.Route != RouteNoop:
			c := m.Emitted.WithLabelValues(op)
			b.Call = func(args ...any) {
				c.Inc()
				call(args...)
			}
		case b.Suppressed:
			c := m.Suppressed.WithLabelValues(op)
			b.Call = func(...any) { c.Inc() }
		}
	}
}
