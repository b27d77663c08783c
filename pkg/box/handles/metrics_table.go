package handles

import (
	"sync"

	"github.com/buildbarn/bb-hostbox/pkg/box"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	tablePrometheusMetrics sync.Once

	tableHandlesRegisteredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hostbox",
			Subsystem: "handles",
			Name:      "registered_total",
			Help:      "Number of times a box was registered in a handle table.",
		},
		[]string{"name"})
	tableHandlesResolvedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hostbox",
			Subsystem: "handles",
			Name:      "resolved_total",
			Help:      "Number of times a handle was resolved, by outcome.",
		},
		[]string{"name", "result"})
	tableHandlesReleasedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hostbox",
			Subsystem: "handles",
			Name:      "released_total",
			Help:      "Number of times a handle was released.",
		},
		[]string{"name"})
	tableHandlesLive = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "hostbox",
			Subsystem: "handles",
			Name:      "live",
			Help:      "Number of handles that are registered, but not yet released.",
		},
		[]string{"name"})
)

type metricsTable struct {
	base Table

	registeredTotal       prometheus.Counter
	resolvedSuccessTotal  prometheus.Counter
	resolvedNotFoundTotal prometheus.Counter
	resolvedFailureTotal  prometheus.Counter
	releasedTotal         prometheus.Counter
	live                  prometheus.Gauge
}

// NewMetricsTable creates a decorator for Table that exposes the
// number of operations performed against it through Prometheus.
func NewMetricsTable(base Table, name string) Table {
	tablePrometheusMetrics.Do(func() {
		prometheus.MustRegister(tableHandlesRegisteredTotal)
		prometheus.MustRegister(tableHandlesResolvedTotal)
		prometheus.MustRegister(tableHandlesReleasedTotal)
		prometheus.MustRegister(tableHandlesLive)
	})

	return &metricsTable{
		base: base,

		registeredTotal:       tableHandlesRegisteredTotal.WithLabelValues(name),
		resolvedSuccessTotal:  tableHandlesResolvedTotal.WithLabelValues(name, "Success"),
		resolvedNotFoundTotal: tableHandlesResolvedTotal.WithLabelValues(name, "NotFound"),
		resolvedFailureTotal:  tableHandlesResolvedTotal.WithLabelValues(name, "Failure"),
		releasedTotal:         tableHandlesReleasedTotal.WithLabelValues(name),
		live:                  tableHandlesLive.WithLabelValues(name),
	}
}

func (t *metricsTable) Register(b *box.Box[any]) Handle {
	h := t.base.Register(b)
	if h != 0 {
		t.registeredTotal.Inc()
		t.live.Set(float64(t.base.Len()))
	}
	return h
}

func (t *metricsTable) Resolve(h Handle) (*box.Box[any], error) {
	b, err := t.base.Resolve(h)
	switch status.Code(err) {
	case codes.OK:
		t.resolvedSuccessTotal.Inc()
	case codes.NotFound:
		t.resolvedNotFoundTotal.Inc()
	default:
		t.resolvedFailureTotal.Inc()
	}
	return b, err
}

func (t *metricsTable) Release(h Handle) error {
	if err := t.base.Release(h); err != nil {
		return err
	}
	t.releasedTotal.Inc()
	t.live.Set(float64(t.base.Len()))
	return nil
}

func (t *metricsTable) Len() int {
	return t.base.Len()
}
