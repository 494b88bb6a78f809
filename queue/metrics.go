package queue

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KizzyCode/slice-queue/metric"
)

// queueMetrics holds Prometheus metrics for queue operations.
type queueMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	pushes   prometheus.Counter
	pops     prometheus.Counter
	discards prometheus.Counter
	rejects  prometheus.Counter
	shrinks  prometheus.Counter

	// Gauge metrics - updated on operations
	length      prometheus.Gauge
	utilization prometheus.Gauge
}

// newQueueMetrics creates and registers queue metrics with the provided registry.
func newQueueMetrics(registry *metric.Registry, name string) (*queueMetrics, error) {
	m := &queueMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slicequeue",
			Subsystem:   "queue",
			Name:        "pushes_total",
			ConstLabels: prometheus.Labels{"queue": name},
			Help:        "Total number of elements appended",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slicequeue",
			Subsystem:   "queue",
			Name:        "pops_total",
			ConstLabels: prometheus.Labels{"queue": name},
			Help:        "Total number of elements removed and returned",
		}),
		discards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slicequeue",
			Subsystem:   "queue",
			Name:        "discards_total",
			ConstLabels: prometheus.Labels{"queue": name},
			Help:        "Total number of elements discarded without being returned",
		}),
		rejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slicequeue",
			Subsystem:   "queue",
			Name:        "rejects_total",
			ConstLabels: prometheus.Labels{"queue": name},
			Help:        "Total number of elements rejected by the length limit",
		}),
		shrinks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slicequeue",
			Subsystem:   "queue",
			Name:        "shrinks_total",
			ConstLabels: prometheus.Labels{"queue": name},
			Help:        "Total number of shrink reallocations",
		}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "slicequeue",
			Subsystem:   "queue",
			Name:        "length",
			ConstLabels: prometheus.Labels{"queue": name},
			Help:        "Current number of live elements",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "slicequeue",
			Subsystem:   "queue",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"queue": name},
			Help:        "Queue length relative to the limit (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(name, "queue_pushes", m.pushes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "queue_pops", m.pops); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "queue_discards", m.discards); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "queue_rejects", m.rejects); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "queue_shrinks", m.shrinks); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "queue_length", m.length); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "queue_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordAppend adds to the push counter and updates length/utilization.
func (m *queueMetrics) recordAppend(n, length, limit int) {
	m.pushes.Add(float64(n))
	m.updateLength(length, limit)
}

// recordRemoval adds to the pop and discard counters and updates
// length/utilization.
func (m *queueMetrics) recordRemoval(popped, discarded, length, limit int) {
	if popped > 0 {
		m.pops.Add(float64(popped))
	}
	if discarded > 0 {
		m.discards.Add(float64(discarded))
	}
	m.updateLength(length, limit)
}

// recordReject adds to the reject counter.
func (m *queueMetrics) recordReject(n int) {
	m.rejects.Add(float64(n))
}

// recordShrink increments the shrink counter and updates length/utilization.
func (m *queueMetrics) recordShrink(length, limit int) {
	m.shrinks.Inc()
	m.updateLength(length, limit)
}

// updateLength sets the current length and utilization gauges.
func (m *queueMetrics) updateLength(length, limit int) {
	m.length.Set(float64(length))
	m.utilization.Set(float64(length) / float64(limit))
}
