package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/KizzyCode/slice-queue/errors"
)

// Registrar defines the interface for registering queue metrics
type Registrar interface {
	RegisterCounter(queueName, metricName string, counter prometheus.Counter) error
	RegisterGauge(queueName, metricName string, gauge prometheus.Gauge) error
	Unregister(queueName, metricName string) bool
}

// Registry manages the registration and lifecycle of queue metrics.
// Queues register their counters and gauges here under a per-instance
// name so multiple queues can share one Prometheus registry.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	registeredMetrics  map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewRegistry creates a new metrics registry with Go runtime metrics attached
func NewRegistry() *Registry {
	prometheusRegistry := prometheus.NewRegistry()

	registry := &Registry{
		prometheusRegistry: prometheusRegistry,
		registeredMetrics:  make(map[string]prometheus.Collector),
	}

	// Add Go runtime metrics
	registry.prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// PrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// RegisterCounter registers a counter metric for a queue instance
func (r *Registry) RegisterCounter(queueName, metricName string, counter prometheus.Counter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", queueName, metricName)

	if _, exists := r.registeredMetrics[key]; exists {
		return errors.WrapContract(
			fmt.Errorf("%w: %s for queue %s", errors.ErrDuplicateMetric, metricName, queueName),
			"Registry", "RegisterCounter", "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(counter); err != nil {
		// Check if it's a duplicate registration error from Prometheus
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.WrapContract(err, "Registry", "RegisterCounter",
				fmt.Sprintf("prometheus conflict for metric %s", metricName))
		}
		return errors.WrapInternal(err, "Registry", "RegisterCounter",
			"failed to register counter with prometheus")
	}

	r.registeredMetrics[key] = counter
	return nil
}

// RegisterGauge registers a gauge metric for a queue instance
func (r *Registry) RegisterGauge(queueName, metricName string, gauge prometheus.Gauge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", queueName, metricName)

	if _, exists := r.registeredMetrics[key]; exists {
		return errors.WrapContract(
			fmt.Errorf("%w: %s for queue %s", errors.ErrDuplicateMetric, metricName, queueName),
			"Registry", "RegisterGauge", "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(gauge); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.WrapContract(err, "Registry", "RegisterGauge",
				fmt.Sprintf("prometheus conflict for metric %s", metricName))
		}
		return errors.WrapInternal(err, "Registry", "RegisterGauge",
			"failed to register gauge with prometheus")
	}

	r.registeredMetrics[key] = gauge
	return nil
}

// Unregister removes a metric from the registry
func (r *Registry) Unregister(queueName, metricName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", queueName, metricName)

	collector, exists := r.registeredMetrics[key]
	if !exists {
		return false
	}

	success := r.prometheusRegistry.Unregister(collector)
	if success {
		delete(r.registeredMetrics, key)
	}

	return success
}
