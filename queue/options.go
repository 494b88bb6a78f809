package queue

import (
	"log/slog"

	"github.com/KizzyCode/slice-queue/metric"
)

// Option configures queue behavior using the functional options pattern.
type Option[T any] func(*queueOptions[T])

// queueOptions holds internal configuration for queue instances.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and exposed via WithMetrics().
type queueOptions[T any] struct {
	limit      int
	limitSet   bool
	prealloc   int
	shrinkMode ShrinkMode

	// metricsReg is optional - if provided, queue stats are also exposed as Prometheus metrics
	metricsReg *metric.Registry

	// metricsName is used as the queue label for Prometheus metrics
	metricsName string

	logger *slog.Logger
}

// WithLimit caps the queue at the given number of elements. The limit is
// only enforced during appends. A non-positive limit is a fault, reported
// when the queue is constructed.
func WithLimit[T any](limit int) Option[T] {
	return func(opts *queueOptions[T]) {
		opts.limit = limit
		opts.limitSet = true
	}
}

// WithPrealloc reserves capacity for n elements up front so early appends
// do not reallocate.
func WithPrealloc[T any](n int) Option[T] {
	return func(opts *queueOptions[T]) {
		if n > 0 {
			opts.prealloc = n
		}
	}
}

// WithShrinkMode sets how the queue releases over-allocated memory.
// Defaults to Opportunistic if not specified.
func WithShrinkMode[T any](mode ShrinkMode) Option[T] {
	return func(opts *queueOptions[T]) {
		opts.shrinkMode = mode
	}
}

// WithMetrics enables Prometheus metrics export for queue statistics.
// If registry is nil or name is empty, this option is ignored.
func WithMetrics[T any](registry *metric.Registry, name string) Option[T] {
	return func(opts *queueOptions[T]) {
		if registry != nil && name != "" {
			opts.metricsReg = registry
			opts.metricsName = name
		}
	}
}

// WithLogger attaches a structured logger for debug-level operational
// events such as limit clipping and shrink reallocations.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(opts *queueOptions[T]) {
		opts.logger = logger
	}
}

// applyOptions applies functional options to create final queue configuration.
// This is an internal helper used by queue constructors.
func applyOptions[T any](options ...Option[T]) *queueOptions[T] {
	opts := &queueOptions[T]{
		// Default values
		limit:      Unbounded,
		shrinkMode: Opportunistic,
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
