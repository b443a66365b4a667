package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records formkit metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordConditionRun records a visibility evaluation with its duration
	// and error status.
	RecordConditionRun(ctx context.Context, elementType string, duration time.Duration, err error)

	// RecordVisibilityChange records an element visibility transition.
	RecordVisibilityChange(ctx context.Context, elementType string, visible bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	conditionRuns     metric.Int64Counter
	conditionLatency  metric.Float64Histogram
	conditionErrors   metric.Int64Counter
	visibilityChanges metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("formkit")

	conditionRuns, err := meter.Int64Counter("formkit.condition.evaluations",
		metric.WithDescription("Number of visibility condition evaluations"),
	)
	if err != nil {
		return nil, err
	}

	conditionLatency, err := meter.Float64Histogram("formkit.condition.latency_ms",
		metric.WithDescription("Visibility condition evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	conditionErrors, err := meter.Int64Counter("formkit.condition.errors",
		metric.WithDescription("Number of visibility condition evaluation errors"),
	)
	if err != nil {
		return nil, err
	}

	visibilityChanges, err := meter.Int64Counter("formkit.visibility.changes",
		metric.WithDescription("Number of element visibility transitions"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		conditionRuns:     conditionRuns,
		conditionLatency:  conditionLatency,
		conditionErrors:   conditionErrors,
		visibilityChanges: visibilityChanges,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordConditionRun records a visibility evaluation.
func (m *otelMetrics) RecordConditionRun(ctx context.Context, elementType string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("element_type", elementType),
	}

	m.conditionRuns.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.conditionLatency.Record(ctx, float64(duration)/float64(time.Millisecond), metric.WithAttributes(attrs...))

	if err != nil {
		m.conditionErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordVisibilityChange records a visibility transition.
func (m *otelMetrics) RecordVisibilityChange(ctx context.Context, elementType string, visible bool) {
	m.visibilityChanges.Add(ctx, 1, metric.WithAttributes(
		attribute.String("element_type", elementType),
		attribute.Bool("visible", visible),
	))
}
