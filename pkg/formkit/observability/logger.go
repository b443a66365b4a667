// Package observability provides structured logging, metrics, and tracing
// helpers for formkit.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in. Logging helpers accept a nil logger and do
// nothing; metrics and tracing have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds element context to a logger.
// Returns a new logger with element_id and element_type fields.
func EnrichLogger(logger *slog.Logger, elementID, elementType string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("element_id", elementID),
		slog.String("element_type", elementType),
	)
}

// LogConditionResult logs a completed visibility evaluation.
func LogConditionResult(logger *slog.Logger, elementName, expression string, visible bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("condition evaluated",
		slog.String("element", elementName),
		slog.String("expression", expression),
		slog.Bool("visible", visible),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogConditionError logs a failed visibility evaluation.
func LogConditionError(logger *slog.Logger, elementName, expression string, err error) {
	if logger == nil {
		return
	}
	logger.Error("condition evaluation failed",
		slog.String("element", elementName),
		slog.String("expression", expression),
		slog.String("error", err.Error()),
	)
}

// LogVisibilityChange logs an element visibility transition.
func LogVisibilityChange(logger *slog.Logger, elementName string, visible bool) {
	if logger == nil {
		return
	}
	logger.Debug("visibility changed",
		slog.String("element", elementName),
		slog.Bool("visible", visible),
	)
}

// LogWidgetResolved logs a successful custom-widget lookup.
func LogWidgetResolved(logger *slog.Logger, elementName, widgetName string) {
	if logger == nil {
		return
	}
	logger.Debug("custom widget resolved",
		slog.String("element", elementName),
		slog.String("widget", widgetName),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start)) / float64(time.Millisecond)
	}
}
