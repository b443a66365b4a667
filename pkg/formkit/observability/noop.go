package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordConditionRun does nothing.
func (NoopMetrics) RecordConditionRun(_ context.Context, _ string, _ time.Duration, _ error) {}

// RecordVisibilityChange does nothing.
func (NoopMetrics) RecordVisibilityChange(_ context.Context, _ string, _ bool) {}
