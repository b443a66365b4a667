package formkit

import (
	"log/slog"

	"github.com/randalmurphal/formkit/pkg/formkit/identity"
	"github.com/randalmurphal/formkit/pkg/formkit/observability"
	"github.com/randalmurphal/formkit/pkg/formkit/style"
	"github.com/randalmurphal/formkit/pkg/formkit/widget"
)

// elementConfig holds construction-time configuration for an element.
type elementConfig struct {
	typeName  string
	identity  identity.Generator
	container Container
	sheet     *style.Sheet
	widgets   *widget.Registry
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	tracing   bool
}

// defaultElementConfig returns the default construction configuration.
func defaultElementConfig() elementConfig {
	return elementConfig{
		typeName: "element",
		identity: identity.UUID(),
		metrics:  observability.NoopMetrics{},
	}
}

// Option configures element construction.
type Option func(*elementConfig)

// WithElementType sets the element's declared type name, used for per-type
// style lookup and widget fit. Embedding element kinds pass their own type
// here. An empty name is ignored.
func WithElementType(name string) Option {
	return func(c *elementConfig) {
		if name != "" {
			c.typeName = name
		}
	}
}

// WithIdentity sets the generator the element's id is drawn from.
// Default: random UUIDs. A nil generator is ignored.
func WithIdentity(g identity.Generator) Option {
	return func(c *elementConfig) {
		if g != nil {
			c.identity = g
		}
	}
}

// WithContainer attaches the owning aggregate at construction.
func WithContainer(container Container) Option {
	return func(c *elementConfig) {
		c.container = container
	}
}

// WithStyleSheet sets the sheet used for class resolution.
// Default: the process-wide style.Default() sheet.
func WithStyleSheet(sheet *style.Sheet) Option {
	return func(c *elementConfig) {
		c.sheet = sheet
	}
}

// WithWidgetRegistry sets the registry custom widgets are resolved from.
// Default: the process-wide widget.DefaultRegistry().
func WithWidgetRegistry(r *widget.Registry) Option {
	return func(c *elementConfig) {
		c.widgets = r
	}
}

// WithLogger enables structured logging of condition evaluations and
// visibility transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *elementConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics for condition evaluations and
// visibility transitions. The global OTel meter provider must be configured
// for measurements to be exported.
func WithMetrics(enabled bool) Option {
	return func(c *elementConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables an OpenTelemetry span around each condition
// evaluation. The global OTel tracer provider must be configured for spans
// to be exported.
func WithTracing(enabled bool) Option {
	return func(c *elementConfig) {
		c.tracing = enabled
	}
}
