package formkit

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/formkit/pkg/formkit/expression"
	"github.com/randalmurphal/formkit/pkg/formkit/observability"
)

// RunCondition re-evaluates the element's visibility expression against the
// given input values and applies the result through SetVisible, so change
// gating, hooks, and container notification apply uniformly.
//
// An element with an empty VisibleIf is left untouched: no evaluator is
// constructed, nothing is mutated, and Visible stays under direct external
// control.
//
// The cached evaluator is built lazily on the first run and rebound to the
// current expression text on every run after that, so the expression can be
// edited between evaluations without losing the evaluator's
// compiled-program cache.
//
// Evaluation errors are returned wrapped in *ConditionError with no
// visibility fallback: on error the element's visible state is unchanged.
func (e *Element) RunCondition(ctx context.Context, values map[string]any) error {
	text := e.VisibleIf()
	if text == "" {
		return nil
	}

	if e.condition == nil {
		e.condition = expression.New(text)
	} else {
		e.condition.SetExpression(text)
	}

	var span trace.Span
	if e.tracing {
		ctx, span = observability.StartConditionSpan(ctx, e.id, text)
	}

	start := time.Now()
	visible, err := e.condition.Run(values)
	e.metrics.RecordConditionRun(ctx, e.typeName, time.Since(start), err)

	if err != nil {
		observability.LogConditionError(e.logger, e.name, text, err)
		condErr := &ConditionError{Element: e.name, Expression: text, Err: err}
		if span != nil {
			observability.EndSpanWithError(span, condErr)
		}
		return condErr
	}

	observability.LogConditionResult(e.logger, e.name, text, visible,
		float64(time.Since(start))/float64(time.Millisecond))
	e.SetVisible(visible)

	if span != nil {
		observability.EndSpanWithError(span, nil)
	}
	return nil
}
