/*
Package formkit provides the observable element core of a form model.

# Overview

An Element is one self-describing question-like unit: it tracks its own
visibility, layout, and rendering state in a property bag, can hide or show
itself by evaluating a boolean expression against input values, resolves
its style classes from a layered style sheet, and lazily binds to an
externally registered custom widget. A Form owns elements, stores input
values, and drives condition re-evaluation whenever a value changes.

The model is synchronous and single-goroutine: hooks fire in subscription
order and complete before the triggering setter returns, and container
notification always follows the local hooks for the same mutation.

# Basic Usage

	form := formkit.NewForm()
	form.NewElement("name")
	details := form.NewElement("details")
	details.SetVisibleIf("{name} <> ''")

	details.VisibilityChanged.Subscribe(func(visible bool) {
	    fmt.Println("details visible:", visible)
	})

	err := form.SetValue(context.Background(), "name", "Ann")
	// details is now visible; visible indexes are reassigned.

# Conditions

Visibility expressions reference input values as "{name}" placeholders and
accept loose comparison forms ("=", "<>") alongside standard operators:

	element.SetVisibleIf("{age} >= 18 and {country} = 'US'")

Expressions compile once per distinct text and the compiled programs are
cached per element, so editing an expression between evaluations only pays
the compile cost for new text. An element with an empty VisibleIf is never
touched by condition runs. Evaluation errors propagate as *ConditionError
with no visibility fallback.

# Style Classes

CSSClasses layers the sheet's generic element group, its generic error
group, the per-type override, and the container's customization hook, in
that order; later layers win per key. Sheets load from YAML or JSON (see
the style package) or fall back to the process-wide default.

# Custom Widgets

Widgets register in a widget.Registry with a fit predicate. An element
resolves its widget on first CustomWidget access and caches the outcome,
including a miss; UpdateCustomWidget forces a fresh lookup after
registrations change.

# Observability

Structured logging via slog and OpenTelemetry metrics and tracing are
opt-in per element:

	e := formkit.New("email",
	    formkit.WithLogger(logger),
	    formkit.WithMetrics(true),
	    formkit.WithTracing(true))

# Thread Safety

  - Element, Form, and hooks are NOT safe for concurrent use
  - widget.Registry and identity generators ARE safe for concurrent use
  - The process-wide default style sheet is read-only shared state

# Subpackages

  - expression: condition translation and evaluation
  - hook: ordered synchronous notification hooks
  - identity: element ID generation
  - property: the key/value store backing element state
  - style: style sheets and their loaders
  - widget: custom-widget registration and lookup
  - observability: logging, metrics, and tracing helpers
*/
package formkit
