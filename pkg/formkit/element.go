package formkit

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/formkit/pkg/formkit/expression"
	"github.com/randalmurphal/formkit/pkg/formkit/hook"
	"github.com/randalmurphal/formkit/pkg/formkit/observability"
	"github.com/randalmurphal/formkit/pkg/formkit/property"
	"github.com/randalmurphal/formkit/pkg/formkit/style"
	"github.com/randalmurphal/formkit/pkg/formkit/widget"
)

// Property names used by the element's bag.
const (
	propVisible          = "visible"
	propVisibleIf        = "visibleIf"
	propWidth            = "width"
	propRenderWidth      = "renderWidth"
	propIndent           = "indent"
	propRightIndent      = "rightIndent"
	propStartWithNewLine = "startWithNewLine"
	propVisibleIndex     = "visibleIndex"
)

// Declared property defaults.
const (
	// DefaultVisible is the visibility of an element that was never hidden.
	DefaultVisible = true
	// DefaultStartWithNewLine is the default line-break behavior.
	DefaultStartWithNewLine = true
	// UnassignedVisibleIndex marks an element with no ordered position
	// (typically because it is not visible).
	UnassignedVisibleIndex = -1
)

// LocaleChange is the payload of the LocaleChanged hook.
type LocaleChange struct {
	Element *Element
	Locale  string
}

// Element is the base unit of a form: one self-describing, observable
// question-like item. It tracks its own visibility, layout, and rendering
// state in a property bag, re-evaluates a visibility expression against
// input values on demand, resolves layered style classes, and lazily binds
// to a custom widget.
//
// An Element's id is assigned exactly once at construction and its name is
// immutable after construction. Every mutating setter is change-gated:
// setting a property to its current value fires nothing.
//
// Element is NOT safe for concurrent use; the model is synchronous and
// single-goroutine by design. Hooks fire synchronously, in subscription
// order, before the triggering setter returns, and container notification
// always follows the local hooks for the same mutation.
type Element struct {
	id       string
	name     string
	typeName string
	props    *property.Bag

	container Container
	sheet     *style.Sheet
	widgets   *widget.Registry
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	tracing   bool

	// condition is the cached evaluator bound to the current VisibleIf
	// text. Built lazily on the first RunCondition with a non-empty
	// expression; resynchronized to the current text on every run.
	condition *expression.Condition

	widgetState  widgetState
	customWidget *widget.CustomWidget

	// VisibilityChanged fires after Visible changes, before the
	// row-visibility hook and container notification.
	VisibilityChanged hook.Hook[bool]
	// RowVisibilityChanged fires after VisibilityChanged for the same
	// transition.
	RowVisibilityChanged hook.Hook[bool]
	// WidthChanged fires when Width changes.
	WidthChanged hook.Hook[string]
	// RenderWidthChanged fires when RenderWidth, Indent, or RightIndent
	// changes. The three properties share this hook.
	RenderWidthChanged hook.Hook[*Element]
	// StartWithNewLineChanged fires when StartWithNewLine changes.
	StartWithNewLineChanged hook.Hook[bool]
	// VisibleIndexChanged fires when the ordered position changes.
	VisibleIndexChanged hook.Hook[int]
	// LocaleChanged fires on OnLocaleChanged with the element and the new
	// locale; the container fans this out to every element it owns.
	LocaleChanged hook.Hook[LocaleChange]
	// Focused fires on Focus.
	Focused hook.Hook[*Element]
	// SurveyLoaded fires on OnSurveyLoad.
	SurveyLoaded hook.Hook[*Element]
	// AnyValueChanged fires on OnAnyValueChanged with the changed value
	// name.
	AnyValueChanged hook.Hook[string]
	// ReadOnlyChanged fires on OnReadOnlyChanged with the current
	// read-only state.
	ReadOnlyChanged hook.Hook[bool]
}

// New creates an element with the given name.
//
// Panics if name is empty. The element's id comes from the configured
// identity generator (random UUIDs unless WithIdentity overrides it) and is
// never reassigned.
func New(name string, opts ...Option) *Element {
	if name == "" {
		panic("formkit: element name cannot be empty")
	}

	cfg := defaultElementConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Element{
		id:        cfg.identity.NextID(),
		name:      name,
		typeName:  cfg.typeName,
		props:     property.New(),
		container: cfg.container,
		sheet:     cfg.sheet,
		widgets:   cfg.widgets,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
		tracing:   cfg.tracing,
	}
}

// ID returns the element's unique identifier.
func (e *Element) ID() string { return e.id }

// Name returns the element's caller-supplied name.
func (e *Element) Name() string { return e.name }

// ElementType returns the element's declared type name ("element" unless
// overridden at construction).
func (e *Element) ElementType() string { return e.typeName }

// Container returns the owning aggregate, or nil when detached.
func (e *Element) Container() Container { return e.container }

// SetContainer attaches the element to its owning aggregate. The element
// holds a non-owning reference used only for delegation.
func (e *Element) SetContainer(c Container) { e.container = c }

// Properties returns the element's property bag. Prefer the typed
// accessors; direct writes bypass change gating and hooks.
func (e *Element) Properties() *property.Bag { return e.props }

// Visible reports whether the element is visible. Defaults to true.
func (e *Element) Visible() bool {
	return e.props.Bool(propVisible, DefaultVisible)
}

// SetVisible stores the visibility flag. On an actual change it fires
// VisibilityChanged, then RowVisibilityChanged, then notifies the attached
// container.
func (e *Element) SetVisible(visible bool) {
	if visible == e.Visible() {
		return
	}
	e.props.Set(propVisible, visible)
	e.VisibilityChanged.Fire(visible)
	e.RowVisibilityChanged.Fire(visible)
	observability.LogVisibilityChange(e.logger, e.name, visible)
	e.metrics.RecordVisibilityChange(context.Background(), e.typeName, visible)
	if e.container != nil {
		e.container.ElementVisibilityChanged(e, visible)
	}
}

// VisibleIf returns the visibility expression. Defaults to empty, meaning
// the element's visibility stays under direct external control.
func (e *Element) VisibleIf() string {
	return e.props.String(propVisibleIf, "")
}

// SetVisibleIf stores the visibility expression. The cached evaluator, if
// any, picks up the new text on the next RunCondition.
func (e *Element) SetVisibleIf(expr string) {
	if expr == e.VisibleIf() {
		return
	}
	e.props.Set(propVisibleIf, expr)
}

// Width returns the declared width. Defaults to empty.
func (e *Element) Width() string {
	return e.props.String(propWidth, "")
}

// SetWidth stores the declared width, firing WidthChanged on change.
func (e *Element) SetWidth(width string) {
	if width == e.Width() {
		return
	}
	e.props.Set(propWidth, width)
	e.WidthChanged.Fire(width)
}

// RenderWidth returns the computed rendering width. Defaults to empty.
func (e *Element) RenderWidth() string {
	return e.props.String(propRenderWidth, "")
}

// SetRenderWidth stores the rendering width, firing RenderWidthChanged on
// change.
func (e *Element) SetRenderWidth(width string) {
	if width == e.RenderWidth() {
		return
	}
	e.props.Set(propRenderWidth, width)
	e.RenderWidthChanged.Fire(e)
}

// Indent returns the left indent. Defaults to 0.
func (e *Element) Indent() int {
	return e.props.Int(propIndent, 0)
}

// SetIndent stores the left indent, firing the shared RenderWidthChanged
// hook on change. Panics if indent is negative.
func (e *Element) SetIndent(indent int) {
	if indent < 0 {
		panic("formkit: indent cannot be negative")
	}
	if indent == e.Indent() {
		return
	}
	e.props.Set(propIndent, indent)
	e.RenderWidthChanged.Fire(e)
}

// RightIndent returns the right indent. Defaults to 0.
func (e *Element) RightIndent() int {
	return e.props.Int(propRightIndent, 0)
}

// SetRightIndent stores the right indent, firing the shared
// RenderWidthChanged hook on change. Panics if indent is negative.
func (e *Element) SetRightIndent(indent int) {
	if indent < 0 {
		panic("formkit: indent cannot be negative")
	}
	if indent == e.RightIndent() {
		return
	}
	e.props.Set(propRightIndent, indent)
	e.RenderWidthChanged.Fire(e)
}

// StartWithNewLine reports whether the element starts a new row. Defaults
// to true.
func (e *Element) StartWithNewLine() bool {
	return e.props.Bool(propStartWithNewLine, DefaultStartWithNewLine)
}

// SetStartWithNewLine stores the line-break flag, firing
// StartWithNewLineChanged on change.
func (e *Element) SetStartWithNewLine(start bool) {
	if start == e.StartWithNewLine() {
		return
	}
	e.props.Set(propStartWithNewLine, start)
	e.StartWithNewLineChanged.Fire(start)
}

// styleSheet returns the element's sheet, falling back to the process-wide
// default.
func (e *Element) styleSheet() *style.Sheet {
	if e.sheet != nil {
		return e.sheet
	}
	return style.Default()
}

// widgetRegistry returns the element's registry, falling back to the
// process-wide default.
func (e *Element) widgetRegistry() *widget.Registry {
	if e.widgets != nil {
		return e.widgets
	}
	return widget.DefaultRegistry()
}
