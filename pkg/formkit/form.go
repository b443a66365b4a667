package formkit

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/formkit/pkg/formkit/identity"
	"github.com/randalmurphal/formkit/pkg/formkit/observability"
)

// Form is the concrete Container shipped with this package: an ordered
// collection of elements plus the input values their visibility conditions
// are evaluated against.
//
// Setting a value re-runs every element's condition, reassigns ordered
// positions among the visible elements, and fans the change out to every
// element's AnyValueChanged hook.
//
// Form is NOT safe for concurrent use.
type Form struct {
	elements   []*Element
	values     map[string]any
	locale     string
	designMode bool

	markdown         func(text string) string
	customizeClasses func(e *Element, classes *Classes)
	logger           *slog.Logger
	identity         identity.Generator
}

// Compile-time interface check.
var _ Container = (*Form)(nil)

// FormOption configures form construction.
type FormOption func(*Form)

// WithFormLocale sets the form's initial locale code.
func WithFormLocale(locale string) FormOption {
	return func(f *Form) { f.locale = locale }
}

// WithDesignMode marks the form as being edited in a designer.
func WithDesignMode(enabled bool) FormOption {
	return func(f *Form) { f.designMode = enabled }
}

// WithMarkdownRenderer sets the markdown renderer elements delegate to.
func WithMarkdownRenderer(render func(text string) string) FormOption {
	return func(f *Form) { f.markdown = render }
}

// WithClassCustomizer sets the hook applied as the final layer of every
// attached element's class resolution.
func WithClassCustomizer(customize func(e *Element, classes *Classes)) FormOption {
	return func(f *Form) { f.customizeClasses = customize }
}

// WithFormLogger enables structured logging of form-level transitions.
func WithFormLogger(logger *slog.Logger) FormOption {
	return func(f *Form) { f.logger = logger }
}

// WithFormIdentity sets the generator NewElement draws ids from.
// Default: a form-owned sequence ("el_1", "el_2", ...). A nil generator is
// ignored.
func WithFormIdentity(g identity.Generator) FormOption {
	return func(f *Form) {
		if g != nil {
			f.identity = g
		}
	}
}

// NewForm creates an empty form.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		values:   make(map[string]any),
		identity: identity.Sequence("el_"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewElement creates an element attached to the form, drawing its id from
// the form's identity generator. Construction options may override
// everything except the attachment.
func (f *Form) NewElement(name string, opts ...Option) *Element {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithIdentity(f.identity), WithContainer(f))
	all = append(all, opts...)

	e := New(name, all...)
	e.container = f // attachment is not overridable
	f.elements = append(f.elements, e)
	return e
}

// AddElement attaches an existing element to the form, appending it to the
// element order.
func (f *Form) AddElement(e *Element) {
	if e == nil {
		panic("formkit: element cannot be nil")
	}
	e.SetContainer(f)
	f.elements = append(f.elements, e)
}

// Elements returns the form's elements in order.
// The returned slice is a copy.
func (f *Form) Elements() []*Element {
	out := make([]*Element, len(f.elements))
	copy(out, f.elements)
	return out
}

// Element returns the first element with the given name, or nil.
func (f *Form) Element(name string) *Element {
	for _, e := range f.elements {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// Value returns the input value stored under name, or nil.
func (f *Form) Value(name string) any {
	return f.values[name]
}

// Values returns a copy of the form's input values.
func (f *Form) Values() map[string]any {
	out := make(map[string]any, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// SetValue stores an input value, re-runs every element's visibility
// condition against the updated values, reassigns visible indexes, and
// fans the change out to every element.
//
// The first condition error aborts the run and is returned; elements
// evaluated before the failure keep their updated visibility.
func (f *Form) SetValue(ctx context.Context, name string, value any) error {
	f.values[name] = value
	if err := f.RunConditions(ctx); err != nil {
		return err
	}
	f.updateVisibleIndexes()
	for _, e := range f.elements {
		e.OnAnyValueChanged(name)
	}
	return nil
}

// RunConditions re-evaluates every element's visibility condition against
// the form's current values, stopping at the first error.
func (f *Form) RunConditions(ctx context.Context) error {
	for _, e := range f.elements {
		if err := e.RunCondition(ctx, f.values); err != nil {
			return err
		}
	}
	return nil
}

// updateVisibleIndexes assigns 0..n-1 to visible elements in form order
// and UnassignedVisibleIndex to the rest.
func (f *Form) updateVisibleIndexes() {
	next := 0
	for _, e := range f.elements {
		if e.Visible() {
			e.SetVisibleIndex(next)
			next++
		} else {
			e.SetVisibleIndex(UnassignedVisibleIndex)
		}
	}
}

// SetLocale changes the form locale and notifies every element.
// Setting the current locale is a no-op.
func (f *Form) SetLocale(locale string) {
	if locale == f.locale {
		return
	}
	f.locale = locale
	for _, e := range f.elements {
		e.OnLocaleChanged(locale)
	}
}

// OnLoad notifies every element that the form's element tree is complete.
func (f *Form) OnLoad() {
	for _, e := range f.elements {
		e.OnSurveyLoad()
	}
}

// IsDesignMode implements Container.
func (f *Form) IsDesignMode() bool { return f.designMode }

// Locale implements Container.
func (f *Form) Locale() string { return f.locale }

// MarkdownHTML implements Container. Returns "" when no renderer is
// configured.
func (f *Form) MarkdownHTML(text string) string {
	if f.markdown == nil {
		return ""
	}
	return f.markdown(text)
}

// ElementVisibilityChanged implements Container.
func (f *Form) ElementVisibilityChanged(e *Element, visible bool) {
	observability.LogVisibilityChange(f.logger, e.Name(), visible)
}

// UpdateElementCSSClasses implements Container.
func (f *Form) UpdateElementCSSClasses(e *Element, classes *Classes) {
	if f.customizeClasses != nil {
		f.customizeClasses(e, classes)
	}
}
