package formkit

import (
	"github.com/randalmurphal/formkit/pkg/formkit/observability"
	"github.com/randalmurphal/formkit/pkg/formkit/widget"
)

// widgetState tracks the lazy custom-widget lookup. Once a lookup has run,
// the state never returns to widgetNotRequested: a confirmed miss is cached
// and not retried.
type widgetState int

const (
	widgetNotRequested widgetState = iota
	widgetRequestedMissing
	widgetRequestedFound
)

// Compile-time check: elements satisfy the widget fit surface.
var _ widget.Descriptor = (*Element)(nil)

// CustomWidget returns the custom widget bound to this element, resolving
// it from the widget registry on first access only. Both outcomes are
// cached: a found widget and a confirmed miss. Later calls return the
// cached result without consulting the registry again, until
// UpdateCustomWidget forces a fresh lookup.
func (e *Element) CustomWidget() *widget.CustomWidget {
	if e.widgetState == widgetNotRequested {
		e.resolveCustomWidget()
	}
	return e.customWidget
}

// UpdateCustomWidget forces a fresh registry lookup, replacing the cached
// binding. Call it when widget registrations changed after the element was
// built.
func (e *Element) UpdateCustomWidget() {
	e.resolveCustomWidget()
}

func (e *Element) resolveCustomWidget() {
	w := e.widgetRegistry().Resolve(e)
	e.customWidget = w
	if w == nil {
		e.widgetState = widgetRequestedMissing
		return
	}
	e.widgetState = widgetRequestedFound
	observability.LogWidgetResolved(e.logger, e.name, w.Name)
}
