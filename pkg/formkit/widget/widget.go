// Package widget provides custom-widget registration and lookup.
//
// A custom widget is an externally supplied presentation matched to
// elements by a fit predicate. Widgets live in a Registry; resolution walks
// widgets in registration order and returns the first fit, mirroring how
// form runtimes let later-registered widgets coexist without stealing
// earlier matches.
package widget

import "sync"

// Descriptor is the element surface a widget inspects when deciding fit.
// Elements implement it; so can any test double.
type Descriptor interface {
	// ID returns the element's unique identifier.
	ID() string
	// Name returns the element's caller-supplied name.
	Name() string
	// ElementType returns the element's declared type name.
	ElementType() string
}

// CustomWidget is an externally registered implementation for matching
// elements.
type CustomWidget struct {
	// Name identifies the widget, unique within a registry.
	Name string
	// IsFit reports whether the widget should take over the element.
	// A nil IsFit never matches.
	IsFit func(Descriptor) bool
}

// Registry holds custom widgets in registration order.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	ordered []*CustomWidget
	byName  map[string]*CustomWidget
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*CustomWidget),
	}
}

// Register adds a widget. Registering a name that already exists replaces
// the widget in place, keeping its original position in resolution order.
//
// Panics if w is nil or w.Name is empty.
func (r *Registry) Register(w *CustomWidget) {
	if w == nil {
		panic("widget: widget cannot be nil")
	}
	if w.Name == "" {
		panic("widget: widget name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[w.Name]; ok {
		for i, cur := range r.ordered {
			if cur == existing {
				r.ordered[i] = w
				break
			}
		}
		r.byName[w.Name] = w
		return
	}

	r.ordered = append(r.ordered, w)
	r.byName[w.Name] = w
}

// Unregister removes a widget by name, reporting whether it existed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.byName[name]
	if !ok {
		return false
	}
	delete(r.byName, name)
	for i, cur := range r.ordered {
		if cur == w {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the widget registered under name and whether it exists.
func (r *Registry) Get(name string) (*CustomWidget, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.byName[name]
	return w, ok
}

// Has reports whether a widget is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// Names returns widget names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.ordered))
	for i, w := range r.ordered {
		names[i] = w.Name
	}
	return names
}

// Resolve returns the first registered widget whose IsFit accepts the
// element, or nil when none fits.
func (r *Registry) Resolve(d Descriptor) *CustomWidget {
	r.mu.RLock()
	snapshot := make([]*CustomWidget, len(r.ordered))
	copy(snapshot, r.ordered)
	r.mu.RUnlock()

	for _, w := range snapshot {
		if w.IsFit != nil && w.IsFit(d) {
			return w
		}
	}
	return nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used by elements that
// were not given their own.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
