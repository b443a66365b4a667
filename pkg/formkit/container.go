package formkit

// Container is the owning aggregate (a form or a page) that elements
// delegate to. Elements hold a non-owning reference; the container's
// lifetime is independent. A nil container simply disables delegation.
//
// Form is the concrete implementation shipped with this package; supply
// your own for embedding the element model in another runtime.
type Container interface {
	// IsDesignMode reports whether the container is being edited in a
	// designer rather than filled in.
	IsDesignMode() bool

	// Locale returns the container's active locale code ("" for default).
	Locale() string

	// MarkdownHTML renders text as markdown HTML, returning "" when the
	// container does no markdown processing.
	MarkdownHTML(text string) string

	// ElementVisibilityChanged is invoked after an element's visible state
	// changed and all of the element's local hooks have fired.
	ElementVisibilityChanged(e *Element, visible bool)

	// UpdateElementCSSClasses lets the container mutate resolved style
	// classes as the final resolution layer. Invoked on every CSSClasses
	// call of an attached element.
	UpdateElementCSSClasses(e *Element, classes *Classes)
}
