package formkit

// recordingContainer is a Container test double that records delegation
// calls in order.
type recordingContainer struct {
	designMode bool
	locale     string
	markdown   func(string) string
	customize  func(*Element, *Classes)

	// onVisibility, when set, is invoked from ElementVisibilityChanged so
	// tests can interleave container notifications with hook firings.
	onVisibility func(e *Element, visible bool)

	visibilityCalls []visibilityCall
	classUpdates    int
}

type visibilityCall struct {
	name    string
	visible bool
}

func (c *recordingContainer) IsDesignMode() bool { return c.designMode }

func (c *recordingContainer) Locale() string { return c.locale }

func (c *recordingContainer) MarkdownHTML(text string) string {
	if c.markdown == nil {
		return ""
	}
	return c.markdown(text)
}

func (c *recordingContainer) ElementVisibilityChanged(e *Element, visible bool) {
	c.visibilityCalls = append(c.visibilityCalls, visibilityCall{name: e.Name(), visible: visible})
	if c.onVisibility != nil {
		c.onVisibility(e, visible)
	}
}

func (c *recordingContainer) UpdateElementCSSClasses(e *Element, classes *Classes) {
	c.classUpdates++
	if c.customize != nil {
		c.customize(e, classes)
	}
}
