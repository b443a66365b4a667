package formkit

// VisibleIndex returns the element's ordered position among visible
// elements. Defaults to UnassignedVisibleIndex (-1) for elements that have
// no position, typically because they are not visible.
func (e *Element) VisibleIndex() int {
	return e.props.Int(propVisibleIndex, UnassignedVisibleIndex)
}

// SetVisibleIndex stores the ordered position and fires
// VisibleIndexChanged. Returns false without firing anything when index
// equals the current position.
func (e *Element) SetVisibleIndex(index int) bool {
	if index == e.VisibleIndex() {
		return false
	}
	e.props.Set(propVisibleIndex, index)
	e.VisibleIndexChanged.Fire(index)
	return true
}

// Focus asks the rendering layer to focus this element by firing the
// Focused hook.
func (e *Element) Focus() {
	e.Focused.Fire(e)
}

// OnSurveyLoad is invoked by the container once its whole element tree is
// built and attached.
func (e *Element) OnSurveyLoad() {
	e.SurveyLoaded.Fire(e)
}

// OnLocaleChanged is invoked by the container when its locale changes.
func (e *Element) OnLocaleChanged(locale string) {
	e.LocaleChanged.Fire(LocaleChange{Element: e, Locale: locale})
}

// OnAnyValueChanged is invoked by the container after any input value
// changed, with the changed value's name.
func (e *Element) OnAnyValueChanged(name string) {
	e.AnyValueChanged.Fire(name)
}

// OnReadOnlyChanged is invoked by the container when read-only state may
// have changed.
func (e *Element) OnReadOnlyChanged() {
	e.ReadOnlyChanged.Fire(e.IsReadOnly())
}

// The methods below define the base capability contract. The base element
// has no input, no title, and can never be in error; concrete element
// kinds embedding Element shadow these with real behavior.

// Errors returns the element's current validation errors.
func (e *Element) Errors() []string { return nil }

// HasErrors reports whether the element currently has validation errors.
func (e *Element) HasErrors() bool { return false }

// ErrorCount returns the number of current validation errors.
func (e *Element) ErrorCount() int { return 0 }

// HasTitle reports whether the element displays a title.
func (e *Element) HasTitle() bool { return false }

// HasDescription reports whether the element displays a description.
func (e *Element) HasDescription() bool { return false }

// HasInput reports whether the element accepts user input.
func (e *Element) HasInput() bool { return false }

// HasComment reports whether the element displays a comment area.
func (e *Element) HasComment() bool { return false }

// IsReadOnly reports whether the element rejects user input.
func (e *Element) IsReadOnly() bool { return false }
