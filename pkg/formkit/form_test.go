package formkit

import (
	"context"
	"errors"
	"testing"

	"github.com/randalmurphal/formkit/pkg/formkit/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewForm verifies defaults and option application.
func TestNewForm(t *testing.T) {
	f := NewForm()
	assert.False(t, f.IsDesignMode())
	assert.Empty(t, f.Locale())
	assert.Empty(t, f.Elements())
	assert.Empty(t, f.Values())

	g := NewForm(WithFormLocale("de"), WithDesignMode(true))
	assert.True(t, g.IsDesignMode())
	assert.Equal(t, "de", g.Locale())
}

// TestForm_NewElement verifies attachment and sequential id assignment.
func TestForm_NewElement(t *testing.T) {
	f := NewForm()
	a := f.NewElement("a")
	b := f.NewElement("b")

	assert.Equal(t, "el_1", a.ID())
	assert.Equal(t, "el_2", b.ID())
	assert.Same(t, Container(f), a.Container())
	assert.Equal(t, []*Element{a, b}, f.Elements())
}

// TestForm_NewElement_OptionsCannotDetach verifies construction options are
// honored except for the attachment itself.
func TestForm_NewElement_OptionsCannotDetach(t *testing.T) {
	f := NewForm()
	other := &recordingContainer{}
	e := f.NewElement("q", WithElementType("rating"), WithContainer(other))

	assert.Equal(t, "rating", e.ElementType())
	assert.Same(t, Container(f), e.Container())
}

// TestForm_WithFormIdentity verifies the injected generator drives ids.
func TestForm_WithFormIdentity(t *testing.T) {
	f := NewForm(WithFormIdentity(identity.Sequence("q_")))
	assert.Equal(t, "q_1", f.NewElement("a").ID())
}

// TestForm_AddElement verifies existing elements can be attached.
func TestForm_AddElement(t *testing.T) {
	f := NewForm()
	e := New("standalone")
	f.AddElement(e)

	assert.Same(t, Container(f), e.Container())
	assert.Same(t, e, f.Element("standalone"))
}

// TestForm_AddElement_Nil_Panics verifies the nil contract.
func TestForm_AddElement_Nil_Panics(t *testing.T) {
	f := NewForm()
	assert.PanicsWithValue(t, "formkit: element cannot be nil", func() {
		f.AddElement(nil)
	})
}

// TestForm_Element verifies lookup by name.
func TestForm_Element(t *testing.T) {
	f := NewForm()
	a := f.NewElement("a")
	f.NewElement("b")

	assert.Same(t, a, f.Element("a"))
	assert.Nil(t, f.Element("missing"))
}

// TestForm_SetValue_DrivesVisibility verifies the full update cycle: value
// stored, conditions re-run, visible indexes reassigned, change fanned out.
func TestForm_SetValue_DrivesVisibility(t *testing.T) {
	ctx := context.Background()
	f := NewForm()
	name := f.NewElement("name")
	details := f.NewElement("details")
	details.SetVisibleIf("{show} = 1")
	comment := f.NewElement("comment")

	require.NoError(t, f.SetValue(ctx, "show", 0))
	assert.True(t, name.Visible())
	assert.False(t, details.Visible())
	assert.Equal(t, 0, name.VisibleIndex())
	assert.Equal(t, UnassignedVisibleIndex, details.VisibleIndex())
	assert.Equal(t, 1, comment.VisibleIndex())

	require.NoError(t, f.SetValue(ctx, "show", 1))
	assert.True(t, details.Visible())
	assert.Equal(t, 0, name.VisibleIndex())
	assert.Equal(t, 1, details.VisibleIndex())
	assert.Equal(t, 2, comment.VisibleIndex())
}

// TestForm_SetValue_FansOut verifies every element hears about every value
// change, by name.
func TestForm_SetValue_FansOut(t *testing.T) {
	f := NewForm()
	a := f.NewElement("a")
	b := f.NewElement("b")

	var heard []string
	a.AnyValueChanged.Subscribe(func(name string) { heard = append(heard, "a:"+name) })
	b.AnyValueChanged.Subscribe(func(name string) { heard = append(heard, "b:"+name) })

	require.NoError(t, f.SetValue(context.Background(), "email", "x@y.z"))

	assert.Equal(t, []string{"a:email", "b:email"}, heard)
	assert.Equal(t, "x@y.z", f.Value("email"))
}

// TestForm_SetValue_Error verifies the first condition failure aborts the
// run before index assignment and fan-out.
func TestForm_SetValue_Error(t *testing.T) {
	f := NewForm()
	broken := f.NewElement("broken")
	broken.SetVisibleIf("{x = 1")
	after := f.NewElement("after")
	fanned := false
	after.AnyValueChanged.Subscribe(func(string) { fanned = true })

	err := f.SetValue(context.Background(), "x", 1)
	require.Error(t, err)

	var condErr *ConditionError
	require.True(t, errors.As(err, &condErr))
	assert.Equal(t, "broken", condErr.Element)

	assert.False(t, fanned, "fan-out must not happen after a condition failure")
	assert.Equal(t, 1, f.Value("x"), "the value itself is stored before evaluation")
	assert.Equal(t, UnassignedVisibleIndex, after.VisibleIndex())
}

// TestForm_Values_Copy verifies mutating the returned map cannot change
// form state.
func TestForm_Values_Copy(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetValue(context.Background(), "x", 1))

	values := f.Values()
	values["x"] = 99
	assert.Equal(t, 1, f.Value("x"))
}

// TestForm_SetLocale verifies notification and the same-locale no-op.
func TestForm_SetLocale(t *testing.T) {
	f := NewForm(WithFormLocale("en"))
	e := f.NewElement("q")
	var got []string
	e.LocaleChanged.Subscribe(func(lc LocaleChange) { got = append(got, lc.Locale) })

	f.SetLocale("en") // no-op
	f.SetLocale("fr")
	f.SetLocale("fr") // no-op

	assert.Equal(t, []string{"fr"}, got)
	assert.Equal(t, "fr", f.Locale())
}

// TestForm_OnLoad verifies every element hears the load notification.
func TestForm_OnLoad(t *testing.T) {
	f := NewForm()
	a := f.NewElement("a")
	b := f.NewElement("b")
	loaded := 0
	a.SurveyLoaded.Subscribe(func(*Element) { loaded++ })
	b.SurveyLoaded.Subscribe(func(*Element) { loaded++ })

	f.OnLoad()
	assert.Equal(t, 2, loaded)
}

// TestForm_MarkdownHTML verifies renderer delegation and the empty default.
func TestForm_MarkdownHTML(t *testing.T) {
	plain := NewForm()
	assert.Empty(t, plain.MarkdownHTML("**hi**"))

	f := NewForm(WithMarkdownRenderer(func(text string) string {
		return "<p>" + text + "</p>"
	}))
	assert.Equal(t, "<p>hi</p>", f.MarkdownHTML("hi"))
}

// TestForm_ClassCustomizer verifies the form forwards class customization
// to attached elements.
func TestForm_ClassCustomizer(t *testing.T) {
	f := NewForm(WithClassCustomizer(func(e *Element, classes *Classes) {
		classes.Root = classes.Root + " form-extra"
	}))
	e := f.NewElement("q")

	classes := e.CSSClasses()
	assert.Equal(t, "fk-element form-extra", classes.Root)
}
