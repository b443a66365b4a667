package formkit

import (
	"testing"

	"github.com/randalmurphal/formkit/pkg/formkit/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRegistry builds a registry whose fit predicates count invocations.
func countingRegistry(fitCalls *int, fits bool) *widget.Registry {
	r := widget.NewRegistry()
	r.Register(&widget.CustomWidget{
		Name: "stars",
		IsFit: func(d widget.Descriptor) bool {
			*fitCalls++
			return fits && d.ElementType() == "rating"
		},
	})
	return r
}

// TestCustomWidget_ResolvesOnce verifies the lookup runs at most once for
// repeated accesses.
func TestCustomWidget_ResolvesOnce(t *testing.T) {
	fitCalls := 0
	e := New("score",
		WithElementType("rating"),
		WithWidgetRegistry(countingRegistry(&fitCalls, true)))

	first := e.CustomWidget()
	require.NotNil(t, first)
	assert.Equal(t, "stars", first.Name)
	assert.Equal(t, 1, fitCalls)

	second := e.CustomWidget()
	assert.Same(t, first, second)
	assert.Equal(t, 1, fitCalls, "second access must not consult the registry")
}

// TestCustomWidget_MissIsCached verifies a confirmed miss never retries.
func TestCustomWidget_MissIsCached(t *testing.T) {
	fitCalls := 0
	e := New("score",
		WithElementType("rating"),
		WithWidgetRegistry(countingRegistry(&fitCalls, false)))

	assert.Nil(t, e.CustomWidget())
	assert.Equal(t, 1, fitCalls)

	assert.Nil(t, e.CustomWidget())
	assert.Equal(t, 1, fitCalls, "a miss must be cached, not retried")
}

// TestUpdateCustomWidget verifies the forced lookup bypasses the cache and
// replaces it.
func TestUpdateCustomWidget(t *testing.T) {
	r := widget.NewRegistry()
	e := New("score", WithElementType("rating"), WithWidgetRegistry(r))

	// First access: nothing registered, miss cached.
	assert.Nil(t, e.CustomWidget())

	// Registration after the fact is invisible to plain access...
	r.Register(&widget.CustomWidget{
		Name:  "stars",
		IsFit: func(d widget.Descriptor) bool { return d.ElementType() == "rating" },
	})
	assert.Nil(t, e.CustomWidget())

	// ...until a forced refresh.
	e.UpdateCustomWidget()
	got := e.CustomWidget()
	require.NotNil(t, got)
	assert.Equal(t, "stars", got.Name)
}

// TestUpdateCustomWidget_ReplacesWithMiss verifies a refresh can also
// clear a previously found binding.
func TestUpdateCustomWidget_ReplacesWithMiss(t *testing.T) {
	r := widget.NewRegistry()
	r.Register(&widget.CustomWidget{
		Name:  "stars",
		IsFit: func(d widget.Descriptor) bool { return true },
	})
	e := New("score", WithWidgetRegistry(r))
	require.NotNil(t, e.CustomWidget())

	r.Unregister("stars")
	e.UpdateCustomWidget()
	assert.Nil(t, e.CustomWidget())
}
