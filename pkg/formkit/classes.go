package formkit

import "github.com/randalmurphal/formkit/pkg/formkit/style"

// Classes is the resolved set of style classes for one element. Root and
// Areas describe the element itself; Error always carries the error
// sub-area, even when no error classes are defined.
type Classes struct {
	// Root is the class applied to the element root.
	Root string
	// Areas maps the remaining area names to their classes.
	Areas map[string]string
	// Error maps error-display area names to their classes.
	Error map[string]string
}

// CSSClasses computes the element's style classes by layering, in order:
// the sheet's generic element group, its generic error group, the per-type
// override for the element's declared type, and finally the attached
// container's customization hook. Later layers overwrite earlier ones per
// key, so type-specific classes beat generic ones and container
// customization beats everything.
//
// The result is freshly allocated on every call and never memoized; callers
// may mutate it freely.
func (e *Element) CSSClasses() *Classes {
	sheet := e.styleSheet()
	classes := &Classes{
		Areas: make(map[string]string),
		Error: make(map[string]string),
	}

	applyElementEntry(classes, sheet.Element)
	applyErrorEntry(classes, sheet.Error)

	if entry, ok := sheet.TypeEntry(e.typeName); ok {
		applyElementEntry(classes, entry)
	}

	if e.container != nil {
		e.container.UpdateElementCSSClasses(e, classes)
	}
	return classes
}

// applyElementEntry merges a style entry into the element areas. A
// single-class entry replaces Root; a map entry overwrites per key, with
// the "root" key routed to Root. A zero entry (including an empty map)
// contributes nothing and never clears existing keys.
func applyElementEntry(classes *Classes, entry style.Entry) {
	if entry.IsZero() {
		return
	}
	if class, ok := entry.Single(); ok {
		classes.Root = class
		return
	}
	areas, _ := entry.Map()
	for area, class := range areas {
		if area == "root" {
			classes.Root = class
		} else {
			classes.Areas[area] = class
		}
	}
}

// applyErrorEntry merges a style entry into the error sub-area using the
// same single-or-map rule; a single class becomes the error root.
func applyErrorEntry(classes *Classes, entry style.Entry) {
	if entry.IsZero() {
		return
	}
	if class, ok := entry.Single(); ok {
		classes.Error["root"] = class
		return
	}
	areas, _ := entry.Map()
	for area, class := range areas {
		classes.Error[area] = class
	}
}
