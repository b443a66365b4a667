// Package style provides the layered style sheet consumed by element class
// resolution.
//
// A sheet carries three layers: a generic element group, a generic error
// group, and per-type overrides. Each group is an Entry: either a single
// root class name or a map of area name to class name. Merge order and
// overwrite-by-key semantics live with the element's class resolution; this
// package only models the sheet.
package style

import "sync"

// Entry is one style-sheet group: a single class name applied to the
// element root, or a map of area name to class name.
//
// The zero Entry contributes nothing when merged.
type Entry struct {
	kind  entryKind
	class string
	areas map[string]string
}

type entryKind int

const (
	entryNone entryKind = iota
	entrySingle
	entryMap
)

// SingleClass returns an Entry carrying one root class name.
func SingleClass(name string) Entry {
	return Entry{kind: entrySingle, class: name}
}

// ClassMap returns an Entry mapping area names to class names.
// The map is referenced, not copied; callers should not modify it after.
func ClassMap(areas map[string]string) Entry {
	return Entry{kind: entryMap, areas: areas}
}

// IsZero reports whether the entry contributes nothing: the zero Entry, or
// a map-form entry with no areas. An empty map never clears existing keys.
func (e Entry) IsZero() bool {
	if e.kind == entryNone {
		return true
	}
	return e.kind == entryMap && len(e.areas) == 0
}

// Single returns the root class name and true when the entry is the
// single-class form.
func (e Entry) Single() (string, bool) {
	if e.kind != entrySingle {
		return "", false
	}
	return e.class, true
}

// Map returns the area map and true when the entry is the map form.
// The returned map should not be modified.
func (e Entry) Map() (map[string]string, bool) {
	if e.kind != entryMap {
		return nil, false
	}
	return e.areas, true
}

// Sheet is a style table layered by genericity. The process-wide default
// sheet (see Default) is shared read-only across all elements; nothing in
// the core mutates a sheet after construction.
type Sheet struct {
	// Element is the generic element group, applied first.
	Element Entry
	// Error is the generic error group, copied into the error sub-area.
	Error Entry
	// Types holds per element-type overrides, applied after the generic
	// groups so type-specific classes win.
	Types map[string]Entry
}

// TypeEntry returns the override entry for a type name.
func (s *Sheet) TypeEntry(typeName string) (Entry, bool) {
	e, ok := s.Types[typeName]
	return e, ok
}

var (
	defaultSheet     *Sheet
	defaultSheetOnce sync.Once
)

// Default returns the process-wide default sheet, computed lazily once and
// shared read-only by every element that was not given its own sheet.
func Default() *Sheet {
	defaultSheetOnce.Do(func() {
		defaultSheet = &Sheet{
			Element: ClassMap(map[string]string{
				"root":        "fk-element",
				"title":       "fk-element__title",
				"description": "fk-element__description",
				"content":     "fk-element__content",
			}),
			Error: ClassMap(map[string]string{
				"root": "fk-error",
				"icon": "fk-error__icon",
				"item": "fk-error__item",
			}),
			Types: map[string]Entry{},
		}
	})
	return defaultSheet
}
