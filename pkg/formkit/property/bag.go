// Package property provides the key/value store backing element state.
//
// A Bag stores explicitly set values only. Readers supply the declared
// default for each property, so a value that was never set and a value set
// to its default are indistinguishable to readers. Change gating (skipping
// writes that match the current value) is the caller's responsibility; Set
// always stores.
package property

// Bag is a map-backed property store with typed, default-aware accessors.
// All accessors return the supplied default when the key is missing or the
// stored value cannot be converted to the requested type.
//
// Bag is not safe for concurrent use.
type Bag struct {
	data map[string]any
}

// New returns an empty Bag.
func New() *Bag {
	return &Bag{data: make(map[string]any)}
}

// FromMap returns a Bag seeded with the given values.
// If data is nil, an empty Bag is returned.
func FromMap(data map[string]any) *Bag {
	b := New()
	for k, v := range data {
		b.data[k] = v
	}
	return b
}

// Set stores value under name unconditionally.
func (b *Bag) Set(name string, value any) {
	b.data[name] = value
}

// Has reports whether name was explicitly set.
func (b *Bag) Has(name string) bool {
	_, ok := b.data[name]
	return ok
}

// Delete removes an explicitly set value, restoring the declared default
// for subsequent reads.
func (b *Bag) Delete(name string) {
	delete(b.data, name)
}

// Any returns the raw value for name, or defaultVal if never set.
func (b *Bag) Any(name string, defaultVal any) any {
	v, ok := b.data[name]
	if !ok {
		return defaultVal
	}
	return v
}

// String returns the string value for name, or defaultVal if missing or
// not a string.
func (b *Bag) String(name, defaultVal string) string {
	v, ok := b.data[name]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for name, or defaultVal if missing or
// not a bool.
func (b *Bag) Bool(name string, defaultVal bool) bool {
	v, ok := b.data[name]
	if !ok {
		return defaultVal
	}
	if bv, ok := v.(bool); ok {
		return bv
	}
	return defaultVal
}

// Int returns the integer value for name, or defaultVal if missing or not
// convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted only when it has no fractional part
func (b *Bag) Int(name string, defaultVal int) int {
	v, ok := b.data[name]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// Float returns the float64 value for name, or defaultVal if missing or
// not convertible.
func (b *Bag) Float(name string, defaultVal float64) float64 {
	v, ok := b.data[name]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	return defaultVal
}

// Len returns the number of explicitly set properties.
func (b *Bag) Len() int {
	return len(b.data)
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (b *Bag) Raw() map[string]any {
	return b.data
}
