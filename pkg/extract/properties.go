package extract

// Properties is an insertion-ordered mapping from property name to value.
// Re-setting an existing key updates the value in place without moving the
// key, so seeded entries like name stay first through rendering.
type Properties struct {
	keys   []string
	values map[string]any
}

// NewProperties returns an empty property map.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]any)}
}

// Set stores a value under name, preserving the position of an existing key.
func (p *Properties) Set(name string, value any) {
	if _, exists := p.values[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
}

// Get returns the value stored under name.
func (p *Properties) Get(name string) (any, bool) {
	value, ok := p.values[name]
	return value, ok
}

// Has reports whether name is present.
func (p *Properties) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// String returns the value under name when it is a string, or the empty
// string otherwise. Formatters rely on this for fields that may be absent.
func (p *Properties) String(name string) string {
	if value, ok := p.values[name].(string); ok {
		return value
	}
	return ""
}

// Bool returns the value under name when it is a bool, or false otherwise.
func (p *Properties) Bool(name string) bool {
	if value, ok := p.values[name].(bool); ok {
		return value
	}
	return false
}

// Strings returns the value under name when it is a []string, or nil.
func (p *Properties) Strings(name string) []string {
	if value, ok := p.values[name].([]string); ok {
		return value
	}
	return nil
}

// Keys returns the property names in insertion order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of stored properties.
func (p *Properties) Len() int {
	return len(p.keys)
}
