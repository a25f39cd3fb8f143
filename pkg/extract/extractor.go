package extract

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-paramgen/pkg/params"
)

// modulePath anchors the internal-namespace filter: values whose types live
// inside this module belong to the generator's own object graph, not to the
// parameter's data, and never enter a property map.
const modulePath = "github.com/goliatone/go-paramgen"

// defaultExclusions lists property names that are never renderable: runtime
// identity, host bookkeeping, derived fields, and the accessors definitions
// implement for the Definition and PropertyLister contracts.
var defaultExclusions = []string{
	"class",
	"descriptor",
	"type",
	"formattedDescription",
	"defaultParameterValue",
	"defaultValueAsSecret",
	"parameterName",
	"parameterDescription",
	"kind",
	"listProperties",
}

// Option customises an Extractor before first use.
type Option func(*Extractor)

// WithExclusions adds property names to the exclusion set.
func WithExclusions(names ...string) Option {
	return func(e *Extractor) {
		for _, name := range names {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				continue
			}
			e.excluded[trimmed] = struct{}{}
		}
	}
}

// WithInternalNamespaces adds package path prefixes whose types are treated
// as internal, non-data values and filtered out of property maps.
func WithInternalNamespaces(prefixes ...string) Option {
	return func(e *Extractor) {
		for _, prefix := range prefixes {
			trimmed := strings.TrimSpace(prefix)
			if trimmed == "" {
				continue
			}
			e.internal = append(e.internal, trimmed)
		}
	}
}

// WithSanitizedDescriptions strips HTML markup from descriptions before they
// enter the property map. Jenkins descriptions frequently carry markup that
// has no place inside a Groovy string literal.
func WithSanitizedDescriptions() Option {
	return func(e *Extractor) {
		e.sanitize = true
	}
}

// Extractor builds ordered property maps from parameter definitions.
type Extractor struct {
	excluded map[string]struct{}
	internal []string
	sanitize bool
}

// New constructs an Extractor with the default exclusion set and the module's
// own package tree as the internal namespace.
func New(options ...Option) *Extractor {
	e := &Extractor{
		excluded: make(map[string]struct{}, len(defaultExclusions)),
		internal: []string{modulePath},
	}
	for _, name := range defaultExclusions {
		e.excluded[name] = struct{}{}
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Extract produces the ordered property map for a definition. The name key is
// always present and first; description follows when non-empty. Extraction
// never fails: unreadable or unrepresentable properties are dropped.
func (e *Extractor) Extract(def params.Definition) *Properties {
	props := NewProperties()
	props.Set("name", def.ParameterName())

	description := def.ParameterDescription()
	if e.sanitize {
		description = PlainText(description)
	}
	if description != "" {
		props.Set("description", description)
	}

	if lister, ok := def.(params.PropertyLister); ok {
		for _, prop := range listProperties(lister) {
			e.admit(props, prop.Name, prop.Value)
		}
		return props
	}

	e.walkFields(props, def)
	e.walkMethods(props, def)
	return props
}

// admit applies the exclusion set, nil filter, internal-namespace filter, and
// plain-data filter before storing a discovered property.
func (e *Extractor) admit(props *Properties, name string, value any) {
	if name == "" || value == nil {
		return
	}
	if _, excluded := e.excluded[name]; excluded {
		return
	}
	if e.isInternal(reflect.TypeOf(value)) {
		return
	}
	plain, ok := plainValue(value)
	if !ok {
		return
	}
	if name == "description" {
		text, isString := plain.(string)
		if !isString || text == "" {
			return
		}
		if e.sanitize {
			text = PlainText(text)
			if text == "" {
				return
			}
		}
		plain = text
	}
	props.Set(name, plain)
}

func (e *Extractor) walkFields(props *Properties, def params.Definition) {
	rv := reflect.ValueOf(def)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		value := rv.Field(i).Interface()
		e.admit(props, propertyName(field.Name), value)
	}
}

func (e *Extractor) walkMethods(props *Properties, def params.Definition) {
	rv := reflect.ValueOf(def)
	rt := rv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		if method.Type.NumIn() != 1 || method.Type.NumOut() != 1 {
			continue
		}
		name := propertyName(method.Name)
		if _, excluded := e.excluded[name]; excluded {
			continue
		}
		value, ok := safeCall(rv.Method(i))
		if !ok {
			continue
		}
		e.admit(props, name, value)
	}
}

func (e *Extractor) isInternal(t reflect.Type) bool {
	for t != nil && (t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice) {
		t = t.Elem()
	}
	if t == nil {
		return false
	}
	pkg := t.PkgPath()
	if pkg == "" {
		return false
	}
	for _, prefix := range e.internal {
		if strings.HasPrefix(pkg, prefix) {
			return true
		}
	}
	return false
}

// safeCall invokes a zero-argument accessor, converting a panic into an
// absent property.
func safeCall(fn reflect.Value) (value any, ok bool) {
	defer func() {
		if recover() != nil {
			value, ok = nil, false
		}
	}()
	out := fn.Call(nil)
	if len(out) != 1 {
		return nil, false
	}
	result := out[0]
	switch result.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		if result.IsNil() {
			return nil, false
		}
	}
	return result.Interface(), true
}

// listProperties guards the PropertyLister capability the same way accessor
// calls are guarded: a panicking implementation yields no extra properties.
func listProperties(lister params.PropertyLister) (props []params.Property) {
	defer func() {
		if recover() != nil {
			props = nil
		}
	}()
	return lister.ListProperties()
}

// plainValue reports whether a value is plain data (string, bool, number, or
// ordered string sequence) and normalises named types to their underlying
// representation. Typed nils count as absent.
func plainValue(value any) (any, bool) {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Slice:
		if rv.IsNil() || rv.Type().Elem().Kind() != reflect.String {
			return nil, false
		}
		out := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).String()
		}
		return out, true
	default:
		return nil, false
	}
}

// propertyName converts a Go field or accessor name into the lowerCamel key
// used in rendered output, stripping Get/Is accessor prefixes.
func propertyName(goName string) string {
	name := goName
	switch {
	case len(name) > 3 && strings.HasPrefix(name, "Get") && unicode.IsUpper(rune(name[3])):
		name = name[3:]
	case len(name) > 2 && strings.HasPrefix(name, "Is") && unicode.IsUpper(rune(name[2])):
		name = name[2:]
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
