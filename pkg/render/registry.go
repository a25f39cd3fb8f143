package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-paramgen/pkg/extract"
	"github.com/goliatone/go-paramgen/pkg/params"
)

// Formatter renders a single parameter declaration from its definition and
// extracted property map.
type Formatter func(def params.Definition, props *extract.Properties) (string, error)

// Registry stores formatters by parameter kind. Registration is rare and
// last-wins so optional components and tests can override built-ins; lookups
// are concurrent read-only map accesses.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register stores a formatter for a kind, replacing any previous entry.
func (r *Registry) Register(kind string, formatter Formatter) error {
	if kind == "" {
		return fmt.Errorf("render: formatter kind is required")
	}
	if formatter == nil {
		return fmt.Errorf("render: formatter for kind %q is required", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.formatters[kind] = formatter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(kind string, formatter Formatter) {
	if err := r.Register(kind, formatter); err != nil {
		panic(err)
	}
}

// Lookup retrieves the formatter registered for an exact kind.
func (r *Registry) Lookup(kind string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formatter, ok := r.formatters[kind]
	return formatter, ok
}

// Has reports whether a formatter is registered for the kind.
func (r *Registry) Has(kind string) bool {
	_, ok := r.Lookup(kind)
	return ok
}

// Kinds returns the sorted list of registered kinds.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.formatters))
	for kind := range r.formatters {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
