package params

// Definition describes a single job parameter. Implementations are plain
// data carriers; the extractor discovers their remaining attributes either
// reflectively or through the PropertyLister capability.
type Definition interface {
	// ParameterName returns the parameter identifier. Callers guarantee it is
	// non-empty before generation starts.
	ParameterName() string

	// ParameterDescription returns the human readable description, possibly
	// empty.
	ParameterDescription() string

	// Kind returns the simple class-style identifier of the parameter kind,
	// e.g. "StringParameterDefinition". Formatter and symbol lookups use this
	// value for exact matching.
	Kind() string
}

// Property is a single named value exposed by a definition.
type Property struct {
	Name  string
	Value any
}

// PropertyLister lets a definition enumerate its own renderable properties in
// order, bypassing reflective discovery. Listed values still pass through the
// extractor's exclusion and plain-data filters.
type PropertyLister interface {
	ListProperties() []Property
}
