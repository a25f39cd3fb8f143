// Package params defines the parameter definition model consumed by the
// extractor, formatter registry, and generator. Definitions identify a
// parameter's kind by its Jenkins class-style simple name (for example
// StringParameterDefinition) so declarative symbols and ClassMap fallbacks
// both resolve from the same identifier. Kinds that cannot be expressed as
// one of the built-in types use GenericDefinition with an explicit ordered
// property list.
package params
