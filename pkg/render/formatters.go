package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-paramgen/pkg/extract"
	"github.com/goliatone/go-paramgen/pkg/groovy"
	"github.com/goliatone/go-paramgen/pkg/params"
)

// Builtin returns a registry populated with the declarative formatters for
// the string, boolean, and choice kinds. Their output is contractual: the
// rendered lines must paste directly into a declarative pipeline.
func Builtin() *Registry {
	registry := NewRegistry()
	registry.MustRegister(params.KindString, StringFormatter)
	registry.MustRegister(params.KindBoolean, BooleanFormatter)
	registry.MustRegister(params.KindChoice, ChoiceFormatter)
	return registry
}

// StringFormatter renders string(name: …, defaultValue: …, description: …).
func StringFormatter(def params.Definition, props *extract.Properties) (string, error) {
	return fmt.Sprintf("string(name: %s, defaultValue: %s, description: %s)",
		groovy.Quote(props.String("name")),
		groovy.Quote(props.String("defaultValue")),
		groovy.Quote(props.String("description")),
	), nil
}

// BooleanFormatter renders booleanParam(…) with a bare, never quoted,
// boolean default.
func BooleanFormatter(def params.Definition, props *extract.Properties) (string, error) {
	return fmt.Sprintf("booleanParam(name: %s, defaultValue: %s, description: %s)",
		groovy.Quote(props.String("name")),
		strconv.FormatBool(props.Bool("defaultValue")),
		groovy.Quote(props.String("description")),
	), nil
}

// ChoiceFormatter renders choice(…) with the choices in their original
// order, each escaped individually.
func ChoiceFormatter(def params.Definition, props *extract.Properties) (string, error) {
	return fmt.Sprintf("choice(name: %s, choices: %s, description: %s)",
		groovy.Quote(props.String("name")),
		groovy.List(props.Strings("choices")),
		groovy.Quote(props.String("description")),
	), nil
}

// KeywordArguments renders the property map as a comma separated keyword
// argument list, preserving discovery order. It backs both the generic
// declarative form symbol(k: v, …) and the ClassMap property tail.
func KeywordArguments(props *extract.Properties) string {
	var b strings.Builder
	for i, key := range props.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		value, _ := props.Get(key)
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(groovy.Literal(value))
	}
	return b.String()
}

// DeclarativeCall renders symbol(k: v, …) for kinds that have a declarative
// name but no registered formatter.
func DeclarativeCall(symbol string, props *extract.Properties) string {
	return symbol + "(" + KeywordArguments(props) + ")"
}

// ClassMapEntry renders the uniform [$class: 'Kind', k: v, …] fallback used
// when a block mixes kinds without declarative names.
func ClassMapEntry(kind string, props *extract.Properties) string {
	var b strings.Builder
	b.WriteString("[$class: ")
	b.WriteString(groovy.Quote(kind))
	if props.Len() > 0 {
		b.WriteString(", ")
		b.WriteString(KeywordArguments(props))
	}
	b.WriteString("]")
	return b.String()
}
