// Package unochoice adds best-effort support for the Active Choices plugin's
// cascade choice parameter. The kind is optional on the Jenkins side, so its
// formatter and symbol are not part of the built-ins: hosts that can see the
// plugin's parameters call Register explicitly and everything else keeps
// working without this package.
package unochoice

import (
	"fmt"

	"github.com/goliatone/go-paramgen/pkg/extract"
	"github.com/goliatone/go-paramgen/pkg/groovy"
	"github.com/goliatone/go-paramgen/pkg/params"
	"github.com/goliatone/go-paramgen/pkg/render"
)

// KindCascadeChoice is the simple class name of the Active Choices cascade
// parameter.
const KindCascadeChoice = "CascadeChoiceParameter"

// Symbol is the declarative name the plugin registers for the kind.
const Symbol = "activeChoice"

// CascadeChoiceDefinition models a scripted choice parameter whose options
// derive from a Groovy script and, optionally, from other parameters.
type CascadeChoiceDefinition struct {
	Name                 string
	Description          string
	Script               string
	ChoiceType           string
	ReferencedParameters string
	Filterable           bool
}

func (d CascadeChoiceDefinition) ParameterName() string        { return d.Name }
func (d CascadeChoiceDefinition) ParameterDescription() string { return d.Description }
func (d CascadeChoiceDefinition) Kind() string                 { return KindCascadeChoice }

// Register wires the cascade choice formatter and symbol into the supplied
// registries. Nil registries are skipped so callers can opt in to either
// half independently.
func Register(registry *render.Registry, symbols *render.SymbolTable) error {
	if symbols != nil {
		symbols.Register(KindCascadeChoice, Symbol)
	}
	if registry != nil {
		return registry.Register(KindCascadeChoice, Formatter)
	}
	return nil
}

// Formatter renders activeChoice(…) with the script wrapped in a triple
// quoted literal so multi-line scripts survive the paste.
func Formatter(def params.Definition, props *extract.Properties) (string, error) {
	return fmt.Sprintf("activeChoice(name: %s, script: '''%s''', description: %s, choiceType: %s)",
		groovy.Quote(props.String("name")),
		groovy.Escape(props.String("script")),
		groovy.Quote(props.String("description")),
		groovy.Quote(props.String("choiceType")),
	), nil
}
