// Package openapi derives job parameter definitions from an OpenAPI
// operation, so pipelines that drive an API can parameterise on its inputs.
// Enumerated inputs become choice parameters, booleans become boolean
// parameters, and everything else falls back to a string parameter carrying
// the schema default.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-paramgen/pkg/params"
)

// Options configures the importer.
type Options struct {
	// ResolveReferences validates the document and resolves external
	// references before the import walks it.
	ResolveReferences bool
}

// Importer maps OpenAPI operation parameters onto job parameter definitions.
type Importer struct {
	options Options
}

// New constructs an Importer with the given options.
func New(options Options) *Importer {
	return &Importer{options: options}
}

// Import loads an OpenAPI document and converts the named operation's
// parameters, in specification order, into definitions.
func (i *Importer) Import(ctx context.Context, data []byte, operationID string) ([]params.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if operationID == "" {
		return nil, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: i.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if i.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	operation, pathParams, err := findOperation(spec, operationID)
	if err != nil {
		return nil, err
	}

	var defs []params.Definition
	for _, ref := range append(append(openapi3.Parameters{}, pathParams...), operation.Parameters...) {
		if ref == nil || ref.Value == nil {
			continue
		}
		if def := convertParameter(ref.Value); def != nil {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

func findOperation(spec *openapi3.T, operationID string) (*openapi3.Operation, openapi3.Parameters, error) {
	if spec.Paths == nil {
		return nil, nil, errors.New("openapi: document does not contain any paths")
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation, item.Parameters, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("openapi: operation %q not found", operationID)
}

func convertParameter(p *openapi3.Parameter) params.Definition {
	if p.Name == "" || p.Schema == nil || p.Schema.Value == nil {
		return nil
	}
	schema := p.Schema.Value

	description := strings.TrimSpace(p.Description)
	if description == "" {
		description = strings.TrimSpace(schema.Description)
	}

	if len(schema.Enum) > 0 {
		choices := make([]string, 0, len(schema.Enum))
		for _, value := range schema.Enum {
			choices = append(choices, fmt.Sprint(value))
		}
		return params.ChoiceDefinition{
			Name:        p.Name,
			Description: description,
			Choices:     choices,
		}
	}

	if schemaType(schema) == "boolean" {
		defaultValue, _ := schema.Default.(bool)
		return params.BooleanDefinition{
			Name:         p.Name,
			Description:  description,
			DefaultValue: defaultValue,
		}
	}

	defaultValue := ""
	if schema.Default != nil {
		defaultValue = fmt.Sprint(schema.Default)
	}
	return params.StringDefinition{
		Name:         p.Name,
		Description:  description,
		DefaultValue: defaultValue,
	}
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
