package jobspec

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paramgen/pkg/params"
)

// Decode turns a raw job definition payload into a Document. Payloads opening
// with an XML tag are treated as a Jenkins config.xml; everything else is
// parsed as a JSON job spec first and as YAML second, since every JSON spec
// is also valid YAML.
func Decode(data []byte, origin string) (Document, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return Document{}, fmt.Errorf("jobspec: document %s is empty", origin)
	}

	if strings.HasPrefix(trimmed, "<") {
		return decodeConfigXML(data, origin)
	}
	return decodeSpec(data, origin)
}

type specFile struct {
	Parameters []specParameter `json:"parameters" yaml:"parameters"`
}

type specParameter struct {
	Kind        string         `json:"kind" yaml:"kind"`
	Class       string         `json:"class" yaml:"class"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Default     any            `json:"default" yaml:"default"`
	Choices     []string       `json:"choices" yaml:"choices"`
	Trim        bool           `json:"trim" yaml:"trim"`
	Project     string         `json:"project" yaml:"project"`
	Filter      string         `json:"filter" yaml:"filter"`
	Properties  map[string]any `json:"properties" yaml:"properties"`
}

func decodeSpec(data []byte, origin string) (Document, error) {
	var file specFile
	if err := json.Unmarshal(data, &file); err != nil {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Document{}, fmt.Errorf("jobspec: parse %s: invalid JSON or YAML", origin)
		}
	}

	doc := Document{Origin: origin}
	for i, raw := range file.Parameters {
		def, err := raw.definition()
		if err != nil {
			return Document{}, fmt.Errorf("jobspec: %s parameter %d: %w", origin, i, err)
		}
		doc.Parameters = append(doc.Parameters, def)
	}
	return doc, nil
}

func (p specParameter) definition() (params.Definition, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	switch strings.ToLower(strings.TrimSpace(p.Kind)) {
	case "string":
		return params.StringDefinition{
			Name:         p.Name,
			Description:  p.Description,
			DefaultValue: p.defaultString(),
			Trim:         p.Trim,
		}, nil
	case "text":
		return params.TextDefinition{
			Name:         p.Name,
			Description:  p.Description,
			DefaultValue: p.defaultString(),
		}, nil
	case "boolean", "bool":
		return params.BooleanDefinition{
			Name:         p.Name,
			Description:  p.Description,
			DefaultValue: p.defaultBool(),
		}, nil
	case "choice":
		if len(p.Choices) == 0 {
			return nil, fmt.Errorf("choice parameter needs at least one choice")
		}
		return params.ChoiceDefinition{
			Name:        p.Name,
			Description: p.Description,
			Choices:     append([]string(nil), p.Choices...),
		}, nil
	case "password":
		return params.PasswordDefinition{
			Name:         p.Name,
			Description:  p.Description,
			DefaultValue: p.defaultString(),
		}, nil
	case "run":
		return params.RunDefinition{
			Name:        p.Name,
			Description: p.Description,
			ProjectName: p.Project,
			Filter:      p.Filter,
		}, nil
	case "file":
		return params.FileDefinition{
			Name:        p.Name,
			Description: p.Description,
		}, nil
	case "":
		if p.Class == "" {
			return nil, fmt.Errorf("kind or class is required")
		}
		return p.generic(p.Class), nil
	default:
		// An unrecognised kind becomes a class-tagged generic definition so
		// plugin parameters still produce output.
		class := p.Class
		if class == "" {
			class = p.Kind
		}
		return p.generic(class), nil
	}
}

// generic builds a GenericDefinition from the free-form properties map. JSON
// and YAML maps have no stable order, so keys are sorted to keep the output
// deterministic.
func (p specParameter) generic(class string) params.GenericDefinition {
	def := params.GenericDefinition{
		Class:       class,
		Name:        p.Name,
		Description: p.Description,
	}
	keys := make([]string, 0, len(p.Properties))
	for key := range p.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		def.Properties = append(def.Properties, params.Property{Name: key, Value: p.Properties[key]})
	}
	return def
}

func (p specParameter) defaultString() string {
	switch v := p.Default.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (p specParameter) defaultBool() bool {
	switch v := p.Default.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(v)
		return err == nil && parsed
	default:
		return false
	}
}
