package params

// Kind identifiers for the built-in parameter definitions. They mirror the
// simple class names Jenkins core uses so config.xml payloads map one to one.
const (
	KindString   = "StringParameterDefinition"
	KindText     = "TextParameterDefinition"
	KindBoolean  = "BooleanParameterDefinition"
	KindChoice   = "ChoiceParameterDefinition"
	KindPassword = "PasswordParameterDefinition"
	KindRun      = "RunParameterDefinition"
	KindFile     = "FileParameterDefinition"
)

// StringDefinition is a single-line text parameter.
type StringDefinition struct {
	Name         string
	Description  string
	DefaultValue string
	Trim         bool
}

func (d StringDefinition) ParameterName() string        { return d.Name }
func (d StringDefinition) ParameterDescription() string { return d.Description }
func (d StringDefinition) Kind() string                 { return KindString }

// TextDefinition is a multi-line text parameter.
type TextDefinition struct {
	Name         string
	Description  string
	DefaultValue string
}

func (d TextDefinition) ParameterName() string        { return d.Name }
func (d TextDefinition) ParameterDescription() string { return d.Description }
func (d TextDefinition) Kind() string                 { return KindText }

// BooleanDefinition is a true/false parameter.
type BooleanDefinition struct {
	Name         string
	Description  string
	DefaultValue bool
}

func (d BooleanDefinition) ParameterName() string        { return d.Name }
func (d BooleanDefinition) ParameterDescription() string { return d.Description }
func (d BooleanDefinition) Kind() string                 { return KindBoolean }

// ChoiceDefinition offers a fixed, ordered list of values.
type ChoiceDefinition struct {
	Name        string
	Description string
	Choices     []string
}

func (d ChoiceDefinition) ParameterName() string        { return d.Name }
func (d ChoiceDefinition) ParameterDescription() string { return d.Description }
func (d ChoiceDefinition) Kind() string                 { return KindChoice }

// PasswordDefinition is a masked text parameter. The default value carried
// here is whatever the job definition exposes; secret-storage fields are
// filtered by the extractor's exclusion set.
type PasswordDefinition struct {
	Name         string
	Description  string
	DefaultValue string
}

func (d PasswordDefinition) ParameterName() string        { return d.Name }
func (d PasswordDefinition) ParameterDescription() string { return d.Description }
func (d PasswordDefinition) Kind() string                 { return KindPassword }

// RunDefinition selects a build of another project.
type RunDefinition struct {
	Name        string
	Description string
	ProjectName string
	Filter      string
}

func (d RunDefinition) ParameterName() string        { return d.Name }
func (d RunDefinition) ParameterDescription() string { return d.Description }
func (d RunDefinition) Kind() string                 { return KindRun }

// FileDefinition uploads a file into the workspace.
type FileDefinition struct {
	Name        string
	Description string
}

func (d FileDefinition) ParameterName() string        { return d.Name }
func (d FileDefinition) ParameterDescription() string { return d.Description }
func (d FileDefinition) Kind() string                 { return KindFile }

// GenericDefinition carries a parameter of a kind this module has no typed
// representation for, such as one contributed by a Jenkins plugin. Properties
// keep the order they were discovered in.
type GenericDefinition struct {
	Class       string
	Name        string
	Description string
	Properties  []Property
}

func (d GenericDefinition) ParameterName() string        { return d.Name }
func (d GenericDefinition) ParameterDescription() string { return d.Description }
func (d GenericDefinition) Kind() string                 { return d.Class }

// ListProperties satisfies PropertyLister so generic definitions skip
// reflective discovery entirely.
func (d GenericDefinition) ListProperties() []Property {
	out := make([]Property, len(d.Properties))
	copy(out, d.Properties)
	return out
}
