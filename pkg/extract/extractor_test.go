package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramgen/pkg/params"
)

type moduleToken string

type accessorDef struct {
	Name        string
	Description string
	Type        string
	Descriptor  string
	Secret      moduleToken
}

func (d accessorDef) ParameterName() string        { return d.Name }
func (d accessorDef) ParameterDescription() string { return d.Description }
func (d accessorDef) Kind() string                 { return "AccessorParameterDefinition" }

func (d accessorDef) Script() string          { return "return ['a']" }
func (d accessorDef) GetChoiceType() string   { return "PT_SINGLE_SELECT" }
func (d accessorDef) IsFilterable() bool      { return true }
func (d accessorDef) Broken() string          { panic("inaccessible") }
func (d accessorDef) WithArg(s string) string { return s }
func (d accessorDef) Pair() (string, string)  { return "a", "b" }

func TestExtractSeedsNameFirstAndDescriptionWhenPresent(t *testing.T) {
	def := params.StringDefinition{
		Name:         "DEPLOY_ENV",
		Description:  "Environment to deploy to",
		DefaultValue: "staging",
	}

	props := New().Extract(def)

	want := []string{"name", "description", "defaultValue", "trim"}
	if diff := cmp.Diff(want, props.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
	if got := props.String("name"); got != "DEPLOY_ENV" {
		t.Fatalf("name: got %q", got)
	}
}

func TestExtractOmitsEmptyDescription(t *testing.T) {
	props := New().Extract(params.StringDefinition{Name: "X"})

	if props.Has("description") {
		t.Fatalf("empty description should be absent, keys: %v", props.Keys())
	}
	if props.Keys()[0] != "name" {
		t.Fatalf("name must stay first, keys: %v", props.Keys())
	}
}

func TestExtractDropsNilSequences(t *testing.T) {
	props := New().Extract(params.ChoiceDefinition{Name: "REGION"})

	if props.Has("choices") {
		t.Fatalf("nil choices should be absent, keys: %v", props.Keys())
	}

	props = New().Extract(params.ChoiceDefinition{
		Name:    "REGION",
		Choices: []string{"us-east-1", "us-west-2"},
	})
	if diff := cmp.Diff([]string{"us-east-1", "us-west-2"}, props.Strings("choices")); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractAppliesExclusionsAndFilters(t *testing.T) {
	def := accessorDef{
		Name:       "X",
		Type:       "internal",
		Descriptor: "internal",
		Secret:     "s3cret",
	}

	props := New().Extract(def)

	for _, excluded := range []string{"type", "descriptor", "kind", "parameterName", "parameterDescription"} {
		if props.Has(excluded) {
			t.Fatalf("excluded property %q leaked into %v", excluded, props.Keys())
		}
	}
	// Secret's type lives in this module's package tree.
	if props.Has("secret") {
		t.Fatalf("internal-namespace value leaked into %v", props.Keys())
	}
}

func TestExtractDiscoversAccessorMethods(t *testing.T) {
	props := New().Extract(accessorDef{Name: "X"})

	if got := props.String("script"); got != "return ['a']" {
		t.Fatalf("script: got %q", got)
	}
	if got := props.String("choiceType"); got != "PT_SINGLE_SELECT" {
		t.Fatalf("Get prefix not stripped: got %q (keys %v)", got, props.Keys())
	}
	if !props.Bool("filterable") {
		t.Fatalf("Is prefix not stripped, keys: %v", props.Keys())
	}
	if props.Has("withArg") || props.Has("pair") {
		t.Fatalf("non-accessor methods leaked into %v", props.Keys())
	}
}

func TestExtractSkipsPanickingAccessor(t *testing.T) {
	props := New().Extract(accessorDef{Name: "X"})

	if props.Has("broken") {
		t.Fatalf("panicking accessor should be skipped, keys: %v", props.Keys())
	}
	// Extraction continued past the failure.
	if !props.Has("script") {
		t.Fatalf("extraction stopped at the failing accessor, keys: %v", props.Keys())
	}
}

func TestExtractUsesPropertyLister(t *testing.T) {
	def := params.GenericDefinition{
		Class:       "GitParameterDefinition",
		Name:        "BRANCH",
		Description: "Branch to build",
		Properties: []params.Property{
			{Name: "branchFilter", Value: "origin/*"},
			{Name: "type", Value: "should be excluded"},
			{Name: "quickFilterEnabled", Value: true},
			{Name: "gone", Value: nil},
		},
	}

	props := New().Extract(def)

	want := []string{"name", "description", "branchFilter", "quickFilterEnabled"}
	if diff := cmp.Diff(want, props.Keys()); diff != "" {
		t.Fatalf("lister keys mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSanitisesDescriptions(t *testing.T) {
	extractor := New(WithSanitizedDescriptions())
	props := extractor.Extract(params.StringDefinition{
		Name:        "X",
		Description: "<b>Environment</b> to deploy &amp; verify",
	})

	if got := props.String("description"); got != "Environment to deploy & verify" {
		t.Fatalf("sanitised description: got %q", got)
	}
}

func TestExtractCustomExclusionsAndNamespaces(t *testing.T) {
	extractor := New(WithExclusions("script"))
	props := extractor.Extract(accessorDef{Name: "X"})
	if props.Has("script") {
		t.Fatalf("custom exclusion ignored, keys: %v", props.Keys())
	}
}
