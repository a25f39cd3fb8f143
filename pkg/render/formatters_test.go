package render

import (
	"testing"

	"github.com/goliatone/go-paramgen/pkg/extract"
	"github.com/goliatone/go-paramgen/pkg/params"
)

func propertiesOf(pairs ...any) *extract.Properties {
	props := extract.NewProperties()
	for i := 0; i+1 < len(pairs); i += 2 {
		props.Set(pairs[i].(string), pairs[i+1])
	}
	return props
}

func TestStringFormatter(t *testing.T) {
	def := params.StringDefinition{
		Name:         "DEPLOY_ENV",
		Description:  "Environment to deploy to",
		DefaultValue: "staging",
	}
	props := extract.New().Extract(def)

	got, err := StringFormatter(def, props)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "string(name: 'DEPLOY_ENV', defaultValue: 'staging', description: 'Environment to deploy to')"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestStringFormatterEscapesValues(t *testing.T) {
	def := params.StringDefinition{
		Name:        "MSG",
		Description: "it's\nmultiline",
	}
	props := extract.New().Extract(def)

	got, err := StringFormatter(def, props)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := `string(name: 'MSG', defaultValue: '', description: 'it\'s\nmultiline')`
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestBooleanFormatterDefaultIsBare(t *testing.T) {
	def := params.BooleanDefinition{Name: "DRY_RUN", Description: "Skip side effects", DefaultValue: true}
	props := extract.New().Extract(def)

	got, err := BooleanFormatter(def, props)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "booleanParam(name: 'DRY_RUN', defaultValue: true, description: 'Skip side effects')"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestChoiceFormatterKeepsOrder(t *testing.T) {
	def := params.ChoiceDefinition{
		Name:        "REGION",
		Description: "Target region",
		Choices:     []string{"us-east-1", "us-west-2", "eu-west-1"},
	}
	props := extract.New().Extract(def)

	got, err := ChoiceFormatter(def, props)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "choice(name: 'REGION', choices: ['us-east-1', 'us-west-2', 'eu-west-1'], description: 'Target region')"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestKeywordArgumentsFollowPropertyOrder(t *testing.T) {
	props := propertiesOf(
		"name", "BRANCH",
		"branchFilter", "origin/*",
		"quickFilterEnabled", true,
	)

	got := KeywordArguments(props)
	want := "name: 'BRANCH', branchFilter: 'origin/*', quickFilterEnabled: true"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestDeclarativeCall(t *testing.T) {
	props := propertiesOf("name", "BUILD", "filter", "stable")

	got := DeclarativeCall("run", props)
	want := "run(name: 'BUILD', filter: 'stable')"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestClassMapEntry(t *testing.T) {
	props := propertiesOf(
		"name", "BRANCH",
		"description", "Branch to build",
		"branchFilter", "origin/*",
	)

	got := ClassMapEntry("GitParameterDefinition", props)
	want := "[$class: 'GitParameterDefinition', name: 'BRANCH', description: 'Branch to build', branchFilter: 'origin/*']"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestClassMapEntryWithoutProperties(t *testing.T) {
	got := ClassMapEntry("EmptyParameterDefinition", extract.NewProperties())
	want := "[$class: 'EmptyParameterDefinition']"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}
