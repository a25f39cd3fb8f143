package paramgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramgen/pkg/params"
)

func TestGenerate(t *testing.T) {
	defs := []params.Definition{
		params.StringDefinition{Name: "DEPLOY_ENV", Description: "Environment to deploy to", DefaultValue: "staging"},
		params.ChoiceDefinition{Name: "REGION", Choices: []string{"us-east-1", "us-west-2"}},
	}

	got, err := Generate(context.Background(), defs)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := "parameters {\n" +
		"    string(name: 'DEPLOY_ENV', defaultValue: 'staging', description: 'Environment to deploy to')\n" +
		"    choice(name: 'REGION', choices: ['us-east-1', 'us-west-2'], description: '')\n" +
		"}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("block mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateForcedSyntax(t *testing.T) {
	defs := []params.Definition{
		params.BooleanDefinition{Name: "DRY_RUN"},
	}

	got, err := Generate(context.Background(), defs, WithSyntax(SyntaxScripted))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := "properties([\n" +
		"    parameters([\n" +
		"        [$class: 'BooleanParameterDefinition', name: 'DRY_RUN', defaultValue: false],\n" +
		"    ])\n" +
		"])\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("block mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFromSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.xml")
	payload := `<project>
  <properties>
    <hudson.model.ParametersDefinitionProperty>
      <parameterDefinitions>
        <hudson.model.StringParameterDefinition>
          <name>VERSION</name>
          <defaultValue>1.0.0</defaultValue>
        </hudson.model.StringParameterDefinition>
      </parameterDefinitions>
    </hudson.model.ParametersDefinitionProperty>
  </properties>
</project>`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := GenerateFromSource(context.Background(), SourceFromFile(path))
	if err != nil {
		t.Fatalf("generate from source: %v", err)
	}

	want := "parameters {\n" +
		"    string(name: 'VERSION', defaultValue: '1.0.0', description: '')\n" +
		"}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("block mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFromSourceMissingFile(t *testing.T) {
	src := SourceFromFile(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := GenerateFromSource(context.Background(), src); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
