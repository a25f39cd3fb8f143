package scaffold

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleBlock = "parameters {\n" +
	"    string(name: 'DEPLOY_ENV', defaultValue: 'staging', description: '')\n" +
	"}\n"

func TestRenderDefaultSkeleton(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := s.Render(sampleBlock, RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "pipeline {\n" +
		"    agent any\n" +
		"\n" +
		"    parameters {\n" +
		"        string(name: 'DEPLOY_ENV', defaultValue: 'staging', description: '')\n" +
		"    }\n" +
		"    stages {\n" +
		"        stage('Build') {\n" +
		"            steps {\n" +
		"                echo 'TODO: implement Build'\n" +
		"            }\n" +
		"        }\n" +
		"    }\n" +
		"}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("skeleton mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCustomAgentAndStages(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := s.Render(sampleBlock, RenderOptions{
		Agent:  "{ label 'linux' }",
		Stages: []string{"Build", "Test", "Deploy"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, "agent { label 'linux' }") {
		t.Fatalf("custom agent missing:\n%s", got)
	}
	for _, stage := range []string{"Build", "Test", "Deploy"} {
		if !strings.Contains(got, "stage('"+stage+"')") {
			t.Fatalf("stage %q missing:\n%s", stage, got)
		}
	}
	if strings.Index(got, "stage('Test')") < strings.Index(got, "stage('Build')") {
		t.Fatalf("stage order not preserved:\n%s", got)
	}
}

func TestRenderKeepsBlockVerbatim(t *testing.T) {
	block := "properties([\n" +
		"    parameters([\n" +
		"        [$class: 'GitParameterDefinition', name: 'BRANCH'],\n" +
		"    ])\n" +
		"])\n"

	s, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	got, err := s.Render(block, RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(got, "        [$class: 'GitParameterDefinition', name: 'BRANCH'],\n") {
		t.Fatalf("block content altered:\n%s", got)
	}
}

func TestEngineRequiresTemplateSource(t *testing.T) {
	if _, err := NewEngine(); err == nil {
		t.Fatalf("expected an error with neither base dir nor fs")
	}
}

func TestEngineUnknownTemplate(t *testing.T) {
	engine, err := NewEngine(WithFS(TemplatesFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("templates/missing", nil); err == nil {
		t.Fatalf("expected an error for an unknown template")
	}
}
