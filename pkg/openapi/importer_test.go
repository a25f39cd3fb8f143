package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramgen/pkg/params"
)

const deployAPI = `
openapi: 3.0.3
info:
  title: Deploy API
  version: "1.0"
paths:
  /deployments/{service}:
    parameters:
      - name: service
        in: path
        required: true
        description: Service to deploy
        schema:
          type: string
          default: api
    post:
      operationId: createDeployment
      parameters:
        - name: environment
          in: query
          schema:
            type: string
            enum: [staging, production]
        - name: dryRun
          in: query
          description: Skip side effects
          schema:
            type: boolean
            default: true
        - name: replicas
          in: query
          schema:
            type: integer
            default: 3
      responses:
        "201":
          description: created
    get:
      operationId: listDeployments
      responses:
        "200":
          description: ok
`

func TestImportConvertsOperationParameters(t *testing.T) {
	defs, err := New(Options{}).Import(context.Background(), []byte(deployAPI), "createDeployment")
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	want := []params.Definition{
		params.StringDefinition{Name: "service", Description: "Service to deploy", DefaultValue: "api"},
		params.ChoiceDefinition{Name: "environment", Choices: []string{"staging", "production"}},
		params.BooleanDefinition{Name: "dryRun", Description: "Skip side effects", DefaultValue: true},
		params.StringDefinition{Name: "replicas", DefaultValue: "3"},
	}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Fatalf("definitions mismatch (-want +got):\n%s", diff)
	}
}

func TestImportOperationWithoutParameters(t *testing.T) {
	defs, err := New(Options{}).Import(context.Background(), []byte(deployAPI), "listDeployments")
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	// Path-level parameters still apply to every operation on the path.
	want := []params.Definition{
		params.StringDefinition{Name: "service", Description: "Service to deploy", DefaultValue: "api"},
	}
	if diff := cmp.Diff(want, defs); diff != "" {
		t.Fatalf("definitions mismatch (-want +got):\n%s", diff)
	}
}

func TestImportUnknownOperation(t *testing.T) {
	if _, err := New(Options{}).Import(context.Background(), []byte(deployAPI), "deleteDeployment"); err == nil {
		t.Fatalf("expected an error for an unknown operation id")
	}
}

func TestImportValidatesInput(t *testing.T) {
	importer := New(Options{})

	if _, err := importer.Import(context.Background(), nil, "createDeployment"); err == nil {
		t.Fatalf("expected an error for an empty payload")
	}
	if _, err := importer.Import(context.Background(), []byte(deployAPI), ""); err == nil {
		t.Fatalf("expected an error for a missing operation id")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := importer.Import(ctx, []byte(deployAPI), "createDeployment"); err == nil {
		t.Fatalf("expected an error for a cancelled context")
	}
}
