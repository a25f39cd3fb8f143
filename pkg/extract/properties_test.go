package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPropertiesPreserveInsertionOrder(t *testing.T) {
	props := NewProperties()
	props.Set("name", "DEPLOY_ENV")
	props.Set("description", "Environment")
	props.Set("defaultValue", "staging")
	props.Set("trim", true)

	want := []string{"name", "description", "defaultValue", "trim"}
	if diff := cmp.Diff(want, props.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestPropertiesOverwriteKeepsPosition(t *testing.T) {
	props := NewProperties()
	props.Set("name", "first")
	props.Set("defaultValue", "x")
	props.Set("name", "second")

	want := []string{"name", "defaultValue"}
	if diff := cmp.Diff(want, props.Keys()); diff != "" {
		t.Fatalf("overwrite moved the key (-want +got):\n%s", diff)
	}
	value, ok := props.Get("name")
	if !ok || value != "second" {
		t.Fatalf("overwrite lost the new value: got %v", value)
	}
}

func TestPropertiesTypedAccessors(t *testing.T) {
	props := NewProperties()
	props.Set("name", "X")
	props.Set("trim", true)
	props.Set("choices", []string{"a", "b"})

	if got := props.String("name"); got != "X" {
		t.Fatalf("String: got %q", got)
	}
	if got := props.String("missing"); got != "" {
		t.Fatalf("String on missing key: got %q", got)
	}
	if !props.Bool("trim") {
		t.Fatalf("Bool: expected true")
	}
	if props.Bool("name") {
		t.Fatalf("Bool on string value: expected false")
	}
	if diff := cmp.Diff([]string{"a", "b"}, props.Strings("choices")); diff != "" {
		t.Fatalf("Strings mismatch (-want +got):\n%s", diff)
	}
	if props.Len() != 3 {
		t.Fatalf("Len: got %d", props.Len())
	}
}
