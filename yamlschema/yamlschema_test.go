package yamlschema_test

import (
	"errors"
	"strings"
	"testing"

	typedmap "github.com/reoring/typedmap"
	"github.com/reoring/typedmap/yamlschema"
)

const personDoc = `
Person:
  name: string
  age: integer
  nick: {type: string, optional: true}
`

func TestImport_Person(t *testing.T) {
	rec, err := yamlschema.Import([]byte(personDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if rec.Name != "Person" || len(rec.Fields) != 3 {
		t.Fatalf("unexpected record: %#v", rec)
	}

	ok, err := typedmap.ValidateJSON([]byte(`{"name":"John","age":30}`), rec)
	if !ok || err != nil {
		t.Fatalf("expected valid, got ok=%v err=%v", ok, err)
	}

	_, err = typedmap.ValidateJSON([]byte(`{"name":"John"}`), rec)
	var missing *typedmap.MissingKeyError
	if !errors.As(err, &missing) || missing.Key != "age" {
		t.Fatalf("expected MissingKeyError for age, got %v", err)
	}

	_, err = typedmap.ValidateJSON([]byte(`{"name":"John","age":30,"nick":0}`), rec)
	var mismatch *typedmap.TypeMismatchError
	if !errors.As(err, &mismatch) || mismatch.Key != "nick" {
		t.Fatalf("expected mismatch at nick, got %v", err)
	}
}

func TestImport_FieldOrderDeterminism(t *testing.T) {
	rec, err := yamlschema.Import([]byte("Pair:\n  a: string\n  b: string\n"))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	// both keys absent: always the first declared field
	for i := 0; i < 10; i++ {
		_, err := typedmap.Validate(map[string]any{}, rec)
		var missing *typedmap.MissingKeyError
		if !errors.As(err, &missing) || missing.Key != "a" {
			t.Fatalf("expected MissingKeyError for a, got %v", err)
		}
	}
}

const entityDoc = `
Entity:
  entity: {union: [Person, Company]}
Person:
  name: string
  age: integer
Company:
  name: string
  employees: integer
`

func TestImport_UnionWithForwardReferences(t *testing.T) {
	rec, err := yamlschema.Import([]byte(entityDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if rec.Name != "Entity" {
		t.Fatalf("root must be the first declared record, got %q", rec.Name)
	}

	ok, err := typedmap.ValidateJSON([]byte(`{"entity":{"name":"ACME","employees":10}}`), rec)
	if !ok || err != nil {
		t.Fatalf("expected valid, got ok=%v err=%v", ok, err)
	}

	// every branch fails with a missing key, so the union reports one
	_, err = typedmap.ValidateJSON([]byte(`{"entity":{"invalid":"data"}}`), rec)
	var missing *typedmap.MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingKeyError from the union, got %v", err)
	}
}

const composeDoc = `
Config:
  mode: {literal: [fast, safe]}
  retries: {nullable: integer}
  hosts: {array: string}
  limits: {map: integer}
  extra: {type: any, optional: true}
`

func TestImport_CompositeTypes(t *testing.T) {
	rec, err := yamlschema.Import([]byte(composeDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	ok, err := typedmap.ValidateJSON([]byte(`{
		"mode": "fast",
		"retries": null,
		"hosts": ["a", "b"],
		"limits": {"cpu": 4}
	}`), rec)
	if !ok || err != nil {
		t.Fatalf("expected valid, got ok=%v err=%v", ok, err)
	}

	_, err = typedmap.ValidateJSON([]byte(`{
		"mode": "turbo",
		"retries": null,
		"hosts": [],
		"limits": {}
	}`), rec)
	var mismatch *typedmap.TypeMismatchError
	if !errors.As(err, &mismatch) || mismatch.Actual != `"turbo"` {
		t.Fatalf("expected literal mismatch reporting the value, got %v", err)
	}
}

func TestImport_SelfReference(t *testing.T) {
	rec, err := yamlschema.Import([]byte("Node:\n  value: integer\n  next: {type: {nullable: Node}, optional: true}\n"))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	ok, err := typedmap.ValidateJSON([]byte(`{"value":1,"next":{"value":2,"next":null}}`), rec)
	if !ok || err != nil {
		t.Fatalf("expected valid recursive data, got ok=%v err=%v", ok, err)
	}
}

func TestImport_DanglingReference(t *testing.T) {
	_, err := yamlschema.Import([]byte("Wrapper:\n  person: Person\n"))
	if err == nil || !strings.Contains(err.Error(), `"Person"`) {
		t.Fatalf("expected dangling reference error, got %v", err)
	}
}

func TestImport_Errors(t *testing.T) {
	if _, err := yamlschema.Import(nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := yamlschema.Import([]byte("- a\n- b\n")); err == nil {
		t.Fatalf("expected error for non-mapping document")
	}
	if _, err := yamlschema.Import([]byte("R:\n  f: {weird: x}\n")); err == nil {
		t.Fatalf("expected error for unknown composite")
	}
	if _, err := yamlschema.Import([]byte("R:\n  a: string\nR:\n  b: string\n")); err == nil {
		t.Fatalf("expected error for duplicate record")
	}
}

func TestImportAll(t *testing.T) {
	records, err := yamlschema.ImportAll([]byte(entityDoc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	person := records["Person"]
	if ok := typedmap.Is(map[string]any{"name": "a", "age": 1}, person); !ok {
		t.Fatalf("expected Person to validate independently")
	}
}
