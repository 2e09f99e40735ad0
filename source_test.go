package typedmap_test

import (
	"encoding/json"
	"errors"
	"testing"

	typedmap "github.com/reoring/typedmap"
	d "github.com/reoring/typedmap/dsl"
)

func TestDecodeJSONBytes_PreservesNumbers(t *testing.T) {
	m, err := typedmap.DecodeJSONBytes([]byte(`{"age":30,"score":1.5}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := m["age"].(json.Number); !ok {
		t.Fatalf("expected json.Number, got %T", m["age"])
	}
}

func TestValidateJSON_IntegerVersusFloat(t *testing.T) {
	rec := d.RecordOf("Person").
		Field("name", d.String()).
		Field("age", d.Int()).
		MustBuild()

	ok, err := typedmap.ValidateJSON([]byte(`{"name":"John","age":30}`), rec)
	if !ok || err != nil {
		t.Fatalf("expected valid, got ok=%v err=%v", ok, err)
	}

	// a fractional literal is a float, never an integer
	_, err = typedmap.ValidateJSON([]byte(`{"name":"John","age":30.5}`), rec)
	var mismatch *typedmap.TypeMismatchError
	if !errors.As(err, &mismatch) || mismatch.Expected != "integer" || mismatch.Actual != "float" {
		t.Fatalf("expected integer/float mismatch, got %v", err)
	}

	// and a float field accepts fractional and exponent literals
	frec := d.RecordOf("F").Field("f", d.Float()).MustBuild()
	if ok, err := typedmap.ValidateJSON([]byte(`{"f":1e3}`), frec); !ok || err != nil {
		t.Fatalf("exponent literal must classify as float, got ok=%v err=%v", ok, err)
	}
}

func TestValidateJSON_LiteralBridgesNumbers(t *testing.T) {
	rec := d.RecordOf("Pick").
		Field("n", d.Literal(1, 2, 3)).
		MustBuild()

	if ok, err := typedmap.ValidateJSON([]byte(`{"n":2}`), rec); !ok || err != nil {
		t.Fatalf("json number 2 must equal literal 2, got ok=%v err=%v", ok, err)
	}
	if ok, _ := typedmap.ValidateJSON([]byte(`{"n":4}`), rec, typedmap.ValidateOpt{Silent: true}); ok {
		t.Fatalf("expected invalid")
	}
}

func TestValidateJSON_DecodeError(t *testing.T) {
	rec := d.RecordOf("R").Field("a", d.String()).MustBuild()
	_, err := typedmap.ValidateJSON([]byte(`{`), rec, typedmap.ValidateOpt{Silent: true})
	if err == nil {
		t.Fatalf("malformed JSON must surface a decode error even in silent mode")
	}
}
