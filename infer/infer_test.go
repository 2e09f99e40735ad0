package infer_test

import (
	"testing"

	typedmap "github.com/reoring/typedmap"
	"github.com/reoring/typedmap/infer"
)

type user struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Nick string `json:"nick,omitempty"`
}

func TestStruct_Basic(t *testing.T) {
	rec, err := infer.Struct[user]()
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	if rec.Name != "user" || len(rec.Fields) != 3 {
		t.Fatalf("unexpected record: %#v", rec)
	}
	if rec.Fields[2].Name != "nick" || !rec.Fields[2].Optional {
		t.Fatalf("omitempty must mark the field optional: %#v", rec.Fields[2])
	}

	if !typedmap.Is(map[string]any{"name": "John", "age": 30}, rec) {
		t.Fatalf("expected valid without the optional field")
	}
	if typedmap.Is(map[string]any{"name": "John"}, rec) {
		t.Fatalf("expected invalid when age is missing")
	}
	if typedmap.Is(map[string]any{"name": "John", "age": true}, rec) {
		t.Fatalf("expected invalid when age is a boolean")
	}
}

type profile struct {
	Bio    *string        `json:"bio"`
	Tags   []string       `json:"tags"`
	Scores map[string]int `json:"scores"`
	Extra  map[string]any `json:"extra" typedmap:"optional"`
	Owner  user           `json:"owner"`
	hidden string
	Skip   string `json:"-"`
}

func TestStruct_CompositesAndTags(t *testing.T) {
	rec, err := infer.Struct[profile]()
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	// hidden and Skip never become fields
	if len(rec.Fields) != 5 {
		t.Fatalf("expected 5 fields, got %#v", rec.Fields)
	}
	if !rec.Fields[3].Optional {
		t.Fatalf("typedmap:\"optional\" must mark the field optional")
	}

	data := map[string]any{
		"bio":    nil, // pointer fields accept null
		"tags":   []any{"a", "b"},
		"scores": map[string]any{"x": 1},
		"owner":  map[string]any{"name": "a", "age": 1, "nick": "n"},
	}
	if !typedmap.Is(data, rec) {
		t.Fatalf("expected valid")
	}

	data["bio"] = 5
	if typedmap.Is(data, rec) {
		t.Fatalf("pointer field must still type-check present values")
	}
}

type node struct {
	Value int   `json:"value"`
	Next  *node `json:"next,omitempty"`
}

func TestStruct_SelfReference(t *testing.T) {
	rec, err := infer.Struct[node]()
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	chain := map[string]any{
		"value": 1,
		"next":  map[string]any{"value": 2},
	}
	if !typedmap.Is(chain, rec) {
		t.Fatalf("expected valid recursive data")
	}
	chain["next"] = map[string]any{"value": "two"}
	if typedmap.Is(chain, rec) {
		t.Fatalf("expected invalid nested value")
	}
}

func TestStruct_Unsupported(t *testing.T) {
	type bad struct {
		C chan int `json:"c"`
	}
	if _, err := infer.Struct[bad](); err == nil {
		t.Fatalf("expected error for unsupported field kind")
	}
	if _, err := infer.Struct[int](); err == nil {
		t.Fatalf("expected error for non-struct type")
	}
}

func TestMustStruct_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	type bad struct {
		C func() `json:"c"`
	}
	infer.MustStruct[bad]()
}
