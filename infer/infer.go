// Package infer derives record schemas from Go struct declarations, so a
// shape declared once as a type can be validated against untyped maps.
//
// Field names follow json tags (fields tagged "-" are skipped). Pointer
// fields accept null in addition to their base type. A field is optional
// when its json tag carries ",omitempty" or it is tagged
// `typedmap:"optional"`. Nested structs, slices, and string-keyed maps
// recurse; self-referential structs resolve to the same record node.
package infer

import (
	"fmt"
	"reflect"
	"strings"

	typedmap "github.com/reoring/typedmap"
)

// Struct builds a record schema for struct type T.
func Struct[T any]() (*typedmap.Record, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("infer: Struct[T] requires a struct type, got %s", rt.Kind())
	}
	return structSchema(rt, map[reflect.Type]*typedmap.Record{})
}

// MustStruct is like Struct but panics on unsupported types.
func MustStruct[T any]() *typedmap.Record {
	r, err := Struct[T]()
	if err != nil {
		panic(err)
	}
	return r
}

func structSchema(rt reflect.Type, seen map[reflect.Type]*typedmap.Record) (*typedmap.Record, error) {
	if rec, ok := seen[rt]; ok {
		return rec, nil
	}
	rec := &typedmap.Record{Name: rt.Name()}
	seen[rt] = rec
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := resolveKey(sf)
		if name == "-" || name == "" {
			continue
		}
		fs, err := typeSchema(sf.Type, seen)
		if err != nil {
			return nil, fmt.Errorf("infer: field %s of %s: %w", sf.Name, rt.Name(), err)
		}
		rec.Fields = append(rec.Fields, typedmap.Field{
			Name:     name,
			Type:     fs,
			Optional: isOptional(sf),
		})
	}
	return rec, nil
}

func typeSchema(t reflect.Type, seen map[reflect.Type]*typedmap.Record) (typedmap.Schema, error) {
	switch t.Kind() {
	case reflect.Pointer:
		inner, err := typeSchema(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return &typedmap.Union{Branches: []typedmap.Schema{
			inner,
			&typedmap.Primitive{Kind: typedmap.KindNull},
		}}, nil
	case reflect.String:
		return &typedmap.Primitive{Kind: typedmap.KindString}, nil
	case reflect.Bool:
		return &typedmap.Primitive{Kind: typedmap.KindBool}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &typedmap.Primitive{Kind: typedmap.KindInt}, nil
	case reflect.Float32, reflect.Float64:
		return &typedmap.Primitive{Kind: typedmap.KindFloat}, nil
	case reflect.Slice, reflect.Array:
		elem, err := typeSchema(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return &typedmap.Sequence{Elem: elem}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key type %s is not string", t.Key())
		}
		val, err := typeSchema(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return &typedmap.Mapping{Value: val}, nil
	case reflect.Struct:
		return structSchema(t, seen)
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return &typedmap.Any{}, nil
		}
		return nil, fmt.Errorf("non-empty interface %s is not supported", t)
	}
	return nil, fmt.Errorf("unsupported kind %s", t.Kind())
}

// resolveKey picks the data key for a struct field: the json tag name when
// present, the Go field name otherwise.
func resolveKey(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

func isOptional(sf reflect.StructField) bool {
	if tag, ok := sf.Tag.Lookup("typedmap"); ok {
		for _, part := range strings.Split(tag, ",") {
			if part == "optional" {
				return true
			}
		}
	}
	if tag, ok := sf.Tag.Lookup("json"); ok {
		if _, rest, found := strings.Cut(tag, ","); found {
			for _, part := range strings.Split(rest, ",") {
				if part == "omitempty" {
					return true
				}
			}
		}
	}
	return false
}
