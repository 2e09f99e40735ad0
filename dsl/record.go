package dsl

import (
	"fmt"

	typedmap "github.com/reoring/typedmap"
)

type recordBuilder struct {
	name   string
	fields []typedmap.Field
	errs   []error
}

type fieldStep struct {
	b   *recordBuilder
	idx int
}

// RecordOf creates a record builder. name feeds mismatch descriptors only
// and may be empty.
func RecordOf(name string) *recordBuilder {
	return &recordBuilder{name: name}
}

// Field appends a field in declaration order; the order decides which defect
// a validation reports first. Fields are required unless marked Optional.
func (b *recordBuilder) Field(name string, s typedmap.Schema) *fieldStep {
	if name == "" {
		b.errs = append(b.errs, fmt.Errorf("dsl: record %q declares a field with an empty name", b.name))
	}
	if s == nil {
		b.errs = append(b.errs, fmt.Errorf("dsl: field %q of record %q has a nil schema", name, b.name))
	}
	for _, f := range b.fields {
		if f.Name == name {
			b.errs = append(b.errs, fmt.Errorf("dsl: record %q declares field %q twice", b.name, name))
		}
	}
	b.fields = append(b.fields, typedmap.Field{Name: name, Type: s})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Optional marks the current field as allowed to be absent and returns the
// builder.
func (f *fieldStep) Optional() *recordBuilder {
	f.b.fields[f.idx].Optional = true
	return f.b
}

// Required marks the current field as required (the default) and returns the
// builder.
func (f *fieldStep) Required() *recordBuilder {
	f.b.fields[f.idx].Optional = false
	return f.b
}

func (f *fieldStep) Field(name string, s typedmap.Schema) *fieldStep { return f.b.Field(name, s) }
func (f *fieldStep) Build() (*typedmap.Record, error)                { return f.b.Build() }
func (f *fieldStep) MustBuild() *typedmap.Record                     { return f.b.MustBuild() }

// Optional marks one or more declared fields as optional.
func (b *recordBuilder) Optional(names ...string) *recordBuilder {
	for _, name := range names {
		found := false
		for i := range b.fields {
			if b.fields[i].Name == name {
				b.fields[i].Optional = true
				found = true
			}
		}
		if !found {
			b.errs = append(b.errs, fmt.Errorf("dsl: record %q marks unknown field %q optional", b.name, name))
		}
	}
	return b
}

// Build materializes the record, reporting the first construction mistake.
func (b *recordBuilder) Build() (*typedmap.Record, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	fields := make([]typedmap.Field, len(b.fields))
	copy(fields, b.fields)
	rec := &typedmap.Record{Name: b.name, Fields: fields}
	if err := checkSchema(rec, map[typedmap.Schema]struct{}{}); err != nil {
		return nil, fmt.Errorf("dsl: record %q: %w", b.name, err)
	}
	return rec, nil
}

// checkSchema walks a schema tree for constructions that can never match
// anything, such as an empty literal set or a composite with a nil element
// schema. Cycles between records are fine; each node is visited once.
func checkSchema(s typedmap.Schema, seen map[typedmap.Schema]struct{}) error {
	if s == nil {
		return fmt.Errorf("nil schema")
	}
	if _, ok := seen[s]; ok {
		return nil
	}
	seen[s] = struct{}{}
	switch n := s.(type) {
	case *typedmap.Literal:
		if len(n.Allowed) == 0 {
			return fmt.Errorf("literal with no allowed values matches nothing")
		}
	case *typedmap.Sequence:
		if n.Elem == nil {
			return fmt.Errorf("array with a nil element schema")
		}
		return checkSchema(n.Elem, seen)
	case *typedmap.Mapping:
		if n.Value == nil {
			return fmt.Errorf("map with a nil value schema")
		}
		return checkSchema(n.Value, seen)
	case *typedmap.Union:
		for _, b := range n.Branches {
			if err := checkSchema(b, seen); err != nil {
				return err
			}
		}
	case *typedmap.Record:
		for _, f := range n.Fields {
			if err := checkSchema(f.Type, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// MustBuild is like Build but panics on construction mistakes.
func (b *recordBuilder) MustBuild() *typedmap.Record {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}
