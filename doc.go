package typedmap

// Package typedmap validates untyped key-value maps against statically
// declared record schemas:
//
// - A tagged-variant Schema tree (primitives, literals, sequences, mappings,
//   records, unions, any) built once and shared read-only thereafter
// - A recursive matcher reporting a single defect per call: the first
//   missing required key or value-type mismatch in declared field order
// - Forward and self references between records via Ref/Registry, resolved
//   before validation
//
// Design policy:
// - Keep only public APIs in the root package; construction helpers live
//   under dsl/, infer/, and yamlschema/.
// - The matcher consumes already-resolved schemas and already-decoded data;
//   it performs no I/O, no coercion, and no cycle detection.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	person := dsl.RecordOf("Person").
//	    Field("name", dsl.String()).
//	    Field("age", dsl.Int()).
//	    MustBuild()
//
//	ok, err := typedmap.Validate(data, person)
//	ok, err = typedmap.ValidateJSON(raw, person)
//	_ = typedmap.Is(data, person)
