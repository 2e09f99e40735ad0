// Package dsl provides the schema construction DSL for typedmap.
//
// Overview
//   - Builder API: declare record semantics with RecordOf()/Field()/Optional()/MustBuild().
//   - Primitives: String()/Int()/Bool()/Float()/Null() plus Any() and Literal(values...).
//   - Composites: Array(elem), Map(value), Union(branches...), Nullable(s).
//   - References: Ref(name) placeholders, fixed up via typedmap.Registry before validation.
//
// Fields are required by default; chain Optional() on a field (or use the
// builder-level Optional("a", "b")) to allow absence. Build() reports
// construction mistakes (duplicate or empty field names, nil element
// schemas); MustBuild() panics on them.
//
// Example
//
//	person := dsl.RecordOf("Person").
//	    Field("name", dsl.String()).
//	    Field("age", dsl.Int()).
//	    Field("nick", dsl.String()).Optional().
//	    MustBuild()
//
//	ok, err := typedmap.Validate(data, person)
package dsl
