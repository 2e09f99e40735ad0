package dsl

import (
	typedmap "github.com/reoring/typedmap"
)

// String matches string values.
func String() typedmap.Schema { return &typedmap.Primitive{Kind: typedmap.KindString} }

// Int matches integer values (json.Number literals without a fraction or
// exponent, and native Go integers). Booleans never match.
func Int() typedmap.Schema { return &typedmap.Primitive{Kind: typedmap.KindInt} }

// Bool matches boolean values.
func Bool() typedmap.Schema { return &typedmap.Primitive{Kind: typedmap.KindBool} }

// Float matches floating-point values.
func Float() typedmap.Schema { return &typedmap.Primitive{Kind: typedmap.KindFloat} }

// Null matches only the null value.
func Null() typedmap.Schema { return &typedmap.Primitive{Kind: typedmap.KindNull} }

// Any matches every value unconditionally.
func Any() typedmap.Schema { return &typedmap.Any{} }

// Literal matches values equal to any of the allowed constants.
func Literal(allowed ...any) typedmap.Schema { return &typedmap.Literal{Allowed: allowed} }

// Nullable wraps s so that null is also accepted, the union shorthand for
// optional-by-value fields.
func Nullable(s typedmap.Schema) typedmap.Schema { return Union(s, Null()) }

// Ref returns a named placeholder resolved later through a
// typedmap.Registry, enabling forward and self references.
func Ref(name string) typedmap.Schema { return &typedmap.Ref{Name: name} }
