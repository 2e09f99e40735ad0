package dsl

import (
	typedmap "github.com/reoring/typedmap"
)

// Array matches a list whose every element satisfies elem.
func Array(elem typedmap.Schema) typedmap.Schema { return &typedmap.Sequence{Elem: elem} }

// Map matches a string-keyed map whose every value satisfies value. Keys are
// unconstrained.
func Map(value typedmap.Schema) typedmap.Schema { return &typedmap.Mapping{Value: value} }

// Union matches when at least one branch matches. When every branch fails,
// the reported defect is the first type mismatch across branches, falling
// back to the first missing key.
func Union(branches ...typedmap.Schema) typedmap.Schema {
	return &typedmap.Union{Branches: branches}
}
